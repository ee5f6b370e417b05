package protocol

import "encoding/binary"

// HeaderSize is the length of the little-endian protocol id that prefixes every packet.
const HeaderSize = 4

// Channel ids shared by client and server.
const (
	ChannelReliable   uint8 = 0
	ChannelUnreliable uint8 = 1
)

// ExtractProtocolID reads the frame header. Short packets yield EProtocolNone.
func ExtractProtocolID(packet []byte) EProtocol {
	if len(packet) < HeaderSize {
		return EProtocolNone
	}
	return EProtocol(int32(binary.LittleEndian.Uint32(packet)))
}

// Body returns the payload after the header, or nil for short packets.
func Body(packet []byte) []byte {
	if len(packet) < HeaderSize {
		return nil
	}
	return packet[HeaderSize:]
}

// Frame prepends the protocol id to a finished FlatBuffers body.
func Frame(id EProtocol, body []byte) []byte {
	out := make([]byte, HeaderSize+len(body))
	binary.LittleEndian.PutUint32(out, uint32(int32(id)))
	copy(out[HeaderSize:], body)
	return out
}
