package server

import (
	"encoding/json"
	"net/http"
)

// AdminHandler 管理与监控接口：
// GET /metrics      服务器运行指标
// GET /admin/rooms  房间概要（上一帧结束时的快照）
// GET /healthz
func (s *Server) AdminHandler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/metrics", s.handleMetrics)
	mux.HandleFunc("/admin/rooms", s.handleRooms)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	snap := s.Snapshot()
	writeJSON(w, map[string]any{
		"tick":     snap.Tick,
		"sessions": snap.Sessions,
		"rooms":    len(snap.Rooms),
		"metrics":  s.metrics.Snapshot(),
	})
}

func (s *Server) handleRooms(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	code := r.URL.Query().Get("code")
	snap := s.Snapshot()
	if code == "" {
		writeJSON(w, snap)
		return
	}
	for _, room := range snap.Rooms {
		if room.Code == code {
			writeJSON(w, room)
			return
		}
	}
	http.Error(w, "room not found", http.StatusNotFound)
}
