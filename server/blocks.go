package server

import (
	"math/rand"
)

// BlockDirection 墙体从起点延伸的方向
type BlockDirection int

const (
	BlockNorth BlockDirection = iota
	BlockEast
	BlockSouth
	BlockWest
)

func (d BlockDirection) step() (float32, float32) {
	switch d {
	case BlockNorth:
		return 0, 1
	case BlockEast:
		return 1, 0
	case BlockSouth:
		return 0, -1
	default:
		return -1, 0
	}
}

const (
	wallMinLength = 3
	wallMaxLength = 6
	// 墙体与原点（兜底出生点）保持的距离
	wallOriginClearance = 5

	spawnAttempts  = 100
	blockRadius    = 0.5
	playerRadius   = 1.0
	spawnClearance = blockRadius + playerRadius
)

// generateWalls 用房间的种子随机源生成若干条直线墙，每格一个 Block
func generateWalls(rng *rand.Rand, count int, halfExtent float32, nextSeq func() int32) []*Block {
	if count <= 0 || nextSeq == nil {
		return nil
	}
	blocks := make([]*Block, 0, count*wallMaxLength)
	attempts := 0
	maxAttempts := count * 20
	walls := 0
	inner := halfExtent - wallMaxLength

	for walls < count && attempts < maxAttempts {
		attempts++
		if inner <= 0 {
			break
		}
		x := (rng.Float32()*2 - 1) * inner
		y := (rng.Float32()*2 - 1) * inner
		dir := BlockDirection(rng.Intn(4))
		length := wallMinLength + rng.Intn(wallMaxLength-wallMinLength+1)
		dx, dy := dir.step()

		cells := make([][2]float32, 0, length)
		ok := true
		for i := 0; i < length; i++ {
			cx, cy := x+dx*float32(i), y+dy*float32(i)
			if distSq(cx, cy, 0, 0) < wallOriginClearance*wallOriginClearance {
				ok = false
				break
			}
			cells = append(cells, [2]float32{cx, cy})
		}
		if !ok {
			continue
		}
		for _, c := range cells {
			blocks = append(blocks, newBlock(nextSeq(), c[0], c[1]))
		}
		walls++
	}
	return blocks
}

// spawnPoint 在场地内随机采样，取第一个不与墙体重叠的点；预算用尽则回到原点
func (r *Room) spawnPoint() (float32, float32) {
	for i := 0; i < spawnAttempts; i++ {
		x := (r.rng.Float32()*2 - 1) * r.cfg.HalfExtent
		y := (r.rng.Float32()*2 - 1) * r.cfg.HalfExtent
		if r.isSafeSpot(x, y) {
			return x, y
		}
	}
	return 0, 0
}

func (r *Room) isSafeSpot(x, y float32) bool {
	for _, b := range r.blocks {
		if b.State != StateNormal {
			continue
		}
		if distSq(x, y, b.X, b.Y) <= spawnClearance*spawnClearance {
			return false
		}
	}
	return true
}

func distSq(ax, ay, bx, by float32) float32 {
	dx, dy := ax-bx, ay-by
	return dx*dx + dy*dy
}
