package server

import "math"

// ProcessAttack 射线命中判定：沿瞄准方向取射程内、离射线足够近且最近的存活玩家。
// 只计算结果，不修改目标血量
func (r *Room) ProcessAttack(attackerSeq, attackID int32, x, y float32, aimDegrees int32) AttackResult {
	rad := float64(aimDegrees) * math.Pi / 180
	dirX, dirY := float32(math.Sin(rad)), float32(math.Cos(rad))

	res := AttackResult{
		AttackerSequence: attackerSeq,
		AttackID:         attackID,
		StartX:           x,
		StartY:           y,
		EndX:             x + dirX*r.cfg.AttackRange,
		EndY:             y + dirY*r.cfg.AttackRange,
	}

	bestProj := float32(math.MaxFloat32)
	var target *Player
	for _, p := range r.sortedPlayers() {
		if p.Sequence == attackerSeq || p.Disconnected || p.IsDead() {
			continue
		}
		vx, vy := p.X-x, p.Y-y
		proj := vx*dirX + vy*dirY
		if proj < 0 || proj > r.cfg.AttackRange {
			continue
		}
		perpSq := vx*vx + vy*vy - proj*proj
		if perpSq > r.cfg.HitRadius*r.cfg.HitRadius {
			continue
		}
		if proj < bestProj {
			bestProj = proj
			target = p
		}
	}
	if target == nil {
		return res
	}

	res.IsHit = true
	res.TargetSequence = target.Sequence
	res.Damage = r.cfg.AttackDamage
	res.EndX = x + dirX*bestProj
	res.EndY = y + dirY*bestProj
	res.TargetCurrentHP = target.HP()
	return res
}

// ApplyAttackResult 结算伤害：扣血，归零则进入死亡状态，并回填结果中的血量与死亡字段
func (r *Room) ApplyAttackResult(res *AttackResult, now int64) *Player {
	if !res.IsHit {
		return nil
	}
	target, ok := r.players[res.TargetSequence]
	if !ok || target.IsDead() {
		return nil
	}
	res.TargetCurrentHP = target.Damage(res.Damage)
	if res.TargetCurrentHP == 0 {
		target.State = StateDead
		target.DeathTime = now
		target.RemoveSent = false
		target.DeathAnimID = int32(r.rng.Intn(3)) + 1
		res.IsDead = true
		res.DeathAnimID = target.DeathAnimID
		Log.Infow("player died", "room", r.Code, "seq", target.Sequence, "killer", res.AttackerSequence)
	}
	return target
}
