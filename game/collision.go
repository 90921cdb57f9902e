package game

// stepHazards 移动、越界清理、玩家碰撞；逆序遍历以支持原地删除
func (r *Run) stepHazards(dt float64) {
	w := r.World.Viewport.W
	for i := len(r.Hazards) - 1; i >= 0; i-- {
		h := &r.Hazards[i]
		h.X += h.VX * dt

		if h.X < -HazardOffside || h.X > w+HazardOffside {
			r.Hazards = removeAt(r.Hazards, i)
			continue
		}
		if !r.Player.Hit(h.X, h.Y, h.R) {
			continue
		}

		r.Hazards = removeAt(r.Hazards, i)
		r.HP--
		cx, cy := r.Player.Center()
		r.burst(cx, cy, burstHitN, burstHitPower, NeonRed)
		r.Glitch.Kick(GlitchOnHit)
		r.log.Debugw("hazard hit", "hp", r.HP)

		if r.HP <= 0 {
			r.end(false)
			return
		}
	}
}

// stepCoins 摆动、拾取、计分与升级
func (r *Run) stepCoins(dt float64) {
	for i := len(r.Coins) - 1; i >= 0; i-- {
		c := &r.Coins[i]
		c.Wobble += dt * coinWobbleHz
		cx, cy := c.X, c.DrawY()

		if !r.Player.Hit(cx, cy, c.R+coinHitPad) {
			continue
		}

		r.Coins = removeAt(r.Coins, i)
		r.Score += CoinScore
		r.Progress = clamp(r.Progress+CoinProgress, 0, ProgressMax)
		r.burst(cx, cy, burstCoinN, burstCoinPower, NeonCyan)

		if r.Progress >= ProgressMax {
			r.levelUp()
			if r.State != Running {
				return
			}
		}
	}
}

// levelUp 进度满：等级 +1，进度清零，奖励分数
func (r *Run) levelUp() {
	r.Level++
	r.Progress = 0
	r.Score += LevelUpBonus
	vp := r.World.Viewport
	r.burst(vp.W/2, vp.H/2, burstLevelUpN, burstLevelUpPower, NeonMagenta)
	r.Glitch.Kick(GlitchOnLevelUp)
	r.log.Infow("level up", "level", r.Level, "score", r.Score)

	if r.Level >= WinLevel {
		r.end(true)
	}
}
