package game

import "math"

// Player 玩家实体，坐标为包围盒左上角
type Player struct {
	X, Y     float64
	VX, VY   float64
	W, H     float64
	Speed    float64
	Jump     float64
	OnGround bool
}

func newPlayer(w World) Player {
	p := Player{W: PlayerW, H: PlayerH, Speed: PlayerSpeed, Jump: PlayerJump}
	p.reset(w)
	return p
}

// reset 原地复位到视口中央的地面上
func (p *Player) reset(w World) {
	p.X = w.Viewport.W / 2
	p.Y = w.FloorY()
	p.VX, p.VY = 0, 0
	p.OnGround = true
}

// Center 包围盒中心
func (p *Player) Center() (float64, float64) {
	return p.X + p.W/2, p.Y + p.H/2
}

// Hit 玩家包围盒与圆是否重叠
func (p *Player) Hit(cx, cy, r float64) bool {
	return RectCircleHit(p.X, p.Y, p.W, p.H, cx, cy, r)
}

// step 输入 -> 速度 -> 积分 -> 边界。返回本帧是否起跳
func (p *Player) step(w World, in Controls, dt float64) (jumped bool) {
	target := in.Target() * p.Speed
	p.VX += (target - p.VX) * math.Min(1, PlayerAccel*dt)

	// 起跳只看落地状态，空中按住无效
	if in.Jump && p.OnGround {
		p.VY = -p.Jump
		p.OnGround = false
		jumped = true
	}

	p.VY += w.Gravity * dt
	p.X += p.VX * dt
	p.Y += p.VY * dt

	p.X = clamp(p.X, WallMargin, w.Viewport.W-p.W-WallMargin)
	if floor := w.FloorY(); p.Y >= floor {
		p.Y = floor
		p.VY = 0
		p.OnGround = true
	}
	return jumped
}
