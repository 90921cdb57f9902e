package game

// Viewport 视口尺寸（像素），由展示层在尺寸变化时更新
type Viewport struct {
	W, H float64
}

// World 世界常量：重力与地面线
type World struct {
	Gravity  float64
	Viewport Viewport
}

// FloorY 地面线（玩家站立时的顶部坐标）
func (w World) FloorY() float64 {
	return w.Viewport.H - FloorOffset
}
