package game

// HUD 展示层的数值与浮层接收端，核心只写入原始数值
type HUD interface {
	SetScore(score int)
	SetHP(hp int)
	SetLevel(level int)
	SetProgress(percent float64)
	ShowOverlay(title, body string)
	HideOverlay()
}

type nopHUD struct{}

func (nopHUD) SetScore(int)               {}
func (nopHUD) SetHP(int)                  {}
func (nopHUD) SetLevel(int)               {}
func (nopHUD) SetProgress(float64)        {}
func (nopHUD) ShowOverlay(string, string) {}
func (nopHUD) HideOverlay()               {}
