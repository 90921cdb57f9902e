package server

// HUDState 随每帧下发给客户端的数值与浮层（客户端只做整数转字符串）
type HUDState struct {
	Score    int     `json:"score"`
	HP       int     `json:"hp"`
	Level    int     `json:"level"`
	Progress float64 `json:"progress"`
	Overlay  bool    `json:"overlay"`
	Title    string  `json:"title,omitempty"`
	Body     string  `json:"body,omitempty"`
}

// playerHUD 实现 game.HUD，只在会话的 Tick 协程内读写
type playerHUD struct {
	state HUDState
}

func (h *playerHUD) SetScore(v int)        { h.state.Score = v }
func (h *playerHUD) SetHP(v int)           { h.state.HP = v }
func (h *playerHUD) SetLevel(v int)        { h.state.Level = v }
func (h *playerHUD) SetProgress(v float64) { h.state.Progress = v }

func (h *playerHUD) ShowOverlay(title, body string) {
	h.state.Overlay, h.state.Title, h.state.Body = true, title, body
}

func (h *playerHUD) HideOverlay() {
	h.state.Overlay, h.state.Title, h.state.Body = false, "", ""
}
