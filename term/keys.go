package term

import (
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"glitcharcade/game"
)

// HoldWindow 终端只上报按下（含自动重复），超过该时长没有重复即视为松开
const HoldWindow = 300 * time.Millisecond

// HoldKeys 把“按下”事件流转换为按住集合
type HoldKeys struct {
	keys   *game.KeySet
	until  map[string]time.Time
	window time.Duration
}

func NewHoldKeys(keys *game.KeySet, window time.Duration) *HoldKeys {
	return &HoldKeys{keys: keys, until: make(map[string]time.Time), window: window}
}

// Press 记录按下并续期
func (h *HoldKeys) Press(key string, now time.Time) game.Action {
	k := game.NormalizeKey(key)
	if game.ActionOf(k) == game.ActNone {
		return game.ActNone
	}
	h.until[k] = now.Add(h.window)
	return h.keys.Press(k)
}

// Expire 释放过期的键
func (h *HoldKeys) Expire(now time.Time) {
	for k, t := range h.until {
		if now.After(t) {
			h.keys.Release(k)
			delete(h.until, k)
		}
	}
}

// Reset 全部松开
func (h *HoldKeys) Reset() {
	clear(h.until)
	h.keys.Reset()
}

// KeyName tcell 按键 -> 与浏览器一致的小写键名；无法映射时返回空串
func KeyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyLeft:
		return "arrowleft"
	case tcell.KeyRight:
		return "arrowright"
	case tcell.KeyUp:
		return "arrowup"
	case tcell.KeyDown:
		return "arrowdown"
	case tcell.KeyRune:
		return strings.ToLower(string(ev.Rune()))
	}
	return ""
}

// IsQuit Esc 或 Ctrl-C 退出
func IsQuit(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC
}
