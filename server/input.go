package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"glitcharcade/game"
)

// 入站消息类型
const (
	MsgKey     = "key"
	MsgResize  = "resize"
	MsgRestart = "restart"
)

// 视口边长上限（像素）
const maxViewportSide = 8192

var errUnknownMessage = errors.New("unknown message type")

// InputMessage 客户端入站消息（WebSocket 文本 JSON）
// 示例：{"type":"key","key":"ArrowLeft","down":true}
//
//	{"type":"resize","w":1280,"h":720}
//	{"type":"restart"}
type InputMessage struct {
	Type string  `json:"type"`
	Key  string  `json:"key,omitempty"`
	Down bool    `json:"down,omitempty"`
	W    float64 `json:"w,omitempty"`
	H    float64 `json:"h,omitempty"`
}

// ParseInput 解析并校验一条入站消息
func ParseInput(payload []byte) (InputMessage, error) {
	var im InputMessage
	if err := json.Unmarshal(payload, &im); err != nil {
		return InputMessage{}, fmt.Errorf("decode input: %w", err)
	}
	im.Type = strings.ToLower(im.Type)
	switch im.Type {
	case MsgKey:
		if im.Key == "" {
			return InputMessage{}, errors.New("key message without key")
		}
		if game.ActionOf(im.Key) == game.ActNone {
			return InputMessage{}, fmt.Errorf("unbound key %q", im.Key)
		}
	case MsgResize:
		if im.W <= 0 || im.H <= 0 || im.W > maxViewportSide || im.H > maxViewportSide {
			return InputMessage{}, fmt.Errorf("resize %vx%v out of range", im.W, im.H)
		}
	case MsgRestart:
	default:
		return InputMessage{}, fmt.Errorf("%w: %q", errUnknownMessage, im.Type)
	}
	return im, nil
}
