package game

import (
	"strings"
	"sync"
)

// Action 逻辑动作，多个物理按键可映射到同一动作
type Action int

const (
	ActNone Action = iota
	ActLeft
	ActRight
	ActJump
	ActRestart
)

// Bindings 归一化（小写）键名 -> 逻辑动作
var Bindings = map[string]Action{
	"arrowleft":  ActLeft,
	"a":          ActLeft,
	"arrowright": ActRight,
	"d":          ActRight,
	"arrowup":    ActJump,
	"w":          ActJump,
	" ":          ActJump,
	"r":          ActRestart,
}

// NormalizeKey 键名统一为小写；"Space"/"Spacebar" 归一为 " "
func NormalizeKey(key string) string {
	k := strings.ToLower(key)
	switch k {
	case "space", "spacebar":
		return " "
	}
	return k
}

// ActionOf 查询按键对应的逻辑动作
func ActionOf(key string) Action {
	return Bindings[NormalizeKey(key)]
}

// Controls 每帧采样一次的输入快照
type Controls struct {
	Left  bool
	Right bool
	Jump  bool
}

// Target 水平目标方向：右减左，同时按下相互抵消
func (c Controls) Target() float64 {
	t := 0.0
	if c.Left {
		t--
	}
	if c.Right {
		t++
	}
	return t
}

// KeySet 当前按住的键集合。
// 输入事件（可能来自其它 goroutine）只修改集合，更新步每帧采样一次
type KeySet struct {
	mu   sync.Mutex
	held map[string]struct{}
}

func NewKeySet() *KeySet {
	return &KeySet{held: make(map[string]struct{})}
}

// Press 记录按下，返回该键对应的动作。
// 未绑定的键不入集合，集合大小以 Bindings 为上限
func (k *KeySet) Press(key string) Action {
	n := NormalizeKey(key)
	act, ok := Bindings[n]
	if !ok || act == ActNone {
		return ActNone
	}
	k.mu.Lock()
	k.held[n] = struct{}{}
	k.mu.Unlock()
	return act
}

// Release 记录松开
func (k *KeySet) Release(key string) {
	n := NormalizeKey(key)
	k.mu.Lock()
	delete(k.held, n)
	k.mu.Unlock()
}

// Has 是否按住
func (k *KeySet) Has(key string) bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	_, ok := k.held[NormalizeKey(key)]
	return ok
}

// Reset 清空集合（如失焦）
func (k *KeySet) Reset() {
	k.mu.Lock()
	clear(k.held)
	k.mu.Unlock()
}

// Sample 把按住的键折算为逻辑动作快照
func (k *KeySet) Sample() Controls {
	k.mu.Lock()
	defer k.mu.Unlock()
	var c Controls
	for key := range k.held {
		switch Bindings[key] {
		case ActLeft:
			c.Left = true
		case ActRight:
			c.Right = true
		case ActJump:
			c.Jump = true
		}
	}
	return c
}
