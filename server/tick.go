package server

import "time"

// StartTicker 启动会话的帧循环（单协程推进世界）
func (s *Session) StartTicker() {
	if s.tickerStarted {
		return
	}
	s.tickerStarted = true
	interval := time.Second / time.Duration(s.fps)
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-s.done:
				return
			case now := <-ticker.C:
				// 核心循环：处理请求 → 更新与渲染 → 广播结果
				s.Tick(now)
			}
		}
	}()
}
