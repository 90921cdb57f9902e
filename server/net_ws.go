package server

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// ClientConn 负责发送（写）数据到客户端的轻量包装
type ClientConn struct {
	ws        *websocket.Conn
	send      chan []byte
	closed    chan struct{}
	closeOnce sync.Once
}

func NewClientConn(ws *websocket.Conn, buffer int) *ClientConn {
	return &ClientConn{
		ws:     ws,
		send:   make(chan []byte, buffer),
		closed: make(chan struct{}),
	}
}

// Enqueue 将要发送的帧压入队列（非阻塞，满则丢弃）
func (c *ClientConn) Enqueue(b []byte) bool {
	select {
	case <-c.closed:
		return false
	default:
	}
	select {
	case c.send <- b:
		return true
	default:
		// 为了实时性，丢弃本帧（防止阻塞 Tick）
		return false
	}
}

// Close 通知写协程退出并关闭底层连接
func (c *ClientConn) Close() error {
	var err error
	c.closeOnce.Do(func() {
		close(c.closed)
		err = c.ws.Close()
	})
	return err
}

// writePump 独立协程，负责从 send 队列写出到 WS
func (c *ClientConn) writePump() {
	defer c.ws.Close()
	for {
		select {
		case <-c.closed:
			return
		case msg := <-c.send:
			c.ws.SetWriteDeadline(time.Now().Add(5 * time.Second))
			if err := c.ws.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		}
	}
}

// readPump 读取客户端输入，交给会话处理
func (c *ClientConn) readPump(s *Session, m *SessionManager) {
	// 读泵退出时注销会话（停止 Tick 并关闭连接）
	defer m.Remove(s.ID)
	c.ws.SetReadLimit(1 << 16)
	c.ws.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.ws.SetPongHandler(func(string) error { c.ws.SetReadDeadline(time.Now().Add(60 * time.Second)); return nil })

	for {
		_, payload, err := c.ws.ReadMessage()
		if err != nil {
			return
		}
		// 有输入即视为存活
		c.ws.SetReadDeadline(time.Now().Add(60 * time.Second))
		im, err := ParseInput(payload)
		if err != nil {
			s.metrics.IncInputsRejected()
			s.log.Debugw("input rejected", "err", err)
			continue
		}
		s.OnMessage(im)
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		// 演示环境：允许所有来源（生产环境需严格限制）
		return true
	},
}

// HandleWS WebSocket 接入：每个连接一局新游戏
func (srv *Server) HandleWS(w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		srv.log.Warnw("upgrade error", "err", err)
		return
	}

	client := NewClientConn(ws, srv.cfg.SendBuffer)
	s := srv.sessions.Create(client)

	go client.writePump()
	go client.readPump(s, srv.sessions)
	s.StartTicker()
}
