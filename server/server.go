package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"glitcharcade/config"
)

// Server HTTP + WebSocket 展示层
type Server struct {
	cfg      config.Config
	sessions *SessionManager
	http     *http.Server
	log      *zap.SugaredLogger
}

func New(cfg config.Config, log *zap.SugaredLogger) *Server {
	srv := &Server{
		cfg:      cfg,
		sessions: NewSessionManager(cfg, log),
		log:      log,
	}
	srv.http = &http.Server{Addr: cfg.Addr, Handler: srv.Handler()}
	return srv
}

// Sessions 会话管理器
func (srv *Server) Sessions() *SessionManager {
	return srv.sessions
}

// Handler 路由表
func (srv *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/ws", srv.HandleWS)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)
	r.HandleFunc("/metrics", srv.HandleMetrics).Methods(http.MethodGet)

	admin := r.PathPrefix("/admin").Subrouter()
	admin.HandleFunc("/sessions", srv.HandleListSessions).Methods(http.MethodGet)
	admin.HandleFunc("/sessions/{id}", srv.HandleGetSession).Methods(http.MethodGet)
	admin.HandleFunc("/sessions/{id}/restart", srv.HandleRestartSession).Methods(http.MethodPost)

	// 静态前端：画布回放客户端
	r.PathPrefix("/").Handler(http.FileServer(http.Dir(srv.cfg.WebRoot)))
	return r
}

// ListenAndServe 阻塞直到 Shutdown
func (srv *Server) ListenAndServe() error {
	srv.log.Infof("glitch arcade listening on %s", srv.cfg.Addr)
	if err := srv.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen: %w", err)
	}
	return nil
}

// Shutdown 停止接入并关闭所有会话
func (srv *Server) Shutdown(ctx context.Context) error {
	err := srv.http.Shutdown(ctx)
	return multierr.Append(err, srv.sessions.CloseAll())
}
