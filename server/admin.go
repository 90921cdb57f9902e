package server

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// HandleListSessions GET /admin/sessions 列出在线会话摘要
func (srv *Server) HandleListSessions(w http.ResponseWriter, r *http.Request) {
	list := srv.sessions.List()
	out := make([]Summary, 0, len(list))
	for _, s := range list {
		out = append(out, s.Summary())
	}
	writeJSON(w, http.StatusOK, out)
}

// HandleGetSession GET /admin/sessions/{id}
func (srv *Server) HandleGetSession(w http.ResponseWriter, r *http.Request) {
	s, ok := srv.sessions.Get(mux.Vars(r)["id"])
	if !ok {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"session": s.Summary(),
		"metrics": s.Metrics().Snapshot(),
	})
}

// HandleRestartSession POST /admin/sessions/{id}/restart 远程重开
func (srv *Server) HandleRestartSession(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	s, ok := srv.sessions.Get(id)
	if !ok {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}
	s.RequestRestart()
	srv.log.Infow("restart requested by admin", "session", id)
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// HandleMetrics GET /metrics 全部会话的汇总指标
func (srv *Server) HandleMetrics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"sessions": len(srv.sessions.List()),
		"metrics":  srv.sessions.Metrics().Snapshot(),
	})
}
