package api

import (
	"net/http"

	"github.com/nerrad567/lexi-control/internal/panel"
)

// handleUnlock validates the submitted PIN and opens a session.
//
// A correct PIN issues a signed session token, sets the session cookie,
// and redirects to the panel. A wrong PIN re-renders the lock screen;
// the response does not distinguish wrong from unconfigured.
func (s *Server) handleUnlock(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.renderLock(w, "Incorrect PIN")
		return
	}

	if !s.gate.CheckPIN(r.PostFormValue("pin")) {
		s.logger.Warn("unlock rejected", "remote", r.RemoteAddr)
		s.renderLock(w, "Incorrect PIN")
		return
	}

	token, err := s.gate.IssueToken()
	if err != nil {
		s.logger.Error("issuing session token", "error", err)
		writeInternalError(w, "internal server error")
		return
	}

	http.SetCookie(w, s.gate.UnlockCookie(token))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleLock clears the session cookie and returns to the lock screen.
func (s *Server) handleLock(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, s.gate.LockCookie())
	s.renderLock(w, "Panel locked. Enter PIN again.")
}

// renderLock writes the lock screen with an optional error line.
func (s *Server) renderLock(w http.ResponseWriter, errMsg string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := s.pages.Lock(w, panel.LockData{
		Site:  s.site.Name,
		Error: errMsg,
	})
	if err != nil {
		s.logger.Error("rendering lock screen", "error", err)
	}
}
