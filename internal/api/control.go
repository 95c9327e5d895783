package api

import (
	"net/http"

	"github.com/nerrad567/lexi-control/internal/eeg"
	"github.com/nerrad567/lexi-control/internal/panel"
)

// handleHome renders the control panel, or the lock screen when no valid
// session is present. A locked request never touches the vendor API.
func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	if !s.gate.Authorized(r) {
		s.renderLock(w, "")
		return
	}
	s.renderHome(w, r, "")
}

// handleTurnOn starts the active instance.
func (s *Server) handleTurnOn(w http.ResponseWriter, r *http.Request) {
	s.handleCommand(w, r, eeg.ActionStart)
}

// handleTurnOff stops the active instance.
func (s *Server) handleTurnOff(w http.ResponseWriter, r *http.Request) {
	s.handleCommand(w, r, eeg.ActionStop)
}

// handleCommand sends a start/stop command to the active instance and
// re-renders the panel with the outcome as a flash message. Vendor
// failures are flashed, not surfaced as HTTP errors.
func (s *Server) handleCommand(w http.ResponseWriter, r *http.Request, action eeg.Action) {
	if !s.gate.Authorized(r) {
		s.renderLock(w, "Please enter PIN first.")
		return
	}

	ctx := r.Context()
	instanceID := s.directory.ResolveActive(ctx, selectedInstance(r))

	result, err := s.client.SendCommand(ctx, instanceID, action)
	if err != nil {
		s.logger.Error("instance command failed",
			"instance", instanceID,
			"action", string(action),
			"error", err,
		)
		writeInternalError(w, "command not available")
		return
	}

	s.logger.Info("instance command",
		"instance", instanceID,
		"action", string(action),
		"ok", result.OK,
	)
	s.renderHome(w, r, result.Message)
}

// handleStatus reports the active instance state for the panel poller.
//
// Locked requests get the 403 locked body. Vendor failures still return
// 200 with placeholder fields so the poller keeps ticking.
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	if !s.gate.Authorized(r) {
		writeLocked(w)
		return
	}

	ctx := r.Context()
	instanceID := s.directory.ResolveActive(ctx, selectedInstance(r))
	status := s.client.Status(ctx, instanceID)

	writeJSON(w, http.StatusOK, map[string]string{
		"name":        status.Name,
		"state":       status.State,
		"badge_color": status.Badge.Color(),
	})
}

// renderHome resolves the active instance, fetches its status and the
// instance directory, and writes the panel page.
func (s *Server) renderHome(w http.ResponseWriter, r *http.Request, flash string) {
	ctx := r.Context()
	instanceID := s.directory.ResolveActive(ctx, selectedInstance(r))
	status := s.client.Status(ctx, instanceID)

	var options []panel.InstanceOption
	for _, inst := range s.directory.List(ctx, false) {
		options = append(options, panel.InstanceOption{ID: inst.ID, Name: inst.Name})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := s.pages.Home(w, panel.HomeData{
		Site:       s.site.Name,
		Name:       status.Name,
		State:      status.State,
		BadgeColor: status.Badge.Color(),
		Flash:      flash,
		Instances:  options,
		ActiveID:   instanceID,
	})
	if err != nil {
		s.logger.Error("rendering panel", "error", err)
	}
}
