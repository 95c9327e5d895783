package api

import (
	"net/http"
)

// instanceCookieName carries the client's committed instance selection.
// The value is only trusted after directory membership is re-checked.
const instanceCookieName = "lexi_instance"

// handleSelectInstance commits an instance selection for this client.
//
// The submitted ID is validated against the live directory: members get
// a selection cookie, anything else clears it so the client falls back
// to automatic resolution. Either way the panel is re-rendered.
func (s *Server) handleSelectInstance(w http.ResponseWriter, r *http.Request) {
	if !s.gate.Authorized(r) {
		s.renderLock(w, "Please enter PIN first.")
		return
	}

	if err := r.ParseForm(); err != nil {
		writeBadRequest(w, "malformed form")
		return
	}

	id := r.PostFormValue("instance_id")
	if id != "" && s.directory.Contains(r.Context(), id) {
		http.SetCookie(w, &http.Cookie{
			Name:     instanceCookieName,
			Value:    id,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	} else {
		s.logger.Warn("instance selection rejected", "instance", id)
		http.SetCookie(w, &http.Cookie{
			Name:     instanceCookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// selectedInstance reads the client's committed selection, or "" when
// none is present. Resolution to an actual instance happens in the
// directory; an anonymous session cookie is deliberately not required
// here because the caller has already passed the gate.
func selectedInstance(r *http.Request) string {
	c, err := r.Cookie(instanceCookieName)
	if err != nil {
		return ""
	}
	return c.Value
}
