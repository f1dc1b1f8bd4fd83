package remoteauth

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Router returns a chi router exposing the provider's HTTP surface, meant to
// be mounted by the application:
//
//	r := chi.NewRouter()
//	r.Mount("/auth", provider.Router())
func (p *Provider) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(p.Middleware)

	r.Get("/whoami", p.handleWhoami)
	r.Post("/logout", p.handleLogout)

	return r
}

type whoamiResponse struct {
	Username  string `json:"username"`
	Verified  bool   `json:"verified"`
	Persisted bool   `json:"persisted"`
}

// handleWhoami reports the identity behind the current session. Rehydrated
// sessions resolve their user through the session store; a stale cookie
// whose record has expired is treated as unauthenticated.
func (p *Provider) handleWhoami(w http.ResponseWriter, r *http.Request) {
	info, ok := FromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	resp := whoamiResponse{
		Verified:  info.Verified,
		Persisted: info.Persisted,
	}

	if info.User != nil {
		resp.Username = info.User.Name
	} else {
		sess, err := p.sessions.Get(r.Context(), info.ID)
		if err != nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		resp.Username = sess.Username
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func (p *Provider) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := p.Logout(r.Context(), w, r); err != nil {
		p.log.ErrorContext(r.Context(), "logout failed", "error", err)
		http.Error(w, "Session error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
