package remoteauth

import (
	"net/http"
)

// Middleware resolves a session for every request and stores the result in
// the request context. Requests with no usable identity pass through
// anonymously; store failures fail the request rather than mask an
// identity-binding error.
func (p *Provider) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		info, err := p.ResolveSession(r.Context(), w, r)
		if err != nil {
			if isRecoverable(err) {
				next.ServeHTTP(w, r)
				return
			}

			p.log.ErrorContext(r.Context(), "session resolution failed", "error", err)
			http.Error(w, "Session error", http.StatusInternalServerError)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithSessionInfo(r.Context(), info)))
	})
}

// RequireIdentity rejects requests for which no session could be resolved.
func (p *Provider) RequireIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := FromContext(r.Context()); !ok {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
