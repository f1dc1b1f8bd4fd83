// Package cookie provides a small cookie manager with HMAC-signed values and
// secret rotation. It exists so that session identifiers written to the
// browser are tamper-evident without the session layer having to know
// anything about signing.
//
// # Usage
//
//	mgr, err := cookie.New([]string{"at-least-32-characters-long-secret"})
//	if err != nil {
//	    // handle error
//	}
//
//	// Signed cookies
//	mgr.SetSigned(w, "sid", sessionID)
//	sid, err := mgr.GetSigned(r, "sid")
//
// Secrets are tried in order on read: the first secret signs new cookies,
// subsequent ones only verify, which allows graceful key rotation.
//
// Defaults (Path=/, HttpOnly, SameSite=Lax) can be overridden per manager via
// options passed to New, or per call via options passed to Set/SetSigned.
package cookie
