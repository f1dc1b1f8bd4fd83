package remoteauth

import (
	"net/http"
	"strings"
)

// ExtractUsername normalizes a raw trusted-header identity by stripping the
// configured domain affix. Both `DOMAIN\user` and `user@DOMAIN` forms are
// stripped, case-sensitively, at most once each and only as exact anchored
// affixes. With no domain configured the raw value passes through unchanged.
// An empty raw value yields an empty string; an identity is never fabricated.
func ExtractUsername(raw, domain string) string {
	if raw == "" || domain == "" {
		return raw
	}

	raw = strings.TrimPrefix(raw, domain+`\`)
	raw = strings.TrimSuffix(raw, "@"+domain)

	return raw
}

// extractUsername reads the trusted identity header from the request and
// normalizes it. The header is absent in non-proxy-mediated environments, in
// which case the result is empty.
func (p *Provider) extractUsername(r *http.Request) string {
	return ExtractUsername(r.Header.Get(p.cfg.Header), p.cfg.Domain)
}
