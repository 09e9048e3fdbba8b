package cookies

import (
	"net/http"
	"net/url"
	"strings"
	"time"
)

// SessionCookieName is the cookie carrying the session id.
const SessionCookieName = "sessionId"

// Parse splits a raw Cookie header into a name/value map.
// Pairs without '=' are skipped, values are percent-decoded and split
// on the first '=' only. An empty header yields an empty map.
func Parse(header string) map[string]string {
	out := map[string]string{}
	if header == "" {
		return out
	}
	for _, pair := range strings.Split(header, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, value, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		if decoded, err := url.QueryUnescape(value); err == nil {
			value = decoded
		}
		out[name] = value
	}
	return out
}

// FormatSessionCookie builds the Set-Cookie value for a live session.
// No Secure or SameSite attribute is emitted; the cookie contract is
// HttpOnly + Path=/ + an RFC1123 Expires stamp only.
func FormatSessionCookie(sessionID string, expiresAt time.Time) string {
	var b strings.Builder
	b.WriteString(SessionCookieName)
	b.WriteString("=")
	b.WriteString(url.QueryEscape(sessionID))
	b.WriteString("; Expires=")
	b.WriteString(expiresAt.UTC().Format(http.TimeFormat))
	b.WriteString("; HttpOnly; Path=/")
	return b.String()
}

// FormatExpiredCookie builds a Set-Cookie value that clears the session
// cookie: empty value, Expires at the Unix epoch.
func FormatExpiredCookie() string {
	return FormatSessionCookie("", time.Unix(0, 0))
}
