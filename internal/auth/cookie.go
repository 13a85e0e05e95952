package auth

import (
	"net/http"
	"time"
)

// DefaultCookieName is the session cookie name when none is configured.
const DefaultCookieName = "jwt"

// CookiePolicy maps configuration to the fixed attributes of the session
// cookie: HttpOnly always, Path "/", Secure outside local environments, and
// SameSite=None only when cross-site use is required AND the cookie is
// Secure — browsers reject SameSite=None on insecure cookies, so the policy
// falls back to Lax rather than emit an invalid combination.
type CookiePolicy struct {
	Name      string
	Secure    bool
	CrossSite bool
}

// Session builds the cookie carrying a freshly issued token.
func (p CookiePolicy) Session(token string, maxAge time.Duration) *http.Cookie {
	return p.cookie(token, int(maxAge.Seconds()))
}

// Expired builds the logout cookie: same name and path, empty value,
// Max-Age 0 on the wire, so the browser overwrite clears the session.
func (p CookiePolicy) Expired() *http.Cookie {
	// net/http serialises MaxAge<0 as "Max-Age=0".
	return p.cookie("", -1)
}

func (p CookiePolicy) cookie(value string, maxAge int) *http.Cookie {
	name := p.Name
	if name == "" {
		name = DefaultCookieName
	}

	sameSite := http.SameSiteLaxMode
	if p.CrossSite && p.Secure {
		sameSite = http.SameSiteNoneMode
	}

	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   p.Secure,
		SameSite: sameSite,
	}
}
