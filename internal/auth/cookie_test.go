package auth

import (
	"net/http"
	"strings"
	"testing"
	"time"
)

func TestCookiePolicy_Session(t *testing.T) {
	policy := CookiePolicy{Name: "jwt", Secure: true, CrossSite: true}
	cookie := policy.Session("token-value", 24*time.Hour)

	if cookie.Name != "jwt" {
		t.Fatalf("expected name jwt, got %q", cookie.Name)
	}
	if cookie.Value != "token-value" {
		t.Fatalf("unexpected value %q", cookie.Value)
	}
	if !cookie.HttpOnly {
		t.Fatal("session cookie must be HttpOnly")
	}
	if cookie.Path != "/" {
		t.Fatalf("expected path /, got %q", cookie.Path)
	}
	if cookie.MaxAge != 86400 {
		t.Fatalf("expected max-age 86400, got %d", cookie.MaxAge)
	}
	if !cookie.Secure {
		t.Fatal("expected Secure cookie")
	}
	if cookie.SameSite != http.SameSiteNoneMode {
		t.Fatalf("expected SameSite=None, got %v", cookie.SameSite)
	}
}

func TestCookiePolicy_SameSiteNoneRequiresSecure(t *testing.T) {
	// Browsers drop SameSite=None cookies without Secure, so the policy
	// must fall back to Lax instead of emitting the invalid pair.
	policy := CookiePolicy{Name: "jwt", Secure: false, CrossSite: true}
	cookie := policy.Session("token-value", time.Hour)

	if cookie.SameSite == http.SameSiteNoneMode {
		t.Fatal("SameSite=None emitted on an insecure cookie")
	}
	if cookie.SameSite != http.SameSiteLaxMode {
		t.Fatalf("expected SameSite=Lax fallback, got %v", cookie.SameSite)
	}
}

func TestCookiePolicy_Expired(t *testing.T) {
	policy := CookiePolicy{Name: "jwt", Secure: true, CrossSite: true}
	session := policy.Session("token-value", time.Hour)
	expired := policy.Expired()

	// The clearing cookie must target the same cookie the session set.
	if expired.Name != session.Name || expired.Path != session.Path {
		t.Fatalf("expired cookie targets %s%s, session set %s%s",
			expired.Name, expired.Path, session.Name, session.Path)
	}
	if expired.Value != "" {
		t.Fatalf("expected empty value, got %q", expired.Value)
	}
	if !strings.Contains(expired.String(), "Max-Age=0") {
		t.Fatalf("expected Max-Age=0 on the wire, got %q", expired.String())
	}
	if !expired.HttpOnly {
		t.Fatal("clearing cookie must stay HttpOnly")
	}
}

func TestCookiePolicy_DefaultName(t *testing.T) {
	cookie := CookiePolicy{}.Session("v", time.Hour)
	if cookie.Name != DefaultCookieName {
		t.Fatalf("expected default name %q, got %q", DefaultCookieName, cookie.Name)
	}
}
