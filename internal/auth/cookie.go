package auth

import (
	"net/http"
	"time"
)

// CookieName is the cookie carrying the session token for browser clients.
const CookieName = "token"

// ClearedCookieValue marks a token cookie overwritten on logout.
const ClearedCookieValue = "none"

// TokenCookie builds the HttpOnly cookie that carries token until expires.
func TokenCookie(token string, expires time.Time, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// ClearedCookie overwrites the token cookie with a placeholder that expires shortly.
func ClearedCookie(now time.Time, secure bool) *http.Cookie {
	return TokenCookie(ClearedCookieValue, now.Add(10*time.Second), secure)
}
