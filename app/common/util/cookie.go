package util

import (
	"net/http"
	"time"

	"SellerAgent/app/common/consts/biz"
)

// SetSessionCookie mirrors the resolved session id to the browser.
func SetSessionCookie(w http.ResponseWriter, sessionID string) {
	if sessionID == "" {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     biz.SessionCookie,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(biz.SessionCookieTTL),
		MaxAge:   int(biz.SessionCookieTTL.Seconds()),
	})
}
