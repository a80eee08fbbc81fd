// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/MKhiriev/go-account-keeper/models"
)

// Cookie carries the signed session token between browser and server.
// The cookie is readable by page scripts (HttpOnly is off) and sent on
// top-level navigations (SameSite=Lax).
type Cookie struct {
	Name string
}

// NewCookie returns the transport for the cookie called name.
func NewCookie(name string) Cookie {
	return Cookie{Name: name}
}

// Write sets the session cookie; it expires together with the session.
func (c Cookie) Write(w http.ResponseWriter, session models.Session) {
	cookie := &http.Cookie{
		Name:     c.Name,
		Value:    session.SignedString,
		Path:     "/",
		HttpOnly: false,
		SameSite: http.SameSiteLaxMode,
	}
	if session.ExpiresAt != nil {
		cookie.Expires = session.ExpiresAt.Time
	}

	http.SetCookie(w, cookie)
}

// Read returns the raw token or [ErrNoSession].
func (c Cookie) Read(r *http.Request) (string, error) {
	cookie, err := r.Cookie(c.Name)
	if errors.Is(err, http.ErrNoCookie) || (err == nil && cookie.Value == "") {
		return "", ErrNoSession
	}
	if err != nil {
		return "", err
	}

	return cookie.Value, nil
}

// Clear instructs the browser to drop the session cookie.
func (c Cookie) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: false,
		SameSite: http.SameSiteLaxMode,
	})
}
