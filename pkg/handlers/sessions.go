package handlers

import (
	"crypto/sha1"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"golang.org/x/crypto/pbkdf2"

	"github.com/orbitalkit/labpoint/pkg/geoproj"
)

const (
	sessionName = "observer"
	sessionLon  = "lon"
	sessionLat  = "lat"
	// See https://developer.chrome.com/blog/cookie-max-age-expires.
	defaultMaxAge = 60 * 60 * 24 * 400 // 400 days in seconds.
)

var store = newStore()

func newStore() *sessions.CookieStore {
	s := sessions.NewCookieStore(getSessionKey(), getEncryptionKey())
	s.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   defaultMaxAge,
		Secure:   true,
		HttpOnly: true,
	}
	return s
}

// getSessionKey derives the cookie authentication key from the
// environment, or picks a per-process random key when unset, which
// invalidates cookies across restarts but never blocks startup.
func getSessionKey() []byte {
	if key := os.Getenv("SESSION_KEY"); key != "" {
		return pbkdf2.Key([]byte(key), []byte("labpoint-auth"), 4096, 32, sha1.New)
	}
	return securecookie.GenerateRandomKey(32)
}

func getEncryptionKey() []byte {
	if key := os.Getenv("ENCRYPTION_KEY"); key != "" {
		return pbkdf2.Key([]byte(key), []byte("labpoint-enc"), 4096, 32, sha1.New)
	}
	return securecookie.GenerateRandomKey(32)
}

// rememberLocation saves explicit coordinates as the session default.
func rememberLocation(w http.ResponseWriter, r *http.Request, loc geoproj.Location) {
	session, _ := store.Get(r, sessionName)
	session.Values[sessionLon] = loc.LonDeg
	session.Values[sessionLat] = loc.LatDeg
	if err := session.Save(r, w); err != nil {
		log.Println("save session err", err)
	}
}

// sessionLocation recalls the last explicit coordinates, if any.
func sessionLocation(r *http.Request) (geoproj.Location, bool) {
	session, _ := store.Get(r, sessionName)
	lon, lonOK := session.Values[sessionLon].(float64)
	lat, latOK := session.Values[sessionLat].(float64)
	if !lonOK || !latOK {
		return geoproj.Location{}, false
	}
	return geoproj.Location{LonDeg: lon, LatDeg: lat}, true
}
