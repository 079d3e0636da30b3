package middleware

import (
	"crypto/sha256"
	"crypto/subtle"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/fernet/fernet-go"
	"github.com/rmehta/stock-analysis-backend/internal/api/response"
)

// timeTokenTTL bounds how long a generated time token stays valid. Clients
// generate a fresh token per request, so the window only needs to absorb
// clock skew and transit time.
const timeTokenTTL = 60 * time.Second

// fernetKeyFor derives a fernet key from the shared API key. The raw API key
// is an arbitrary string, fernet wants exactly 32 bytes, so hash it.
func fernetKeyFor(apiKey string) *fernet.Key {
	var key fernet.Key
	sum := sha256.Sum256([]byte(apiKey))
	copy(key[:], sum[:])
	return &key
}

// GenerateTimeToken creates a short-lived token bound to the given API key.
// Callers send it in the X-Time-Token header alongside X-API-Key. Returns an
// empty string if token generation fails.
func GenerateTimeToken(apiKey string) string {
	token, err := fernet.EncryptAndSign([]byte(time.Now().UTC().Format(time.RFC3339)), fernetKeyFor(apiKey))
	if err != nil {
		log.Printf("failed to generate time token: %v", err)
		return ""
	}
	return string(token)
}

// APIKeyMiddleware guards mutating endpoints with a shared API key plus a
// short-lived time token. The key is read from INTERNAL_API_KEY on each
// request so tests can swap it. A request must carry both headers:
//
//	X-API-Key:    the shared key itself
//	X-Time-Token: a fernet token minted with GenerateTimeToken
//
// The time token prevents straightforward replay of captured requests past
// the token TTL.
func APIKeyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		expectedKey := os.Getenv("INTERNAL_API_KEY")
		if expectedKey == "" {
			response.RespondError(w, http.StatusInternalServerError, "server misconfigured", "Authentication not loaded")
			return
		}

		apiKey := r.Header.Get("X-API-Key")
		if apiKey == "" {
			response.RespondError(w, http.StatusUnauthorized, "unauthorized", "Missing API key")
			return
		}
		if subtle.ConstantTimeCompare([]byte(apiKey), []byte(expectedKey)) != 1 {
			response.RespondError(w, http.StatusUnauthorized, "unauthorized", "Invalid API key")
			return
		}

		timeToken := r.Header.Get("X-Time-Token")
		if timeToken == "" {
			response.RespondError(w, http.StatusUnauthorized, "unauthorized", "Missing Time token")
			return
		}

		msg := fernet.VerifyAndDecrypt([]byte(timeToken), timeTokenTTL, []*fernet.Key{fernetKeyFor(expectedKey)})
		if msg == nil {
			response.RespondError(w, http.StatusUnauthorized, "unauthorized", "Time token is invalid or expired")
			return
		}

		next.ServeHTTP(w, r)
	})
}
