package auth

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/stretchr/testify/require"

	"github.com/quyetcv1/coffee-shop/internal/config"
	"github.com/quyetcv1/coffee-shop/internal/utils"
	"github.com/quyetcv1/coffee-shop/models"
)

const (
	testKeyID    = "test-key"
	testDomain   = "tenant.test"
	testAudience = "coffee"
)

// ---- Helpers ----

func newRSAKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return key
}

func jwksBody(t *testing.T, keys map[string]*rsa.PrivateKey) []byte {
	t.Helper()
	set := jwk.NewSet()
	for kid, priv := range keys {
		key, err := jwk.FromRaw(&priv.PublicKey)
		require.NoError(t, err)
		require.NoError(t, key.Set(jwk.KeyIDKey, kid))
		require.NoError(t, key.Set(jwk.AlgorithmKey, jwa.RS256))
		require.NoError(t, set.AddKey(key))
	}

	body, err := json.Marshal(set)
	require.NoError(t, err)
	return body
}

// jwksServer serves a replaceable key set and counts requests.
type jwksServer struct {
	*httptest.Server

	mu     sync.Mutex
	body   []byte
	status int
	hits   int
}

func newJWKSServer(t *testing.T, body []byte) *jwksServer {
	t.Helper()
	s := &jwksServer{body: body, status: http.StatusOK}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.hits++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(s.status)
		_, _ = w.Write(s.body)
	}))
	t.Cleanup(s.Close)
	return s
}

func (s *jwksServer) set(status int, body []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
	s.body = body
}

func (s *jwksServer) requests() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits
}

func newTestKeySet(url string, ttl time.Duration) *KeySet {
	return NewKeySet(url, utils.NewHTTPClient(time.Second), ttl)
}

func testProfile() config.Profile {
	return config.Profile{
		Auth0: config.Auth0Profile{
			URL:      "tenant",
			Domain:   testDomain,
			Audience: testAudience,
		},
	}
}

func testAuthConfig() config.Auth {
	return config.Auth{Algorithms: []string{"RS256"}}
}

func validClaims(permissions ...string) models.Claims {
	return models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "https://" + testDomain + "/",
			Subject:   "auth0|42",
			Audience:  jwt.ClaimStrings{testAudience},
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Permissions: permissions,
	}
}

func signRS256(t *testing.T, priv *rsa.PrivateKey, kid string, claims jwt.Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	if kid != "" {
		token.Header["kid"] = kid
	}
	signed, err := token.SignedString(priv)
	require.NoError(t, err)
	return signed
}
