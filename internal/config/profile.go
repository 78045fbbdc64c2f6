package config

import (
	"net/url"
	"strings"
	"time"
)

// Names of the built-in profiles.
const (
	ProfileDevelopment = "development"
	ProfileProduction  = "production"
)

const auth0DomainSuffix = ".auth0.com"

// Profile is the deployment profile consumed by the front-end application.
// JSON names are part of the public contract and must not change.
type Profile struct {
	// Name is the profile that was selected at startup.
	Name string `json:"-"`

	Production   bool         `json:"production"`
	APIServerURL string       `json:"apiServerUrl"`
	Auth0        Auth0Profile `json:"auth0"`
}

// Auth0Profile is the identity-provider block of a [Profile].
type Auth0Profile struct {
	// URL is the tenant domain prefix.
	URL string `json:"url"`

	// Domain is the full tenant host used to build the issuer and key set
	// URLs. It is not exposed to the front-end.
	Domain string `json:"-"`

	Audience    string `json:"audience"`
	ClientID    string `json:"clientId"`
	CallbackURL string `json:"callbackURL"`
}

// IssuerURL returns the "iss" value of tokens minted by the tenant.
func (p Profile) IssuerURL() string {
	return "https://" + p.Auth0.Domain + "/"
}

// JWKSURL returns the location of the tenant's signing keys.
func (p Profile) JWKSURL() string {
	return "https://" + p.Auth0.Domain + "/.well-known/jwks.json"
}

// CallbackOrigin returns scheme://host of the callback URL, which is the
// origin the front-end is served from.
func (p Profile) CallbackOrigin() string {
	u, err := url.Parse(p.Auth0.CallbackURL)
	if err != nil {
		return ""
	}

	return u.Scheme + "://" + u.Host
}

// deriveDomain expands a tenant prefix into the full tenant host.
func deriveDomain(prefix string) string {
	if strings.HasSuffix(prefix, auth0DomainSuffix) {
		return prefix
	}

	return prefix + auth0DomainSuffix
}

// profileDefaults returns the lowest-priority layer for the named profile.
// A fresh value is built on every call so that layers never share slices.
func profileDefaults(name string) (*StructuredConfig, bool) {
	auth := Auth{
		Algorithms:   []string{"RS256"},
		JWKSTimeout:  10 * time.Second,
		JWKSCacheTTL: time.Hour,
	}

	switch name {
	case ProfileDevelopment:
		return &StructuredConfig{
			Profile: ProfileDevelopment,
			Environment: Environment{
				Production:   "false",
				APIServerURL: stringPtr("http://127.0.0.1:5000"),
				Auth0: Auth0{
					URL:         stringPtr("quyetcv1.us"),
					Audience:    stringPtr("http://localhost:5000/login"),
					ClientID:    stringPtr("RuVMLJ4yAdlrn2sYX6rjbJQQXaRo6UfI"),
					CallbackURL: stringPtr("http://localhost:8100"),
				},
			},
			Server: Server{
				HTTPAddress:     "127.0.0.1:5000",
				RequestTimeout:  30 * time.Second,
				ShutdownTimeout: 5 * time.Second,
			},
			Auth: auth,
		}, true
	case ProfileProduction:
		// production values for the API and the tenant must come from the
		// environment, a flag or the config file
		return &StructuredConfig{
			Profile:     ProfileProduction,
			Environment: Environment{Production: "true"},
			Server: Server{
				HTTPAddress:     "0.0.0.0:5000",
				RequestTimeout:  30 * time.Second,
				ShutdownTimeout: 15 * time.Second,
			},
			Auth: auth,
		}, true
	default:
		return nil, false
	}
}
