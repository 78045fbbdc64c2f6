package auth

import "net/http"

// Error is an authentication or authorization failure.
type Error struct {
	// Code is a stable machine-readable identifier such as "token_expired".
	Code string
	// Description is a human-readable explanation safe to return to clients.
	Description string
	// StatusCode is the HTTP status the failure maps to.
	StatusCode int
}

func (e *Error) Error() string {
	return e.Code + ": " + e.Description
}

// Failures returned by this package. They are compared by identity, so
// callers can use errors.Is; errors.As with *Error yields the status code.
var (
	ErrHeaderMissing = &Error{
		Code:        "authorization_header_missing",
		Description: "Authorization header is expected.",
		StatusCode:  http.StatusUnauthorized,
	}
	ErrHeaderNotBearer = &Error{
		Code:        "invalid_header",
		Description: `Authorization header must start with "Bearer".`,
		StatusCode:  http.StatusUnauthorized,
	}
	ErrTokenNotFound = &Error{
		Code:        "invalid_header",
		Description: "Token not found.",
		StatusCode:  http.StatusUnauthorized,
	}
	ErrHeaderMalformed = &Error{
		Code:        "invalid_header",
		Description: "Authorization header must be bearer token.",
		StatusCode:  http.StatusUnauthorized,
	}
	ErrMissingKeyID = &Error{
		Code:        "invalid_header",
		Description: "Authorization malformed.",
		StatusCode:  http.StatusUnauthorized,
	}
	ErrKeyNotFound = &Error{
		Code:        "invalid_header",
		Description: "Unable to find the appropriate key.",
		StatusCode:  http.StatusForbidden,
	}
	ErrTokenExpired = &Error{
		Code:        "token_expired",
		Description: "Token expired.",
		StatusCode:  http.StatusUnauthorized,
	}
	ErrInvalidClaims = &Error{
		Code:        "invalid_claims",
		Description: "Incorrect claims. Please, check the audience and issuer.",
		StatusCode:  http.StatusUnauthorized,
	}
	ErrUnparsableToken = &Error{
		Code:        "invalid_header",
		Description: "Unable to parse authentication token.",
		StatusCode:  http.StatusBadRequest,
	}
	ErrPermissionsMissing = &Error{
		Code:        "invalid_claims",
		Description: "Permissions not included in JWT.",
		StatusCode:  http.StatusBadRequest,
	}
	ErrPermissionDenied = &Error{
		Code:        "unauthorized",
		Description: "Permission not found.",
		StatusCode:  http.StatusForbidden,
	}
	ErrKeySetUnavailable = &Error{
		Code:        "jwks_unavailable",
		Description: "Unable to load the token signing keys.",
		StatusCode:  http.StatusServiceUnavailable,
	}
)
