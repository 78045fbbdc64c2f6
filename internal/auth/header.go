package auth

import "strings"

// TokenFromHeader extracts the token from an "Authorization" header value of
// the form "Bearer <token>". The scheme is matched case-insensitively.
func TokenFromHeader(header string) (string, error) {
	parts := strings.Fields(header)

	switch {
	case len(parts) == 0:
		return "", ErrHeaderMissing
	case !strings.EqualFold(parts[0], "bearer"):
		return "", ErrHeaderNotBearer
	case len(parts) == 1:
		return "", ErrTokenNotFound
	case len(parts) > 2:
		return "", ErrHeaderMalformed
	}

	return parts[1], nil
}
