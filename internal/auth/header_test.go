package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenFromHeader_TableTest(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{name: "valid Bearer token", header: "Bearer my-jwt-token", wantToken: "my-jwt-token"},
		{name: "lower-case scheme", header: "bearer my-jwt-token", wantToken: "my-jwt-token"},
		{name: "surrounding whitespace", header: "  Bearer   tok  ", wantToken: "tok"},
		{name: "empty header", header: "", wantErr: ErrHeaderMissing},
		{name: "only spaces", header: "   ", wantErr: ErrHeaderMissing},
		{name: "non-Bearer scheme", header: "Basic dXNlcjpwYXNz", wantErr: ErrHeaderNotBearer},
		{name: "missing token part", header: "Bearer", wantErr: ErrTokenNotFound},
		{name: "extra parts", header: "Bearer token extra-part", wantErr: ErrHeaderMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := TokenFromHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestError_Message(t *testing.T) {
	assert.Equal(t, "token_expired: Token expired.", ErrTokenExpired.Error())
	assert.Equal(t, 403, ErrPermissionDenied.StatusCode)
	assert.Equal(t, 400, ErrPermissionsMissing.StatusCode)
}
