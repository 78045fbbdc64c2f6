package auth

//go:generate mockgen -source=interfaces.go -destination=../mock/key_provider_mock.go -package=mock

import "context"

// KeyProvider resolves the public key for a token's "kid" header.
type KeyProvider interface {
	Key(ctx context.Context, kid string) (any, error)
}
