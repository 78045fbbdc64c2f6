package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwk"

	"github.com/quyetcv1/coffee-shop/internal/logger"
	"github.com/quyetcv1/coffee-shop/internal/utils"
)

// minRefreshInterval limits refetches triggered by unknown key IDs.
const minRefreshInterval = 10 * time.Second

// KeySet is a cached JSON Web Key Set downloaded from the identity provider.
//
// The set is fetched lazily, reused for the configured TTL and refetched
// early when a token names a key the cached set does not contain (the
// provider rotated its keys). KeySet is safe for concurrent use.
type KeySet struct {
	url    string
	client *utils.HTTPClient
	ttl    time.Duration
	now    func() time.Time

	// fetchMu serializes downloads; mu guards the cached set.
	fetchMu   sync.Mutex
	mu        sync.RWMutex
	set       jwk.Set
	fetchedAt time.Time
}

// NewKeySet returns a KeySet reading from url. A non-positive ttl disables
// caching.
func NewKeySet(url string, client *utils.HTTPClient, ttl time.Duration) *KeySet {
	return &KeySet{
		url:    url,
		client: client,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Key returns the raw public key (e.g. *rsa.PublicKey) for kid.
//
// It returns [ErrKeyNotFound] when the provider does not publish kid and
// [ErrKeySetUnavailable] (wrapping the cause) when the set cannot be loaded.
func (k *KeySet) Key(ctx context.Context, kid string) (any, error) {
	set, fetchedAt := k.cached()

	var err error
	if set == nil || k.expired(fetchedAt) {
		if set, fetchedAt, err = k.refresh(ctx, fetchedAt); err != nil {
			return nil, err
		}
	}

	key, ok := set.LookupKeyID(kid)
	if !ok && k.now().Sub(fetchedAt) >= minRefreshInterval {
		// the provider may have rotated keys since the last download
		if set, _, err = k.refresh(ctx, fetchedAt); err != nil {
			return nil, err
		}
		key, ok = set.LookupKeyID(kid)
	}
	if !ok {
		return nil, ErrKeyNotFound
	}

	var raw any
	if err = key.Raw(&raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeyNotFound, err)
	}

	return raw, nil
}

// Refresh downloads the key set now. Callers waiting on a download already in
// progress share its result.
func (k *KeySet) Refresh(ctx context.Context) error {
	_, fetchedAt := k.cached()
	_, _, err := k.refresh(ctx, fetchedAt)
	return err
}

func (k *KeySet) cached() (jwk.Set, time.Time) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.set, k.fetchedAt
}

func (k *KeySet) expired(fetchedAt time.Time) bool {
	return k.ttl <= 0 || k.now().Sub(fetchedAt) >= k.ttl
}

// refresh downloads the set unless another caller already did so after
// seenAt.
func (k *KeySet) refresh(ctx context.Context, seenAt time.Time) (jwk.Set, time.Time, error) {
	k.fetchMu.Lock()
	defer k.fetchMu.Unlock()

	if set, fetchedAt := k.cached(); set != nil && fetchedAt.After(seenAt) {
		return set, fetchedAt, nil
	}

	log := logger.FromContext(ctx)

	resp, err := k.client.R().
		SetContext(ctx).
		Get(k.url)
	if err != nil {
		log.Err(err).Str("url", k.url).Msg("error downloading key set")
		return nil, time.Time{}, fmt.Errorf("%w: %w", ErrKeySetUnavailable, err)
	}
	if resp.IsError() {
		log.Error().Str("url", k.url).Int("status", resp.StatusCode()).Msg("key set request failed")
		return nil, time.Time{}, fmt.Errorf("%w: unexpected status %d", ErrKeySetUnavailable, resp.StatusCode())
	}

	set, err := jwk.Parse(resp.Body())
	if err != nil {
		log.Err(err).Str("url", k.url).Msg("error parsing key set")
		return nil, time.Time{}, fmt.Errorf("%w: %w", ErrKeySetUnavailable, err)
	}

	fetchedAt := k.now()

	k.mu.Lock()
	k.set = set
	k.fetchedAt = fetchedAt
	k.mu.Unlock()

	log.Debug().Str("url", k.url).Int("keys", set.Len()).Msg("key set refreshed")

	return set, fetchedAt, nil
}
