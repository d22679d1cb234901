// Package store provides the persistent key-value store for client
// state: tokens, the cached user snapshot and UI preferences. Values are
// read and written whole; last write wins.
package store

import "encoding/json"

// Keys for everything the client persists.
const (
	KeyAuthToken          = "auth_token"
	KeyRefreshToken       = "refresh_token"
	KeyUser               = "user"
	KeyOnboardingComplete = "onboarding_complete"
	KeyLanguage           = "language"
	KeyTheme              = "theme"
)

// Store is a whole-value key-value store.
type Store interface {
	// Get returns the stored value and whether the key exists.
	Get(key string) (string, bool)
	// Set stores a value, replacing any previous one.
	Set(key, value string) error
	// Delete removes a key. Deleting a missing key is not an error.
	Delete(key string) error
}

// GetObject reads a JSON-serialized value into v. Returns false when the
// key is absent or the stored value does not parse.
func GetObject[T any](s Store, key string, v *T) bool {
	raw, ok := s.Get(key)
	if !ok {
		return false
	}
	return json.Unmarshal([]byte(raw), v) == nil
}

// SetObject stores v JSON-serialized.
func SetObject[T any](s Store, key string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Set(key, string(raw))
}
