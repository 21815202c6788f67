// Package storage provides the narrow key-value capability the stores use
// for durable client-side state. Reads of missing or malformed values fall
// back to defaults instead of failing.
package storage

// KV is a namespaced key-value slot store.
type KV interface {
	// Get returns the raw value for key and whether it was present.
	Get(key string) ([]byte, bool)
	// Set stores value under key, replacing any previous value.
	Set(key string, value []byte) error
	// Remove deletes key. Removing an absent key is not an error.
	Remove(key string) error
}
