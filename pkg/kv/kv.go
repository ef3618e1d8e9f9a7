package kv

// Store is the narrow key-value port the persisted stores write through.
// It mirrors browser local storage semantics: synchronous writes, a missing
// key reads as absent, and storage failures are logged by implementations
// rather than surfaced to callers.
type Store interface {
	// Get returns the raw value for key and whether it was present.
	Get(key string) ([]byte, bool)

	// Set writes the value for key, replacing any previous value.
	Set(key string, value []byte)

	// Remove deletes the key entirely. Removing an absent key is a no-op.
	Remove(key string)
}
