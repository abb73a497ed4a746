package kvstore

import "fmt"

// Store is a per-user JSON key-value store. Values are marshalled to JSON on
// Put and decoded into out on Get.
type Store interface {
	// Get loads the value under key into out. The bool is false when the key
	// has never been written.
	Get(key string, out any) (bool, error)
	Put(key string, value any) error
	Delete(key string) error
}

// StorageError wraps an underlying persistence failure. Callers must surface
// it, never treat it as "no value" / "zero balance".
type StorageError struct {
	Op  string
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("kvstore: %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
