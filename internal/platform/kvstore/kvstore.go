package kvstore

// Namespace is a flat key-value space holding one serialized value per
// logical key. It is the only durable surface of the portal: every
// collection, the session slot and the initialized flag live in it.
//
// Get returns (nil, false, nil) for an absent key. Storage failures are
// returned untranslated; callers treat them as fatal to the operation.
type Namespace interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Keys() ([]string, error)
	Close() error
}
