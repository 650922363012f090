package cache

// RequestCacher keeps the newest entries written under a key, newest first.
type RequestCacher interface {
	Write(key string, value []byte) error
	Read(key string) ([]string, error)
}
