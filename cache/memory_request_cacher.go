package cache

import "sync"

// MemoryRequestCacher mirrors RedisRequestCacher for deployments without redis.
type MemoryRequestCacher struct {
	MaxNumber int

	mtx     sync.Mutex
	entries map[string][]string
}

func CreateMemoryCache(maxNumber int) *MemoryRequestCacher {
	return &MemoryRequestCacher{MaxNumber: maxNumber, entries: make(map[string][]string)}
}

func (cacher *MemoryRequestCacher) Write(key string, value []byte) error {
	cacher.mtx.Lock()
	defer cacher.mtx.Unlock()

	entries := append([]string{string(value)}, cacher.entries[key]...)
	if len(entries) > cacher.MaxNumber {
		entries = entries[:cacher.MaxNumber]
	}
	cacher.entries[key] = entries

	return nil
}

func (cacher *MemoryRequestCacher) Read(key string) ([]string, error) {
	cacher.mtx.Lock()
	defer cacher.mtx.Unlock()

	entries := make([]string, len(cacher.entries[key]))
	copy(entries, cacher.entries[key])

	return entries, nil
}
