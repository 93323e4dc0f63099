package hashtable

import (
	"fmt"
	"math/bits"

	"github.com/cespare/xxhash/v2"

	"github.com/benz9527/xalgo/xlog"
)

// HashTable maps unique keys to values. It is not thread safe.
type HashTable[K comparable, V any] interface {
	// Put returns true if the key is new, an existing key gets
	// its value replaced.
	Put(key K, val V) bool
	Get(key K) (V, bool)
	Remove(key K) bool
	HasKey(key K) bool
	Len() int
	IsEmpty() bool
	Clear()
	// ForEach visits the pairs in slot order and stops when fn
	// returns false.
	ForEach(fn func(key K, val V) bool)
	Keys() []K
	// String prints one "<slot> => k1:v1,k2:v2" line per used slot.
	String() string
}

type HashFunc[K comparable] func(key K) uint64

// DefaultHash is xxhash over the formatted key.
func DefaultHash[K comparable](key K) uint64 {
	if s, ok := any(key).(string); ok {
		return xxhash.Sum64String(s)
	}
	return xxhash.Sum64String(fmt.Sprint(key))
}

// LoseLoseHash returns integer keys unchanged, any other key hashes
// to the sum of its runes modulo 37. Collisions are frequent, which
// makes it useful to exercise the collision handling.
func LoseLoseHash[K comparable](key K) uint64 {
	switch k := any(key).(type) {
	case int:
		return uint64(k)
	case int8:
		return uint64(k)
	case int16:
		return uint64(k)
	case int32:
		return uint64(k)
	case int64:
		return uint64(k)
	case uint:
		return uint64(k)
	case uint8:
		return uint64(k)
	case uint16:
		return uint64(k)
	case uint32:
		return uint64(k)
	case uint64:
		return k
	case uintptr:
		return uint64(k)
	}
	var hash uint64
	for _, r := range fmt.Sprint(key) {
		hash += uint64(r)
	}
	return hash % 37
}

type entry[K comparable, V any] struct {
	key  K
	val  V
	hash uint64
}

type hashTableConfig[K comparable] struct {
	hash    HashFunc[K]
	initCap int
	logger  xlog.XLogger
}

type HashTableOption[K comparable] func(*hashTableConfig[K])

func WithHashFunc[K comparable](fn HashFunc[K]) HashTableOption[K] {
	return func(cfg *hashTableConfig[K]) {
		if fn == nil {
			return
		}
		cfg.hash = fn
	}
}

// WithHashTableInitCap rounds the capacity up to a power of two.
func WithHashTableInitCap[K comparable](capacity int) HashTableOption[K] {
	return func(cfg *hashTableConfig[K]) {
		if capacity <= 0 {
			return
		}
		cfg.initCap = capacity
	}
}

// WithHashTableLogger logs every resize at debug level.
func WithHashTableLogger[K comparable](logger xlog.XLogger) HashTableOption[K] {
	return func(cfg *hashTableConfig[K]) {
		if logger == nil {
			return
		}
		cfg.logger = logger
	}
}

const defaultInitCap = 16

func newHashTableConfig[K comparable](name string, opts ...HashTableOption[K]) *hashTableConfig[K] {
	cfg := &hashTableConfig[K]{
		hash:    DefaultHash[K],
		initCap: defaultInitCap,
	}
	for _, o := range opts {
		if o != nil {
			o(cfg)
		}
	}
	cfg.initCap = roundUpPowerOfTwo(cfg.initCap)
	if cfg.logger != nil {
		cfg.logger = cfg.logger.Named(name)
	}
	return cfg
}

func roundUpPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}
