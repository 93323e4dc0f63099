package hashtable

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// linearProbing is open addressing over a single slot array. A collided
// pair goes to the next free slot. Removing a pair shifts the
// following pairs of the same cluster backwards, so no tombstone is
// needed. The slots double once they are half used.
type linearProbing[K comparable, V any] struct {
	cfg   *hashTableConfig[K]
	slots []*entry[K, V]
	count int
}

func NewLinearProbing[K comparable, V any](opts ...HashTableOption[K]) HashTable[K, V] {
	cfg := newHashTableConfig[K]("linear_probing", opts...)
	return &linearProbing[K, V]{
		cfg:   cfg,
		slots: make([]*entry[K, V], cfg.initCap),
	}
}

func (t *linearProbing[K, V]) mask() int {
	return len(t.slots) - 1
}

func (t *linearProbing[K, V]) slotOf(hash uint64) int {
	return int(hash & uint64(t.mask()))
}

// lookup returns the slot of the key, or the free slot that ends its
// cluster.
func (t *linearProbing[K, V]) lookup(key K, hash uint64) (int, bool) {
	i := t.slotOf(hash)
	for {
		e := t.slots[i]
		if e == nil {
			return i, false
		}
		if e.hash == hash && e.key == key {
			return i, true
		}
		i = (i + 1) & t.mask()
	}
}

func (t *linearProbing[K, V]) Put(key K, val V) bool {
	hash := t.cfg.hash(key)
	i, exists := t.lookup(key, hash)
	if exists {
		t.slots[i].val = val
		return false
	}
	if (t.count+1)<<1 > len(t.slots) {
		t.resize(len(t.slots) << 1)
		i, _ = t.lookup(key, hash)
	}
	t.slots[i] = &entry[K, V]{key: key, val: val, hash: hash}
	t.count++
	return true
}

func (t *linearProbing[K, V]) resize(capacity int) {
	if t.cfg.logger != nil {
		t.cfg.logger.Debug("resize",
			zap.Int("from", len(t.slots)),
			zap.Int("to", capacity),
			zap.Int("count", t.count),
		)
	}
	prev := t.slots
	t.slots = make([]*entry[K, V], capacity)
	for _, e := range prev {
		if e == nil {
			continue
		}
		i, _ := t.lookup(e.key, e.hash)
		t.slots[i] = e
	}
}

func (t *linearProbing[K, V]) Get(key K) (val V, exists bool) {
	i, exists := t.lookup(key, t.cfg.hash(key))
	if !exists {
		return val, false
	}
	return t.slots[i].val, true
}

func (t *linearProbing[K, V]) Remove(key K) bool {
	i, exists := t.lookup(key, t.cfg.hash(key))
	if !exists {
		return false
	}
	t.slots[i] = nil
	t.count--

	// i is the hole, j walks the rest of the cluster. A pair moves into
	// the hole unless its home slot lies cyclically in (i, j].
	for j := (i + 1) & t.mask(); t.slots[j] != nil; j = (j + 1) & t.mask() {
		home := t.slotOf(t.slots[j].hash)
		if i <= j {
			if i < home && home <= j {
				continue
			}
		} else if i < home || home <= j {
			continue
		}
		t.slots[i], t.slots[j] = t.slots[j], nil
		i = j
	}
	return true
}

func (t *linearProbing[K, V]) HasKey(key K) bool {
	_, exists := t.lookup(key, t.cfg.hash(key))
	return exists
}

func (t *linearProbing[K, V]) Len() int {
	return t.count
}

func (t *linearProbing[K, V]) IsEmpty() bool {
	return t.count == 0
}

func (t *linearProbing[K, V]) Clear() {
	t.slots = make([]*entry[K, V], t.cfg.initCap)
	t.count = 0
}

func (t *linearProbing[K, V]) ForEach(fn func(key K, val V) bool) {
	if fn == nil {
		return
	}
	for _, e := range t.slots {
		if e == nil {
			continue
		}
		if !fn(e.key, e.val) {
			return
		}
	}
}

func (t *linearProbing[K, V]) Keys() []K {
	keys := make([]K, 0, t.count)
	t.ForEach(func(key K, _ V) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

func (t *linearProbing[K, V]) String() string {
	lines := make([]string, 0, t.count)
	for slot, e := range t.slots {
		if e == nil {
			continue
		}
		lines = append(lines, fmt.Sprintf("%d => %v:%v", slot, e.key, e.val))
	}
	return strings.Join(lines, "\n")
}
