package hashtable

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/benz9527/xalgo/lib/list"
)

// separateChaining resolves collisions by a singly linked list per
// slot and doubles the slots once the load factor exceeds 0.75.
type separateChaining[K comparable, V any] struct {
	cfg     *hashTableConfig[K]
	buckets []list.IndexedLinkedList[*entry[K, V]]
	count   int
}

func NewSeparateChaining[K comparable, V any](opts ...HashTableOption[K]) HashTable[K, V] {
	cfg := newHashTableConfig[K]("chaining", opts...)
	return &separateChaining[K, V]{
		cfg:     cfg,
		buckets: make([]list.IndexedLinkedList[*entry[K, V]], cfg.initCap),
	}
}

func newBucket[K comparable, V any]() list.IndexedLinkedList[*entry[K, V]] {
	return list.NewSinglyLinkedListFunc[*entry[K, V]](func(a, b *entry[K, V]) bool {
		return a.key == b.key
	})
}

func (t *separateChaining[K, V]) slotOf(hash uint64) int {
	return int(hash & uint64(len(t.buckets)-1))
}

func (t *separateChaining[K, V]) find(key K, hash uint64) (*entry[K, V], bool) {
	b := t.buckets[t.slotOf(hash)]
	if b == nil {
		return nil, false
	}
	return b.FindFirst(func(e *entry[K, V]) bool {
		return e.key == key
	})
}

func (t *separateChaining[K, V]) Put(key K, val V) bool {
	hash := t.cfg.hash(key)
	if e, exists := t.find(key, hash); exists {
		e.val = val
		return false
	}
	if t.count+1 > len(t.buckets)-len(t.buckets)>>2 {
		t.resize(len(t.buckets) << 1)
	}
	t.push(&entry[K, V]{key: key, val: val, hash: hash})
	t.count++
	return true
}

func (t *separateChaining[K, V]) push(e *entry[K, V]) {
	slot := t.slotOf(e.hash)
	if t.buckets[slot] == nil {
		t.buckets[slot] = newBucket[K, V]()
	}
	t.buckets[slot].Push(e)
}

func (t *separateChaining[K, V]) resize(capacity int) {
	if t.cfg.logger != nil {
		t.cfg.logger.Debug("resize",
			zap.Int("from", len(t.buckets)),
			zap.Int("to", capacity),
			zap.Int("count", t.count),
		)
	}
	prev := t.buckets
	t.buckets = make([]list.IndexedLinkedList[*entry[K, V]], capacity)
	for _, b := range prev {
		if b == nil {
			continue
		}
		_ = b.Foreach(func(idx int64, e *entry[K, V]) error {
			t.push(e)
			return nil
		})
	}
}

func (t *separateChaining[K, V]) Get(key K) (val V, exists bool) {
	e, exists := t.find(key, t.cfg.hash(key))
	if !exists {
		return val, false
	}
	return e.val, true
}

func (t *separateChaining[K, V]) Remove(key K) bool {
	slot := t.slotOf(t.cfg.hash(key))
	b := t.buckets[slot]
	if b == nil {
		return false
	}
	if _, removed := b.Remove(&entry[K, V]{key: key}); !removed {
		return false
	}
	if b.IsEmpty() {
		t.buckets[slot] = nil
	}
	t.count--
	return true
}

func (t *separateChaining[K, V]) HasKey(key K) bool {
	_, exists := t.find(key, t.cfg.hash(key))
	return exists
}

func (t *separateChaining[K, V]) Len() int {
	return t.count
}

func (t *separateChaining[K, V]) IsEmpty() bool {
	return t.count == 0
}

func (t *separateChaining[K, V]) Clear() {
	t.buckets = make([]list.IndexedLinkedList[*entry[K, V]], t.cfg.initCap)
	t.count = 0
}

var errStopForEach = errors.New("[hashtable] stop for each")

func (t *separateChaining[K, V]) ForEach(fn func(key K, val V) bool) {
	if fn == nil {
		return
	}
	for _, b := range t.buckets {
		if b == nil {
			continue
		}
		err := b.Foreach(func(idx int64, e *entry[K, V]) error {
			if !fn(e.key, e.val) {
				return errStopForEach
			}
			return nil
		})
		if err != nil {
			return
		}
	}
}

func (t *separateChaining[K, V]) Keys() []K {
	keys := make([]K, 0, t.count)
	t.ForEach(func(key K, _ V) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

func (t *separateChaining[K, V]) String() string {
	lines := make([]string, 0, t.count)
	for slot, b := range t.buckets {
		if b == nil {
			continue
		}
		pairs := make([]string, 0, b.Len())
		_ = b.Foreach(func(idx int64, e *entry[K, V]) error {
			pairs = append(pairs, fmt.Sprintf("%v:%v", e.key, e.val))
			return nil
		})
		lines = append(lines, fmt.Sprintf("%d => %s", slot, strings.Join(pairs, ",")))
	}
	return strings.Join(lines, "\n")
}
