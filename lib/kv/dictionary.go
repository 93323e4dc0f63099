package kv

import (
	"fmt"
	"strings"
	"sync"

	"github.com/benz9527/xalgo/lib/list"
)

// Dictionary maps unique keys to values and keeps the keys in
// insertion order. Updating a key keeps its position.
type Dictionary[K comparable, V any] interface {
	// Set returns true if the key is new.
	Set(key K, val V) bool
	Get(key K) (V, bool)
	Remove(key K) (V, bool)
	HasKey(key K) bool
	Keys() []K
	Values() []V
	// ForEach stops when fn returns false.
	ForEach(fn func(key K, val V) bool)
	Len() int
	IsEmpty() bool
	Clear()
	// String formats as "k1:v1,k2:v2".
	String() string
}

type dictEntry[K comparable, V any] struct {
	val  V
	elem *list.NodeElement[K]
}

type dictionary[K comparable, V any] struct {
	lock  *sync.RWMutex
	items map[K]*dictEntry[K, V]
	order list.LinkedList[K]
}

type dictConfig struct {
	initCap    int
	threadSafe bool
}

type DictionaryOption func(*dictConfig)

func WithDictionaryInitCap(capacity int) DictionaryOption {
	return func(cfg *dictConfig) {
		if capacity <= 0 {
			capacity = 32
		}
		cfg.initCap = capacity
	}
}

// WithDictionaryThreadSafe guards every operation by a RWMutex.
// ForEach holds the read lock while calling fn.
func WithDictionaryThreadSafe() DictionaryOption {
	return func(cfg *dictConfig) {
		cfg.threadSafe = true
	}
}

func NewDictionary[K comparable, V any](opts ...DictionaryOption) Dictionary[K, V] {
	cfg := &dictConfig{initCap: 32}
	for _, o := range opts {
		if o != nil {
			o(cfg)
		}
	}
	d := &dictionary[K, V]{
		items: make(map[K]*dictEntry[K, V], cfg.initCap),
		order: list.NewLinkedList[K](),
	}
	if cfg.threadSafe {
		d.lock = &sync.RWMutex{}
	}
	return d
}

func (d *dictionary[K, V]) rlock() func() {
	if d.lock == nil {
		return func() {}
	}
	d.lock.RLock()
	return d.lock.RUnlock
}

func (d *dictionary[K, V]) wlock() func() {
	if d.lock == nil {
		return func() {}
	}
	d.lock.Lock()
	return d.lock.Unlock
}

func (d *dictionary[K, V]) Set(key K, val V) bool {
	defer d.wlock()()
	if e, exists := d.items[key]; exists {
		e.val = val
		return false
	}
	d.items[key] = &dictEntry[K, V]{
		val:  val,
		elem: d.order.PushBack(key),
	}
	return true
}

func (d *dictionary[K, V]) Get(key K) (val V, exists bool) {
	defer d.rlock()()
	e, exists := d.items[key]
	if !exists {
		return val, false
	}
	return e.val, true
}

func (d *dictionary[K, V]) Remove(key K) (val V, exists bool) {
	defer d.wlock()()
	e, exists := d.items[key]
	if !exists {
		return val, false
	}
	d.order.RemoveElement(e.elem)
	delete(d.items, key)
	return e.val, true
}

func (d *dictionary[K, V]) HasKey(key K) bool {
	defer d.rlock()()
	_, exists := d.items[key]
	return exists
}

func (d *dictionary[K, V]) Keys() []K {
	defer d.rlock()()
	keys := make([]K, 0, len(d.items))
	_ = d.order.Foreach(func(idx int64, key K) error {
		keys = append(keys, key)
		return nil
	})
	return keys
}

func (d *dictionary[K, V]) Values() []V {
	defer d.rlock()()
	values := make([]V, 0, len(d.items))
	_ = d.order.Foreach(func(idx int64, key K) error {
		values = append(values, d.items[key].val)
		return nil
	})
	return values
}

func (d *dictionary[K, V]) ForEach(fn func(key K, val V) bool) {
	if fn == nil {
		return
	}
	defer d.rlock()()
	for e := d.order.Front(); e != nil; e = e.Next() {
		if !fn(e.Value, d.items[e.Value].val) {
			return
		}
	}
}

func (d *dictionary[K, V]) Len() int {
	defer d.rlock()()
	return len(d.items)
}

func (d *dictionary[K, V]) IsEmpty() bool {
	return d.Len() == 0
}

func (d *dictionary[K, V]) Clear() {
	defer d.wlock()()
	d.items = make(map[K]*dictEntry[K, V], 32)
	d.order.Clear()
}

func (d *dictionary[K, V]) String() string {
	var builder strings.Builder
	d.ForEach(func(key K, val V) bool {
		if builder.Len() > 0 {
			builder.WriteByte(',')
		}
		builder.WriteString(fmt.Sprintf("%v:%v", key, val))
		return true
	})
	return builder.String()
}
