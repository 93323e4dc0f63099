package hashtable

import (
	"bytes"
	randv2 "math/rand/v2"
	"strconv"
	"sync"
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/stretchr/testify/require"

	"github.com/benz9527/xalgo/xlog"
)

type newTableFunc[K comparable, V any] func(opts ...HashTableOption[K]) HashTable[K, V]

func TestLoseLoseHash(t *testing.T) {
	testcases := []struct {
		name     string
		hash     uint64
		expected uint64
	}{
		{"Jonathan", LoseLoseHash("Jonathan"), 5},
		{"Jamie", LoseLoseHash("Jamie"), 5},
		{"Sue", LoseLoseHash("Sue"), 5},
		{"Aethelwulf", LoseLoseHash("Aethelwulf"), 5},
		{"Jack", LoseLoseHash("Jack"), 7},
		{"int", LoseLoseHash(10), 10},
		{"uint8", LoseLoseHash(uint8(255)), 255},
		{"empty", LoseLoseHash(""), 0},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(tt *testing.T) {
			require.Equal(tt, tc.expected, tc.hash)
		})
	}
	require.Equal(t, DefaultHash("abc"), DefaultHash("abc"))
	require.NotEqual(t, DefaultHash(1), DefaultHash(2))
}

func TestHashTable_Collisions(t *testing.T) {
	testcases := []struct {
		name          string
		newTable      newTableFunc[string, int]
		before, after string
	}{
		{
			name:     "separate chaining",
			newTable: NewSeparateChaining[string, int],
			before:   "5 => Jonathan:1,Jamie:2,Sue:3\n7 => Jack:4",
			after:    "5 => Jamie:2,Sue:3\n7 => Jack:4",
		},
		{
			name:     "linear probing",
			newTable: NewLinearProbing[string, int],
			before:   "5 => Jonathan:1\n6 => Jamie:2\n7 => Sue:3\n8 => Jack:4",
			after:    "5 => Jamie:2\n6 => Sue:3\n7 => Jack:4",
		},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(tt *testing.T) {
			ht := tc.newTable(
				WithHashFunc[string](LoseLoseHash[string]),
				WithHashTableInitCap[string](64),
			)
			require.True(tt, ht.IsEmpty())
			require.Equal(tt, "", ht.String())
			_, exists := ht.Get("Jamie")
			require.False(tt, exists)
			require.False(tt, ht.Remove("Jamie"))

			for i, name := range []string{"Jonathan", "Jamie", "Sue", "Jack"} {
				require.True(tt, ht.Put(name, i+1))
			}
			require.Equal(tt, 4, ht.Len())
			require.Equal(tt, tc.before, ht.String())
			for i, name := range []string{"Jonathan", "Jamie", "Sue", "Jack"} {
				v, exists := ht.Get(name)
				require.True(tt, exists)
				require.Equal(tt, i+1, v)
			}

			require.False(tt, ht.Put("Sue", 3))
			require.Equal(tt, 4, ht.Len())
			require.True(tt, ht.Remove("Jonathan"))
			require.False(tt, ht.HasKey("Jonathan"))
			require.Equal(tt, tc.after, ht.String())
			require.True(tt, ht.HasKey("Sue"))

			keys := make([]string, 0, 3)
			ht.ForEach(func(key string, _ int) bool {
				keys = append(keys, key)
				return len(keys) < 2
			})
			require.Len(tt, keys, 2)
			ht.ForEach(nil)
			require.ElementsMatch(tt, []string{"Jamie", "Sue", "Jack"}, ht.Keys())

			ht.Clear()
			require.True(tt, ht.IsEmpty())
			require.Empty(tt, ht.Keys())
		})
	}
}

func TestHashTable_RandomWithConcurrentMaps(t *testing.T) {
	testcases := []struct {
		name     string
		newTable newTableFunc[int, int]
		hash     HashFunc[int]
	}{
		{"separate chaining xxhash", NewSeparateChaining[int, int], DefaultHash[int]},
		{"separate chaining loselose", NewSeparateChaining[int, int], func(key int) uint64 {
			return LoseLoseHash(strconv.Itoa(key))
		}},
		{"linear probing xxhash", NewLinearProbing[int, int], DefaultHash[int]},
		{"linear probing loselose", NewLinearProbing[int, int], func(key int) uint64 {
			return LoseLoseHash(strconv.Itoa(key))
		}},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(tt *testing.T) {
			ht := tc.newTable(WithHashFunc[int](tc.hash), WithHashTableInitCap[int](1))
			hax := haxmap.New[int, int]()
			cmap := hashmap.New[int, int]()
			for i := 0; i < 5000; i++ {
				key, val := randv2.IntN(700)-100, randv2.Int()
				if randv2.IntN(3) > 0 {
					_, exists := cmap.Get(key)
					require.Equal(tt, !exists, ht.Put(key, val))
					hax.Set(key, val)
					cmap.Set(key, val)
				} else {
					require.Equal(tt, cmap.Del(key), ht.Remove(key))
					hax.Del(key)
				}
				require.Equal(tt, cmap.Len(), ht.Len())
				require.Equal(tt, int(hax.Len()), ht.Len())
			}
			for key := -100; key < 600; key++ {
				expected, exists := hax.Get(key)
				v, ok := ht.Get(key)
				require.Equal(tt, exists, ok)
				require.Equal(tt, expected, v)
			}
			for _, key := range ht.Keys() {
				_, exists := cmap.Get(key)
				require.True(tt, exists)
			}
		})
	}
}

type syncBuffer struct {
	lock sync.Mutex
	buf  bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.lock.Lock()
	defer b.lock.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.lock.Lock()
	defer b.lock.Unlock()
	return b.buf.String()
}

func TestHashTable_ResizeLogger(t *testing.T) {
	w := &syncBuffer{}
	logger := xlog.NewXLogger(
		xlog.WithXLoggerWriter(w),
		xlog.WithXLoggerEncoder(xlog.JSON),
		xlog.WithXLoggerLevel(xlog.LogLevelDebug),
	)

	chaining := NewSeparateChaining[int, string](
		WithHashTableInitCap[int](4),
		WithHashTableLogger[int](logger),
	)
	probing := NewLinearProbing[int, string](
		WithHashTableInitCap[int](3),
		WithHashTableLogger[int](logger),
	)
	for i := 0; i < 4; i++ {
		chaining.Put(i, strconv.Itoa(i))
		probing.Put(i, strconv.Itoa(i))
	}
	require.NoError(t, logger.Sync())

	out := w.String()
	require.Contains(t, out, `"component":"chaining"`)
	require.Contains(t, out, `"component":"linear_probing"`)
	require.Contains(t, out, `"msg":"resize"`)
	require.Contains(t, out, `"from":4,"to":8`)

	require.NotPanics(t, func() {
		NewLinearProbing[int, int](WithHashTableLogger[int](nil), WithHashFunc[int](nil)).Put(1, 1)
	})
}
