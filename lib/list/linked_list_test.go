package list

import (
	"container/list"
	"errors"
	randv2 "math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkWithStdList[T comparable](t *testing.T, dlist LinkedList[T], dlist2 *list.List) {
	t.Helper()
	require.Equal(t, int64(dlist2.Len()), dlist.Len())
	dlistItr := dlist.Front()
	dlist2Itr := dlist2.Front()
	for dlist2Itr != nil {
		require.NotNil(t, dlistItr)
		require.Equal(t, dlist2Itr.Value, dlistItr.Value)
		dlist2Itr = dlist2Itr.Next()
		dlistItr = dlistItr.Next()
	}
	require.Nil(t, dlistItr)

	dlistItr = dlist.Back()
	dlist2Itr = dlist2.Back()
	for dlist2Itr != nil {
		require.Equal(t, dlist2Itr.Value, dlistItr.Value)
		dlist2Itr = dlist2Itr.Prev()
		dlistItr = dlistItr.Prev()
	}
	require.Nil(t, dlistItr)
}

func TestLinkedList_AppendValue(t *testing.T) {
	dlist := NewLinkedList[int]()
	elements := dlist.AppendValue(1, 2, 3, 4, 5)
	assert.Equal(t, 5, len(elements))
	require.Nil(t, dlist.AppendValue())

	dlist2 := list.New()
	for i := 1; i <= 5; i++ {
		dlist2.PushBack(i)
	}
	checkWithStdList[int](t, dlist, dlist2)
	require.Equal(t, "1,2,3,4,5", dlist.String())
	require.Equal(t, "5,4,3,2,1", dlist.ReverseString())
}

func TestDoublyLinkedList_InsertBeforeAndAfter(t *testing.T) {
	dlist := NewLinkedList[int]()
	elements := dlist.AppendValue(1)
	_2n := dlist.InsertBefore(2, elements[0])
	_3n := dlist.InsertAfter(3, _2n)
	dlist.InsertBefore(4, _3n)
	dlist.InsertAfter(5, elements[0])

	dlist2 := list.New()
	_1n_2 := dlist2.PushBack(1)
	_2n_2 := dlist2.InsertBefore(2, _1n_2)
	_3n_2 := dlist2.InsertAfter(3, _2n_2)
	dlist2.InsertBefore(4, _3n_2)
	dlist2.InsertAfter(5, _1n_2)
	checkWithStdList[int](t, dlist, dlist2)

	other := NewLinkedList[int]()
	foreign := other.PushBack(100)
	require.Nil(t, dlist.InsertBefore(6, foreign))
	require.Nil(t, dlist.InsertAfter(6, foreign))
	require.Nil(t, dlist.InsertAfter(6, nil))
	require.Equal(t, int64(5), dlist.Len())
}

func TestDoublyLinkedList_IndexOperations(t *testing.T) {
	dlist := NewLinkedList[int]()
	_, ok := dlist.GetAt(1)
	require.False(t, ok)
	_, ok = dlist.RemoveAt(0)
	require.False(t, ok)

	// empty list
	require.False(t, dlist.Insert(1, 1))
	require.True(t, dlist.Insert(1, 0))
	require.Equal(t, 1, dlist.Front().Value)
	require.Equal(t, 1, dlist.Back().Value)
	dlist.Clear()
	require.Nil(t, dlist.Front())
	require.Nil(t, dlist.Back())

	dlist.AppendValue(2, 3, 4)
	// [1,2,3,4]
	require.True(t, dlist.Insert(1, 0))
	require.Equal(t, 1, dlist.Front().Value)
	require.Equal(t, dlist.ElementAt(1), dlist.Front().Next())
	require.Equal(t, dlist.Front(), dlist.ElementAt(1).Prev())
	// [1,2,3,4,5]
	require.True(t, dlist.Insert(5, 4))
	require.Equal(t, dlist.Back(), dlist.ElementAt(4))
	require.Nil(t, dlist.Back().Next())
	// [1,2,4,5]
	v, ok := dlist.RemoveAt(2)
	require.True(t, ok)
	require.Equal(t, 3, v)
	// [1,2,3,4,5]
	require.True(t, dlist.Insert(3, 2))
	require.Equal(t, dlist.ElementAt(1), dlist.ElementAt(2).Prev())
	require.Equal(t, dlist.ElementAt(3), dlist.ElementAt(2).Next())
	require.Equal(t, "1,2,3,4,5", dlist.String())

	// remove from start, end and middle
	_, ok = dlist.RemoveAt(5)
	require.False(t, ok)
	v, _ = dlist.RemoveAt(0)
	require.Equal(t, 1, v)
	require.Nil(t, dlist.Front().Prev())
	v, _ = dlist.RemoveAt(3)
	require.Equal(t, 5, v)
	require.Nil(t, dlist.Back().Next())
	v, _ = dlist.RemoveAt(1)
	require.Equal(t, 3, v)
	require.Equal(t, "2,4", dlist.String())
	require.Equal(t, "4,2", dlist.ReverseString())

	for i := int64(0); i < dlist.Len(); i++ {
		v, ok := dlist.GetAt(i)
		require.True(t, ok)
		require.Equal(t, dlist.ElementAt(i).Value, v)
	}
	require.Equal(t, int64(1), dlist.IndexOf(4))
	require.Equal(t, int64(-1), dlist.IndexOf(5))
	v, ok = dlist.Remove(2)
	require.True(t, ok)
	require.Equal(t, 2, v)
	_, ok = dlist.Remove(2)
	require.False(t, ok)
}

func TestDoublyLinkedList_RemoveElementAndMove(t *testing.T) {
	dlist := NewLinkedList[int]()
	dlist2 := list.New()
	elements := dlist.AppendValue(1, 2, 3, 4, 5)
	stdElements := make([]*list.Element, 0, 5)
	for i := 1; i <= 5; i++ {
		stdElements = append(stdElements, dlist2.PushBack(i))
	}

	require.True(t, dlist.MoveToFront(elements[2]))
	dlist2.MoveToFront(stdElements[2])
	checkWithStdList[int](t, dlist, dlist2)
	require.False(t, dlist.MoveToFront(elements[2]))

	require.True(t, dlist.MoveToBack(elements[0]))
	dlist2.MoveToBack(stdElements[0])
	checkWithStdList[int](t, dlist, dlist2)
	require.False(t, dlist.MoveToBack(elements[0]))

	removed := dlist.RemoveElement(elements[3])
	dlist2.Remove(stdElements[3])
	require.Equal(t, elements[3], removed)
	require.False(t, removed.HasNext())
	require.False(t, removed.HasPrev())
	checkWithStdList[int](t, dlist, dlist2)
	require.Nil(t, dlist.RemoveElement(removed))
	require.False(t, dlist.MoveToFront(removed))

	// Removing while iterating.
	err := dlist.Foreach(func(idx int64, v int) error {
		if v%2 == 0 {
			dlist.Remove(v)
		}
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, "3,5,1", dlist.String())

	dlist.Clear()
	require.True(t, dlist.IsEmpty())
	require.False(t, elements[0].HasNext())
	require.Equal(t, "", dlist.String())
}

func TestDoublyLinkedList_Foreach(t *testing.T) {
	dlist := NewLinkedList[int]()
	require.NoError(t, dlist.Foreach(func(idx int64, v int) error {
		return errors.New("unreachable")
	}))

	dlist.AppendValue(1, 2, 3, 4)
	stop := errors.New("stop")
	visited := make([]int, 0, 4)
	err := dlist.Foreach(func(idx int64, v int) error {
		if idx == 2 {
			return stop
		}
		visited = append(visited, v)
		return nil
	})
	require.ErrorIs(t, err, stop)
	require.Equal(t, []int{1, 2}, visited)

	reversed := make([]int, 0, 4)
	dlist.ReverseForeach(func(idx int64, e *NodeElement[int]) {
		reversed = append(reversed, e.Value)
	})
	require.Equal(t, []int{4, 3, 2, 1}, reversed)

	v, ok := dlist.FindFirst(func(v int) bool { return v > 2 })
	require.True(t, ok)
	require.Equal(t, 3, v)
	_, ok = dlist.FindFirst(func(v int) bool { return v > 4 })
	require.False(t, ok)
}

func TestDoublyLinkedList_RandomWithStdList(t *testing.T) {
	dlist := NewLinkedList[int]()
	dlist2 := list.New()
	for i := 0; i < 2000; i++ {
		v := randv2.IntN(100)
		switch randv2.IntN(4) {
		case 0:
			dlist.PushFront(v)
			dlist2.PushFront(v)
		case 1:
			dlist.PushBack(v)
			dlist2.PushBack(v)
		case 2:
			idx := dlist.IndexOf(v)
			if idx < 0 {
				continue
			}
			_, ok := dlist.RemoveAt(idx)
			require.True(t, ok)
			for e := dlist2.Front(); e != nil; e = e.Next() {
				if e.Value.(int) == v {
					dlist2.Remove(e)
					break
				}
			}
		case 3:
			if dlist.Len() == 0 {
				continue
			}
			idx := randv2.Int64N(dlist.Len())
			require.True(t, dlist.Insert(v, idx))
			e := dlist2.Front()
			for j := int64(0); j < idx; j++ {
				e = e.Next()
			}
			dlist2.InsertBefore(v, e)
		}
	}
	checkWithStdList[int](t, dlist, dlist2)
}
