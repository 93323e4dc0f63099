package graph

import (
	"github.com/benz9527/xalgo/lib/queue"
	"github.com/benz9527/xalgo/lib/stack"
)

type vertexColor uint8

const (
	white vertexColor = iota // undiscovered
	grey                     // discovered, neighbors pending
	black                    // explored
)

func initColors[T comparable](vertices []T) map[T]vertexColor {
	colors := make(map[T]vertexColor, len(vertices))
	for _, v := range vertices {
		colors[v] = white
	}
	return colors
}

type BFSResult[T comparable] struct {
	Source T
	// Distances holds the edge count from the source of every
	// reachable vertex.
	Distances map[T]int
	// Predecessors has no entry for the source.
	Predecessors map[T]T
}

// PathTo returns the vertices from the source to the target along the
// BFS tree, which is a shortest path in an unweighted graph. It returns
// nil if the target is unreachable.
func (r *BFSResult[T]) PathTo(target T) []T {
	if _, reachable := r.Distances[target]; !reachable {
		return nil
	}
	s := stack.NewArrayStack[T]()
	for v, ok := target, true; ok; v, ok = r.Predecessors[v] {
		s.Push(v)
	}
	path := make([]T, 0, s.Len())
	for v, ok := s.Pop(); ok; v, ok = s.Pop() {
		path = append(path, v)
	}
	return path
}

// BreadthFirstSearch visits the vertices reachable from the source
// level by level. The visit callback runs once per vertex after its
// neighbors are queued and may be nil.
func BreadthFirstSearch[T comparable](g *Graph[T], source T, visit func(v T)) (*BFSResult[T], error) {
	if !g.HasVertex(source) {
		return nil, ErrVertexNotFound
	}

	colors := initColors(g.Vertices())
	res := &BFSResult[T]{
		Source:       source,
		Distances:    map[T]int{source: 0},
		Predecessors: make(map[T]T, g.Len()),
	}
	q := queue.NewQueue[T]()
	q.Enqueue(source)
	colors[source] = grey
	for u, ok := q.Dequeue(); ok; u, ok = q.Dequeue() {
		for _, w := range g.neighbors(u) {
			if colors[w] != white {
				continue
			}
			colors[w] = grey
			res.Distances[w] = res.Distances[u] + 1
			res.Predecessors[w] = u
			q.Enqueue(w)
		}
		colors[u] = black
		if visit != nil {
			visit(u)
		}
	}
	return res, nil
}

type DFSResult[T comparable] struct {
	// Discovery and Finished share one clock that ticks on every
	// discovery and every finish, starting from 1.
	Discovery map[T]int
	Finished  map[T]int
	// Predecessors has no entry for the root of each DFS tree.
	Predecessors map[T]T
}

type dfsFrame[T comparable] struct {
	vertex T
	next   int
}

// DepthFirstSearch walks every vertex in insertion order, starting a
// new DFS tree from each undiscovered one. The visit callback runs on
// discovery and may be nil.
func DepthFirstSearch[T comparable](g *Graph[T], visit func(v T)) *DFSResult[T] {
	vertices := g.Vertices()
	colors := initColors(vertices)
	res := &DFSResult[T]{
		Discovery:    make(map[T]int, len(vertices)),
		Finished:     make(map[T]int, len(vertices)),
		Predecessors: make(map[T]T, len(vertices)),
	}
	clock := 0
	frames := stack.NewArrayStack[*dfsFrame[T]]()
	discover := func(v T) {
		colors[v] = grey
		clock++
		res.Discovery[v] = clock
		if visit != nil {
			visit(v)
		}
		frames.Push(&dfsFrame[T]{vertex: v})
	}

	for _, root := range vertices {
		if colors[root] != white {
			continue
		}
		discover(root)
		for top, ok := frames.Peek(); ok; top, ok = frames.Peek() {
			neighbors := g.neighbors(top.vertex)
			if top.next < len(neighbors) {
				w := neighbors[top.next]
				top.next++
				if colors[w] == white {
					res.Predecessors[w] = top.vertex
					discover(w)
				}
				continue
			}
			_, _ = frames.Pop()
			colors[top.vertex] = black
			clock++
			res.Finished[top.vertex] = clock
		}
	}
	return res
}
