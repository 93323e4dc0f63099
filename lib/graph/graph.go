package graph

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/benz9527/xalgo/lib/kv"
)

var ErrVertexNotFound = errors.New("[graph] vertex not found")

// Graph is an adjacency list. The vertices and the neighbors of each
// vertex keep their insertion order, parallel edges and self loops
// are kept as given.
type Graph[T comparable] struct {
	directed bool
	adjList  kv.Dictionary[T, []T]
}

func NewGraph[T comparable](directed bool) *Graph[T] {
	return &Graph[T]{
		directed: directed,
		adjList:  kv.NewDictionary[T, []T](),
	}
}

func (g *Graph[T]) IsDirected() bool {
	return g.directed
}

// AddVertex returns false if the vertex exists.
func (g *Graph[T]) AddVertex(v T) bool {
	if g.adjList.HasKey(v) {
		return false
	}
	return g.adjList.Set(v, make([]T, 0, 4))
}

// AddEdge adds the missing vertices first. An undirected edge is
// stored in both neighbor lists.
func (g *Graph[T]) AddEdge(v, w T) {
	g.AddVertex(v)
	g.AddVertex(w)
	g.link(v, w)
	if !g.directed {
		g.link(w, v)
	}
}

func (g *Graph[T]) link(from, to T) {
	neighbors, _ := g.adjList.Get(from)
	g.adjList.Set(from, append(neighbors, to))
}

func (g *Graph[T]) HasVertex(v T) bool {
	return g.adjList.HasKey(v)
}

func (g *Graph[T]) Vertices() []T {
	return g.adjList.Keys()
}

func (g *Graph[T]) Len() int {
	return g.adjList.Len()
}

func (g *Graph[T]) Neighbors(v T) ([]T, error) {
	neighbors, exists := g.adjList.Get(v)
	if !exists {
		return nil, ErrVertexNotFound
	}
	return slices.Clone(neighbors), nil
}

// neighbors skips the copy for the searches.
func (g *Graph[T]) neighbors(v T) []T {
	neighbors, _ := g.adjList.Get(v)
	return neighbors
}

// String prints one "v -> n1 n2 " line per vertex.
func (g *Graph[T]) String() string {
	var builder strings.Builder
	g.adjList.ForEach(func(v T, neighbors []T) bool {
		builder.WriteString(fmt.Sprintf("%v -> ", v))
		for _, w := range neighbors {
			builder.WriteString(fmt.Sprintf("%v ", w))
		}
		builder.WriteByte('\n')
		return true
	})
	return builder.String()
}
