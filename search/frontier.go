package search

import "container/heap"

// Frontier holds paths that have been generated but not yet expanded.
type Frontier[S comparable, A any] interface {
	Push(node *Node[S, A])
	Pop() *Node[S, A]
	Len() int
}

// Stack pops the most recently pushed node first.
type Stack[S comparable, A any] struct {
	nodes []*Node[S, A]
}

func NewStack[S comparable, A any]() *Stack[S, A] {
	return &Stack[S, A]{}
}

func (s *Stack[S, A]) Push(node *Node[S, A]) {
	s.nodes = append(s.nodes, node)
}

func (s *Stack[S, A]) Pop() *Node[S, A] {
	if len(s.nodes) == 0 {
		panic("pop from empty stack")
	}
	last := len(s.nodes) - 1
	node := s.nodes[last]
	s.nodes[last] = nil
	s.nodes = s.nodes[:last]
	return node
}

func (s *Stack[S, A]) Len() int {
	return len(s.nodes)
}

// Queue pops the earliest pushed node first.
type Queue[S comparable, A any] struct {
	nodes []*Node[S, A]
	head  int
}

func NewQueue[S comparable, A any]() *Queue[S, A] {
	return &Queue[S, A]{}
}

func (q *Queue[S, A]) Push(node *Node[S, A]) {
	q.nodes = append(q.nodes, node)
}

func (q *Queue[S, A]) Pop() *Node[S, A] {
	if q.Len() == 0 {
		panic("pop from empty queue")
	}
	node := q.nodes[q.head]
	q.nodes[q.head] = nil
	q.head++
	// Reclaim the consumed prefix once it dominates the backing array
	if q.head > len(q.nodes)/2 {
		q.nodes = append([]*Node[S, A](nil), q.nodes[q.head:]...)
		q.head = 0
	}
	return node
}

func (q *Queue[S, A]) Len() int {
	return len(q.nodes) - q.head
}

// PriorityQueue pops the node with the lowest key first. Equal keys pop
// in insertion order.
type PriorityQueue[S comparable, A any] struct {
	key   func(*Node[S, A]) float64
	items entries[S, A]
	count int
}

func NewPriorityQueue[S comparable, A any](key func(*Node[S, A]) float64) *PriorityQueue[S, A] {
	return &PriorityQueue[S, A]{key: key}
}

func (pq *PriorityQueue[S, A]) Push(node *Node[S, A]) {
	heap.Push(&pq.items, entry[S, A]{node: node, priority: pq.key(node), seq: pq.count})
	pq.count++
}

func (pq *PriorityQueue[S, A]) Pop() *Node[S, A] {
	if pq.Len() == 0 {
		panic("pop from empty priority queue")
	}
	return heap.Pop(&pq.items).(entry[S, A]).node
}

func (pq *PriorityQueue[S, A]) Len() int {
	return len(pq.items)
}

type entry[S comparable, A any] struct {
	node     *Node[S, A]
	priority float64
	seq      int
}

// entries implements heap.Interface
type entries[S comparable, A any] []entry[S, A]

func (e entries[S, A]) Len() int { return len(e) }

func (e entries[S, A]) Less(i, j int) bool {
	if e[i].priority != e[j].priority {
		return e[i].priority < e[j].priority
	}
	return e[i].seq < e[j].seq
}

func (e entries[S, A]) Swap(i, j int) { e[i], e[j] = e[j], e[i] }

func (e *entries[S, A]) Push(x any) {
	*e = append(*e, x.(entry[S, A]))
}

func (e *entries[S, A]) Pop() any {
	old := *e
	n := len(old)
	item := old[n-1]
	old[n-1] = entry[S, A]{}
	*e = old[:n-1]
	return item
}
