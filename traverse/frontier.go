package traverse

import "container/heap"

// frontier is the container of pending expansions. Its removal order is
// the only thing that distinguishes the three strategies.
type frontier interface {
	push(s step)
	pop() step
	len() int
}

// newFrontier returns the container for s, sized with a capacity hint.
func newFrontier(s Strategy, hint int) (frontier, error) {
	switch s {
	case DepthFirst:
		st := make(stack, 0, hint)
		return &st, nil
	case BreadthFirst:
		return &queue{items: make([]step, 0, hint)}, nil
	case UniformCost:
		return &costHeap{pq: make(stepPQ, 0, hint)}, nil
	default:
		return nil, ErrUnknownStrategy
	}
}

// stack is a LIFO frontier.
type stack []step

func (s *stack) push(x step) { *s = append(*s, x) }

func (s *stack) pop() step {
	old := *s
	n := len(old)
	x := old[n-1]
	*s = old[:n-1]

	return x
}

func (s *stack) len() int { return len(*s) }

// queue is a FIFO frontier.
type queue struct {
	items []step
}

func (q *queue) push(x step) { q.items = append(q.items, x) }

func (q *queue) pop() step {
	x := q.items[0]
	q.items = q.items[1:]

	return x
}

func (q *queue) len() int { return len(q.items) }

// costHeap is a min-priority frontier keyed by push-time cost.
// Entries with equal cost come out in no particular order.
type costHeap struct {
	pq stepPQ
}

func (h *costHeap) push(x step) { heap.Push(&h.pq, x) }

func (h *costHeap) pop() step { return heap.Pop(&h.pq).(step) }

func (h *costHeap) len() int { return h.pq.Len() }

// stepPQ implements heap.Interface ordered by step.cost ascending.
type stepPQ []step

// Len returns the number of items in the heap.
func (pq stepPQ) Len() int { return len(pq) }

// Less orders cheaper entries first.
func (pq stepPQ) Less(i, j int) bool { return pq[i].cost < pq[j].cost }

// Swap swaps two elements in the heap.
func (pq stepPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends x; called by heap.Push.
func (pq *stepPQ) Push(x interface{}) { *pq = append(*pq, x.(step)) }

// Pop removes the last element; called by heap.Pop.
func (pq *stepPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
