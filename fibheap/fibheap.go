package fibheap

import (
	"iter"
)

// none marks an empty arena slot reference.
const none = -1

// Handle identifies a node returned by Insert. The reduced API has no
// operations that take a handle; it exists so callers can correlate inserts
// with later extensions.
type Handle int

// node is a single heap node. Siblings form a circular doubly-linked ring;
// a node with no siblings points at itself. All links are indices into the
// heap's arena, which keeps ring splicing free of ownership cycles.
type node[P, V any] struct {
	priority P
	value    V
	degree   int
	marked   bool
	parent   int
	child    int
	left     int
	right    int
}

// Heap is a mergeable min-priority structure built from circular sibling
// rings of trees. Insert is O(1); ExtractMin is O(log n) amortized via the
// post-extraction consolidation pass.
//
// The less function returns true if a is more urgent than b.
type Heap[P, V any] struct {
	nodes []node[P, V]
	free  []int
	min   int
	count int
	less  func(a, b P) bool
}

// New creates an empty Heap ordered by the given comparator.
func New[P, V any](less func(a, b P) bool) *Heap[P, V] {
	return &Heap[P, V]{
		min:  none,
		less: less,
	}
}

// Len returns the number of live nodes in the heap.
func (h *Heap[P, V]) Len() int {
	return h.count
}

// alloc places a singleton node in the arena, reusing a freed slot when one
// is available.
func (h *Heap[P, V]) alloc(priority P, value V) int {
	var i int
	if n := len(h.free); n > 0 {
		i = h.free[n-1]
		h.free = h.free[:n-1]
	} else {
		i = len(h.nodes)
		h.nodes = append(h.nodes, node[P, V]{})
	}

	h.nodes[i] = node[P, V]{
		priority: priority,
		value:    value,
		parent:   none,
		child:    none,
		left:     i,
		right:    i,
	}
	return i
}

// release clears a slot and returns it to the free list.
func (h *Heap[P, V]) release(i int) {
	var zero node[P, V]
	zero.parent, zero.child = none, none
	zero.left, zero.right = i, i
	h.nodes[i] = zero
	h.free = append(h.free, i)
}

// addNode splices node i into the ring to the right of root.
func (h *Heap[P, V]) addNode(i, root int) {
	r := h.nodes[root].right
	h.nodes[i].left = root
	h.nodes[i].right = r
	h.nodes[root].right = i
	h.nodes[r].left = i
}

// removeNode unlinks node i from its ring. The node's own left/right are
// left untouched.
func (h *Heap[P, V]) removeNode(i int) {
	l, r := h.nodes[i].left, h.nodes[i].right
	h.nodes[l].right = r
	h.nodes[r].left = l
}

// ring snapshots the members of the circular list containing start. Callers
// must iterate the snapshot, never the live ring, before re-linking.
func (h *Heap[P, V]) ring(start int) []int {
	members := []int{start}
	for i := h.nodes[start].right; i != start; i = h.nodes[i].right {
		members = append(members, i)
	}
	return members
}

// Insert adds a value to the heap and returns a handle for the new node.
func (h *Heap[P, V]) Insert(priority P, value V) Handle {
	i := h.alloc(priority, value)

	if h.min == none {
		h.min = i
	} else {
		h.addNode(i, h.min)
		if h.less(priority, h.nodes[h.min].priority) {
			h.min = i
		}
	}

	h.count++
	return Handle(i)
}

// Peek returns the most urgent value without removing it. The boolean is
// false when the heap is empty.
func (h *Heap[P, V]) Peek() (V, bool) {
	if h.min == none {
		var zero V
		return zero, false
	}
	return h.nodes[h.min].value, true
}

// ExtractMin removes and returns the most urgent value. The boolean is
// false when the heap is empty.
func (h *Heap[P, V]) ExtractMin() (V, bool) {
	if h.min == none {
		var zero V
		return zero, false
	}

	m := h.min

	// Promote the children of the minimum to the root list.
	if h.nodes[m].child != none {
		for _, c := range h.ring(h.nodes[m].child) {
			h.addNode(c, m)
			h.nodes[c].parent = none
		}
	}

	h.removeNode(m)

	if h.nodes[m].right == m {
		h.min = none
	} else {
		h.min = h.nodes[m].right
		h.consolidate()
	}

	h.count--

	value := h.nodes[m].value
	h.release(m)
	return value, true
}

// consolidate merges root trees of equal degree until every degree occurs at
// most once, then rebuilds the root list and min pointer from the survivors.
// This bounds the root list at O(log n) trees, which is what gives
// ExtractMin its amortized bound.
func (h *Heap[P, V]) consolidate() {
	// count still includes the node being extracted here.
	table := make([]int, h.count+1)
	for i := range table {
		table[i] = none
	}

	for _, i := range h.ring(h.min) {
		x := i
		degree := h.nodes[x].degree
		for table[degree] != none {
			other := table[degree]
			if h.less(h.nodes[other].priority, h.nodes[x].priority) {
				x, other = other, x
			}
			h.link(other, x)
			table[degree] = none
			degree++
			if degree >= len(table) {
				panic("fibheap: degree table overflow")
			}
		}
		table[degree] = x
	}

	h.min = none
	for _, i := range table {
		if i == none {
			continue
		}
		h.nodes[i].left, h.nodes[i].right = i, i
		if h.min == none {
			h.min = i
		} else {
			h.addNode(i, h.min)
			if h.less(h.nodes[i].priority, h.nodes[h.min].priority) {
				h.min = i
			}
		}
	}
}

// link detaches child from the root list and attaches it under parent.
func (h *Heap[P, V]) link(child, parent int) {
	h.removeNode(child)
	h.nodes[child].parent = parent

	if c := h.nodes[parent].child; c == none {
		h.nodes[parent].child = child
		h.nodes[child].left = child
		h.nodes[child].right = child
	} else {
		h.addNode(child, c)
	}

	h.nodes[parent].degree++
	h.nodes[child].marked = false
}

// All returns an iterator over every live value in the heap, visiting the
// root list and all descendants. Iteration order is structural, not sorted.
func (h *Heap[P, V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		if h.min == none {
			return
		}
		h.walk(h.min, yield)
	}
}

func (h *Heap[P, V]) walk(start int, yield func(V) bool) bool {
	for _, i := range h.ring(start) {
		if !yield(h.nodes[i].value) {
			return false
		}
		if c := h.nodes[i].child; c != none {
			if !h.walk(c, yield) {
				return false
			}
		}
	}
	return true
}

// roots returns the number of trees in the root list. Tests use it to
// observe the consolidation bound.
func (h *Heap[P, V]) roots() int {
	if h.min == none {
		return 0
	}
	return len(h.ring(h.min))
}
