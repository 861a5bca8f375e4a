// Package fibheap implements a Fibonacci heap, a mergeable min-priority
// queue built from a forest of trees whose roots form a circular
// doubly-linked ring. Insert splices a singleton into the root list in O(1);
// ExtractMin promotes the minimum's children to the root list and then
// consolidates, repeatedly merging trees of equal degree so the root list
// stays O(log n), which yields the O(log n) amortized extraction bound.
//
// Nodes live in an arena and reference each other by index rather than by
// pointer, so splicing a node out of one circular ring and into another is a
// handful of index rewrites with no lifetime hazards.
//
// Key features:
//   - Generic over any priority and value type, ordered by a comparator
//   - O(1) insert and peek
//   - O(log n) amortized extract-min
//   - Structural iteration over all live values via iter.Seq
//
// Basic usage:
//
//	h := fibheap.New[int, string](func(a, b int) bool {
//	    return a < b
//	})
//
//	h.Insert(5, "write report")
//	h.Insert(2, "file taxes")
//	h.Insert(3, "buy groceries")
//
//	if v, ok := h.Peek(); ok {
//	    fmt.Println(v) // file taxes
//	}
//
//	for h.Len() > 0 {
//	    v, _ := h.ExtractMin()
//	    fmt.Println(v)
//	}
//
// The API is deliberately reduced: there is no decrease-key or arbitrary
// deletion, so priority changes are handled by rebuilding the heap from an
// authoritative source. Callers needing both an ordered index and a priority
// queue over one item set compose this package with skiplist, as the root
// skipheap package does.
package fibheap
