// Package skiplist implements a probabilistically balanced ordered map. A
// skip list layers sparse forward pointers over a sorted linked list: level 0
// links every node, and each higher level links a geometrically thinning
// subset, so a search can skip long runs of the base chain before descending.
//
// Each node's tower height is drawn independently at insertion time from a
// geometric distribution (promotion probability 1/2 by default, capped at a
// configured maximum level). A node present at level i is present at every
// level below i. There is no rebalancing beyond the random draw.
//
// Key features:
//   - Generic over cmp.Ordered keys and any value type
//   - O(log n) expected search, insert and delete
//   - Lazy in-order traversal via iter.Seq2
//   - Configurable maximum level, promotion probability and random source
//
// Basic usage:
//
//	list := skiplist.New[string, int]()
//
//	list.Insert("b", 2)
//	list.Insert("a", 1)
//	list.Insert("c", 3)
//
//	if v, ok := list.Search("b"); ok {
//	    fmt.Println(v) // 2
//	}
//
//	for k, v := range list.All() {
//	    fmt.Println(k, v) // a 1, b 2, c 3
//	}
//
//	list.Delete("b")
//
// The list itself does not enforce key uniqueness: inserting an existing key
// splices a second entry next to the first. Callers that need set semantics
// check with Search before inserting.
package skiplist
