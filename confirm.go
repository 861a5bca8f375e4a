package skipheap

// Confirmer decides whether a new task may replace an existing task with the
// same name. Without a Confirmer the Manager rejects duplicates outright.
type Confirmer interface {
	// Confirm reports whether the task named name may be replaced.
	Confirm(name string) bool
}

// ConfirmerFunc is a function type that implements Confirmer.
type ConfirmerFunc func(name string) bool

// Confirm calls the function.
func (f ConfirmerFunc) Confirm(name string) bool {
	return f(name)
}
