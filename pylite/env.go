package pylite

// Closure is a chained variable scope: a flat map of bindings plus a
// link to the enclosing scope it was opened in. Lookup and assignment
// walk the chain outward; Define always creates (or overwrites) a
// binding in the innermost scope.
type Closure struct {
	parent *Closure
	values map[string]ValueRef
}

// NewClosure opens a fresh top-level scope with no parent.
func NewClosure() *Closure {
	return &Closure{values: make(map[string]ValueRef)}
}

// Get resolves name by walking outward from c. The bool result is false
// when no scope in the chain has bound the name.
func (c *Closure) Get(name string) (ValueRef, bool) {
	for scope := c; scope != nil; scope = scope.parent {
		if v, ok := scope.values[name]; ok {
			return v, true
		}
	}
	return NullRef, false
}

// Define binds name to v in c itself, shadowing any binding of the same
// name in an enclosing scope.
func (c *Closure) Define(name string, v ValueRef) {
	c.values[name] = v
}

// Names returns the bindings defined directly in c, not counting any
// enclosing scope. Order is unspecified.
func (c *Closure) Names() []string {
	names := make([]string, 0, len(c.values))
	for name := range c.values {
		names = append(names, name)
	}
	return names
}

// Assign rebinds name to v in whichever scope in the chain already
// holds it. It reports false, leaving every scope untouched, if name is
// unbound anywhere in the chain.
func (c *Closure) Assign(name string, v ValueRef) bool {
	for scope := c; scope != nil; scope = scope.parent {
		if _, ok := scope.values[name]; ok {
			scope.values[name] = v
			return true
		}
	}
	return false
}
