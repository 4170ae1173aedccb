package pylite

// ValueRef is a handle to a Value that may be absent. The original
// runtime distinguishes an owning handle from a shared one so it can
// free storage deterministically; Go's garbage collector makes that
// distinction unnecessary; what survives is the one distinction that
// still carries meaning at the language level: a null handle (no value
// was ever produced, e.g. the result of looking up a name that has no
// binding) versus a handle holding the None value (a value that is
// present and happens to be None).
type ValueRef struct {
	value *Value
}

// NullRef is the zero ValueRef: no value at all.
var NullRef = ValueRef{}

// Own wraps v in a ValueRef. The name mirrors the ownership vocabulary
// the runtime's handles are described in, even though Go has no
// separate owning/shared representation to pick between.
func Own(v Value) ValueRef {
	return ValueRef{value: &v}
}

// Share returns a new handle to the same underlying value as r.
func Share(r ValueRef) ValueRef {
	return r
}

func (r ValueRef) IsNull() bool {
	return r.value == nil
}

// Get returns the held value, or None if r is null.
func (r ValueRef) Get() Value {
	if r.value == nil {
		return None
	}
	return *r.value
}
