package pylite

// Method is a named function defined inside a class body. Params
// excludes the implicit receiver; Body is executed with self bound in
// the call's environment.
type Method struct {
	Name   string
	Params []string
	Body   Node
}

// Class describes a user-defined type: its own methods plus an optional
// parent class to fall back to when a method isn't found locally.
type Class struct {
	Name    string
	Parent  *Class
	Methods map[string]*Method
}

// NewClass constructs a Class with no methods yet defined.
func NewClass(name string, parent *Class) *Class {
	return &Class{Name: name, Parent: parent, Methods: make(map[string]*Method)}
}

// GetMethod resolves name by walking the parent chain starting at c,
// returning the first match and the class that defines it.
func (c *Class) GetMethod(name string) (*Method, *Class) {
	for cls := c; cls != nil; cls = cls.Parent {
		if m, ok := cls.Methods[name]; ok {
			return m, cls
		}
	}
	return nil, nil
}

// IsSubclassOf reports whether c is other or descends from it.
func (c *Class) IsSubclassOf(other *Class) bool {
	for cls := c; cls != nil; cls = cls.Parent {
		if cls == other {
			return true
		}
	}
	return false
}

// Instance is a live object: a class pointer plus its own field
// bindings. Fields come into existence the first time they're assigned,
// typically from inside __init__.
type Instance struct {
	Class  *Class
	Fields map[string]ValueRef
}

// allocInstance allocates an instance of cls with no fields set.
func allocInstance(cls *Class) *Instance {
	return &Instance{Class: cls, Fields: make(map[string]ValueRef)}
}

// Field reads a field by name.
func (i *Instance) Field(name string) (ValueRef, bool) {
	v, ok := i.Fields[name]
	return v, ok
}

// SetField assigns a field, creating it if absent.
func (i *Instance) SetField(name string, v ValueRef) {
	i.Fields[name] = v
}

// HasMethod reports whether i's class (or an ancestor) defines name.
func (i *Instance) HasMethod(name string) bool {
	m, _ := i.Class.GetMethod(name)
	return m != nil
}
