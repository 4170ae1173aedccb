package pylite

import "fmt"

// ValueKind tags the dynamic type carried by a Value.
type ValueKind int

const (
	KindNone ValueKind = iota
	KindNumber
	KindBool
	KindString
	KindClass
	KindInstance
)

func (k ValueKind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindNumber:
		return "Number"
	case KindBool:
		return "Bool"
	case KindString:
		return "String"
	case KindClass:
		return "Class"
	case KindInstance:
		return "Instance"
	default:
		return fmt.Sprintf("ValueKind(%d)", int(k))
	}
}

// Value is a dynamically typed datum. Only the field matching Kind is
// meaningful.
type Value struct {
	kind ValueKind
	data any
}

// None is the singular null value; it is distinct from an absent
// ValueRef (see ValueRef.IsNull).
var None = Value{kind: KindNone}

func NumberValue(v int64) Value { return Value{kind: KindNumber, data: v} }
func BoolValue(v bool) Value    { return Value{kind: KindBool, data: v} }
func StringValue(v string) Value { return Value{kind: KindString, data: v} }
func ClassValue(c *Class) Value  { return Value{kind: KindClass, data: c} }
func InstanceValue(i *Instance) Value { return Value{kind: KindInstance, data: i} }

func (v Value) Kind() ValueKind { return v.kind }
func (v Value) IsNone() bool    { return v.kind == KindNone }

func (v Value) Number() int64 {
	n, _ := v.data.(int64)
	return n
}

func (v Value) Bool() bool {
	b, _ := v.data.(bool)
	return b
}

func (v Value) Str() string {
	s, _ := v.data.(string)
	return s
}

func (v Value) Class() *Class {
	c, _ := v.data.(*Class)
	return c
}

func (v Value) Instance() *Instance {
	i, _ := v.data.(*Instance)
	return i
}

// String renders v the way Stringify does for primitive kinds. A class
// instance is rendered as an identity string naming its class; it does
// not consult __str__, which Stringify calls first when one is defined.
func (v Value) String() string {
	switch v.kind {
	case KindNone:
		return "None"
	case KindNumber:
		return fmt.Sprintf("%d", v.Number())
	case KindBool:
		if v.Bool() {
			return "True"
		}
		return "False"
	case KindString:
		return v.Str()
	case KindClass:
		return v.Class().Name
	case KindInstance:
		return fmt.Sprintf("<%s instance>", v.Instance().Class.Name)
	default:
		return "<unknown>"
	}
}
