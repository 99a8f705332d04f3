package runtime

import "fmt"

// Kind identifies the runtime value category.
type Kind int

const (
	KindNumber Kind = iota
	KindString
	KindBool
	KindNull
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindNull:
		return "bugatti"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is the shared behaviour for all runtime values.
type Value interface {
	Kind() Kind
}

type NumberValue struct {
	Val int64
}

func (v NumberValue) Kind() Kind { return KindNumber }

type StringValue struct {
	Val string
}

func (v StringValue) Kind() Kind { return KindString }

type BoolValue struct {
	Val bool
}

func (v BoolValue) Kind() Kind { return KindBool }

// NullValue is what `bugatti` evaluates to.
type NullValue struct{}

func (NullValue) Kind() Kind { return KindNull }

// Truthy coerces a value to a boolean for loop conditions. Numbers are
// false only at zero and strings only when empty.
func Truthy(val Value) bool {
	switch v := val.(type) {
	case BoolValue:
		return v.Val
	case NullValue:
		return false
	case NumberValue:
		return v.Val != 0
	case StringValue:
		return v.Val != ""
	default:
		return false
	}
}
