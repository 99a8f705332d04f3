package interpreter

import (
	"fmt"
	"strconv"

	"touchgrass/interpreter-go/pkg/runtime"
)

// FormatValue renders a value the way print writes it.
func FormatValue(val runtime.Value) string {
	switch v := val.(type) {
	case runtime.NumberValue:
		return strconv.FormatInt(v.Val, 10)
	case runtime.StringValue:
		return v.Val
	case runtime.BoolValue:
		if v.Val {
			return "no cap"
		}
		return "cap"
	case runtime.NullValue:
		return "bugatti"
	case nil:
		return "bugatti"
	default:
		return fmt.Sprintf("[%s]", v.Kind())
	}
}
