package ox

import (
	"fmt"
	"strconv"
	"strings"
)

func (k ValueKind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindStruct:
		return "struct"
	case KindInstance:
		return "instance"
	case KindFunction:
		return "function"
	case KindBuiltin:
		return "builtin"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.data.(string)
	case KindNil:
		return "nil"
	case KindBool:
		if v.Bool() {
			return "true"
		}
		return "false"
	case KindNumber:
		return strconv.FormatFloat(v.data.(float64), 'g', -1, 64)
	case KindArray:
		elems := v.data.([]Value)
		parts := make([]string, len(elems))
		for i, e := range elems {
			parts[i] = e.String()
		}
		return fmt.Sprintf("[%s]", strings.Join(parts, ", "))
	case KindStruct:
		return fmt.Sprintf("<struct %s>", v.data.(*StructDef).Name)
	case KindInstance:
		inst := v.data.(*Instance)
		fields := inst.Def.AllFields()
		parts := make([]string, len(fields))
		for i, name := range fields {
			parts[i] = fmt.Sprintf("%s: %s", name, inst.Fields[name].String())
		}
		return fmt.Sprintf("%s({%s})", inst.Def.Name, strings.Join(parts, ", "))
	case KindFunction:
		return fmt.Sprintf("<func %s>", v.data.(*Function).Name)
	case KindBuiltin:
		return fmt.Sprintf("<builtin %s>", v.data.(*Builtin).Name)
	default:
		return fmt.Sprintf("<%v>", v.kind)
	}
}

func (v Value) Truthy() bool {
	switch v.kind {
	case KindNil:
		return false
	case KindBool:
		return v.Bool()
	case KindNumber:
		return v.data.(float64) != 0
	case KindString:
		return v.data.(string) != ""
	case KindArray:
		return len(v.data.([]Value)) > 0
	default:
		return true
	}
}

// Equal compares two values of the same kind; arrays compare element-wise,
// instances and struct definitions by identity. Kind mismatches are handled
// by the evaluator before this is consulted.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNil:
		return true
	case KindBool:
		return v.Bool() == other.Bool()
	case KindNumber:
		return v.data.(float64) == other.data.(float64)
	case KindString:
		return v.data.(string) == other.data.(string)
	case KindArray:
		left := v.data.([]Value)
		right := other.data.([]Value)
		if len(left) != len(right) {
			return false
		}
		for i := range left {
			if left[i].kind != right[i].kind || !left[i].Equal(right[i]) {
				return false
			}
		}
		return true
	case KindStruct:
		return v.data.(*StructDef) == other.data.(*StructDef)
	case KindInstance:
		return v.data.(*Instance) == other.data.(*Instance)
	default:
		return v.data == other.data
	}
}
