// Coerce loose YAML into the shapes expected by mapstructure.
package normalize

import (
	"fmt"
)

// List ensure yaml is a list.
//
// Wraps scalar or map in a list. Returns list as is. nil gives an empty
// list.
func List(yaml any) (list []any) {
	switch v := yaml.(type) {
	case nil:
	case []any:
		list = v
	case []string:
		for _, s := range v {
			list = append(list, s)
		}
	default:
		list = append(list, yaml)
	}
	return
}

// Strings coerces a scalar or a list of scalars to a list of strings.
//
// YAML reads 1 as int and yes as string. Both are dimension values.
func Strings(yaml any) (out []string, err error) {
	for i, item := range List(yaml) {
		switch v := item.(type) {
		case string:
			out = append(out, v)
		case int, int64, uint64, float64, bool:
			out = append(out, fmt.Sprintf("%v", v))
		case nil:
			return nil, fmt.Errorf("item %d: null value", i)
		default:
			return nil, fmt.Errorf("item %d: bad value %v, must be scalar", i, v)
		}
	}
	return
}
