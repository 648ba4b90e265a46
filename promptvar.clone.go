package promptvar

import (
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// deepCopyValue returns a structural clone of v. Defaults are cloned at the
// point they are stored so later mutation of the caller's value cannot
// retroactively change the template.
func deepCopyValue(v any) any {
	switch val := v.(type) {
	case nil:
		return nil
	case string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64,
		time.Time, uuid.UUID, decimal.Decimal:
		return val
	case []byte:
		out := make([]byte, len(val))
		copy(out, val)
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = deepCopyValue(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = deepCopyValue(item)
		}
		return out
	case map[string]string:
		out := make(map[string]string, len(val))
		for k, item := range val {
			out[k] = item
		}
		return out
	case []string:
		out := make([]string, len(val))
		copy(out, val)
		return out
	case *Template:
		// Templates share immutable source; only defaults are mutable state.
		return val.clone()
	default:
		return reflectDeepCopy(reflect.ValueOf(v)).Interface()
	}
}

// reflectDeepCopy clones arbitrary container kinds. Values of kinds with
// reference semantics (maps, slices, pointers) are duplicated recursively;
// everything else copies by value.
func reflectDeepCopy(rv reflect.Value) reflect.Value {
	switch rv.Kind() {
	case reflect.Map:
		if rv.IsNil() {
			return rv
		}
		out := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), reflectDeepCopy(iter.Value()))
		}
		return out
	case reflect.Slice:
		if rv.IsNil() {
			return rv
		}
		out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out.Index(i).Set(reflectDeepCopy(rv.Index(i)))
		}
		return out
	case reflect.Array:
		out := reflect.New(rv.Type()).Elem()
		for i := 0; i < rv.Len(); i++ {
			out.Index(i).Set(reflectDeepCopy(rv.Index(i)))
		}
		return out
	case reflect.Ptr:
		if rv.IsNil() {
			return rv
		}
		out := reflect.New(rv.Type().Elem())
		out.Elem().Set(reflectDeepCopy(rv.Elem()))
		return out
	case reflect.Struct:
		out := reflect.New(rv.Type()).Elem()
		for i := 0; i < rv.NumField(); i++ {
			if !out.Field(i).CanSet() {
				// Unexported fields cannot be cloned field by field;
				// fall back to a shallow copy of the whole struct.
				return rv
			}
			out.Field(i).Set(reflectDeepCopy(rv.Field(i)))
		}
		return out
	case reflect.Interface:
		if rv.IsNil() {
			return rv
		}
		inner := reflectDeepCopy(rv.Elem())
		out := reflect.New(rv.Type()).Elem()
		out.Set(inner)
		return out
	default:
		return rv
	}
}

// copyDefaults deep-copies a defaults map.
func copyDefaults(defaults map[string]any) map[string]any {
	if defaults == nil {
		return nil
	}
	out := make(map[string]any, len(defaults))
	for k, v := range defaults {
		out[k] = deepCopyValue(v)
	}
	return out
}
