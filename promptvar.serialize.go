package promptvar

import (
	"encoding/base64"
	"encoding/json"
	"reflect"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/itsatony/go-cuserr"
	"github.com/shopspring/decimal"
)

// Serializer converts a value into its textual form for substitution.
// Implementations must be pure and safe for concurrent use.
type Serializer interface {
	Serialize(value any) (string, error)
}

// SerializerFunc adapts a plain function to the Serializer interface.
type SerializerFunc func(value any) (string, error)

// Serialize implements Serializer.
func (f SerializerFunc) Serialize(value any) (string, error) {
	return f(value)
}

// DefaultSerializer is the default serialization policy:
//
//  1. Strings pass through unchanged; []byte decodes as UTF-8 or falls back
//     to base64.
//  2. decimal.Decimal, time.Time and uuid.UUID use their canonical string
//     representations.
//  3. Booleans and numeric primitives use their literal textual form.
//  4. Slices, arrays, maps and structs encode as deterministic JSON.
//  5. Anything else is an unsupported-type error.
type DefaultSerializer struct{}

// Serialize implements Serializer.
func (DefaultSerializer) Serialize(value any) (string, error) {
	return serializeValue(value)
}

// serializeValue applies the default policy. Panics from the encoding layer
// are recovered and returned as errors so a bad value never takes down the
// caller.
func serializeValue(value any) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = cuserr.NewValidationError(ErrCodeSerialize, ErrMsgSerializePanicked)
		}
	}()

	switch v := value.(type) {
	case nil:
		return "null", nil
	case string:
		return v, nil
	case []byte:
		if utf8.Valid(v) {
			return string(v), nil
		}
		return base64.StdEncoding.EncodeToString(v), nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.FormatInt(int64(v), 10), nil
	case int8:
		return strconv.FormatInt(int64(v), 10), nil
	case int16:
		return strconv.FormatInt(int64(v), 10), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	case decimal.Decimal:
		return v.String(), nil
	case time.Time:
		return v.Format(time.RFC3339Nano), nil
	case uuid.UUID:
		return v.String(), nil
	}

	switch reflect.Indirect(reflect.ValueOf(value)).Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Struct:
		data, jsonErr := json.Marshal(value)
		if jsonErr != nil {
			return "", cuserr.WrapStdError(jsonErr, ErrCodeSerialize, ErrMsgSerializeFailed)
		}
		return string(data), nil
	default:
		return "", NewUnsupportedTypeError(valueTypeName(value))
	}
}

// valueTypeName returns a display name for a value's dynamic type.
func valueTypeName(value any) string {
	if value == nil {
		return "nil"
	}
	return reflect.TypeOf(value).String()
}
