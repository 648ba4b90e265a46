package promptvar

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSerializer_Scalars(t *testing.T) {
	ts := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"nil", nil, "null"},
		{"string passes through", "hello", "hello"},
		{"string with braces untouched", `{"a": 1}`, `{"a": 1}`},
		{"bool true", true, "true"},
		{"bool false", false, "false"},
		{"int", 42, "42"},
		{"negative int", -7, "-7"},
		{"int64", int64(1 << 40), "1099511627776"},
		{"uint", uint(7), "7"},
		{"float64", 1.5, "1.5"},
		{"float64 whole", float64(3), "3"},
		{"float32", float32(0.25), "0.25"},
		{"decimal", decimal.RequireFromString("19.990"), "19.99"},
		{"time RFC3339", ts, "2024-03-15T10:30:00Z"},
		{"uuid", id, "6ba7b810-9dad-11d1-80b4-00c04fd430c8"},
	}

	ser := DefaultSerializer{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ser.Serialize(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefaultSerializer_Bytes(t *testing.T) {
	t.Run("valid UTF-8 decodes as text", func(t *testing.T) {
		got, err := serializeValue([]byte("héllo"))
		require.NoError(t, err)
		assert.Equal(t, "héllo", got)
	})

	t.Run("invalid UTF-8 falls back to base64", func(t *testing.T) {
		got, err := serializeValue([]byte{0xff, 0xfe, 0xfd})
		require.NoError(t, err)
		assert.Equal(t, "//79", got)
	})
}

func TestDefaultSerializer_Composites(t *testing.T) {
	t.Run("slice as JSON", func(t *testing.T) {
		got, err := serializeValue([]any{1, "two", true})
		require.NoError(t, err)
		assert.Equal(t, `[1,"two",true]`, got)
	})

	t.Run("string slice as JSON", func(t *testing.T) {
		got, err := serializeValue([]string{"a", "b"})
		require.NoError(t, err)
		assert.Equal(t, `["a","b"]`, got)
	})

	t.Run("map as JSON with sorted keys", func(t *testing.T) {
		got, err := serializeValue(map[string]any{"z": 1, "a": 2, "m": 3})
		require.NoError(t, err)
		assert.Equal(t, `{"a":2,"m":3,"z":1}`, got)
	})

	t.Run("map serialization is deterministic", func(t *testing.T) {
		value := map[string]any{"b": 1, "a": 2, "c": 3, "d": 4, "e": 5}
		first, err := serializeValue(value)
		require.NoError(t, err)
		for i := 0; i < 20; i++ {
			again, err := serializeValue(value)
			require.NoError(t, err)
			assert.Equal(t, first, again)
		}
	})

	t.Run("struct as JSON", func(t *testing.T) {
		got, err := serializeValue(struct {
			Name string `json:"name"`
			Age  int    `json:"age"`
		}{Name: "Ada", Age: 36})
		require.NoError(t, err)
		assert.Equal(t, `{"name":"Ada","age":36}`, got)
	})

	t.Run("pointer to struct as JSON", func(t *testing.T) {
		got, err := serializeValue(&struct {
			OK bool `json:"ok"`
		}{OK: true})
		require.NoError(t, err)
		assert.Equal(t, `{"ok":true}`, got)
	})

	t.Run("nested composite", func(t *testing.T) {
		got, err := serializeValue(map[string]any{
			"items": []any{map[string]any{"id": 1}},
		})
		require.NoError(t, err)
		assert.Equal(t, `{"items":[{"id":1}]}`, got)
	})
}

func TestDefaultSerializer_Unsupported(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"function", func() {}},
		{"channel", make(chan int)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := serializeValue(tt.value)
			require.Error(t, err)
			assert.Contains(t, err.Error(), ErrMsgUnsupportedType)
		})
	}
}

func TestDefaultSerializer_UnmarshalableComposite(t *testing.T) {
	// Channels inside a map make json.Marshal fail rather than panic.
	_, err := serializeValue(map[string]any{"ch": make(chan int)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgSerializeFailed)
}

func TestSerializerFunc(t *testing.T) {
	ser := SerializerFunc(func(value any) (string, error) {
		return "fixed", nil
	})
	got, err := ser.Serialize(123)
	require.NoError(t, err)
	assert.Equal(t, "fixed", got)
}

func TestValueTypeName(t *testing.T) {
	assert.Equal(t, "nil", valueTypeName(nil))
	assert.Equal(t, "int", valueTypeName(42))
	assert.Equal(t, "map[string]interface {}", valueTypeName(map[string]any{}))
	assert.Equal(t, "*promptvar.Template", valueTypeName(&Template{}))
}
