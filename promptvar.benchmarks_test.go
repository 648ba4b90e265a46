package promptvar

import (
	"context"
	"fmt"
	"strings"
	"testing"
)

// =============================================================================
// PARSING BENCHMARKS
// =============================================================================

func BenchmarkNew_Simple(b *testing.B) {
	source := "Hello ${user}!"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = New(source)
	}
}

func BenchmarkNew_ManyPlaceholders(b *testing.B) {
	var sb strings.Builder
	for i := 0; i < 50; i++ {
		fmt.Fprintf(&sb, "field %d: ${var%d}\n", i, i)
	}
	source := sb.String()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = New(source)
	}
}

func BenchmarkNew_LiteralBraces(b *testing.B) {
	source := `{"answer": "${answer}", "meta": {"nested": {"deep": [1, 2, 3]}}}`

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = New(source)
	}
}

func BenchmarkNew_NoPlaceholders(b *testing.B) {
	source := strings.Repeat("plain text without any variables. ", 100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = New(source)
	}
}

// =============================================================================
// RENDER BENCHMARKS
// =============================================================================

func BenchmarkToString_Simple(b *testing.B) {
	tmpl := MustNew("Hello ${user}!")
	values := map[string]any{"user": "Alice"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tmpl.ToString(values)
	}
}

func BenchmarkToString_WithDefaults(b *testing.B) {
	tmpl := MustNew("Hello ${user}, welcome to ${place}!")
	tmpl.SetDefault(map[string]any{"place": "Earth"})
	values := map[string]any{"user": "Alice"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tmpl.ToString(values)
	}
}

func BenchmarkToString_MixedTypes(b *testing.B) {
	tmpl := MustNew("n=${n} f=${f} ok=${ok} items=${items} cfg=${cfg}")
	values := map[string]any{
		"n":     42,
		"f":     3.14,
		"ok":    true,
		"items": []any{"a", "b", "c"},
		"cfg":   map[string]any{"depth": 2, "mode": "fast"},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tmpl.ToString(values)
	}
}

func BenchmarkSubstitute(b *testing.B) {
	tmpl := MustNew("${a} ${b} ${c}")
	values := map[string]any{"a": "1"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tmpl.Substitute(values)
	}
}

func BenchmarkSetDefault_DeepValue(b *testing.B) {
	tmpl := MustNew("settings: ${settings}")
	settings := map[string]any{
		"a": []any{1, 2, 3},
		"b": map[string]any{"c": "d", "e": []any{"f"}},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tmpl.SetDefault(map[string]any{"settings": settings})
	}
}

// =============================================================================
// ENGINE BENCHMARKS
// =============================================================================

func BenchmarkEngine_Render(b *testing.B) {
	engine := MustNewEngine()
	engine.MustRegisterTemplate("greeting", "Hello ${user}!")
	values := map[string]any{"user": "Alice"}
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = engine.Render(ctx, "greeting", values)
	}
}

func BenchmarkEngine_RenderParallel(b *testing.B) {
	engine := MustNewEngine()
	engine.MustRegisterTemplate("greeting", "Hello ${user}!")
	values := map[string]any{"user": "Alice"}
	ctx := context.Background()

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, _ = engine.Render(ctx, "greeting", values)
		}
	})
}

// =============================================================================
// SERIALIZATION BENCHMARKS
// =============================================================================

func BenchmarkSerialize_String(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = serializeValue("plain string value")
	}
}

func BenchmarkSerialize_Map(b *testing.B) {
	value := map[string]any{"a": 1, "b": "two", "c": []any{3, 4}}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = serializeValue(value)
	}
}
