package keyhub_test

import (
	"fmt"
	"testing"

	"github.com/guilgui51/keyhub"
)

// Benchmarks for performance validation

func benchDocument(keys int) map[string]any {
	doc := make(map[string]any)
	for i := 0; i < keys; i++ {
		keyhub.SetNestedValue(doc, fmt.Sprintf("section%02d.item%03d", i%10, i), "value")
	}
	return doc
}

func BenchmarkFlatten(b *testing.B) {
	doc := benchDocument(200)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		keyhub.Flatten(doc, "")
	}
}

func BenchmarkNest(b *testing.B) {
	flat := keyhub.Flatten(benchDocument(200), "")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		keyhub.Nest(flat)
	}
}

func BenchmarkMarshalCanonical(b *testing.B) {
	doc := benchDocument(200)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		keyhub.MarshalCanonical(doc)
	}
}

func BenchmarkBuildTree(b *testing.B) {
	flat := keyhub.Flatten(benchDocument(200), "")
	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	keyhub.SortKeys(keys)

	data := keyhub.NamespaceData{Namespace: "common"}
	for _, k := range keys {
		v := flat[k]
		data.Keys = append(data.Keys, keyhub.KeyValues{
			Key:    k,
			Values: map[string]*string{"en-US": &v},
		})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		keyhub.BuildTree(data)
	}
}

func BenchmarkHashText(b *testing.B) {
	text := "Hello World, this is a sample text for hashing"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		keyhub.HashText(text)
	}
}

func BenchmarkGetDirection(b *testing.B) {
	langs := []string{"en-US", "es-ES", "ar-SA", "ja-JP", "he-IL"}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		keyhub.GetDirection(langs[i%len(langs)])
	}
}

func BenchmarkGetLanguageName(b *testing.B) {
	langs := []string{"en-US", "es-ES", "ar-SA", "ja-JP", "zh-CN"}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		keyhub.GetLanguageName(langs[i%len(langs)])
	}
}
