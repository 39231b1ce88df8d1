package value_test

import (
	"testing"

	"github.com/reoring/swagval/value"
)

func TestEqual(t *testing.T) {
	cases := []struct {
		name string
		a, b any
		want bool
	}{
		{"numbers by value", value.Number("1"), value.Number("1.0"), true},
		{"numbers differ", value.Number("1"), value.Number("1.0001"), false},
		{"kinds differ", "1", 1, false},
		{"null", nil, nil, true},
		{"arrays ordered", []any{1, 2}, []any{2, 1}, false},
		{"objects unordered", value.Object{{Key: "a", Value: value.Number("1")}, {Key: "b", Value: value.Bool(true)}}, map[string]any{"b": true, "a": 1}, true},
		{"objects missing key", map[string]any{"a": 1}, map[string]any{"b": 1}, false},
		{"nested", map[string]any{"a": []any{"x", nil}}, map[string]any{"a": []any{"x", nil}}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a, b := value.MustFromAny(tc.a), value.MustFromAny(tc.b)
			if got := value.Equal(a, b); got != tc.want {
				t.Fatalf("Equal(%s, %s) = %v, want %v", value.Render(a), value.Render(b), got, tc.want)
			}
			if got := value.Key(a) == value.Key(b); got != tc.want {
				t.Fatalf("Key equality for %s, %s = %v, want %v", value.Render(a), value.Render(b), got, tc.want)
			}
		})
	}
}

func TestFromAny_YAMLMaps(t *testing.T) {
	v, err := value.FromAny(map[any]any{"b": 1, "a": []any{true}})
	if err != nil {
		t.Fatalf("convert err: %v", err)
	}
	if got := value.Render(v); got != `{"a":[true],"b":1}` {
		t.Fatalf("unexpected render: %s", got)
	}
	if _, err := value.FromAny(map[any]any{1: "x"}); err == nil {
		t.Fatalf("expected error for non-string key")
	}
}
