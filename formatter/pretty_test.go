package formatter

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type point struct {
	X, Y int
}

type panicky struct{}

func (panicky) String() string { panic("boom") }

type named struct{ label string }

func (n *named) String() string { return "named:" + n.label }

func TestAutoformat_Scalars(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want string
	}{
		{"string passthrough", "hello\nworld", "hello\nworld"},
		{"bytes", []byte("raw"), "raw"},
		{"int", 42, "42"},
		{"float", 1.5, "1.5"},
		{"bool", true, "true"},
		{"nil", nil, "<nil>"},
		{"error", errors.New("bad thing"), "bad thing"},
		{"stringer", &named{label: "n"}, "named:n"},
		{"struct", point{1, 2}, "{1 2}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Autoformat(tt.in))
		})
	}
}

func TestAutoformat_Containers(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want string
	}{
		{"map", map[string]interface{}{"a": float64(1)}, `{"a": 1}`},
		{"sorted keys", map[string]int{"b": 2, "a": 1, "c": 3}, `{"a": 1, "b": 2, "c": 3}`},
		{"numeric keys", map[int]string{10: "x", 2: "y"}, `{2: "y", 10: "x"}`},
		{"slice", []interface{}{1, "two", nil}, `[1, "two", <nil>]`},
		{"array", [2]bool{true, false}, `[true, false]`},
		{"empty map", map[string]int{}, `{}`},
		{"nil slice", []int(nil), `[]`},
		{"nested", map[string]interface{}{"p": point{1, 2}}, `{"p": formatter.point{X: 1, Y: 2}}`},
		{"pointer to map", &map[string]int{"a": 1}, `{"a": 1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Autoformat(tt.in))
		})
	}
}

func TestAutoformat_ExpandsWideContainers(t *testing.T) {
	in := map[string]interface{}{
		"description": strings.Repeat("d", 40),
		"items":       []int{1, 2, 3},
		"name":        strings.Repeat("n", 40),
	}

	got := Autoformat(in)
	want := "{\n" +
		`    "description": "` + strings.Repeat("d", 40) + `",` + "\n" +
		`    "items": [1, 2, 3],` + "\n" +
		`    "name": "` + strings.Repeat("n", 40) + `",` + "\n" +
		"}"
	assert.Equal(t, want, got)
}

func TestAutoformat_NestedExpansion(t *testing.T) {
	long := strings.Repeat("v", 70)
	in := map[string]interface{}{
		"outer": []string{long, long},
	}

	got := Autoformat(in)
	lines := strings.Split(got, "\n")
	assert.Equal(t, "{", lines[0])
	assert.Equal(t, `    "outer": [`, lines[1])
	assert.Equal(t, `        "`+long+`",`, lines[2])
	assert.Equal(t, `        "`+long+`",`, lines[3])
	assert.Equal(t, `    ],`, lines[4])
	assert.Equal(t, "}", lines[5])
}

func TestAutoformat_NeverPanics(t *testing.T) {
	assert.Equal(t, FormatErrorText, Autoformat(panicky{}))
	assert.NotPanics(t, func() {
		_ = Autoformat([]interface{}{panicky{}})
	})
	assert.Equal(t, FormatErrorText, Autoformat([]interface{}{panicky{}}))
}

func TestAutoformat_SelfReference(t *testing.T) {
	m := map[string]interface{}{}
	m["self"] = m
	assert.NotPanics(t, func() {
		out := Autoformat(m)
		assert.Contains(t, out, "...")
	})
}

func TestPretty_Struct(t *testing.T) {
	assert.Equal(t, "formatter.point{X: 3, Y: 4}", Pretty(point{3, 4}))
}

func TestDump(t *testing.T) {
	out := Dump(point{X: 5, Y: 6})
	assert.Contains(t, out, "formatter.point")
	assert.Contains(t, out, "X: (int) 5")
	assert.False(t, strings.HasSuffix(out, "\n"))
}

func TestInline(t *testing.T) {
	type hidden struct {
		secret map[string]int
		name   string
	}
	v := reflect.ValueOf(hidden{secret: map[string]int{"k": 1}, name: "n"})

	assert.Equal(t, `{"k": 1}`, Inline(v.Field(0)))
	assert.Equal(t, "n", Inline(v.Field(1)))
	assert.Equal(t, "<nil>", Inline(reflect.Value{}))
}
