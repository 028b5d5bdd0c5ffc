package core

import "testing"

func TestFields(t *testing.T) {
	tests := []struct {
		name string
		in   []interface{}
		want []Field
	}{
		{
			name: "pairs",
			in:   []interface{}{"a", 1, "b", "two"},
			want: []Field{{Key: "a", Value: 1}, {Key: "b", Value: "two"}},
		},
		{
			name: "dangling key",
			in:   []interface{}{"a"},
			want: []Field{{Key: "a", Value: nil}},
		},
		{
			name: "non-string key",
			in:   []interface{}{42, "x"},
			want: []Field{{Key: "!BADKEY", Value: "x"}},
		},
		{
			name: "empty",
			in:   nil,
			want: []Field{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fields(tt.in...)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Fields()[%d] = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestMemberKind_String(t *testing.T) {
	if Data.String() != "data" || Callable.String() != "callable" || Inaccessible.String() != "inaccessible" {
		t.Error("unexpected MemberKind names")
	}
	if MemberKind(99).String() != "unknown" {
		t.Error("expected unknown for out of range kind")
	}
}

func TestReport_Empty(t *testing.T) {
	r := &Report{Type: "int"}
	if !r.Empty() {
		t.Error("report without members should be empty")
	}
	r.Functions = append(r.Functions, "Close")
	if r.Empty() {
		t.Error("report with a function should not be empty")
	}
}
