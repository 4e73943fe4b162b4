package possible

import "testing"

func TestZeroValueIsAbsent(t *testing.T) {
	var p Possible[int]
	if !p.IsAbsent() {
		t.Fatalf("zero value should be Absent, got %v", p)
	}
	if p.IsNull() || p.IsPresent() {
		t.Fatalf("zero value reported another state: %v", p)
	}
	if p != Absent[int]() {
		t.Fatalf("zero value should equal Absent()")
	}
}

func TestConstructors(t *testing.T) {
	cases := []struct {
		name  string
		value Possible[int]
		state State
	}{
		{"of", Of(2), StatePresent},
		{"null", Null[int](), StateNull},
		{"absent", Absent[int](), StateAbsent},
	}
	for _, tc := range cases {
		if got := tc.value.State(); got != tc.state {
			t.Fatalf("%s: state = %v, want %v", tc.name, got, tc.state)
		}
	}
	if v, ok := Of(2).Get(); !ok || v != 2 {
		t.Fatalf("Of(2).Get() = (%d, %t)", v, ok)
	}
}

func TestIntrospection(t *testing.T) {
	cases := []struct {
		value                                Possible[string]
		isPresent, isNull, isAbsent, isEmpty bool
	}{
		{Of("x"), true, false, false, false},
		{Null[string](), false, true, false, true},
		{Absent[string](), false, false, true, true},
	}
	for _, tc := range cases {
		if tc.value.IsPresent() != tc.isPresent {
			t.Fatalf("%v: IsPresent = %t", tc.value, tc.value.IsPresent())
		}
		if tc.value.IsNull() != tc.isNull {
			t.Fatalf("%v: IsNull = %t", tc.value, tc.value.IsNull())
		}
		if tc.value.IsAbsent() != tc.isAbsent {
			t.Fatalf("%v: IsAbsent = %t", tc.value, tc.value.IsAbsent())
		}
		if tc.value.IsEmpty() != tc.isEmpty {
			t.Fatalf("%v: IsEmpty = %t", tc.value, tc.value.IsEmpty())
		}
	}
}

func TestStructuralEquality(t *testing.T) {
	if Of(2) != Of(2) {
		t.Fatalf("equal Present values should compare equal")
	}
	if Of(2) == Of(3) {
		t.Fatalf("different payloads should not compare equal")
	}
	if Null[int]() == Absent[int]() {
		t.Fatalf("Null and Absent must never compare equal")
	}
	if !Equal(Null[int](), Null[int]()) {
		t.Fatalf("Null should equal Null")
	}
	// Usable as a map key with structural semantics.
	seen := map[Possible[int]]bool{Of(1): true, Null[int](): true}
	if !seen[Of(1)] || !seen[Null[int]()] || seen[Absent[int]()] {
		t.Fatalf("map key semantics violated: %v", seen)
	}
}

func TestString(t *testing.T) {
	cases := []struct {
		value Possible[int]
		want  string
	}{
		{Of(42), "Present(42)"},
		{Null[int](), "Null"},
		{Absent[int](), "Absent"},
	}
	for _, tc := range cases {
		if got := tc.value.String(); got != tc.want {
			t.Fatalf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestStateString(t *testing.T) {
	if StatePresent.String() != "Present" || StateNull.String() != "Null" || StateAbsent.String() != "Absent" {
		t.Fatalf("state names wrong: %v %v %v", StatePresent, StateNull, StateAbsent)
	}
}
