package possible

import "testing"

// Every binary combinator is checked against the full 3x3 state grid.

func TestAndGrid(t *testing.T) {
	cases := []struct {
		name string
		a    Possible[int]
		b    Possible[string]
		want Possible[string]
	}{
		{"present-present", Of(2), Of("foo"), Of("foo")},
		{"present-null", Of(2), Null[string](), Null[string]()},
		{"present-absent", Of(2), Absent[string](), Absent[string]()},
		{"null-present", Null[int](), Of("foo"), Null[string]()},
		{"null-null", Null[int](), Null[string](), Null[string]()},
		{"null-absent", Null[int](), Absent[string](), Null[string]()},
		{"absent-present", Absent[int](), Of("foo"), Absent[string]()},
		{"absent-null", Absent[int](), Null[string](), Absent[string]()},
		{"absent-absent", Absent[int](), Absent[string](), Absent[string]()},
	}
	for _, tc := range cases {
		if got := And(tc.a, tc.b); got != tc.want {
			t.Fatalf("%s: And = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestOrGrid(t *testing.T) {
	cases := []struct {
		name string
		a, b Possible[int]
		want Possible[int]
	}{
		{"present-present", Of(2), Of(100), Of(2)},
		{"present-null", Of(2), Null[int](), Of(2)},
		{"present-absent", Of(2), Absent[int](), Of(2)},
		{"null-present", Null[int](), Of(100), Of(100)},
		{"null-null", Null[int](), Null[int](), Null[int]()},
		{"null-absent", Null[int](), Absent[int](), Absent[int]()},
		{"absent-present", Absent[int](), Of(100), Of(100)},
		{"absent-null", Absent[int](), Null[int](), Null[int]()},
		{"absent-absent", Absent[int](), Absent[int](), Absent[int]()},
	}
	for _, tc := range cases {
		if got := tc.a.Or(tc.b); got != tc.want {
			t.Fatalf("%s: Or = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestOrElse(t *testing.T) {
	called := false
	got := Of(2).OrElse(func() Possible[int] {
		called = true
		return Of(100)
	})
	if got != Of(2) || called {
		t.Fatalf("OrElse on Present evaluated the fallback: %v, called=%t", got, called)
	}

	if got := Null[int]().OrElse(func() Possible[int] { return Absent[int]() }); got != Absent[int]() {
		t.Fatalf("fallback state should pass through, got %v", got)
	}
	if got := Absent[int]().OrElse(func() Possible[int] { return Of(7) }); got != Of(7) {
		t.Fatalf("OrElse on Absent = %v", got)
	}
}

func TestAndThen(t *testing.T) {
	sq := func(x int) Possible[int] { return Of(x * x) }
	toNull := func(int) Possible[int] { return Null[int]() }
	toAbsent := func(int) Possible[int] { return Absent[int]() }

	if got := AndThen(AndThen(Of(2), sq), sq); got != Of(16) {
		t.Fatalf("chained AndThen = %v", got)
	}
	if got := AndThen(Of(2), toNull); got != Null[int]() {
		t.Fatalf("step returning Null should downgrade the chain, got %v", got)
	}
	if got := AndThen(Of(2), toAbsent); got != Absent[int]() {
		t.Fatalf("step returning Absent should downgrade the chain, got %v", got)
	}
	if got := AndThen(Null[int](), sq); got != Null[int]() {
		t.Fatalf("AndThen on Null = %v", got)
	}
	if got := AndThen(Absent[int](), sq); got != Absent[int]() {
		t.Fatalf("AndThen on Absent = %v", got)
	}
}

func TestAndThenSkipsFuncOnEmpty(t *testing.T) {
	for _, p := range []Possible[int]{Null[int](), Absent[int]()} {
		AndThen(p, func(int) Possible[int] {
			t.Fatalf("func called for %v", p)
			return p
		})
	}
}
