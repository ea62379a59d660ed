package dialect

import (
	"testing"
)

func TestParseAndName(t *testing.T) {
	cases := []struct {
		in   string
		want ID
	}{
		{"c99", C99},
		{"C90", C89},
		{"c18", C17},
		{"c++17", CPP17},
		{"knr", CKnR},
	}
	for _, c := range cases {
		got, err := Parse(c.in)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("Parse(%q) = %s, want %s", c.in, Name(got), Name(c.want))
		}
	}
	if _, err := Parse("c++96"); err == nil {
		t.Error("Parse(c++96) succeeded, want error")
	}
}

func TestRanges(t *testing.T) {
	if got := CMin(C11); got != C11|C17|C23 {
		t.Errorf("CMin(C11) = %v", got)
	}
	if got := CMax(C95); got != CKnR|C89|C95 {
		t.Errorf("CMax(C95) = %v", got)
	}
	if got := CPPMin(CPP20); got != CPP20|CPP23 {
		t.Errorf("CPPMin(CPP20) = %v", got)
	}
	if got := CPPMax(CPP03); got != CPP98|CPP03 {
		t.Errorf("CPPMax(CPP03) = %v", got)
	}
	if got := Min(C99); got != CMin(C99)|CPP {
		t.Errorf("Min(C99) = %v", got)
	}
}

func TestFeatureMembership(t *testing.T) {
	if VLAs.Intersects(CPP) {
		t.Error("VLAs legal in C++")
	}
	if !VLAs.Has(C99) || VLAs.Has(C89) {
		t.Error("VLAs range wrong")
	}
	if Register.Has(CPP17) {
		t.Error("register still legal in c++17")
	}
	if !Register.Has(CPP14) || !Register.Has(C23) {
		t.Error("register range wrong")
	}
	if TentativeDefs.Intersects(CPP) {
		t.Error("tentative definitions legal in C++")
	}
	if !Lambdas.Has(CPP11) || Lambdas.Has(CPP03) || Lambdas.Intersects(AllC) {
		t.Error("lambda range wrong")
	}
}

func TestStringRendering(t *testing.T) {
	cases := []struct {
		id   ID
		want string
	}{
		{None, "no dialect"},
		{All, "all dialects"},
		{C99, "c99"},
		{CPPMin(CPP11), "c++11 or later"},
	}
	for _, c := range cases {
		if got := c.id.String(); got != c.want {
			t.Errorf("String(%#x) = %q, want %q", uint32(c.id), got, c.want)
		}
	}
}
