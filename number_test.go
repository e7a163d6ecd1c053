// number_test.go
package steel

import (
	"math/big"
	"testing"
)

func Test_Int_ParseSmall(t *testing.T) {
	n, ok := ParseInt("9223372036854775807")
	if !ok || n.IsBig() {
		t.Fatalf("int64 max should stay inline, got %v", n)
	}
	if v, ok := n.Int64(); !ok || v != 9223372036854775807 {
		t.Fatalf("wrong value: %v", n)
	}
}

func Test_Int_ParseBig(t *testing.T) {
	n, ok := ParseInt("9223372036854775808")
	if !ok || !n.IsBig() {
		t.Fatalf("int64 max + 1 should promote, got %v", n)
	}
	if _, ok := n.Int64(); ok {
		t.Fatalf("Int64 should refuse a promoted value")
	}
	want := new(big.Int)
	want.SetString("9223372036854775808", 10)
	if n.BigInt().Cmp(want) != 0 {
		t.Fatalf("wrong value: %v", n)
	}
}

func Test_Int_ParseRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "12ab", "1.5", "0x10"} {
		if _, ok := ParseInt(s); ok {
			t.Fatalf("ParseInt(%q) should fail", s)
		}
	}
}

// The inline/promoted split is a representation detail only; equality runs
// on values.
func Test_Int_EqualAcrossRepresentations(t *testing.T) {
	small := IntFromInt64(42)
	promoted := intFromBig(big.NewInt(42))
	if promoted.IsBig() {
		t.Fatalf("a value that fits must normalize to the inline form")
	}
	if !small.Equal(promoted) {
		t.Fatalf("42 != 42 across representations")
	}

	a, _ := ParseInt("11111111111111111111")
	b, _ := ParseInt("11111111111111111111")
	if !a.Equal(b) {
		t.Fatalf("equal big values compare unequal")
	}
	if a.Equal(small) {
		t.Fatalf("distinct values compare equal")
	}
}

func Test_Int_String(t *testing.T) {
	cases := []string{"0", "-7", "9223372036854775808", "-9223372036854775809"}
	for _, s := range cases {
		n, ok := ParseInt(s)
		if !ok {
			t.Fatalf("ParseInt(%q) failed", s)
		}
		if n.String() != s {
			t.Fatalf("String() = %q, want %q", n.String(), s)
		}
	}
	if IntFromInt64(0).String() != "0" {
		t.Fatalf("zero prints wrong")
	}
}

func Test_Rational_String(t *testing.T) {
	r := Rational{Num: IntFromInt64(1), Den: IntFromInt64(4)}
	if r.String() != "1/4" {
		t.Fatalf("got %q", r)
	}
	// Unreduced and sign-unnormalized, exactly as written.
	r = Rational{Num: IntFromInt64(2), Den: IntFromInt64(-4)}
	if r.String() != "2/-4" {
		t.Fatalf("got %q", r)
	}
}
