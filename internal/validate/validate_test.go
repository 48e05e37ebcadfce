package validate_test

import (
	"strings"
	"testing"

	"closetluna/internal/validate"
)

func TestPayment(t *testing.T) {
	if got, ok := validate.Payment(" Yappy "); !ok || got != "yappy" {
		t.Fatalf("want yappy, got %q ok=%v", got, ok)
	}
	if _, ok := validate.Payment("efectivo"); !ok {
		t.Fatal("efectivo should be accepted")
	}
	for _, bad := range []string{"", "tarjeta", "yappy efectivo"} {
		if _, ok := validate.Payment(bad); ok {
			t.Fatalf("%q should be rejected", bad)
		}
	}
}

func TestID(t *testing.T) {
	if _, ok := validate.ID("abc-123_X"); !ok {
		t.Fatal("plain id should pass")
	}
	for _, bad := range []string{"", "a b", "x/../y", strings.Repeat("a", 65)} {
		if _, ok := validate.ID(bad); ok {
			t.Fatalf("%q should be rejected", bad)
		}
	}
}

func TestNameAndPhoneAreFreeText(t *testing.T) {
	if got, ok := validate.Name("  María González "); !ok || got != "María González" {
		t.Fatalf("got %q ok=%v", got, ok)
	}
	if _, ok := validate.Name("   "); ok {
		t.Fatal("blank name should be rejected")
	}
	if got, ok := validate.Phone("+507 6123 4567"); !ok || got != "+507 6123 4567" {
		t.Fatalf("got %q ok=%v", got, ok)
	}
	if _, ok := validate.Phone(""); ok {
		t.Fatal("empty phone should be rejected")
	}
}

func TestQCapsLength(t *testing.T) {
	if got := validate.Q("  vestido  "); got != "vestido" {
		t.Fatalf("got %q", got)
	}
	long := strings.Repeat("a", 80)
	if got := validate.Q(long); len(got) != 50 {
		t.Fatalf("want capped to 50, got %d", len(got))
	}
}
