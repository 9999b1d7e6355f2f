package ere

import (
	"errors"
	"testing"
)

func TestFilterSetKeep(t *testing.T) {
	var f FilterSet
	if err := f.Include("^svc-"); err != nil {
		t.Fatalf("Include: %v", err)
	}
	if err := f.Exclude("-archived$"); err != nil {
		t.Fatalf("Exclude: %v", err)
	}

	cases := map[string]bool{
		"svc-payments":          true,
		"svc-payments-archived": false,
		"payments":              false,
	}

	for name, want := range cases {
		if got, err := f.Keep(name); err != nil || got != want {
			t.Fatalf("Keep(%q): got (%v, %v), want %v", name, got, err, want)
		}
	}
}

func TestFilterSetZeroValueKeepsEverything(t *testing.T) {
	var f FilterSet

	if ok, err := f.Keep("anything"); err != nil || !ok {
		t.Fatalf("Keep on empty set: got (%v, %v), want true", ok, err)
	}
}

func TestFilterSetBadPattern(t *testing.T) {
	var f FilterSet

	if err := f.Include("["); !errors.Is(err, ErrSyntax) {
		t.Fatalf("Include with bad pattern: got %v, want ErrSyntax", err)
	}
	if err := f.Exclude("(?=x)"); !errors.Is(err, ErrSyntax) {
		t.Fatalf("Exclude with bad pattern: got %v, want ErrSyntax", err)
	}

	// Failed rules must not leave the set half-built.
	if ok, _ := f.Keep("anything"); !ok {
		t.Fatalf("bad patterns added rules to the set")
	}
}

func TestFilterSetMultipleIncludes(t *testing.T) {
	var f FilterSet
	for _, p := range []string{"^svc-", "pay"} {
		if err := f.Include(p); err != nil {
			t.Fatalf("Include(%q): %v", p, err)
		}
	}

	if ok, _ := f.Keep("svc-payments"); !ok {
		t.Fatalf("expected name matching every include to pass")
	}
	if ok, _ := f.Keep("svc-ledger"); ok {
		t.Fatalf("name matching only one include passed")
	}
}
