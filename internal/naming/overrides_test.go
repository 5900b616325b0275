package naming

import (
	"errors"
	"testing"
	"unsafe"
)

func TestApplyOverrides(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		changed bool
	}{
		{"Don T Starve", "Don't Starve", true},
		{"It S A Trap", "It's A Trap", true},
		{"Mac Gyver", "MacGyver", true},
		{"Testy Mac Johnson", "Testy MacJohnson", true},
		{"Mc Pixel", "McPixel", true},
		{"Star Wars Rebel Assault", "Star Wars: Rebel Assault", true},
		{"X-Com Db 1.4", "X-Com DB 1.4", true},
		{"Djgpp", "DJGPP", true},
		{"IN Vedit", "INVedit", true},
		{"Firefox Ux", "Firefox UX", true},
		{"Beatblastersiii", "Beatblasters III", true},
		{"Unxwb", "UnXWB", true},
		{"Scumm VM", "ScummVM", true},
		{"YS", "Ys", true},
		{"Super Meat Boy", "Super Meat Boy", false},
		{"Machinarium", "Machinarium", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, changed := ApplyOverrides(tt.input)
			if got != tt.want || changed != tt.changed {
				t.Fatalf("ApplyOverrides(%q) = (%q, %v), want (%q, %v)", tt.input, got, changed, tt.want, tt.changed)
			}
			again, changedAgain := ApplyOverrides(got)
			if again != got || changedAgain {
				t.Errorf("ApplyOverrides not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestApplyOverridesReturnsInputWhenUnchanged(t *testing.T) {
	input := "Gunpoint Deluxe Edition"
	got, changed := ApplyOverrides(input)
	if changed {
		t.Fatalf("expected no change, got %q", got)
	}
	if unsafe.StringData(got) != unsafe.StringData(input) {
		t.Fatal("expected the input string to be returned without copying")
	}
}

func TestApplyOverridesAllocations(t *testing.T) {
	input := "Gunpoint Deluxe Edition"
	allocs := testing.AllocsPerRun(100, func() {
		_, _ = ApplyOverrides(input)
	})
	if allocs != 0 {
		t.Fatalf("expected zero allocations, got %v", allocs)
	}
}

func TestOverridesRunInOrder(t *testing.T) {
	rules, err := CompileOverrides([]OverrideSpec{
		{Pattern: `foo`, Replacement: "bar"},
		{Pattern: `bar`, Replacement: "baz"},
	})
	if err != nil {
		t.Fatalf("CompileOverrides: %v", err)
	}
	got, changed := rules.Apply("foo and bar")
	if got != "baz and baz" || !changed {
		t.Fatalf("Apply = (%q, %v)", got, changed)
	}
}

func TestCompileOverridesInvalidPattern(t *testing.T) {
	_, err := CompileOverrides([]OverrideSpec{
		{Pattern: `ok`, Replacement: "fine"},
		{Pattern: `(unclosed`, Replacement: "x"},
	})
	if !errors.Is(err, ErrInvalidPattern) {
		t.Fatalf("expected ErrInvalidPattern, got %v", err)
	}
}
