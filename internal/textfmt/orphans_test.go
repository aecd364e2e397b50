package textfmt

import (
	"strings"
	"testing"
)

func TestFixOrphans_Empty(t *testing.T) {
	if result := FixOrphans(""); result != "" {
		t.Errorf("FixOrphans(\"\") = %q, expected empty string", result)
	}
}

func TestFixOrphans_BindsOrphanWords(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Liceum w Krakowie", "Liceum w Krakowie"},
		{"Szkoła nr 5", "Szkoła nr 5"},
		{"Liceum im. Kopernika", "Liceum im. Kopernika"},
		{"woj. mazowieckie", "woj. mazowieckie"},
		// Case-insensitive match keeps the original casing
		{"Na wzgórzu", "Na wzgórzu"},
		// Every occurrence, not just the first
		{"szkoła w Gdyni i w Sopocie", "szkoła w Gdyni i w Sopocie"},
		// Chains of orphans bind all the way through
		{"a i w Warszawie", "a i w Warszawie"},
		// No orphan, no change
		{"Jan Kowalski", "Jan Kowalski"},
	}

	for _, test := range tests {
		result := FixOrphans(test.input)
		if result != test.expected {
			t.Errorf("FixOrphans(%q) = %q, expected %q", test.input, result, test.expected)
		}
	}
}

func TestFixOrphans_MovesParenthesesToNewLine(t *testing.T) {
	result := FixOrphans("Technikum Mechaniczne (Zespół Szkół)")
	expected := "Technikum Mechaniczne<br>(Zespół Szkół)"
	if result != expected {
		t.Errorf("FixOrphans() = %q, expected %q", result, expected)
	}
}

func TestFixOrphans_EmphasizesOlimpiada(t *testing.T) {
	result := FixOrphans("Olimpiada Fizyczna")
	if !strings.Contains(result, "<b>Olimpiada</b>") {
		t.Errorf("expected emphasis markup in %q", result)
	}

	// Emphasis applies at every occurrence
	result = FixOrphans("Olimpiada i Olimpiada")
	if strings.Count(result, "<b>Olimpiada</b>") != 2 {
		t.Errorf("expected two emphasized occurrences in %q", result)
	}
}

func TestFixOrphans_OrderOfOperations(t *testing.T) {
	// Parenthesis relocation and orphan binding must not interfere, and
	// emphasis must be applied last so it cannot itself be broken
	result := FixOrphans("Olimpiada Wiedzy o Polsce (etap centralny)")
	if !strings.HasPrefix(result, "<b>Olimpiada</b>") {
		t.Errorf("expected emphasized prefix in %q", result)
	}
	if !strings.Contains(result, "o Polsce") {
		t.Errorf("expected bound orphan in %q", result)
	}
	if !strings.Contains(result, "<br>(etap centralny)") {
		t.Errorf("expected relocated parenthesis in %q", result)
	}
}
