package utils

import (
	"strings"
	"testing"
)

func TestGenerateReference(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		ref := GenerateReference()
		if len(ref) != 10 {
			t.Fatalf("expected a 10-character reference, got %q", ref)
		}
		for _, r := range ref {
			if !strings.ContainsRune(idAlphabet, r) {
				t.Fatalf("reference %q contains %q outside the alphabet", ref, r)
			}
		}
		if seen[ref] {
			t.Fatalf("reference %q generated twice in 100 draws", ref)
		}
		seen[ref] = true
	}
}
