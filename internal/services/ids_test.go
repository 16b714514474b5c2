package services

import (
	"strings"
	"testing"
)

func TestIDGeneratorShape(t *testing.T) {
	gen := NewIDGenerator()

	cases := []struct {
		prefix string
		make   func() string
	}{
		{"path_", gen.PathID},
		{"item_", gen.ItemID},
		{"art_", gen.ArticleID},
	}

	for _, tc := range cases {
		id := tc.make()
		if !strings.HasPrefix(id, tc.prefix) {
			t.Fatalf("id %q missing prefix %q", id, tc.prefix)
		}
		suffix := strings.TrimPrefix(id, tc.prefix)
		if len(suffix) != 8 {
			t.Fatalf("id %q suffix length = %d, want 8", id, len(suffix))
		}
		for _, r := range suffix {
			if !strings.ContainsRune("0123456789abcdef", r) {
				t.Fatalf("id %q has non hex rune %q", id, r)
			}
		}
	}
}

func TestIDGeneratorUniqueness(t *testing.T) {
	gen := NewIDGenerator()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := gen.PathID()
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}
