package topics

import "testing"

func TestLookupHit(t *testing.T) {
	hierarchy := NewHierarchy()

	guide, ok := hierarchy.Lookup("Mathematics", "Algebra")
	if !ok {
		t.Fatal("Expected a hit for Mathematics/Algebra")
	}
	if len(guide.Foundations) == 0 {
		t.Error("Expected foundations for Algebra")
	}
	if guide.Tips == "" {
		t.Error("Expected a tip for Algebra")
	}
}

func TestLookupMiss(t *testing.T) {
	hierarchy := NewHierarchy()

	testCases := []struct {
		name    string
		subject string
		topic   string
	}{
		{"unknown subject", "Philosophy", "Logic"},
		{"unknown topic", "Mathematics", "Topology"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, ok := hierarchy.Lookup(tc.subject, tc.topic); ok {
				t.Errorf("Expected a miss for %s/%s", tc.subject, tc.topic)
			}
		})
	}
}
