// Package topics holds the curriculum topic hierarchy used to suggest
// remedial material when a student struggles with a specific concept.
package topics

import "prep-service/internal/analytics"

// Hierarchy maps subject -> topic -> guide. It satisfies the analytics
// engine's TopicLookup and is safe for concurrent reads; the data is fixed
// at startup.
type Hierarchy struct {
	subjects map[string]map[string]analytics.TopicGuide
}

// NewHierarchy returns the built-in curriculum hierarchy.
func NewHierarchy() *Hierarchy {
	return &Hierarchy{subjects: defaultHierarchy}
}

// Lookup resolves a subject+topic pair. The second return is false on a
// miss; callers fall back to generic recommendation text.
func (h *Hierarchy) Lookup(subject, topic string) (analytics.TopicGuide, bool) {
	byTopic, ok := h.subjects[subject]
	if !ok {
		return analytics.TopicGuide{}, false
	}
	guide, ok := byTopic[topic]
	return guide, ok
}

var defaultHierarchy = map[string]map[string]analytics.TopicGuide{
	"Mathematics": {
		"Algebra": {
			Foundations: []string{"Integers", "Order of Operations", "Basic Arithmetic"},
			Tips:        "Practice simplifying expressions before solving equations.",
		},
		"Linear Equations": {
			Foundations: []string{"Algebra", "Variables", "Balancing Equations"},
			Tips:        "Remember: what you do to one side, you must do to the other.",
		},
		"Geometry": {
			Foundations: []string{"Shapes", "Angles", "Measurement"},
			Tips:        "Visualize the problem. Drawing a diagram often helps.",
		},
		"Numbers": {
			Foundations: []string{"Place Value", "Counting"},
			Tips:        "Master your multiplication tables.",
		},
		"Statistics": {
			Foundations: []string{"Data Collection", "Averages", "Graphing"},
			Tips:        "Check your scale when reading graphs.",
		},
	},
	"Integrated Science": {
		"Matter": {
			Foundations: []string{"States of Matter", "Atoms"},
			Tips:        "Focus on the properties of solids, liquids, and gases.",
		},
		"Living Things": {
			Foundations: []string{"Cells", "Characteristics of Life"},
			Tips:        "Understand the difference between plants and animals.",
		},
		"Energy": {
			Foundations: []string{"Forms of Energy", "Work"},
			Tips:        "Energy cannot be created or destroyed, only transformed.",
		},
		"Forces": {
			Foundations: []string{"Push and Pull", "Motion"},
			Tips:        "Draw force diagrams to see all forces acting on an object.",
		},
	},
	"English Language": {
		"Grammar": {
			Foundations: []string{"Parts of Speech", "Sentence Structure"},
			Tips:        "Read aloud to check if it sounds correct.",
		},
		"Comprehension": {
			Foundations: []string{"Vocabulary", "Reading Speed"},
			Tips:        "Read the questions before reading the passage.",
		},
		"Composition": {
			Foundations: []string{"Spelling", "Punctuation", "Paragraphing"},
			Tips:        "Plan your essay before you start writing.",
		},
	},
}
