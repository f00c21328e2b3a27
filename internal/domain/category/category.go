package category

import "strings"

// Category groups questions of the bank. The four fixed values are the only
// ones a question can carry; All and Mixed are selector/marker values.
type Category string

const (
	RoadSigns    Category = "road-signs"
	TrafficRules Category = "traffic-rules"
	FirstAid     Category = "first-aid"
	Scenarios    Category = "scenarios"

	// All selects the whole bank.
	All Category = "all"
	// Mixed tags results of sessions drawn from the whole bank.
	Mixed Category = "mixed"
)

var titles = map[Category]string{
	RoadSigns:    "Road Signs",
	TrafficRules: "Traffic Rules",
	FirstAid:     "First Aid",
	Scenarios:    "Scenarios",
	All:          "Mixed Questions",
	Mixed:        "Mixed Questions",
}

// List returns the fixed categories in display order.
func List() []Category {
	return []Category{RoadSigns, TrafficRules, FirstAid, Scenarios}
}

// Parse normalizes user input. An empty value means All.
func Parse(s string) Category {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return All
	}
	return Category(s)
}

// Valid reports whether c is one of the four fixed categories.
func (c Category) Valid() bool {
	switch c {
	case RoadSigns, TrafficRules, FirstAid, Scenarios:
		return true
	}
	return false
}

// IsAll reports whether c selects the whole bank.
func (c Category) IsAll() bool {
	return c == All || c == ""
}

// ResultTag is the category recorded on a completed result: the category
// itself for a filtered session, Mixed for a whole-bank session.
func (c Category) ResultTag() Category {
	if c.IsAll() {
		return Mixed
	}
	return c
}

func (c Category) Title() string {
	if t, ok := titles[c]; ok {
		return t
	}
	return string(c)
}

func (c Category) String() string {
	return string(c)
}
