package category_test

import (
	"testing"

	"github.com/roadready/backend/internal/domain/category"
)

func TestList(t *testing.T) {
	cats := category.List()

	if len(cats) != 4 {
		t.Fatalf("expected 4 categories, got %d", len(cats))
	}

	for _, c := range cats {
		if !c.Valid() {
			t.Errorf("expected %q to be valid", c)
		}
	}
}

func TestValid_RejectsSelectorValues(t *testing.T) {
	for _, c := range []category.Category{category.All, category.Mixed, "", "nonexistent-category"} {
		if c.Valid() {
			t.Errorf("expected %q to be invalid", c)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want category.Category
	}{
		{"", category.All},
		{"  ", category.All},
		{"Road-Signs", category.RoadSigns},
		{"all", category.All},
		{"unknown", category.Category("unknown")},
	}

	for _, tt := range tests {
		if got := category.Parse(tt.in); got != tt.want {
			t.Errorf("Parse(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestResultTag(t *testing.T) {
	if got := category.All.ResultTag(); got != category.Mixed {
		t.Errorf("expected %q, got %q", category.Mixed, got)
	}
	if got := category.Category("").ResultTag(); got != category.Mixed {
		t.Errorf("expected %q, got %q", category.Mixed, got)
	}
	if got := category.FirstAid.ResultTag(); got != category.FirstAid {
		t.Errorf("expected %q, got %q", category.FirstAid, got)
	}
}

func TestTitle(t *testing.T) {
	if got := category.TrafficRules.Title(); got != "Traffic Rules" {
		t.Errorf("expected %q, got %q", "Traffic Rules", got)
	}
	if got := category.Category("other").Title(); got != "other" {
		t.Errorf("expected %q, got %q", "other", got)
	}
}
