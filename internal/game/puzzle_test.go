package game

import "testing"

func TestValidateAcceptsWellFormedPuzzle(t *testing.T) {
	if err := testPuzzle().Validate(); err != nil {
		t.Fatalf("Validate() on well-formed puzzle: %v", err)
	}
}

func TestValidateRejectsMalformedPuzzles(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Puzzle)
	}{
		{
			name:   "missing puzzle id",
			mutate: func(p *Puzzle) { p.ID = "" },
		},
		{
			name:   "nine categories",
			mutate: func(p *Puzzle) { p.Categories = p.Categories[:9] },
		},
		{
			name: "duplicate category id",
			mutate: func(p *Puzzle) {
				p.Categories[3].ID = p.Categories[2].ID
			},
		},
		{
			name: "short category",
			mutate: func(p *Puzzle) {
				p.Categories[0].Items = p.Categories[0].Items[:9]
			},
		},
		{
			name: "duplicate item across categories",
			mutate: func(p *Puzzle) {
				p.Categories[1].Items[0] = p.Categories[0].Items[0]
			},
		},
		{
			name: "duplicate item within a category",
			mutate: func(p *Puzzle) {
				p.Categories[4].Items[5] = p.Categories[4].Items[4]
			},
		},
		{
			name:   "difficulty out of range",
			mutate: func(p *Puzzle) { p.Categories[0].Difficulty = 11 },
		},
		{
			name:   "empty item",
			mutate: func(p *Puzzle) { p.Categories[7].Items[3] = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testPuzzle()
			tt.mutate(&p)
			if err := p.Validate(); err == nil {
				t.Error("Validate() accepted a malformed puzzle")
			}
		})
	}
}

func TestNewSessionRejectsMalformedPuzzle(t *testing.T) {
	p := testPuzzle()
	p.Categories = p.Categories[:5]

	if _, err := NewSession(p, 1); err == nil {
		t.Error("NewSession() accepted a malformed puzzle")
	}
}

func TestCategoryByID(t *testing.T) {
	p := testPuzzle()

	cat := p.CategoryByID("cat-fruits")
	if cat == nil {
		t.Fatal("CategoryByID(cat-fruits) returned nil")
	}
	if cat.Name != "Fruits" {
		t.Errorf("CategoryByID(cat-fruits).Name = %q, want Fruits", cat.Name)
	}

	if p.CategoryByID("cat-nope") != nil {
		t.Error("CategoryByID(cat-nope) should return nil")
	}
}
