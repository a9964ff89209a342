package estimator

import (
	"testing"

	"brickonomics/internal/domain/entities"
)

func TestOptimizations(t *testing.T) {
	costs := entities.CostAnalysis{MaterialCost: 542500, LaborCost: 1140000, TotalCost: 2103125}

	got := Optimizations(entities.ProjectTypeResidential, costs)
	if len(got) != 3 {
		t.Fatalf("expected 3 suggestions, got %d", len(got))
	}

	if got[0].Title != "Alternative Material Selection" || got[0].PotentialSavings != 81375 || got[0].NetSavings != 54250 {
		t.Fatalf("unexpected material suggestion: %+v", got[0])
	}
	if got[1].Difficulty != entities.DifficultyEasy || got[1].PotentialSavings != 136800 || got[1].ImplementationCost != 22800 {
		t.Fatalf("unexpected labor suggestion: %+v", got[1])
	}
	if got[2].Difficulty != entities.DifficultyHard || got[2].NetSavings != 147218.75 {
		t.Fatalf("unexpected design suggestion: %+v", got[2])
	}
}

func TestOptimizations_ZeroCostsOnlyDesign(t *testing.T) {
	got := Optimizations(entities.ProjectTypeCommercial, entities.CostAnalysis{})
	if len(got) != 1 || got[0].Title != "Structural Design Optimization" {
		t.Fatalf("unexpected suggestions: %+v", got)
	}
	if got[0].PotentialSavings != 0 {
		t.Fatalf("expected zero savings, got %v", got[0].PotentialSavings)
	}
}
