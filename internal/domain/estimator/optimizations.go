package estimator

import (
	"fmt"

	"brickonomics/internal/domain/entities"
)

// Optimizations suggests savings for a project from its cost analysis.
// Material and labor suggestions appear only when those costs are positive;
// the structural design suggestion is always present.
func Optimizations(pt entities.ProjectType, costs entities.CostAnalysis) []entities.Optimization {
	suggestions := make([]entities.Optimization, 0, 3)

	if costs.MaterialCost > 0 {
		suggestions = append(suggestions, entities.Optimization{
			Title:              "Alternative Material Selection",
			Description:        fmt.Sprintf("Consider using alternative materials that offer similar properties at a lower cost for %s projects.", pt),
			PotentialSavings:   Round(costs.MaterialCost * 0.15),
			ImplementationCost: Round(costs.MaterialCost * 0.05),
			NetSavings:         Round(costs.MaterialCost * 0.10),
			Difficulty:         entities.DifficultyMedium,
			Timeframe:          "2-3 weeks",
		})
	}

	if costs.LaborCost > 0 {
		suggestions = append(suggestions, entities.Optimization{
			Title:              "Optimized Labor Schedule",
			Description:        "Implement a more efficient work schedule to reduce overtime and improve productivity.",
			PotentialSavings:   Round(costs.LaborCost * 0.12),
			ImplementationCost: Round(costs.LaborCost * 0.02),
			NetSavings:         Round(costs.LaborCost * 0.10),
			Difficulty:         entities.DifficultyEasy,
			Timeframe:          "1 week",
		})
	}

	suggestions = append(suggestions, entities.Optimization{
		Title:              "Structural Design Optimization",
		Description:        "Optimize the structural design to reduce material usage while maintaining safety standards.",
		PotentialSavings:   Round(costs.TotalCost * 0.10),
		ImplementationCost: Round(costs.TotalCost * 0.03),
		NetSavings:         Round(costs.TotalCost * 0.07),
		Difficulty:         entities.DifficultyHard,
		Timeframe:          "4-6 weeks",
	})

	return suggestions
}
