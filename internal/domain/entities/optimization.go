package entities

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Optimization is a cost-saving suggestion derived from a cost analysis.
type Optimization struct {
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	PotentialSavings   float64    `json:"potentialSavings"`
	ImplementationCost float64    `json:"implementationCost"`
	NetSavings         float64    `json:"netSavings"`
	Difficulty         Difficulty `json:"difficulty"`
	Timeframe          string     `json:"timeframe"`
}
