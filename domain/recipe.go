package domain

// Recipe is the minimal view of a recipe needed to open a cooking session.
// Full recipe metadata lives in the catalog service, not here.
type Recipe struct {
	ID        string
	Title     string
	StepCount int
}
