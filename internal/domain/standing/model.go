package standing

// Standing is one team's row in a competition table, taken verbatim from
// the provider.
type Standing struct {
	Position       int
	TeamName       string
	PlayedGames    int
	Won            int
	Draw           int
	Lost           int
	Points         int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
}

// Table is the row collection of one standings response. Rows keep the
// provider order.
type Table struct {
	Caption string
	Rows    []Standing
}
