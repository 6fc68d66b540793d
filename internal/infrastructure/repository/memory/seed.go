package memory

import "github.com/riskibarqy/standings-gopher/internal/domain/competition"

const (
	CompetitionIDChampionship  = 2016
	CompetitionIDPremierLeague = 2021
	CompetitionIDLigue1        = 2015
	CompetitionIDBundesliga    = 2002
	CompetitionIDSerieA        = 2019
	CompetitionIDEredivisie    = 2003
	CompetitionIDPrimeiraLiga  = 2017
)

// SeedCompetitions is the default registry, in index page order.
func SeedCompetitions() []competition.Competition {
	return []competition.Competition{
		{ID: CompetitionIDChampionship, Name: "Championship"},
		{ID: CompetitionIDPremierLeague, Name: "Premier League"},
		{ID: CompetitionIDLigue1, Name: "Ligue 1"},
		{ID: CompetitionIDBundesliga, Name: "Bundesliga"},
		{ID: CompetitionIDSerieA, Name: "Serie A"},
		{ID: CompetitionIDEredivisie, Name: "Eredivisie"},
		{ID: CompetitionIDPrimeiraLiga, Name: "Primeira Liga"},
	}
}
