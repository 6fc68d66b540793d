package gophermap

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/standings-gopher/internal/domain/competition"
	"github.com/riskibarqy/standings-gopher/internal/domain/standing"
)

const wantHeader = "Pos | Team                       | GP | PTS | W | D | L | G | GA | GD"

func sampleTable() standing.Table {
	return standing.Table{
		Caption: "Premier League",
		Rows: []standing.Standing{
			{Position: 2, TeamName: "Liverpool FC", PlayedGames: 8, Won: 7, Draw: 1, Lost: 0, Points: 22, GoalsFor: 9, GoalsAgainst: 3, GoalDifference: 6},
			{Position: 1, TeamName: "Arsenal FC", PlayedGames: 8, Won: 6, Draw: 1, Lost: 1, Points: 19, GoalsFor: 8, GoalsAgainst: 12, GoalDifference: -4},
			{Position: 3, TeamName: "Brighton & Hove Albion FC", PlayedGames: 8, Won: 5, Draw: 2, Lost: 1, Points: 17, GoalsFor: 7, GoalsAgainst: 5, GoalDifference: 2},
		},
	}
}

func TestHeader(t *testing.T) {
	t.Parallel()

	assert.Equal(t, wantHeader, Header())
}

func TestHeader_RoundTripColumnOrder(t *testing.T) {
	t.Parallel()

	parts := strings.Split(Header(), "|")
	labels := make([]string, 0, len(parts))
	for _, part := range parts {
		labels = append(labels, strings.TrimSpace(part))
	}

	want := make([]string, 0, len(Columns))
	for _, col := range Columns {
		want = append(want, col.Label)
	}
	assert.Equal(t, want, labels)

	keys := make([]string, 0, len(Columns))
	for _, col := range Columns {
		keys = append(keys, col.Key)
	}
	assert.Equal(t, []string{
		"position", "team", "played_games", "points", "won",
		"draw", "lost", "goals_for", "goals_against", "goal_difference",
	}, keys)
}

func TestFormatRow_PadsEachFieldToColumnWidth(t *testing.T) {
	t.Parallel()

	row := FormatRow(standing.Standing{
		Position: 1, TeamName: "Arsenal FC", PlayedGames: 8, Points: 19,
		Won: 6, Draw: 1, Lost: 1, GoalsFor: 8, GoalsAgainst: 5, GoalDifference: 3,
	})
	assert.Equal(t, "1   | Arsenal FC                 | 8  | 19  | 6 | 1 | 1 | 8 | 5  | 3 ", row)

	fields := strings.Split(row, ColumnSeparator)
	require.Len(t, fields, len(Columns))
	for i, col := range Columns {
		assert.Equal(t, col.Width, utf8.RuneCountInString(fields[i]), "column %s", col.Key)
	}
}

func TestFormatRow_WideValuesOverflowWithoutTruncation(t *testing.T) {
	t.Parallel()

	longName := "Wolverhampton Wanderers Football Club"
	row := FormatRow(standing.Standing{
		Position: 20, TeamName: longName, PlayedGames: 38, Points: 100,
		Won: 32, Draw: 4, Lost: 2, GoalsFor: 106, GoalsAgainst: 27, GoalDifference: -25,
	})

	fields := strings.Split(row, ColumnSeparator)
	require.Len(t, fields, len(Columns))
	assert.Equal(t, longName, fields[1])
	assert.Equal(t, "32", fields[4])
	assert.Equal(t, "106", fields[7])
	assert.Equal(t, "-25", fields[9])
	for i, col := range Columns {
		assert.GreaterOrEqual(t, utf8.RuneCountInString(fields[i]), col.Width, "column %s", col.Key)
	}
}

func TestFormatRow_NonASCIITeamNamePadsByCharacterCount(t *testing.T) {
	cases := []struct {
		name string
		team string
	}{
		{name: "latin with umlaut", team: "FC Bayern München"},
		{name: "cjk", team: "浦和レッズ"},
		{name: "accented", team: "Olympique de Marseille é"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			row := FormatRow(standing.Standing{Position: 1, TeamName: tc.team})
			fields := strings.Split(row, ColumnSeparator)
			require.Len(t, fields, len(Columns))
			assert.Equal(t, 26, utf8.RuneCountInString(fields[1]))
			assert.Equal(t, tc.team, strings.TrimRight(fields[1], " "))
		})
	}
}

func TestFormatRow_IgnoresEastAsianLocale(t *testing.T) {
	t.Setenv("RUNEWIDTH_EASTASIAN", "1")
	t.Setenv("LC_ALL", "ja_JP.UTF-8")

	row := FormatRow(standing.Standing{Position: 1, TeamName: "FC Bayern München"})
	fields := strings.Split(row, ColumnSeparator)
	require.Len(t, fields, len(Columns))
	assert.Equal(t, "FC Bayern München         ", fields[1])
}

func TestRenderTable_HeaderAndOneLinePerRowInOrder(t *testing.T) {
	t.Parallel()

	table := sampleTable()
	out := RenderTable(competition.Competition{ID: 2021, Name: "Premier League"}, table, Options{})

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 2+len(table.Rows))
	assert.Equal(t, "Premier League", lines[0])
	assert.Equal(t, wantHeader, lines[1])
	for i, row := range table.Rows {
		assert.Equal(t, FormatRow(row), lines[i+2])
	}
	assert.False(t, strings.HasSuffix(out, Terminator))
}

func TestRenderTable_MenuAppendsTerminator(t *testing.T) {
	t.Parallel()

	out := RenderTable(competition.Competition{ID: 2021, Name: "Premier League"}, sampleTable(), Options{Menu: true})
	assert.True(t, strings.HasSuffix(out, "\n\r\n."))
}

func TestRenderTable_FallsBackToCaption(t *testing.T) {
	t.Parallel()

	out := RenderTable(competition.Competition{ID: 2021}, standing.Table{Caption: "Premier League 2017/18"}, Options{})
	assert.Equal(t, "Premier League 2017/18\n"+wantHeader+"\n", out)
}
