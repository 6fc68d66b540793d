// Package gophermap renders standings as fixed-width plain text and the
// gopher menu index that links to them.
package gophermap

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/valyala/bytebufferpool"

	"github.com/riskibarqy/standings-gopher/internal/domain/competition"
	"github.com/riskibarqy/standings-gopher/internal/domain/standing"
)

// Column is one fixed-width field of a standings line.
type Column struct {
	Key   string
	Label string
	Width int
}

// Columns is the declared column order of every standings line.
var Columns = []Column{
	{Key: "position", Label: "Pos", Width: 3},
	{Key: "team", Label: "Team", Width: 26},
	{Key: "played_games", Label: "GP", Width: 2},
	{Key: "points", Label: "PTS", Width: 3},
	{Key: "won", Label: "W", Width: 1},
	{Key: "draw", Label: "D", Width: 1},
	{Key: "lost", Label: "L", Width: 1},
	{Key: "goals_for", Label: "G", Width: 1},
	{Key: "goals_against", Label: "GA", Width: 2},
	{Key: "goal_difference", Label: "GD", Width: 2},
}

const ColumnSeparator = " | "

// Options controls the legacy menu wrapping.
type Options struct {
	// Menu adds the index banner and the menu terminator.
	Menu bool
}

// Header is the column label line, without a line ending.
func Header() string {
	labels := make([]string, len(Columns))
	for i, col := range Columns {
		labels[i] = col.Label
	}
	return formatLine(labels)
}

// FormatRow renders one standing as a line, without a line ending.
func FormatRow(s standing.Standing) string {
	return formatLine([]string{
		strconv.Itoa(s.Position),
		s.TeamName,
		strconv.Itoa(s.PlayedGames),
		strconv.Itoa(s.Points),
		strconv.Itoa(s.Won),
		strconv.Itoa(s.Draw),
		strconv.Itoa(s.Lost),
		strconv.Itoa(s.GoalsFor),
		strconv.Itoa(s.GoalsAgainst),
		strconv.Itoa(s.GoalDifference),
	})
}

// formatLine pads each value on the right to its column width, counted in
// characters. Wider values are kept whole and push the following columns out.
func formatLine(values []string) string {
	var b strings.Builder
	for i, col := range Columns {
		if i > 0 {
			b.WriteString(ColumnSeparator)
		}
		value := ""
		if i < len(values) {
			value = values[i]
		}
		b.WriteString(padRight(value, col.Width))
	}
	return b.String()
}

func padRight(value string, width int) string {
	if n := utf8.RuneCountInString(value); n < width {
		return value + strings.Repeat(" ", width-n)
	}
	return value
}

// RenderTable renders the page of one competition: the title line, the
// header and one line per row in table order.
func RenderTable(c competition.Competition, table standing.Table, opts Options) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	title := c.Name
	if title == "" {
		title = table.Caption
	}

	_, _ = buf.WriteString(title)
	_ = buf.WriteByte('\n')
	_, _ = buf.WriteString(Header())
	_ = buf.WriteByte('\n')
	for _, row := range table.Rows {
		_, _ = buf.WriteString(FormatRow(row))
		_ = buf.WriteByte('\n')
	}
	if opts.Menu {
		_, _ = buf.WriteString(Terminator)
	}

	return buf.String()
}
