package footballdata

import (
	"bytes"
	"encoding/json"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"

	"github.com/riskibarqy/standings-gopher/internal/domain/standing"
	"github.com/riskibarqy/standings-gopher/internal/usecase"
)

// Shape names the layout of a standings response body.
type Shape int

const (
	// ShapeAuto detects one of the other shapes from the body.
	ShapeAuto Shape = iota
	// ShapeFlat is a bare row array.
	ShapeFlat
	// ShapeNamed is {"leagueCaption": ..., "standing": [rows]}.
	ShapeNamed
	// ShapeNested is {"competition": {...}, "standings": [{"table": [rows]}, ...]}.
	ShapeNested
)

// nestedTableIndex selects the sub-table rendered from a nested response.
const nestedTableIndex = 1

func ParseShape(raw string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "auto":
		return ShapeAuto, nil
	case "flat":
		return ShapeFlat, nil
	case "named":
		return ShapeNamed, nil
	case "nested":
		return ShapeNested, nil
	default:
		return ShapeAuto, errors.Mark(errors.Newf("unknown response shape %q", raw), usecase.ErrConfig)
	}
}

func (s Shape) String() string {
	switch s {
	case ShapeFlat:
		return "flat"
	case ShapeNamed:
		return "named"
	case ShapeNested:
		return "nested"
	default:
		return "auto"
	}
}

// Extract locates the row table in raw according to shape. A body that does
// not match the shape fails with usecase.ErrDecode.
func Extract(raw []byte, shape Shape) (standing.Table, error) {
	if shape == ShapeAuto {
		detected, err := detectShape(raw)
		if err != nil {
			return standing.Table{}, err
		}
		shape = detected
	}

	switch shape {
	case ShapeFlat:
		var rows []rowPayload
		if err := sonic.Unmarshal(raw, &rows); err != nil {
			return standing.Table{}, decodeError(errors.Wrap(err, "decode flat standings"))
		}
		return standing.Table{Rows: toStandings(rows)}, nil

	case ShapeNamed:
		var envelope namedEnvelope
		if err := sonic.Unmarshal(raw, &envelope); err != nil {
			return standing.Table{}, decodeError(errors.Wrap(err, "decode league table"))
		}
		if envelope.Standing == nil {
			return standing.Table{}, decodeError(errors.New(`league table has no "standing" field`))
		}
		return standing.Table{
			Caption: strings.TrimSpace(envelope.LeagueCaption),
			Rows:    toStandings(*envelope.Standing),
		}, nil

	case ShapeNested:
		var envelope nestedEnvelope
		if err := sonic.Unmarshal(raw, &envelope); err != nil {
			return standing.Table{}, decodeError(errors.Wrap(err, "decode standings"))
		}
		if len(envelope.Standings) <= nestedTableIndex {
			return standing.Table{}, decodeError(errors.Newf(
				"standings has %d sub-tables, need index %d", len(envelope.Standings), nestedTableIndex,
			))
		}
		return standing.Table{
			Caption: strings.TrimSpace(envelope.Competition.Name),
			Rows:    toStandings(envelope.Standings[nestedTableIndex].Table),
		}, nil

	default:
		return standing.Table{}, decodeError(errors.Newf("unsupported response shape %d", int(shape)))
	}
}

func detectShape(raw []byte) (Shape, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return ShapeAuto, decodeError(errors.New("empty response body"))
	}
	if trimmed[0] == '[' {
		return ShapeFlat, nil
	}

	var probe struct {
		Standings json.RawMessage `json:"standings"`
		Standing  json.RawMessage `json:"standing"`
	}
	if err := sonic.Unmarshal(trimmed, &probe); err != nil {
		return ShapeAuto, decodeError(errors.Wrap(err, "probe response shape"))
	}

	switch {
	case len(probe.Standings) > 0:
		return ShapeNested, nil
	case len(probe.Standing) > 0:
		return ShapeNamed, nil
	default:
		return ShapeAuto, decodeError(errors.New("response has neither \"standings\" nor \"standing\""))
	}
}

func decodeError(err error) error {
	return errors.Mark(err, usecase.ErrDecode)
}

func toStandings(rows []rowPayload) []standing.Standing {
	out := make([]standing.Standing, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toStanding())
	}
	return out
}

type namedEnvelope struct {
	LeagueCaption string        `json:"leagueCaption"`
	Matchday      int           `json:"matchday"`
	Standing      *[]rowPayload `json:"standing"`
}

type nestedEnvelope struct {
	Competition struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"competition"`
	Standings []subTable `json:"standings"`
}

type subTable struct {
	Stage string       `json:"stage"`
	Type  string       `json:"type"`
	Group *string      `json:"group"`
	Table []rowPayload `json:"table"`
}

// rowPayload accepts both the v1 (teamName, wins, goals) and the v2
// (team.name, won, goalsFor) field names.
type rowPayload struct {
	Position       int     `json:"position"`
	TeamName       string  `json:"teamName"`
	Team           *teamV2 `json:"team"`
	PlayedGames    int     `json:"playedGames"`
	Won            int     `json:"won"`
	Wins           int     `json:"wins"`
	Draw           int     `json:"draw"`
	Draws          int     `json:"draws"`
	Lost           int     `json:"lost"`
	Losses         int     `json:"losses"`
	Points         int     `json:"points"`
	GoalsFor       int     `json:"goalsFor"`
	Goals          int     `json:"goals"`
	GoalsAgainst   int     `json:"goalsAgainst"`
	GoalDifference int     `json:"goalDifference"`
}

type teamV2 struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func (r rowPayload) toStanding() standing.Standing {
	name := r.TeamName
	if r.Team != nil && r.Team.Name != "" {
		name = r.Team.Name
	}

	return standing.Standing{
		Position:       r.Position,
		TeamName:       name,
		PlayedGames:    r.PlayedGames,
		Won:            firstNonZero(r.Won, r.Wins),
		Draw:           firstNonZero(r.Draw, r.Draws),
		Lost:           firstNonZero(r.Lost, r.Losses),
		Points:         r.Points,
		GoalsFor:       firstNonZero(r.GoalsFor, r.Goals),
		GoalsAgainst:   r.GoalsAgainst,
		GoalDifference: r.GoalDifference,
	}
}

func firstNonZero(values ...int) int {
	for _, v := range values {
		if v != 0 {
			return v
		}
	}
	return 0
}
