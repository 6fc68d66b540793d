package gophermap

import (
	"time"

	"github.com/riskibarqy/standings-gopher/internal/domain/competition"
	"github.com/riskibarqy/standings-gopher/internal/domain/standing"
)

// Renderer binds Options to the package render functions.
type Renderer struct {
	opts Options
}

func NewRenderer(opts Options) *Renderer {
	return &Renderer{opts: opts}
}

func (r *Renderer) RenderTable(c competition.Competition, table standing.Table) string {
	return RenderTable(c, table, r.opts)
}

func (r *Renderer) RenderIndex(competitions []competition.Competition, now time.Time) string {
	return RenderIndex(competitions, now, r.opts)
}
