package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/standings-gopher/internal/domain/competition"
)

type CompetitionRepository struct {
	mu     sync.RWMutex
	items  map[int]competition.Competition
	orders []int
}

// NewCompetitionRepository keeps the given order for List. Later duplicates
// replace earlier entries in place.
func NewCompetitionRepository(competitions []competition.Competition) *CompetitionRepository {
	items := make(map[int]competition.Competition, len(competitions))
	orders := make([]int, 0, len(competitions))

	for _, c := range competitions {
		if _, exists := items[c.ID]; !exists {
			orders = append(orders, c.ID)
		}
		items[c.ID] = c
	}

	return &CompetitionRepository{
		items:  items,
		orders: orders,
	}
}

func (r *CompetitionRepository) List(_ context.Context) ([]competition.Competition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]competition.Competition, 0, len(r.orders))
	for _, id := range r.orders {
		out = append(out, r.items[id])
	}

	return out, nil
}

func (r *CompetitionRepository) GetByID(_ context.Context, competitionID int) (competition.Competition, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.items[competitionID]
	if !ok {
		return competition.Competition{}, false, nil
	}

	return c, true, nil
}
