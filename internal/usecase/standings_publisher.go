package usecase

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/riskibarqy/standings-gopher/internal/domain/competition"
	"github.com/riskibarqy/standings-gopher/internal/domain/standing"
	"github.com/riskibarqy/standings-gopher/internal/platform/logging"
)

type StandingsProvider interface {
	FetchStandings(ctx context.Context, competitionID int) (standing.Table, error)
}

type StandingsRenderer interface {
	RenderTable(c competition.Competition, table standing.Table) string
	RenderIndex(competitions []competition.Competition, now time.Time) string
}

type PageStore interface {
	WriteTable(ctx context.Context, c competition.Competition, content string) error
	WriteIndex(ctx context.Context, content string) error
}

type StandingsPublisherConfig struct {
	CompetitionRepo competition.Repository
	Provider        StandingsProvider
	Renderer        StandingsRenderer
	Store           PageStore
	Logger          *logging.Logger
	Now             func() time.Time
}

// StandingsPublisher turns registry competitions into standings pages and an
// index. Competitions are handled one at a time and the first failure ends
// the run.
type StandingsPublisher struct {
	competitionRepo competition.Repository
	provider        StandingsProvider
	renderer        StandingsRenderer
	store           PageStore
	logger          *logging.Logger
	now             func() time.Time
}

type PublishedTable struct {
	Competition competition.Competition
	Rows        int
}

type PublishReport struct {
	Tables []PublishedTable
}

func NewStandingsPublisher(cfg StandingsPublisherConfig) *StandingsPublisher {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &StandingsPublisher{
		competitionRepo: cfg.CompetitionRepo,
		provider:        cfg.Provider,
		renderer:        cfg.Renderer,
		store:           cfg.Store,
		logger:          logger,
		now:             now,
	}
}

// Publish builds the page of every registry competition, or only the one
// matching selector when it is not empty, then writes the index.
func (s *StandingsPublisher) Publish(ctx context.Context, selector string) (PublishReport, error) {
	ctx, span := usecaseTracer.Start(ctx, "usecase.StandingsPublisher.Publish")
	defer span.End()

	competitions, err := s.selectCompetitions(ctx, selector)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "select competitions")
		return PublishReport{}, err
	}

	report := PublishReport{Tables: make([]PublishedTable, 0, len(competitions))}
	for _, c := range competitions {
		s.logger.InfoContext(ctx, "building competition", "competition", c.Name, "competition_id", c.ID)

		rows, err := s.publishCompetition(ctx, c)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "publish competition")
			return report, errors.Wrapf(err, "publish %s (%d)", c.Name, c.ID)
		}
		report.Tables = append(report.Tables, PublishedTable{Competition: c, Rows: rows})
	}

	index := s.renderer.RenderIndex(competitions, s.now())
	if err := s.store.WriteIndex(ctx, index); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "write index")
		return report, errors.Wrap(err, "write index")
	}

	span.SetAttributes(attribute.Int("competitions", len(report.Tables)))
	s.logger.InfoContext(ctx, "standings published", "competitions", len(report.Tables))
	return report, nil
}

func (s *StandingsPublisher) publishCompetition(ctx context.Context, c competition.Competition) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsPublisher.publishCompetition")
	defer span.End()
	span.SetAttributes(attribute.Int("competition.id", c.ID))

	table, err := s.provider.FetchStandings(ctx, c.ID)
	if err != nil {
		return 0, errors.Wrap(err, "fetch standings")
	}

	page := s.renderer.RenderTable(c, table)
	if err := s.store.WriteTable(ctx, c, page); err != nil {
		return 0, errors.Wrap(err, "write table")
	}

	s.logger.DebugContext(ctx, "competition page written", "competition_id", c.ID, "rows", len(table.Rows))
	return len(table.Rows), nil
}

// ResolveCompetition finds a registry competition by numeric id or by
// case-insensitive name.
func (s *StandingsPublisher) ResolveCompetition(ctx context.Context, ref string) (competition.Competition, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return competition.Competition{}, errors.Wrap(ErrInvalidInput, "league is required")
	}

	if id, err := strconv.Atoi(ref); err == nil {
		c, ok, err := s.competitionRepo.GetByID(ctx, id)
		if err != nil {
			return competition.Competition{}, errors.Wrap(err, "get competition")
		}
		if ok {
			return c, nil
		}
	}

	items, err := s.competitionRepo.List(ctx)
	if err != nil {
		return competition.Competition{}, errors.Wrap(err, "list competitions")
	}
	for _, c := range items {
		if strings.EqualFold(c.Name, ref) {
			return c, nil
		}
	}

	return competition.Competition{}, errors.Wrapf(ErrNotFound, "league=%s", ref)
}

func (s *StandingsPublisher) selectCompetitions(ctx context.Context, selector string) ([]competition.Competition, error) {
	var items []competition.Competition
	if strings.TrimSpace(selector) == "" {
		listed, err := s.competitionRepo.List(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "list competitions")
		}
		items = listed
	} else {
		c, err := s.ResolveCompetition(ctx, selector)
		if err != nil {
			return nil, err
		}
		items = []competition.Competition{c}
	}

	for _, c := range items {
		if err := c.Validate(); err != nil {
			return nil, errors.Mark(errors.Wrapf(err, "competition %d", c.ID), ErrInvalidInput)
		}
	}
	if len(items) == 0 {
		return nil, errors.Wrap(ErrInvalidInput, "no competitions configured")
	}

	return items, nil
}
