package app

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/riskibarqy/standings-gopher/external/footballdata"
	"github.com/riskibarqy/standings-gopher/internal/config"
	"github.com/riskibarqy/standings-gopher/internal/domain/competition"
	"github.com/riskibarqy/standings-gopher/internal/infrastructure/filestore"
	"github.com/riskibarqy/standings-gopher/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/standings-gopher/internal/infrastructure/repository/yamlfile"
	"github.com/riskibarqy/standings-gopher/internal/interfaces/gophermap"
	"github.com/riskibarqy/standings-gopher/internal/platform/logging"
	"github.com/riskibarqy/standings-gopher/internal/usecase"
)

func NewStandingsPublisher(cfg config.Config, logger *logging.Logger) (*usecase.StandingsPublisher, error) {
	if logger == nil {
		logger = logging.Default()
	}

	competitionRepo, err := newCompetitionRepository(cfg)
	if err != nil {
		return nil, err
	}

	shape, err := footballdata.ParseShape(cfg.Shape)
	if err != nil {
		return nil, err
	}

	client := footballdata.NewClient(footballdata.ClientConfig{
		HTTPClient: &http.Client{
			Timeout:   cfg.HTTPTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		BaseURL:    cfg.BaseURL,
		APIKey:     cfg.APIKey,
		APIVersion: cfg.APIVersion,
		Shape:      shape,
		Logger:     logger,
	})

	return usecase.NewStandingsPublisher(usecase.StandingsPublisherConfig{
		CompetitionRepo: competitionRepo,
		Provider:        client,
		Renderer:        gophermap.NewRenderer(gophermap.Options{Menu: cfg.MenuEnabled}),
		Store:           filestore.NewStore(cfg.OutputDir, logger),
		Logger:          logger,
	}), nil
}

func newCompetitionRepository(cfg config.Config) (competition.Repository, error) {
	if cfg.CompetitionsFile == "" {
		return memory.NewCompetitionRepository(memory.SeedCompetitions()), nil
	}

	repo, err := yamlfile.LoadCompetitionRepository(cfg.CompetitionsFile)
	if err != nil {
		return nil, errors.Wrap(err, "load competition registry")
	}
	return repo, nil
}
