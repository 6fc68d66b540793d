// Package yamlfile loads the competition registry from a YAML document:
//
//	competitions:
//	  - id: 2021
//	    name: Premier League
package yamlfile

import (
	"bytes"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/riskibarqy/standings-gopher/internal/domain/competition"
	"github.com/riskibarqy/standings-gopher/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/standings-gopher/internal/usecase"
)

type registryDocument struct {
	Competitions []competition.Competition `yaml:"competitions" validate:"required,min=1,dive"`
}

var validate = validator.New()

// LoadCompetitionRepository reads path and returns an in-memory registry
// with the file's order.
func LoadCompetitionRepository(path string) (*memory.CompetitionRepository, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "read competitions file %s", path), usecase.ErrConfig)
	}

	items, err := ParseCompetitions(bytes.NewReader(raw))
	if err != nil {
		return nil, errors.Wrapf(err, "competitions file %s", path)
	}

	return memory.NewCompetitionRepository(items), nil
}

// ParseCompetitions decodes and validates a registry document.
func ParseCompetitions(r io.Reader) ([]competition.Competition, error) {
	var doc registryDocument
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.Mark(errors.New("competitions file is empty"), usecase.ErrConfig)
		}
		return nil, errors.Mark(errors.Wrap(err, "decode competitions"), usecase.ErrConfig)
	}

	if err := validate.Struct(doc); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "validate competitions"), usecase.ErrConfig)
	}

	return doc.Competitions, nil
}
