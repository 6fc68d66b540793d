package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/standings-gopher/internal/platform/logging"
	"github.com/riskibarqy/standings-gopher/internal/usecase"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

const (
	APIVersionV1 = "v1"
	APIVersionV2 = "v2"
)

const (
	ShapeAuto   = "auto"
	ShapeFlat   = "flat"
	ShapeNamed  = "named"
	ShapeNested = "nested"
)

const DefaultBaseURL = "http://api.football-data.org"

// Config stores runtime configuration for one publishing run.
type Config struct {
	AppEnv           string        `validate:"oneof=dev stage prod"`
	ServiceName      string        `validate:"required"`
	ServiceVersion   string        `validate:"required"`
	APIKey           string        `validate:"required"`
	BaseURL          string        `validate:"required,url"`
	APIVersion       string        `validate:"oneof=v1 v2"`
	Shape            string        `validate:"oneof=auto flat named nested"`
	HTTPTimeout      time.Duration `validate:"gte=0"`
	OutputDir        string        `validate:"required"`
	MenuEnabled      bool
	CompetitionsFile string
	UptraceEnabled   bool
	UptraceDSN       string `validate:"required_if=UptraceEnabled true"`
	LogLevel         logging.Level
}

var validate = validator.New()

// Load reads configuration from the process environment.
func Load() (Config, error) {
	return LoadFrom(os.Getenv)
}

// LoadFrom reads configuration through getenv. Every failure is marked with
// usecase.ErrConfig.
func LoadFrom(getenv func(string) string) (Config, error) {
	if getenv == nil {
		getenv = os.Getenv
	}
	env := envReader(getenv)

	apiKey := strings.TrimSpace(getenv("API_KEY"))
	if apiKey == "" {
		return Config{}, configError(errors.New("couldn't read API_KEY: environment variable not found"))
	}

	appEnv, err := parseAppEnv(env.get("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, configError(err)
	}

	apiVersion := strings.ToLower(strings.TrimSpace(env.get("FOOTBALL_DATA_API_VERSION", APIVersionV2)))
	shape := strings.ToLower(strings.TrimSpace(env.get("FOOTBALL_DATA_SHAPE", defaultShapeFor(apiVersion))))

	timeout, err := time.ParseDuration(env.get("FOOTBALL_DATA_TIMEOUT", "0s"))
	if err != nil {
		return Config{}, configError(errors.Wrap(err, "parse FOOTBALL_DATA_TIMEOUT"))
	}

	menuEnabled, err := strconv.ParseBool(env.get("GOPHERMAP_MENU", "true"))
	if err != nil {
		return Config{}, configError(errors.Wrap(err, "parse GOPHERMAP_MENU"))
	}

	uptraceEnabled, err := strconv.ParseBool(env.get("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, configError(errors.Wrap(err, "parse UPTRACE_ENABLED"))
	}

	cfg := Config{
		AppEnv:           appEnv,
		ServiceName:      env.get("APP_SERVICE_NAME", "standings-gopher"),
		ServiceVersion:   env.get("APP_SERVICE_VERSION", "dev"),
		APIKey:           apiKey,
		BaseURL:          strings.TrimRight(strings.TrimSpace(env.get("FOOTBALL_DATA_BASE_URL", DefaultBaseURL)), "/"),
		APIVersion:       apiVersion,
		Shape:            shape,
		HTTPTimeout:      timeout,
		OutputDir:        strings.TrimSpace(env.get("OUTPUT_DIR", ".")),
		MenuEnabled:      menuEnabled,
		CompetitionsFile: strings.TrimSpace(env.get("COMPETITIONS_FILE", "")),
		UptraceEnabled:   uptraceEnabled,
		UptraceDSN:       strings.TrimSpace(env.get("UPTRACE_DSN", "")),
		LogLevel:         parseLogLevel(env.get("APP_LOG_LEVEL", "info")),
	}

	if err := validate.Struct(cfg); err != nil {
		return Config{}, configError(errors.Wrap(err, "validate config"))
	}

	return cfg, nil
}

func defaultShapeFor(apiVersion string) string {
	if apiVersion == APIVersionV1 {
		return ShapeNamed
	}
	return ShapeNested
}

func configError(err error) error {
	return errors.Mark(err, usecase.ErrConfig)
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

type envReader func(string) string

func (r envReader) get(key, fallback string) string {
	value := r(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", errors.Newf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
