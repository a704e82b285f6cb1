package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Sleeper SleeperAPI
	Search  Search
	Report  Report
}

type SleeperAPI struct {
	BaseURL        string        `envconfig:"SLEEPER_API_BASE" default:"https://api.sleeper.app/v1"`
	LeagueID       string        `envconfig:"LEAGUE_ID" required:"true"`
	Season         string        `envconfig:"SEASON" required:"true"`
	RateLimitDelay time.Duration `envconfig:"RATE_LIMIT_DELAY" default:"100ms"`
	Timeout        time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`
}

type Search struct {
	BaseURL    string `envconfig:"SEARCH_API_BASE" default:"https://api.duckduckgo.com"`
	MaxResults int    `envconfig:"WEB_SEARCH_RESULTS" default:"5"`
}

type Report struct {
	TargetDisplayName string `envconfig:"TARGET_DISPLAY_NAME"`
	OutputDir         string `envconfig:"OUTPUT_DIR" default:"reports"`
	MaxWaiverTargets  int    `envconfig:"MAX_WAIVER_TARGETS" default:"5"`
}

func New() (*Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
