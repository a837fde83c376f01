package config

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/ratel-online/tschau-sepp/tschau/game"
)

// EnvPath names the environment variable holding the config file path.
const EnvPath = "TSCHAU_CONFIG"

type Config struct {
	TCPAddr string `json:"tcp_addr"`
	WSAddr  string `json:"ws_addr"`

	AuthTimeoutSeconds    int `json:"auth_timeout_seconds"`
	TurnTimeoutSeconds    int `json:"turn_timeout_seconds"`
	ReconnectGraceSeconds int `json:"reconnect_grace_seconds"`

	// SnapshotDSN is the sqlite database rooms are saved to. Empty disables persistence.
	SnapshotDSN string `json:"snapshot_dsn"`

	MissedTschauPenalty int `json:"missed_tschau_penalty"`
	// Seed fixes the shuffles. Zero seeds from the clock.
	Seed int64 `json:"seed"`
}

func Default() Config {
	return Config{
		TCPAddr:               ":9999",
		WSAddr:                ":9998",
		AuthTimeoutSeconds:    3,
		TurnTimeoutSeconds:    60,
		ReconnectGraceSeconds: 120,
		SnapshotDSN:           "tschau.db",
	}
}

// Load reads the JSON file at path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// FromEnv loads the file named by TSCHAU_CONFIG.
func FromEnv() (Config, error) {
	return Load(os.Getenv(EnvPath))
}

func (c Config) validate() error {
	if c.TurnTimeoutSeconds < 0 || c.ReconnectGraceSeconds < 0 || c.AuthTimeoutSeconds < 0 {
		return fmt.Errorf("timeouts must not be negative")
	}
	if c.MissedTschauPenalty < 0 {
		return fmt.Errorf("missed_tschau_penalty must not be negative")
	}
	return nil
}

func (c Config) Ruleset() game.Ruleset {
	rules := game.StandardRuleset()
	rules.MissedTschauPenalty = c.MissedTschauPenalty
	return rules
}

// NewRand returns the shuffle source for a new game.
func (c Config) NewRand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func (c Config) TurnTimeout() time.Duration {
	return time.Duration(c.TurnTimeoutSeconds) * time.Second
}

func (c Config) ReconnectGrace() time.Duration {
	return time.Duration(c.ReconnectGraceSeconds) * time.Second
}

func (c Config) AuthTimeout() time.Duration {
	return time.Duration(c.AuthTimeoutSeconds) * time.Second
}
