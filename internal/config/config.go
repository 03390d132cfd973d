// Package config provides the layered program configuration: defaults, an
// optional .env file, RECSOLVER_* environment variables and command line flags.
package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables.
const EnvPrefix = "RECSOLVER"

// Configuration keys.
const (
	KeyMaxMoves   = "max_moves"
	KeyStartDepth = "start_depth"
	KeyLogLevel   = "log_level"
	KeyAddr       = "addr"

	// KeyMaxMovesLimit caps the moves a http request may search.
	KeyMaxMovesLimit = "max_moves_limit"
)

// DefaultMaxMovesLimit is the default of KeyMaxMovesLimit.
const DefaultMaxMovesLimit = 6

// Config holds the program configuration.
type Config struct {
	MaxMoves   int    // maximum number of moves, 0 means rows * cols
	StartDepth int    // first depth bound of the search
	LogLevel   string // logrus level name
	Addr       string // listen address of the http server

	// MaxMovesLimit is the largest number of moves a http request may search.
	MaxMovesLimit int
}

// New returns a viper instance with defaults and environment binding set up.
// An existing .env file (or the given env files) is loaded into the
// environment first.
func New(envFiles ...string) *viper.Viper {
	if err := godotenv.Load(envFiles...); err != nil {
		log.Debugf(".env file not found or could not be loaded: %v", err)
	}

	v := viper.New()
	v.SetDefault(KeyMaxMoves, 0)
	v.SetDefault(KeyStartDepth, 0)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyAddr, ":8080")
	v.SetDefault(KeyMaxMovesLimit, DefaultMaxMovesLimit)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// BindFlags binds the flags of fs with a matching configuration key.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		switch f.Name {
		case KeyMaxMoves, KeyStartDepth, KeyLogLevel, KeyAddr, KeyMaxMovesLimit:
			if bindErr := v.BindPFlag(f.Name, f); bindErr != nil && err == nil {
				err = bindErr
			}
		}
	})
	return err
}

// Load reads and validates the configuration.
func Load(v *viper.Viper) (*Config, error) {
	c := &Config{
		MaxMoves:   v.GetInt(KeyMaxMoves),
		StartDepth: v.GetInt(KeyStartDepth),
		LogLevel:   v.GetString(KeyLogLevel),
		Addr:       v.GetString(KeyAddr),

		MaxMovesLimit: v.GetInt(KeyMaxMovesLimit),
	}
	if c.MaxMoves < 0 {
		return nil, fmt.Errorf("%s must be positive: %d", KeyMaxMoves, c.MaxMoves)
	}
	if c.MaxMovesLimit <= 0 {
		return nil, fmt.Errorf("%s must be greater than zero: %d", KeyMaxMovesLimit, c.MaxMovesLimit)
	}
	if c.StartDepth < 0 {
		return nil, fmt.Errorf("%s must not be negative: %d", KeyStartDepth, c.StartDepth)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return nil, err
	}
	return c, nil
}

// SetupLogging sets the level of the standard logger.
func (c *Config) SetupLogging() {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
}
