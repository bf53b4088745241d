// Package idgen produces the opaque string primary keys assigned to users,
// posts, comments and likes.
package idgen

import "fmt"

// Strategy names accepted by New.
const (
	StrategyCUID2     = "cuid2"
	StrategyUUID      = "uuid"
	StrategyULID      = "ulid"
	StrategyKSUID     = "ksuid"
	StrategyNanoID    = "nanoid"
	StrategySnowflake = "snowflake"
)

// Generator produces unique string ids.
type Generator interface {
	Generate() (string, error)
}

// Config selects and tunes a generator.
type Config struct {
	Strategy       string `mapstructure:"strategy"`
	CUID2Length    int    `mapstructure:"cuid2_length"`
	NanoIDSize     int    `mapstructure:"nanoid_size"`
	NanoIDAlphabet string `mapstructure:"nanoid_alphabet"`
	MachineID      int64  `mapstructure:"machine_id"`
	Epoch          int64  `mapstructure:"epoch"`
}

// Func adapts a plain function to Generator.
type Func func() (string, error)

func (f Func) Generate() (string, error) { return f() }

// New builds the generator named by cfg.Strategy. An empty strategy means
// cuid2; zero-valued knobs fall back to their defaults.
func New(cfg Config) (Generator, error) {
	switch cfg.Strategy {
	case "", StrategyCUID2:
		return newCUID2(orInt(cfg.CUID2Length, DefaultCUID2Length))
	case StrategyUUID:
		return Func(newUUID), nil
	case StrategyULID:
		return Func(newULID), nil
	case StrategyKSUID:
		return Func(newKSUID), nil
	case StrategyNanoID:
		alphabet := cfg.NanoIDAlphabet
		if alphabet == "" {
			alphabet = DefaultNanoIDAlphabet
		}
		return newNanoID(orInt(cfg.NanoIDSize, DefaultNanoIDSize), alphabet)
	case StrategySnowflake:
		epoch := cfg.Epoch
		if epoch == 0 {
			epoch = DefaultSnowflakeEpoch
		}
		return NewSnowflake(cfg.MachineID, epoch)
	default:
		return nil, fmt.Errorf("unsupported id strategy: %s", cfg.Strategy)
	}
}

func orInt(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}
