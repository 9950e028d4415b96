package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

var config Config

var rootCmd = &cobra.Command{
	Use:   "measure",
	Short: "measure bimap heights and timings on random workloads",
	Example: `  $ measure --pairs 1000000 --rounds 10
  $ measure --pairs 4096 --erase 0.9 --dev`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := config.Validate(); err != nil {
			return err
		}
		log, err := newLogger(config.Dev)
		if err != nil {
			return err
		}
		defer func() {
			_ = log.Sync()
		}()
		return run(config, log)
	},
}

func init() {
	bindFlags(rootCmd.Flags(), &config)
}

func bindFlags(f *pflag.FlagSet, config *Config) {
	f.Uint32Var(&config.Pairs, "pairs", 1<<20, "number of random pairs inserted per round")
	f.IntVar(&config.Rounds, "rounds", 5, "number of rounds")
	f.Float64Var(&config.Erase, "erase", 0.5, "fraction of the inserted pairs erased in each round")
	f.Int64Var(&config.Seed, "seed", time.Now().UnixNano(), "random seed")
	f.BoolVar(&config.Check, "check", true, "verify the structure after every round")
	f.BoolVar(&config.Dev, "dev", false, "human readable debug logging")
}

func newLogger(dev bool) (*zap.Logger, error) {
	if dev {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// Config of a measurement run.
type Config struct {
	Pairs  uint32
	Rounds int
	Erase  float64
	Seed   int64
	Check  bool
	Dev    bool
}

const maxPairs uint32 = 1 << 31

func (c Config) Validate() error {
	if c.Pairs == 0 || c.Pairs > maxPairs {
		return fmt.Errorf("pairs must be in [1, %d], got %d", maxPairs, c.Pairs)
	}
	if c.Rounds < 1 {
		return fmt.Errorf("rounds must be positive, got %d", c.Rounds)
	}
	if c.Erase < 0 || c.Erase > 1 {
		return fmt.Errorf("erase must be in [0, 1], got %f", c.Erase)
	}
	return nil
}
