package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/spacey-invader/internal/invaders"
)

var (
	flagTicks      int
	flagProfile    string
	flagProfileDir string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless autopilot session",
	Long: `Run the simulation without a frontend. An autopilot steers and fires;
game time advances by exactly one tick per step, so a fixed --seed always
produces the same session.

Profiles:
  cpu    - CPU profile
  mem    - Heap allocation profile
  trace  - Execution trace

Examples:
  invaders sim --seed 42 --ticks 36000
  invaders sim --profile cpu --profile-dir /tmp`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Number of ticks to simulate")
	simCmd.Flags().StringVar(&flagProfile, "profile", "", "Profile to record: cpu, mem, trace")
	simCmd.Flags().StringVar(&flagProfileDir, "profile-dir", ".", "Directory for profile output")
}

func profileMode(name string) (func(*profile.Profile), error) {
	switch name {
	case "cpu":
		return profile.CPUProfile, nil
	case "mem":
		return profile.MemProfileAllocs, nil
	case "trace":
		return profile.TraceProfile, nil
	default:
		return nil, fmt.Errorf("unknown profile %q (expected cpu, mem or trace)", name)
	}
}

func runSim(cmd *cobra.Command, args []string) error {
	if flagTicks <= 0 {
		return fmt.Errorf("--ticks must be positive, got %d", flagTicks)
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, closer, err := newLogger(cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	if flagProfile != "" {
		mode, modeErr := profileMode(flagProfile)
		if modeErr != nil {
			return modeErr
		}
		defer profile.Start(mode, profile.ProfilePath(flagProfileDir), profile.Quiet, profile.NoShutdownHook).Stop()
		logger.Info("profiling", "mode", flagProfile, "dir", flagProfileDir)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	clock := &invaders.ManualClock{}
	opts := invaders.OptionsFromConfig(cfg)
	opts.Seed = seed
	opts.Clock = clock
	opts.Logger = logger
	world := invaders.NewWorld(opts)
	pilot := invaders.NewAutopilot()

	step := time.Second / time.Duration(cfg.Timing.TickRate)
	start := time.Now()
	for i, n := 0, flagTicks; i < n; i++ {
		clock.Advance(step)
		world.Tick(pilot.Next(world))
	}
	wall := time.Since(start)

	stats := world.Stats()
	logger.Info("simulation finished",
		"seed", seed,
		"ticks", stats.Ticks,
		"game_time", world.Now(),
		"wall", wall,
		"spawned", stats.EnemiesSpawned,
		"kills", stats.Kills,
		"deaths", stats.PlayerDeaths,
		"best_score", stats.BestScore,
		"bullets", stats.BulletsFired,
		"explosions", stats.Explosions,
	)
	if stats.Violations > 0 {
		return fmt.Errorf("simulation reported %d invariant violations", stats.Violations)
	}
	return nil
}
