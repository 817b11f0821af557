package main

import (
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"gametree/experiments"
	"gametree/experiments/metrics"
	"gametree/searcher"
)

func main() {
	name := flag.String("name", "series", "Series name used for the result directory")
	games := flag.Int("games", 30, "Number of games to play")
	agent1 := flag.String("agent1", "mcts", "First agent kind: mcts, random, or greedy")
	agent2 := flag.String("agent2", "random", "Second agent kind: mcts, random, or greedy")
	iterations := flag.Int("iterations", 200, "Search iterations per move (negative for unbounded)")
	duration := flag.Duration("duration", -1, "Search time per move (negative for unbounded)")
	exploration := flag.Float64("exploration", searcher.DefaultExploration, "Exploration weight for search agents")
	outDir := flag.String("out", "results", "Directory to store series results under")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	rand.Seed(uint64(time.Now().UnixNano()))

	config := experiments.SeriesConfig{
		Name:   *name,
		Games:  *games,
		OutDir: *outDir,
		Agent1: agentConfig(1, *agent1, *duration, *iterations, *exploration),
		Agent2: agentConfig(2, *agent2, *duration, *iterations, *exploration),
	}

	summary, err := experiments.RunSeries(config)
	if err != nil {
		log.Fatal().Err(err).Msg("series failed")
	}

	log.Info().
		Int("agent1_wins", summary.Agent1Wins).
		Int("agent2_wins", summary.Agent2Wins).
		Int("draws", summary.Draws).
		Str("results", summary.Dir).
		Msg("series complete")
}

func agentConfig(id int, kind string, duration time.Duration, iterations int, exploration float64) metrics.AgentConfig {
	return metrics.AgentConfig{
		ID:          id,
		Kind:        kind,
		TimeBudget:  duration,
		Iterations:  iterations,
		Exploration: exploration,
	}
}
