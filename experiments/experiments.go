package experiments

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"gametree/experiments/metrics"
	"gametree/game/tictactoe"
	"gametree/searcher"
	"gametree/searcher/agent"
)

// SeriesConfig describes a series of games between two agents.
type SeriesConfig struct {
	Name   string
	Games  int
	OutDir string
	Agent1 metrics.AgentConfig
	Agent2 metrics.AgentConfig
}

// Summary tallies a completed series.
type Summary struct {
	Games      int
	Agent1Wins int
	Agent2Wins int
	Draws      int
	Dir        string // Where the records were written
}

// seat pairs an agent with its config and the collector feeding its
// move records.
type seat struct {
	config    metrics.AgentConfig
	agent     agent.Agent
	collector searcher.MetricsCollector
}

// RunSeries plays the configured number of games, alternating the
// starting agent from game to game, and stores the setup and records
// under the output directory.
func RunSeries(config SeriesConfig) (Summary, error) {
	if config.Games <= 0 {
		return Summary{}, fmt.Errorf("series needs at least one game, got %d", config.Games)
	}
	seats := [2]seat{}
	for i, agentConfig := range []metrics.AgentConfig{config.Agent1, config.Agent2} {
		s, err := buildSeat(agentConfig)
		if err != nil {
			return Summary{}, err
		}
		seats[i] = s
	}

	log.Info().Msgf("starting %s series between agent1=%+v and agent2=%+v...", config.Name, config.Agent1, config.Agent2)

	start := time.Now()
	summary := Summary{Games: config.Games}
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	for i := 0; i < config.Games; i++ {
		log.Info().Msgf("starting game %d of %d...", i+1, config.Games)

		// Alternate the starting agent from game to game
		firstIdx := i % 2
		record, moves, err := runGame(seats[firstIdx], seats[1-firstIdx])
		if err != nil {
			return Summary{}, fmt.Errorf("failed to run game %d: %w", i+1, err)
		}
		record.Agent1 = config.Agent1.ID
		record.Agent2 = config.Agent2.ID
		record.Starter = seats[firstIdx].config.ID
		gameRecords = append(gameRecords, record)
		moveRecords = append(moveRecords, moves...)

		// The starting agent plays X
		switch {
		case record.Winner == string(tictactoe.X):
			if firstIdx == 0 {
				summary.Agent1Wins++
			} else {
				summary.Agent2Wins++
			}
		case record.Winner == string(tictactoe.O):
			if firstIdx == 0 {
				summary.Agent2Wins++
			} else {
				summary.Agent1Wins++
			}
		default:
			summary.Draws++
		}

		log.Info().Msgf("completed game %d of %d with winner: %s", i+1, config.Games, record.Winner)
	}
	end := time.Now()

	writer, err := metrics.NewWriter(config.OutDir, config.Name)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to create result writer: %w", err)
	}

	setup := metrics.Setup{
		Series:    config.Name,
		Games:     config.Games,
		Agents:    []metrics.AgentConfig{config.Agent1, config.Agent2},
		StartTime: start,
		EndTime:   end,
		Duration:  end.Sub(start),
	}
	if err := writer.WriteSetup(setup); err != nil {
		return Summary{}, fmt.Errorf("failed to store setup: %w", err)
	}
	log.Info().Msg("stored series setup")

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return Summary{}, fmt.Errorf("failed to store game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return Summary{}, fmt.Errorf("failed to store move records: %w", err)
	}
	log.Info().Msg("stored move records")

	summary.Dir = writer.Dir()
	log.Info().Msgf("completed %s series", config.Name)

	return summary, nil
}

// runGame plays a single game with first moving as X and returns its
// record and per-move records.
func runGame(first, second seat) (metrics.GameRecord, []metrics.MoveRecord, error) {
	id := uuid.NewString()
	board := tictactoe.New()
	seats := [2]seat{first, second}
	moveRecords := []metrics.MoveRecord{}

	start := time.Now()
	for step := 1; ; step++ {
		mover := seats[(step-1)%2]
		player := board.Player()

		action, err := mover.agent.SelectAction(board, mover.config.TimeBudget)
		if err != nil {
			return metrics.GameRecord{}, nil, fmt.Errorf("agent %d failed to select an action: %w", mover.config.ID, err)
		}
		if action == nil {
			break
		}

		moveRecords = append(moveRecords, metrics.MoveRecord{
			Game:          id,
			Step:          step,
			Player:        string(player),
			SearchMetrics: mover.collector.Complete(),
		})
		board.Play(action.(tictactoe.Cell))
	}
	end := time.Now()

	winner := "draw"
	switch score := board.Score(tictactoe.X); {
	case score > 0:
		winner = string(tictactoe.X)
	case score < 0:
		winner = string(tictactoe.O)
	}

	record := metrics.GameRecord{
		ID:        id,
		Winner:    winner,
		Moves:     len(moveRecords),
		StartTime: start,
		EndTime:   end,
		Duration:  end.Sub(start),
	}
	return record, moveRecords, nil
}

// buildSeat constructs the agent described by config.
func buildSeat(config metrics.AgentConfig) (seat, error) {
	switch config.Kind {
	case "mcts":
		collector := searcher.NewMetricsCollector()
		options := []searcher.Option{searcher.WithCollector(collector)}
		if config.Exploration > 0 {
			options = append(options, searcher.WithExploration(config.Exploration))
		}
		mcts := searcher.NewMCTS(options...)
		return seat{
			config:    config,
			agent:     agent.NewMCTSAgent(mcts, config.Iterations),
			collector: collector,
		}, nil
	case "random":
		return seat{config: config, agent: agent.NewRandomAgent(), collector: searcher.NewNoMetricsCollector()}, nil
	case "greedy":
		return seat{config: config, agent: agent.NewGreedyAgent(), collector: searcher.NewNoMetricsCollector()}, nil
	default:
		return seat{}, fmt.Errorf("unknown agent kind %q", config.Kind)
	}
}
