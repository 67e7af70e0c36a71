package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Sh3mm/Avalam-engine-bots/internal/config"
	"github.com/Sh3mm/Avalam-engine-bots/internal/experience"
	"github.com/Sh3mm/Avalam-engine-bots/internal/game/core"
	"github.com/Sh3mm/Avalam-engine-bots/internal/game/events"
	"github.com/Sh3mm/Avalam-engine-bots/internal/game/events/subscribers"
	"github.com/Sh3mm/Avalam-engine-bots/internal/selfplay"
)

func main() {
	// Command line flags
	configPath := flag.String("config", "", "Path to config file")
	games := flag.Int("games", -1, "Number of self-play games (-1 to use config default)")
	seed := flag.Int64("seed", 0, "Random seed (0 to seed from the clock)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	flag.Parse()

	// Initialize configuration
	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}

	cfg := config.Get()

	// Use config defaults if not overridden by flags
	if *games == -1 {
		*games = cfg.SelfPlay.Games
	}
	if *seed == 0 {
		*seed = cfg.SelfPlay.Seed
	}
	if *logLevel == "" {
		*logLevel = cfg.Log.Level
	}

	setupLogging(*logLevel, cfg.Log.Format)

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	log.Info().
		Int("games", *games).
		Int64("seed", *seed).
		Int("max_plays", cfg.SelfPlay.MaxPlays).
		Msg("Starting Avalam self-play")

	bus := events.NewEventBus()
	if cfg.Events.LogEvents {
		sub := subscribers.NewLoggerSubscriber("event-logger", log.Logger, zerolog.DebugLevel)
		sub.SetDevMode(cfg.Events.DevMode)
		bus.Subscribe(sub)
	}

	runner := selfplay.NewRunner(log.Logger, rng, bus, cfg.SelfPlay.MaxPlays)

	var buffer *experience.Buffer
	if cfg.Experience.Enabled {
		buffer = experience.NewBuffer(cfg.Experience.Capacity)
		runner = runner.WithCollector(experience.NewCollector(buffer, log.Logger))
	}

	results, err := runner.Run(*games)
	if err != nil {
		log.Fatal().Err(err).Msg("Self-play failed")
	}

	if buffer != nil {
		samples := buffer.Samples()
		if err := experience.SaveFile(cfg.Experience.Path, samples); err != nil {
			log.Fatal().Err(err).Msg("Failed to save experiences")
		}
		log.Info().
			Int("samples", len(samples)).
			Str("path", cfg.Experience.Path).
			Msg("Experiences saved")
	}

	if cfg.SelfPlay.RenderFinal && len(results) > 0 {
		fmt.Printf("Final board of the last game:\n%s\n", results[len(results)-1].Final.Render())
	}

	var wins [core.NumPlayers]int
	draws := 0
	for _, res := range results {
		if res.Winner == core.Draw {
			draws++
		} else {
			wins[res.Winner]++
		}
	}
	log.Info().
		Int("games", len(results)).
		Int("player_0_wins", wins[0]).
		Int("player_1_wins", wins[1]).
		Int("draws", draws).
		Msg("Self-play finished")
}

func setupLogging(level, format string) {
	var logLevel zerolog.Level
	switch level {
	case "debug":
		logLevel = zerolog.DebugLevel
	case "info":
		logLevel = zerolog.InfoLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	case "error":
		logLevel = zerolog.ErrorLevel
	default:
		logLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	if format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}
