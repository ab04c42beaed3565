package commands

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/battlesnakeio/torus/api"
	"github.com/battlesnakeio/torus/config"
	"github.com/battlesnakeio/torus/recorder"
	"github.com/battlesnakeio/torus/rules"
	"github.com/battlesnakeio/torus/worker"
	"github.com/pkg/errors"
	termbox "github.com/nsf/termbox-go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	record         bool
	recordDir      = recorder.DefaultDir()
	spectateListen string
	seed           int64
	maxTurns       int64
)

func init() {
	playCmd.Flags().BoolVar(&record, "record", false, "record the run so it can be replayed")
	playCmd.Flags().StringVar(&recordDir, "record-dir", recordDir, "directory recordings are written to")
	playCmd.Flags().StringVar(&spectateListen, "spectate-listen", "", "serve the run to spectators on this address, e.g. :3005")
	playCmd.Flags().Int64Var(&seed, "seed", 0, "seed for apple placement; 0 picks one from the clock")
	playCmd.Flags().Int64Var(&maxTurns, "max-turns", 0, "stop after this many turns; 0 plays until quit")
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "plays snake in the terminal",
	Args:  cobra.NoArgs,
	RunE: func(c *cobra.Command, args []string) error {
		if err := setupLogging(true); err != nil {
			return err
		}
		prometheus()
		return play()
	},
}

func play() error {
	b := config.Board()
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	game, err := rules.NewGame(b, rules.Options{
		Policy: config.CollisionPolicy,
		Rand:   rand.New(rand.NewSource(seed)),
	})
	if err != nil {
		return err
	}

	info := recorder.NewRunInfo(b, config.CollisionPolicy, float64(config.TickRate))
	log.WithFields(log.Fields{
		"run":    info.ID,
		"board":  fmt.Sprintf("%dx%d/%d", b.FieldWidth, b.FieldHeight, b.CellSize),
		"policy": info.Policy,
		"seed":   seed,
	}).Info("starting run")

	sinks := []worker.FrameSink{}
	if record {
		rec, err := recorder.Create(recordDir, info)
		if err != nil {
			return err
		}
		defer func() {
			if err := rec.Close(); err != nil {
				log.WithError(err).Error("unable to close recording")
			}
		}()
		sinks = append(sinks, rec)
	}
	if spectateListen != "" {
		hub := api.NewHub(info)
		srv := api.New(spectateListen, hub)
		go func() {
			if err := srv.WaitForExit(); err != nil {
				log.WithError(err).
					WithField("listen", spectateListen).
					Error("spectator api failed")
			}
		}()
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				log.WithError(err).Warn("spectator api shutdown")
			}
		}()
		sinks = append(sinks, hub)
	}

	if err := termbox.Init(); err != nil {
		return errors.Wrap(err, "starting terminal")
	}
	termbox.SetOutputMode(termbox.Output256)
	defer termbox.Close()

	ctx, cancel := signalContext()
	defer cancel()

	w := &worker.Worker{
		Game:     game,
		TickRate: config.TickRate,
		Input:    playerInput(setupEventQueue()),
		Screen: newTermScreen(b, func() string {
			return fmt.Sprintf("Torus - Turn %d - Length %d", game.Turn(), game.Snake().Length())
		}),
		Sinks:    sinks,
		MaxTurns: maxTurns,
	}
	err = w.Run(ctx)
	if err == context.Canceled {
		return nil
	}
	return err
}

func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sigs:
			log.WithField("signal", sig).Info("stopping")
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigs)
	}()
	return ctx, cancel
}
