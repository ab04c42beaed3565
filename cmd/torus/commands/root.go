package commands

import (
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"os"

	"github.com/battlesnakeio/torus/version"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "torus",
	Short:   "torus is snake on a board without walls",
	Version: version.Version,
	Args:    cobra.NoArgs,
	RunE: func(c *cobra.Command, args []string) error {
		return playCmd.RunE(c, args)
	},
}

var (
	logLevel   = "info"
	logFile    string
	promEnable = false
	promListen = ":9000"

	logCloser io.Closer
)

// Execute runs the root command
func Execute() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", logLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file; the terminal UI discards them otherwise")
	rootCmd.PersistentFlags().BoolVar(&promEnable, "prometheus", promEnable, "enable prometheus metrics")
	rootCmd.PersistentFlags().StringVar(&promListen, "prometheus-listen", promListen, "prometheus http endpoint")
	rootCmd.Flags().AddFlagSet(playCmd.Flags())

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(inspectCmd)

	err := rootCmd.Execute()
	if logCloser != nil {
		logCloser.Close()
	}
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// setupLogging configures logrus. Commands that take over the terminal pass
// quiet so that log lines do not scribble over the board.
func setupLogging(quiet bool) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)

	switch {
	case logFile != "":
		f, err := os.OpenFile(logFile, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0644)
		if err != nil {
			return errors.Wrapf(err, "opening log file %s", logFile)
		}
		log.SetOutput(f)
		logCloser = f
	case quiet:
		log.SetOutput(ioutil.Discard)
	}
	return nil
}

func prometheus() {
	if !promEnable {
		log.Info("prometheus exporter not enabled")
		return
	}

	log.WithField("addr", promListen).Info("starting prometheus exporter")
	go func() {
		r := http.NewServeMux()
		r.Handle("/metrics", promhttp.Handler())
		if err := http.ListenAndServe(promListen, r); err != nil {
			log.WithError(err).Warn("prometheus failed to listen")
		}
	}()
}
