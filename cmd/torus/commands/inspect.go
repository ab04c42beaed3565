package commands

import (
	"errors"
	"fmt"

	"github.com/battlesnakeio/torus/recorder"
	"github.com/battlesnakeio/torus/rules"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
)

var inspectFile string

func init() {
	inspectCmd.Flags().StringVarP(&inspectFile, "file", "f", "", "recording to inspect")
}

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "dumps the run info and final frame of a recording",
	Args: func(c *cobra.Command, args []string) error {
		if len(inspectFile) == 0 {
			return errors.New("--file is required")
		}
		return nil
	},
	RunE: func(*cobra.Command, []string) error {
		if err := setupLogging(false); err != nil {
			return err
		}
		archive, err := recorder.Read(inspectFile)
		if err != nil {
			return err
		}
		fmt.Print(summarize(archive))
		spew.Dump(archive.Info)
		if last, ok := archive.Last(); ok {
			spew.Dump(last)
		}
		return nil
	},
}

func summarize(a recorder.Archive) string {
	var resets, apples, longest int
	for _, f := range a.Frames {
		if f.AteApple {
			apples++
		}
		if f.Length > longest {
			longest = f.Length
		}
		if f.Result == rules.CollidedAndReset {
			resets++
		}
	}
	return fmt.Sprintf("run %s: %d frames, %d apples, %d resets, longest snake %d\n",
		a.Info.ID, len(a.Frames), apples, resets, longest)
}
