package decode

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mpapenbr/f1gp-track-go/log"
	"github.com/mpapenbr/f1gp-track-go/pkg/cmd/util"
	"github.com/mpapenbr/f1gp-track-go/pkg/export"
	"github.com/mpapenbr/f1gp-track-go/pkg/model"
)

var (
	trackName    string
	outputFormat string
)

func NewDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode FILE...",
		Short: "decodes track files and prints a summary",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if trackName != "" && len(args) > 1 {
				return errors.New("--name requires a single file")
			}
			return decodeFiles(cmd.OutOrStdout(), args)
		},
	}
	cmd.Flags().StringVar(&trackName, "name", "",
		"track name (default: file name without extension)")
	cmd.Flags().StringVar(&outputFormat, "format", "text",
		"output format (text, json)")
	return cmd
}

func decodeFiles(out io.Writer, files []string) error {
	logger := log.Default().Named("decode")
	d := util.NewDecoder(logger)
	for _, file := range files {
		f, err := util.DecodeFile(d, file, trackName)
		if err != nil {
			return err
		}
		summary := f.Summarize()
		if outputFormat == "json" {
			data, err := export.Render(&summary, false)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(data))
			continue
		}
		printSummary(out, &summary)
	}
	return nil
}

func printSummary(out io.Writer, s *model.TrackSummary) {
	skip := "none"
	if s.SectionSkip >= 0 {
		skip = fmt.Sprintf("%d (section list at 0x%X)",
			s.SectionSkip, s.TrackDataAddress+s.SectionSkip)
	}
	checksum := fmt.Sprintf("0x%08X", s.Checksum)
	if s.Checksum != s.ComputedChecksum {
		checksum += fmt.Sprintf(" (computed 0x%08X)", s.ComputedChecksum)
	}
	fmt.Fprintf(out, "%s (%s)\n", s.Name, s.File)
	fmt.Fprintf(out, "  checksum:      %s\n", checksum)
	fmt.Fprintf(out, "  length:        %.3f km\n", s.Length/1000)
	fmt.Fprintf(out, "  sections:      %d\n", s.SectionCount)
	fmt.Fprintf(out, "  commands:      %d\n", s.CommandCount)
	fmt.Fprintf(out, "  track data:    0x%X\n", s.TrackDataAddress)
	fmt.Fprintf(out, "  skip:          %s\n", skip)
	fmt.Fprintf(out, "  kerbs:         %d left, %d right\n", s.LeftKerbs, s.RightKerbs)
	fmt.Fprintf(out, "  pit lane:      %d entry, %d exit\n", s.PitEntrances, s.PitExits)
	fmt.Fprintf(out, "  racing line:   %d segments\n", s.RacingLineSegments)
}
