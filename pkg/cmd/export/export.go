package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mpapenbr/f1gp-track-go/log"
	"github.com/mpapenbr/f1gp-track-go/pkg/cmd/util"
	trackexport "github.com/mpapenbr/f1gp-track-go/pkg/export"
)

var (
	output string
	pretty bool
)

func NewExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export FILE...",
		Short: "exports decoded track files as JSON",
		Long: `Exports decoded track files as JSON.
A single file is written to stdout or to --output. Multiple files require
--output to be a directory, each file is written as <name>.racing.json.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return exportFiles(cmd.OutOrStdout(), args)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "",
		"output file (single input) or directory")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent the JSON output")
	return cmd
}

func exportFiles(out io.Writer, files []string) error {
	logger := log.Default().Named("export")
	d := util.NewDecoder(logger)
	toDir := len(files) > 1
	if !toDir && output != "" {
		if fi, err := os.Stat(output); err == nil && fi.IsDir() {
			toDir = true
		}
	}
	if toDir && output == "" {
		return errors.New("multiple files require --output to be a directory")
	}
	if toDir {
		if err := os.MkdirAll(output, 0o755); err != nil {
			return err
		}
	}
	for _, file := range files {
		f, err := util.DecodeFile(d, file, "")
		if err != nil {
			return err
		}
		data, err := trackexport.Render(trackexport.NewDocument(f.Asset, file), pretty)
		if err != nil {
			return err
		}
		switch {
		case toDir:
			target := filepath.Join(output, trackexport.FileName(f.Asset.Track.Name))
			if err := os.WriteFile(target, data, 0o600); err != nil {
				return err
			}
			logger.Info("exported", log.String("file", file), log.String("target", target))
		case output != "":
			if err := os.WriteFile(output, data, 0o600); err != nil {
				return err
			}
		default:
			if _, err := fmt.Fprintln(out, string(data)); err != nil {
				return err
			}
		}
	}
	return nil
}
