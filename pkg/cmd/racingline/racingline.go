package racingline

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mpapenbr/f1gp-track-go/pkg/export"
	"github.com/mpapenbr/f1gp-track-go/pkg/trackfile"
)

var (
	offset int
	pretty bool
)

func NewRacingLineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "racingline FILE",
		Short: "decodes the racing line at an absolute file offset",
		Long: `Decodes the racing line starting at --offset (decimal or 0x prefixed).
The racing line address is not derived from the offset table yet.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			c := trackfile.NewCursor(data)
			if err := c.Seek(offset); err != nil {
				return err
			}
			rl, err := trackfile.DecodeRacingLine(c)
			if err != nil {
				return fmt.Errorf("racing line at 0x%X: %w", offset, err)
			}
			out, err := export.Render(export.NewRacingLine(&rl), pretty)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
	cmd.Flags().IntVar(&offset, "offset", 0, "absolute address of the racing line")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent the JSON output")
	//nolint:errcheck // flag exists
	cmd.MarkFlagRequired("offset")
	return cmd
}
