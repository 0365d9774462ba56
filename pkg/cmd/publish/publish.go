package publish

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mpapenbr/f1gp-track-go/log"
	"github.com/mpapenbr/f1gp-track-go/pkg/cmd/util"
	"github.com/mpapenbr/f1gp-track-go/pkg/config"
	trackpublish "github.com/mpapenbr/f1gp-track-go/pkg/publish"
	"github.com/mpapenbr/f1gp-track-go/pkg/utils"
)

func NewPublishCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publish FILE...",
		Short: "decodes track files and publishes their summary on NATS",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return publishFiles(cmd.Context(), args)
		},
	}
	cmd.Flags().StringVar(&config.NatsSubjectPrefix,
		"subject-prefix",
		trackpublish.DefaultSubjectPrefix,
		"subjects are <prefix>.track.<name>")
	return cmd
}

func publishFiles(ctx context.Context, files []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := log.Default().Named("publish")
	if err := util.WaitForAddr(ctx, "nats", utils.ExtractFromNatsURL(config.NatsURL)); err != nil {
		return err
	}
	conn, err := trackpublish.Connect(config.NatsURL)
	if err != nil {
		return err
	}
	defer conn.Close()

	p := trackpublish.NewPublisher(conn,
		trackpublish.WithSubjectPrefix(config.NatsSubjectPrefix),
		trackpublish.WithLogger(logger))
	d := util.NewDecoder(logger)
	for _, file := range files {
		f, err := util.DecodeFile(d, file, "")
		if err != nil {
			return err
		}
		summary := f.Summarize()
		if err := p.Publish(ctx, &summary); err != nil {
			return err
		}
		logger.Info("published", log.String("file", file), log.String("name", summary.Name))
	}
	return nil
}
