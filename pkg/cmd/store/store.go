package store

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/spf13/cobra"

	"github.com/mpapenbr/f1gp-track-go/log"
	"github.com/mpapenbr/f1gp-track-go/pkg/cmd/util"
	"github.com/mpapenbr/f1gp-track-go/pkg/config"
	"github.com/mpapenbr/f1gp-track-go/pkg/db/postgres"
	"github.com/mpapenbr/f1gp-track-go/pkg/model"
	trackrepos "github.com/mpapenbr/f1gp-track-go/pkg/repository/track"
	"github.com/mpapenbr/f1gp-track-go/pkg/utils"
)

func NewStoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store FILE...",
		Short: "decodes track files and stores their summary in the track catalog",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return storeFiles(cmd.Context(), args)
		},
	}
	cmd.Flags().StringVar(&config.SQLLogLevel,
		"sql-log-level",
		"debug",
		"controls the log level for sql methods")
	return cmd
}

func storeFiles(ctx context.Context, files []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := log.Default().Named("store")
	if err := util.WaitForAddr(ctx, "database", utils.ExtractFromDBURL(config.DB)); err != nil {
		return err
	}
	pool, err := postgres.InitWithURL(ctx, config.DB,
		postgres.WithTracer(logger.Named("sql"),
			util.ParseLogLevel(config.SQLLogLevel, log.DebugLevel)))
	if err != nil {
		return err
	}
	defer pool.Close()

	d := util.NewDecoder(logger)
	for _, file := range files {
		f, err := util.DecodeFile(d, file, "")
		if err != nil {
			return err
		}
		summary := f.Summarize()
		entry := &model.DbTrack{
			Name:     summary.Name,
			Checksum: summary.Checksum,
			Data:     summary,
		}
		var created bool
		if err := pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
			var err error
			created, err = trackrepos.EnsureTrack(ctx, tx, entry)
			return err
		}); err != nil {
			return err
		}
		logger.Info("stored track",
			log.String("file", file),
			log.String("name", entry.Name),
			log.Int("id", entry.ID),
			log.Bool("created", created))
	}
	return nil
}
