/*
	Copyright 2023 Markus Papenbrock
*/

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	decodeCmd "github.com/mpapenbr/f1gp-track-go/pkg/cmd/decode"
	exportCmd "github.com/mpapenbr/f1gp-track-go/pkg/cmd/export"
	migrateCmd "github.com/mpapenbr/f1gp-track-go/pkg/cmd/migrate"
	publishCmd "github.com/mpapenbr/f1gp-track-go/pkg/cmd/publish"
	racinglineCmd "github.com/mpapenbr/f1gp-track-go/pkg/cmd/racingline"
	storeCmd "github.com/mpapenbr/f1gp-track-go/pkg/cmd/store"
	"github.com/mpapenbr/f1gp-track-go/pkg/cmd/util"
	watchCmd "github.com/mpapenbr/f1gp-track-go/pkg/cmd/watch"
	"github.com/mpapenbr/f1gp-track-go/pkg/config"
	"github.com/mpapenbr/f1gp-track-go/pkg/trackfile"
	"github.com/mpapenbr/f1gp-track-go/version"
)

const envPrefix = "GPT"

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "gptrack",
	Short:   "Decoder and tooling for F1GP track files",
	Long:    ``,
	Version: version.FullVersion,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_, err := util.SetupLogger()
		return err
	},
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is $HOME/.gptrack.yml)")

	rootCmd.PersistentFlags().StringVar(&config.DB, "db",
		"postgresql://DB_USERNAME:DB_USER_PASSWORD@DB_HOST:5432/gptrack",
		"Connection string for the track catalog database")
	rootCmd.PersistentFlags().StringVar(&config.NatsURL, "nats-url",
		"nats://localhost:4222",
		"URL of the NATS server")
	rootCmd.PersistentFlags().StringVar(&config.WaitForServices,
		"wait-for-services",
		"15s",
		"Duration to wait for other services to be ready")
	rootCmd.PersistentFlags().StringVar(&config.LogLevel,
		"log-level",
		"info",
		"controls the log level (debug, info, warn, error, fatal)")
	rootCmd.PersistentFlags().StringVar(&config.LogFormat,
		"log-format",
		"text",
		"controls the log output format (json, text)")
	rootCmd.PersistentFlags().StringVar(&config.LogFilter,
		"log-filter",
		"",
		"zapfilter rules, e.g. \"*:trackfile* info+:*\"")
	rootCmd.PersistentFlags().BoolVar(&config.ParallelSearch,
		"parallel-search",
		false,
		"evaluate section list candidates concurrently")
	rootCmd.PersistentFlags().Float64Var(&config.MinTrackLength,
		"min-length",
		trackfile.DefaultMinTrackLength,
		"minimum plausible track length in meters")
	rootCmd.PersistentFlags().Float64Var(&config.MaxTrackLength,
		"max-length",
		trackfile.DefaultMaxTrackLength,
		"maximum plausible track length in meters")

	// add commands here
	rootCmd.AddCommand(decodeCmd.NewDecodeCmd())
	rootCmd.AddCommand(exportCmd.NewExportCmd())
	rootCmd.AddCommand(racinglineCmd.NewRacingLineCmd())
	rootCmd.AddCommand(storeCmd.NewStoreCmd())
	rootCmd.AddCommand(migrateCmd.NewMigrateCmd())
	rootCmd.AddCommand(publishCmd.NewPublishCmd())
	rootCmd.AddCommand(watchCmd.NewWatchCmd())
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".gptrack" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".gptrack")
	}

	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	bindFlags(rootCmd, viper.GetViper())
	for _, cmd := range rootCmd.Commands() {
		bindFlags(cmd, viper.GetViper())
	}
}

// Bind each cobra flag to its associated viper configuration
// (config file and environment variable)
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// Environment variables can't have dashes in them, so bind them to their
		// equivalent keys with underscores, e.g. --log-level to GPT_LOG_LEVEL
		if strings.Contains(f.Name, "-") {
			envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
			if err := v.BindEnv(f.Name,
				fmt.Sprintf("%s_%s", envPrefix, envVarSuffix)); err != nil {
				fmt.Fprintf(os.Stderr, "Could not bind env var %s: %v", f.Name, err)
			}
		}
		// Apply the viper config value to the flag when the flag is not set and viper
		// has a value
		if !f.Changed && v.IsSet(f.Name) {
			val := v.Get(f.Name)
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
				fmt.Fprintf(os.Stderr, "Could set flag value for %s: %v", f.Name, err)
			}
		}
	})
}
