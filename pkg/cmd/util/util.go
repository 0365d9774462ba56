package util

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mpapenbr/f1gp-track-go/log"
	"github.com/mpapenbr/f1gp-track-go/pkg/config"
	"github.com/mpapenbr/f1gp-track-go/pkg/export"
	"github.com/mpapenbr/f1gp-track-go/pkg/model"
	"github.com/mpapenbr/f1gp-track-go/pkg/trackfile"
	"github.com/mpapenbr/f1gp-track-go/pkg/utils"
)

func ParseLogLevel(l string, defaultVal log.Level) log.Level {
	level, err := log.ParseLevel(l)
	if err != nil {
		return defaultVal
	}
	return level
}

// SetupLogger creates the logger configured by log-level, log-format and
// log-filter and installs it as default logger.
func SetupLogger() (*log.Logger, error) {
	opts := []log.Option{log.WithCaller(true), log.AddCallerSkip(1)}
	if config.LogFilter != "" {
		filter, err := log.WithFilter(config.LogFilter)
		if err != nil {
			return nil, fmt.Errorf("invalid log filter %q: %w", config.LogFilter, err)
		}
		opts = append(opts, filter)
	}
	var logger *log.Logger
	switch config.LogFormat {
	case "json":
		logger = log.New(os.Stderr, ParseLogLevel(config.LogLevel, log.InfoLevel), opts...)
	default:
		logger = log.DevLogger(os.Stderr, ParseLogLevel(config.LogLevel, log.InfoLevel), opts...)
	}
	log.ResetDefault(logger)
	return logger, nil
}

// NewDecoder returns a decoder configured by the decoder flags
func NewDecoder(logger *log.Logger) *trackfile.Decoder {
	cfg := config.Current()
	opts := []trackfile.Option{
		trackfile.WithLogger(logger.Named("trackfile")),
		trackfile.WithParallelSearch(cfg.ParallelSearch),
	}
	if cfg.MinTrackLength > 0 && cfg.MaxTrackLength > cfg.MinTrackLength {
		opts = append(opts, trackfile.WithLengthRange(cfg.MinTrackLength, cfg.MaxTrackLength))
	}
	return trackfile.NewDecoder(opts...)
}

// TrackName derives the track name from a file path: the base name without
// extension and without an ISO 9660 version suffix like ";1".
func TrackName(path string) string {
	base := filepath.Base(path)
	if idx := strings.LastIndexByte(base, ';'); idx >= 0 {
		base = base[:idx]
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// IsTrackFile reports whether path looks like a track file (*.DAT)
func IsTrackFile(path string) bool {
	base := filepath.Base(path)
	if idx := strings.LastIndexByte(base, ';'); idx >= 0 {
		base = base[:idx]
	}
	return strings.EqualFold(filepath.Ext(base), ".dat")
}

// LoadedFile is a decoded track file
type LoadedFile struct {
	Path  string
	Hash  string // sha256 of the file content
	Asset *trackfile.Asset
}

// Summarize returns the summary of f including the content hash
func (f *LoadedFile) Summarize() model.TrackSummary {
	ret := export.Summarize(f.Asset, f.Path)
	ret.ContentHash = f.Hash
	return ret
}

// DecodeFile reads and decodes the file at path. If name is empty it is
// derived from the path.
func DecodeFile(d *trackfile.Decoder, path, name string) (*LoadedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if name == "" {
		name = TrackName(path)
	}
	asset, err := d.Inspect(data, name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &LoadedFile{Path: path, Hash: utils.HashContent(data), Asset: asset}, nil
}

// WaitForServices parses the wait-for-services duration, default 60s
func WaitForServices() time.Duration {
	timeout, err := time.ParseDuration(config.WaitForServices)
	if err != nil {
		log.Warn("Invalid duration value. Setting default 60s", log.ErrorField(err))
		timeout = 60 * time.Second
	}
	return timeout
}

// WaitForAddr waits until addr accepts tcp connections
func WaitForAddr(ctx context.Context, what, addr string) error {
	if addr == "" {
		return fmt.Errorf("no address for %s", what)
	}
	if err := utils.WaitForTCP(ctx, addr, WaitForServices()); err != nil {
		return fmt.Errorf("%s not ready: %w", what, err)
	}
	return nil
}
