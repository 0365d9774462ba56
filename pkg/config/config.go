package config

// this holds the resolved configuration values from CLI
//
//nolint:lll // readablity
var (
	DB                 string  // connection string for the database
	NatsURL            string  // URL of the NATS server
	NatsSubjectPrefix  string  // subjects are <prefix>.track.<name>
	WaitForServices    string  // duration to wait for other services to be ready
	LogLevel           string  // sets the log level (zap log level values)
	SQLLogLevel        string  // sets the log level for sql subsystem
	LogFormat          string  // text vs json
	LogFilter          string  // zapfilter rules, e.g. "*:trackfile* info+:*"
	MigrationSourceURL string  // location of migration files
	ParallelSearch     bool    // evaluate section list candidates concurrently
	MinTrackLength     float64 // lower bound of a plausible track length (meters)
	MaxTrackLength     float64 // upper bound of a plausible track length (meters)
)

// Config holds the decoder related values which are passed to commands
type Config struct {
	ParallelSearch bool
	MinTrackLength float64
	MaxTrackLength float64
}

// Current returns the decoder related values resolved from CLI
func Current() Config {
	return Config{
		ParallelSearch: ParallelSearch,
		MinTrackLength: MinTrackLength,
		MaxTrackLength: MaxTrackLength,
	}
}
