package config

// Application constants for the attestation consolidation CLI.
const (
	AppName = "Attestation Consolidator"

	// EnvPrefix is the prefix for environment variable overrides, e.g.
	// ATTEST_LOGGING_LEVEL.
	EnvPrefix = "ATTEST"

	// DefaultConfigFile is looked up next to the executable.
	DefaultConfigFile = "config.yaml"

	// Default directories, relative to the executable.
	DefaultDataDir    = "data"
	DefaultReportsDir = "data/reports"
	DefaultLogsDir    = "logs"

	// DefaultLogFile is the log file name inside the logs directory.
	DefaultLogFile = "attest.log"
)
