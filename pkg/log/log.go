package log

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	// LogVerbosityInfo is the verbosity level for info logging.
	LogVerbosityInfo = 0
	// LogVerbosityDebug is the verbosity level for debug logging.
	LogVerbosityDebug = 1
	// LogVerbosityTrace is the verbosity level for trace logging.
	LogVerbosityTrace = 2

	// LogFormatText indicates a text log format.
	LogFormatText = "text"
	// LogFormatJSON indicates a JSON log format.
	LogFormatJSON = "json"

	// LogOutputStderr indicates logging to stderr.
	LogOutputStderr = "stderr"
	// LogOutputStdout indicates logging to stdout.
	LogOutputStdout = "stdout"
)

// Config represents the configuration settings for a logger.
type Config struct {
	// Verbosity specifies the logging verbosity level.
	Verbosity int
	// Format specifies the logging output format.
	Format string
	// Output specifies the destination for logging. You can specify the
	// special values of 'stderr' or 'stdout' or a file path.
	Output string
}

// Configure will configure the logger from the supplied config.
func Configure(logConfig *Config) error {
	configureVerbosity(logConfig)

	if err := configureFormatter(logConfig); err != nil {
		return fmt.Errorf("configuring log formatter: %w", err)
	}

	if err := configureOutput(logConfig); err != nil {
		return fmt.Errorf("configuring log output: %w", err)
	}

	return nil
}

// AddFlagsToCommand will add the logging specific flags to the supplied
// cobra command.
func AddFlagsToCommand(cmd *cobra.Command, config *Config) {
	cmd.PersistentFlags().IntVarP(&config.Verbosity,
		"verbosity",
		"v",
		LogVerbosityInfo,
		"The verbosity level of the logging. A level of 0 is info, 1 is debug and 2 or above is trace.")

	cmd.PersistentFlags().StringVar(&config.Format,
		"log-format",
		LogFormatText,
		"The format of the logging output. Can be 'text' or 'json'.")

	cmd.PersistentFlags().StringVar(&config.Output,
		"log-output",
		LogOutputStderr,
		"The output for logging. Supply 'stderr' or 'stdout' or a path to a file.")
}

func configureVerbosity(logConfig *Config) {
	switch {
	case logConfig.Verbosity <= LogVerbosityInfo:
		logrus.SetLevel(logrus.InfoLevel)
	case logConfig.Verbosity == LogVerbosityDebug:
		logrus.SetLevel(logrus.DebugLevel)
	default:
		logrus.SetLevel(logrus.TraceLevel)
	}
}

func configureFormatter(logConfig *Config) error {
	switch logConfig.Format {
	case LogFormatText:
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			DisableColors: true,
		})
	case LogFormatJSON:
		logrus.SetFormatter(&logrus.JSONFormatter{})
	default:
		return invalidLogFormatError{format: logConfig.Format}
	}

	return nil
}

func configureOutput(logConfig *Config) error {
	if logConfig.Output == "" {
		return ErrLogOutputRequired
	}

	switch logConfig.Output {
	case LogOutputStderr:
		logrus.SetOutput(os.Stderr)
	case LogOutputStdout:
		logrus.SetOutput(os.Stdout)
	default:
		file, err := os.OpenFile(logConfig.Output, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file %s: %w", logConfig.Output, err)
		}

		logrus.SetOutput(file)
	}

	return nil
}

type logCtxKeyType string

const logCtxKey logCtxKeyType = "rocmclean.log"

// WithLogger is used to attach a logger to a specific context.
func WithLogger(ctx context.Context, logger *logrus.Entry) context.Context {
	return context.WithValue(ctx, logCtxKey, logger)
}

// GetLogger will get a logger from the supplied context, or return a logger
// based on the standard logger if the context holds none.
func GetLogger(ctx context.Context) *logrus.Entry {
	if logger, ok := ctx.Value(logCtxKey).(*logrus.Entry); ok {
		return logger
	}

	return logrus.NewEntry(logrus.StandardLogger())
}
