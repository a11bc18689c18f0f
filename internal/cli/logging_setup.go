package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/lazygrid/internal/logging"
)

// setupLogging configures logging from the loaded config and the --debug flag
// and stores a logger carrying a trace id in the command context.
func setupLogging(cmd *cobra.Command, s *session) logging.LogPathResult {
	loggingCfg := s.cfg.Logging.ToLoggingConfig()

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = logging.FormatConsole
		loggingCfg.Output = logging.OutputStderr
		loggingCfg.File = ""
	}

	result := logging.NewLoggerWithPath(loggingCfg)
	if result.UsingFile {
		logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
	} else if result.FallbackUsed {
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
	}

	ctx := cmd.Context()
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)

	s.logger = logging.ComponentLogger(result.Logger, "cli").With().Str("trace_id", traceID).Logger()
	cmd.SetContext(s.logger.WithContext(ctx))

	s.logger.Debug().Str("command", cmd.Name()).Msg("command started")
	return result
}
