// Package logger provides leveled logging for xbrew CLI commands.
//
// Logging behavior is controlled by two flags:
//
//   - --verbose: shows info messages
//   - --debug: shows all messages including debug details
//
// Warnings and errors are always shown on stderr.
//
// Commands create a logger in their PersistentPreRun and use it for the
// lifetime of the command:
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Fetching recipe %s", id)
package logger
