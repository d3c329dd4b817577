// Package logger provides verbosity-gated logging for secman CLI commands.
//
// Logging behavior is controlled by two flags:
//
//   - --verbose: shows info and warning messages
//   - --debug: shows all messages including debug details
//
// Without flags, only critical warnings and errors are shown.
//
// Commands create a logger in their PersistentPreRun:
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Processing %s", file)
package logger
