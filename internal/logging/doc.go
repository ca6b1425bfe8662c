// Package logger provides verbosity-gated logging for toyrsa commands.
//
// # Verbosity Levels
//
//   - --verbose: Shows info and warning messages
//   - --debug: Shows all messages including debug details
//
// Without flags, only critical warnings are shown. Arithmetic results are
// never logged here; they are printed by the commands themselves.
//
// # Log Methods
//
//	Logger.Infof()          // Shown with --verbose or --debug
//	Logger.Debugf()         // Shown only with --debug
//	Logger.Warnf()          // Shown with --verbose or --debug
//	Logger.WarnfAlways()    // Always shown
//	Logger.Errorf()         // Shown with --debug
//	Logger.ErrorfAndReturn() // Errorf, then returns the message as an error
//
// # Usage
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Drew public exponent after %d attempts", attempts)
package logger
