// Package logger provides colored, leveled console logging with an optional
// size-rotated log file.
//
// # Levels
//
// The fixed levels are INFO, WARNING, ERROR, DEBUG, SUCCESS, FAILURE and
// CRITICAL, each with a bracketed tag ("[INFO]", "[WARN]", ...) and a default
// color. Custom messages bring their own tag and color.
//
// # Configuration
//
// Load a document once at startup. LoadConfig never fails; a missing or broken
// file falls back to DefaultConfig after printing an error notice:
//
//	cfg := logger.LoadConfig("config.json")
//	l := logger.New(cfg)
//
// JSON, YAML and TOML documents are accepted, picked by file extension:
//
//	{
//	    "log_levels": {"[INFO]": true, "[DEBUG]": false},
//	    "log_file": "log.txt",
//	    "log_rotation": true,
//	    "log_rotation_size": 10485760
//	}
//
// A tag missing from log_levels is enabled.
//
// # Output
//
// Console lines look like
//
//	\x1b[96m[INFO] 2024-05-01 12:00:00 - hello\x1b[0m
//
// and file lines drop the color codes. File output is opt-in per call:
//
//	l.Info("request served")
//	if err := l.Error("disk almost full", logger.ToFile()); err != nil {
//	    // rotation or append failed
//	}
//
// Before each file write the active file is rotated once it reaches
// log_rotation_size: log.4.txt becomes log.5.txt and so on, and log.txt
// becomes log.1.txt. At most MaxBackups backups are kept.
//
// # Entry point
//
// Guard wraps main so that panics and returned errors are logged, with the
// trace forced into the log file:
//
//	err := logger.Guard(l, run)
//	os.Exit(logger.ExitCode(err))
package logger
