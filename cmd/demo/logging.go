package main

import (
	"io"
	"log"
	"os"
	"strings"

	"github.com/Rakly3/CursorDemo/engine/config"
)

// setupLogging points the standard logger at the sinks the config
// asks for and returns the log file, if any, for the caller to close.
// With both sinks off, logging is discarded entirely.
func setupLogging(cfg *config.Manager) *os.File {
	flags := log.Ldate | log.Ltime
	if strings.EqualFold(cfg.Str("Logging", "level"), "debug") {
		flags |= log.Lmicroseconds | log.Lshortfile
	}
	log.SetFlags(flags)

	var sinks []io.Writer
	if cfg.Bool("Logging", "console_output") {
		sinks = append(sinks, os.Stderr)
	}

	var file *os.File
	if cfg.Bool("Logging", "file_output") {
		path := cfg.Str("Logging", "log_file")
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			os.Stderr.WriteString("demo: cannot open log file " + path + ": " + err.Error() + "\n")
		} else {
			file = f
			sinks = append(sinks, f)
		}
	}

	switch len(sinks) {
	case 0:
		log.SetOutput(io.Discard)
	case 1:
		log.SetOutput(sinks[0])
	default:
		log.SetOutput(io.MultiWriter(sinks...))
	}
	return file
}
