package main

import (
	"fmt"
	"io"
	"strings"

	logging "github.com/op/go-logging"
)

const logFormat = "%{time:2006-01-02 15:04:05.000} [%{level:.4s}] %{shortfile} %{message}"

var log = logging.MustGetLogger("scijo")

// initLogging routes every logger to w at the given level name
// (CRITICAL, ERROR, WARNING, NOTICE, INFO, DEBUG; case-insensitive).
func initLogging(w io.Writer, level string) error {
	lvl, err := logging.LogLevel(strings.ToUpper(level))
	if err != nil {
		return fmt.Errorf("log level %q: %w", level, err)
	}
	backend := logging.AddModuleLevel(
		logging.NewBackendFormatter(
			logging.NewLogBackend(w, "", 0),
			logging.MustStringFormatter(logFormat),
		),
	)
	backend.SetLevel(lvl, "")
	logging.SetBackend(backend)

	return nil
}
