/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package log

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/apex/log"
)

// EnvLevel names the environment variable holding the log level.
const EnvLevel = "PRIMER_LOG"

// InitLogger sets up apex/log with a CustomHandler on stderr and a level from
// the PRIMER_LOG env variable. An empty or unknown level means error.
func InitLogger() {
	InitLoggerWithLevel(os.Getenv(EnvLevel))
}

// InitLoggerWithLevel is InitLogger with an explicit level, as read from the
// config file.
func InitLoggerWithLevel(level string) {
	log.SetHandler(&CustomHandler{Writer: os.Stderr})

	lvl, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = log.ErrorLevel
	}
	log.SetLevel(lvl)
}

// CustomHandler writes one line per entry: timestamp, level initial, message
// and sorted fields.
type CustomHandler struct {
	Writer io.Writer
}

// HandleLog implements the log.Handler interface
func (h *CustomHandler) HandleLog(e *log.Entry) error {
	w := h.Writer
	if w == nil {
		w = os.Stderr
	}

	timestamp := e.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now()
	}
	level := strings.ToUpper(e.Level.String())

	var b strings.Builder
	fmt.Fprintf(&b, "%s %.1s %s", timestamp.Format("2006-01-02 15:04:05"), level, e.Message)

	names := e.Fields.Names()
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&b, " %s=%v", name, e.Fields.Get(name))
	}
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}
