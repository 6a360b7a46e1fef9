package main

import (
	"log/slog"
	"os"
)

// theLog drops the timestamp and INFO level noise from the default text
// handler, matching the teacher's cmd/o console logger.
var theLog = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
	ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
		if a.Key == slog.TimeKey {
			return slog.Attr{}
		}
		if a.Key == slog.LevelKey && a.Value.String() == "INFO" {
			return slog.Attr{}
		}
		return a
	},
}))
