package tui

import "log/slog"

type Deps struct {
	Logger *slog.Logger
	Debug  bool
}
