package impl

import (
	"io"
	"log/slog"

	"assetverse/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(maxMembers int) *config.Config {
	return &config.Config{
		Team: &config.TeamConfig{MaxMembers: maxMembers},
	}
}
