package app

import (
	"context"

	"github.com/atomicstack/header-menu/internal/navigation"
	"github.com/atomicstack/header-menu/internal/server"
	"github.com/atomicstack/header-menu/internal/session"
)

// Serve exposes the header over HTTP until ctx is cancelled. The snapshot
// is re-read for every request.
func Serve(ctx context.Context, cfg Config, srvCfg server.Config) error {
	if srvCfg.Page == "" {
		srvCfg.Page = cfg.Page
	}
	srvCfg.Plain = srvCfg.Plain || cfg.Plain
	source := func() (session.State, error) {
		return LoadSnapshot(cfg.SessionPath)
	}
	return server.New(srvCfg, source, navigation.New()).ListenAndServe(ctx)
}
