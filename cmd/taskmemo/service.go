package main

import (
	"github.com/fentz26/taskmemo/internal/audit"
	"github.com/fentz26/taskmemo/internal/store"
	"github.com/fentz26/taskmemo/internal/tracker"
)

// newService builds the tracker for the configured user. When an audit
// database is configured it is opened here and closed by cleanup.
func newService() (*tracker.Service, func(), error) {
	var rec audit.Recorder = audit.Nop{}
	cleanup := func() {}

	if cfg.AuditEnabled() {
		s, err := store.New(cfg.AuditDB)
		if err != nil {
			return nil, nil, err
		}
		rec = audit.NewJournal(s, cfg.Username)
		cleanup = func() {
			if err := s.Close(); err != nil {
				logger.Warn("audit db close failed", "err", err)
			}
		}
		logger.Debug("audit journal open", "path", cfg.AuditDB)
	}

	return tracker.NewService(cfg.Username, rec, logger), cleanup, nil
}
