package main

import (
	"time"

	"github.com/lukeharte/wizard-arena/internal/service"
	"github.com/lukeharte/wizard-arena/internal/storage"
)

// startTimeoutScanner periodically forfeits matches whose action deadline
// has passed. Forfeit logic lives in service.HandleTimedOutMatch.
func startTimeoutScanner(repo storage.Repository) {
	go func() {
		ticker := time.NewTicker(5 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			service.ScanTimedOutMatches(repo, time.Now())
		}
	}()
}
