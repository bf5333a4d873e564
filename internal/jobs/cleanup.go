// Package jobs planifie les tâches de maintenance récurrentes du serveur.
package jobs

import (
	"context"

	"github.com/robfig/cron"
	"github.com/takedajouji/FitU/internal/logger"
	"github.com/takedajouji/FitU/internal/utils"
)

// StartScheduler lance le planificateur de maintenance et le retourne pour
// permettre un arrêt propre
func StartScheduler() *cron.Cron {
	c := cron.New()

	// Désactivation quotidienne des sessions expirées
	c.AddFunc("@daily", func() {
		purged, err := utils.PurgeExpiredSessions(context.Background())
		if err != nil {
			logger.Error("session purge failed: %v", err)
			return
		}
		if purged > 0 {
			logger.Info("purged %d expired sessions", purged)
		}
	})

	c.Start()
	logger.Success("Maintenance scheduler started")

	return c
}
