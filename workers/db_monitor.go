package workers

import (
	"context"
	"time"

	"marketplace/logging"
	"marketplace/metrics"

	"github.com/jinzhu/gorm"
)

const pingTimeout = 3 * time.Second

// StartDBMonitor verifica a conexão com o banco a cada interval e publica
// o resultado nas métricas, até ctx ser cancelado.
func StartDBMonitor(ctx context.Context, db *gorm.DB, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		CheckDB(ctx, db)
		for {
			select {
			case <-ticker.C:
				CheckDB(ctx, db)
			case <-ctx.Done():
				return
			}
		}
	}()
}

// CheckDB faz um ping e registra o estado do pool. Devolve false se o banco não respondeu.
func CheckDB(ctx context.Context, db *gorm.DB) bool {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	sqlDB := db.DB()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		logging.Logger().WithError(err).Error("db monitor: banco indisponível")
		metrics.SetDBUp(false)
		return false
	}

	stats := sqlDB.Stats()
	metrics.SetDBUp(true)
	metrics.SetDBConnections(stats.OpenConnections, stats.InUse)
	return true
}
