package jobs

import (
	"context"
	"time"

	"fleetcommander/internal/service"
	"fleetcommander/internal/utils"

	"github.com/labstack/gommon/log"
)

// ArrivalSweeper periodically docks departed ships whose ETA has passed, so
// arrivals happen even when nobody calls the process endpoint.
type ArrivalSweeper struct {
	voyages  *service.DefaultVoyageService
	interval time.Duration
}

func NewArrivalSweeper(voyages *service.DefaultVoyageService, interval time.Duration) *ArrivalSweeper {
	return &ArrivalSweeper{voyages: voyages, interval: interval}
}

func (a *ArrivalSweeper) Start(ctx context.Context) {
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	log.Info("Arrival sweeper cron started")

	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping arrival sweeper...")
			return
		case <-ticker.C:
			a.sweep()
		}
	}
}

func (a *ArrivalSweeper) sweep() {
	resp, apierr := a.voyages.ProcessArrivals(utils.NowUTC())
	if apierr != nil {
		log.Errorf("Sweeper: failed to process arrivals: %v", apierr)
		return
	}
	if resp.Processed > 0 {
		log.Infof("Sweeper: processed %d arrival(s)", resp.Processed)
	}
}
