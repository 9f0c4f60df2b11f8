package workers

import (
	"context"
	"cooksync/contract"
	"cooksync/observability"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"
)

var _ contract.Worker = (*StatsWorker)(nil)

// StatsWorker logs process health (CPU, RSS) alongside the live gauges
// on a fixed interval. It is the operational heartbeat of the service.
type StatsWorker struct {
	log      *slog.Logger
	monitor  *observability.Monitor
	interval time.Duration
}

func NewStatsWorker(log *slog.Logger, monitor *observability.Monitor, interval time.Duration) *StatsWorker {
	return &StatsWorker{log: log, monitor: monitor, interval: interval}
}

func (w *StatsWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping stats worker")
			return ctx.Err()
		case <-ticker.C:
			rss, cpu, err := selfStats(p)
			if err != nil {
				w.log.Error("Failed to collect self stats", "error", err)
				continue
			}

			stats := w.monitor.Snapshot()
			w.log.Info("Service stats",
				"connections", stats.Connections,
				"active_sessions", stats.ActiveSessions,
				"events_delivered", stats.EventsDelivered,
				"events_dropped", stats.EventsDropped,
				"commands_dropped", stats.CommandsDropped,
				"rss_bytes", rss,
				"cpu_percent", cpu)
		}
	}
}

// selfStats retrieves memory and CPU usage for the given process.
func selfStats(p *process.Process) (uint64, float64, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, err
	}

	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, err
	}
	return memInfo.RSS, cpuPercent, nil
}
