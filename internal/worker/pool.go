// Package worker implements the buffered worker pool that decouples HTTP
// mutation handling from sidecar disk writes:
// - Backpressure via a bounded queue
// - Per-clip coalescing inside a batch (derivation output is a complete
//   payload, so only the last write per clip matters)
// - Graceful shutdown with flush guarantees

package worker

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/matchtape/stats-api/internal/models"
)

// Prometheus metrics
var (
	sidecarsEnqueued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "matchtape_sidecars_enqueued_total",
		Help: "Total number of sidecar payloads enqueued for persistence",
	})

	sidecarsPersisted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "matchtape_sidecars_persisted_total",
		Help: "Total number of sidecar payloads written to disk",
	})

	sidecarsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "matchtape_sidecars_failed_total",
		Help: "Total number of sidecar writes that failed",
	})

	sidecarsCoalesced = promauto.NewCounter(prometheus.CounterOpts{
		Name: "matchtape_sidecars_coalesced_total",
		Help: "Total number of sidecar writes skipped because a newer payload for the same clip was in the batch",
	})

	queueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "matchtape_persist_queue_depth",
		Help: "Current depth of the persist queue",
	})

	flushDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "matchtape_persist_flush_duration_seconds",
		Help:    "Duration of persist batch flushes",
		Buckets: prometheus.DefBuckets,
	})
)

// SidecarSaver is the slice of the store the pool needs.
type SidecarSaver interface {
	Save(ctx context.Context, sc *models.Sidecar) error
}

// Job represents one complete sidecar payload awaiting persistence.
type Job struct {
	Sidecar    *models.Sidecar
	EnqueuedAt time.Time
}

// PoolConfig configures the persist pool.
type PoolConfig struct {
	WorkerCount   int
	QueueSize     int
	BatchSize     int
	FlushInterval time.Duration
	Store         SidecarSaver
	Logger        *zap.Logger
}

// Pool manages the persist workers.
type Pool struct {
	config   PoolConfig
	jobQueue chan Job
	wg       sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc
	logger   *zap.SugaredLogger
}

// NewPool creates a persist pool with defaults applied.
func NewPool(cfg PoolConfig) *Pool {
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 2
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 1024
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 64
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = time.Second
	}

	return &Pool{
		config:   cfg,
		jobQueue: make(chan Job, cfg.QueueSize),
		logger:   cfg.Logger.Sugar(),
	}
}

// Start launches the worker goroutines.
func (p *Pool) Start(ctx context.Context) {
	p.ctx, p.cancel = context.WithCancel(ctx)

	for i := 0; i < p.config.WorkerCount; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}

	go p.reportQueueDepth()

	p.logger.Infow("persist pool started",
		"workers", p.config.WorkerCount,
		"queueSize", p.config.QueueSize,
		"batchSize", p.config.BatchSize,
	)
}

// Stop gracefully shuts down the pool, flushing everything still queued.
func (p *Pool) Stop() {
	p.logger.Info("stopping persist pool")
	close(p.jobQueue)
	p.wg.Wait()
	p.cancel()
	p.logger.Info("persist pool stopped")
}

// Enqueue queues a complete sidecar payload for persistence. Returns false
// when the queue is full or the pool is shutting down; callers fall back to
// a synchronous write.
func (p *Pool) Enqueue(sc *models.Sidecar) bool {
	// Protect against sending on a closed channel during shutdown.
	defer func() {
		if r := recover(); r != nil {
			p.logger.Warnw("failed to enqueue sidecar (pool stopped)", "clip", sc.ID)
		}
	}()

	select {
	case p.jobQueue <- Job{Sidecar: sc, EnqueuedAt: time.Now()}:
		sidecarsEnqueued.Inc()
		return true
	default:
		return false
	}
}

// QueueDepth returns the current queue size.
func (p *Pool) QueueDepth() int {
	return len(p.jobQueue)
}

func (p *Pool) reportQueueDepth() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			queueDepth.Set(float64(len(p.jobQueue)))
		case <-p.ctx.Done():
			return
		}
	}
}

// worker drains the queue in batches, flushing on size or interval.
func (p *Pool) worker(id int) {
	defer p.wg.Done()

	batch := make([]Job, 0, p.config.BatchSize)
	ticker := time.NewTicker(p.config.FlushInterval)
	defer ticker.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}
		start := time.Now()
		p.flushBatch(batch)
		flushDuration.Observe(time.Since(start).Seconds())
		batch = batch[:0]
	}

	for {
		select {
		case job, ok := <-p.jobQueue:
			if !ok {
				flush()
				return
			}
			batch = append(batch, job)
			if len(batch) >= p.config.BatchSize {
				flush()
			}

		case <-ticker.C:
			flush()
		}
	}
}

// flushBatch writes each clip's newest payload. Older payloads for the same
// clip within the batch are redundant and skipped.
func (p *Pool) flushBatch(batch []Job) {
	latest := make(map[string]*models.Sidecar, len(batch))
	order := make([]string, 0, len(batch))
	for _, job := range batch {
		if _, seen := latest[job.Sidecar.ID]; !seen {
			order = append(order, job.Sidecar.ID)
		} else {
			sidecarsCoalesced.Inc()
		}
		latest[job.Sidecar.ID] = job.Sidecar
	}

	ctx := context.Background()
	for _, id := range order {
		if err := p.config.Store.Save(ctx, latest[id]); err != nil {
			p.logger.Errorw("sidecar persist failed", "clip", id, "error", err)
			sidecarsFailed.Inc()
			continue
		}
		sidecarsPersisted.Inc()
	}
}
