package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"dossier/internal/config"
	"dossier/internal/store"
)

const jobSweepInterval = 5 * time.Minute

// Orchestrator runs the archive ingestion pipeline: a bounded queue
// feeding a fixed pool of workers, all writing into one shared record
// store.
type Orchestrator struct {
	cfg   config.Config
	log   *slog.Logger
	store *store.Store
	jobs  *JobStore
	queue chan *Job
	stats *IngestStats

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewOrchestrator(cfg config.Config, st *store.Store, log *slog.Logger) *Orchestrator {
	return &Orchestrator{
		cfg:   cfg,
		log:   log,
		store: st,
		jobs:  NewJobStore(cfg.JobTTL),
		queue: make(chan *Job, cfg.MaxQueueSize),
		stats: NewIngestStats(time.Hour),
	}
}

// Start brings up the worker pool and the job sweeper.
func (o *Orchestrator) Start(ctx context.Context) {
	ctx, o.cancel = context.WithCancel(ctx)
	for i := 0; i < o.cfg.WorkerCount; i++ {
		o.spawn(ctx, o.runWorker)
	}
	o.spawn(ctx, o.runJanitor)
}

func (o *Orchestrator) spawn(ctx context.Context, run func(context.Context)) {
	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		run(ctx)
	}()
}

func (o *Orchestrator) runWorker(ctx context.Context) {
	w := NewWorker(o.store, o.log, o.cfg, o.stats)
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-o.queue:
			if !ok {
				return
			}
			w.Process(ctx, job)
		}
	}
}

func (o *Orchestrator) runJanitor(ctx context.Context) {
	ticker := time.NewTicker(jobSweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			o.jobs.Cleanup()
		}
	}
}

// Stop cancels the workers and waits for in-flight jobs to finish.
func (o *Orchestrator) Stop() {
	if o.cancel != nil {
		o.cancel()
	}
	close(o.queue)
	o.wg.Wait()
}

// Submit registers a job and queues it. A full queue rejects the job
// immediately rather than blocking the upload handler.
func (o *Orchestrator) Submit(job *Job) error {
	o.jobs.Put(job)
	select {
	case o.queue <- job:
		return nil
	default:
		job.SetStatus(StatusFailed, "queue_full")
		return fmt.Errorf("job queue is full (%d)", o.cfg.MaxQueueSize)
	}
}

// GetJob returns a job by ID, or nil.
func (o *Orchestrator) GetJob(id string) *Job {
	return o.jobs.Get(id)
}

// QueueDepth reports how many jobs are waiting for a worker.
func (o *Orchestrator) QueueDepth() int {
	return len(o.queue)
}

// Stats returns a snapshot of recent ingest durations.
func (o *Orchestrator) Stats() StatsSnapshot {
	return o.stats.Snapshot()
}

// Store exposes the record store to the API handlers.
func (o *Orchestrator) Store() *store.Store {
	return o.store
}
