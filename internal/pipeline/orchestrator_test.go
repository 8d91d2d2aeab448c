package pipeline

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"dossier/internal/config"
	"dossier/internal/store"
)

func testOrchestrator(workers, queueSize int) *Orchestrator {
	cfg := config.Config{
		WorkerCount:  workers,
		MaxQueueSize: queueSize,
		TabWidth:     8,
		MaxDepth:     64,
		JobTTL:       time.Hour,
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewOrchestrator(cfg, store.New(), log)
}

func TestOrchestrator_SubmitAndProcess(t *testing.T) {
	orch := testOrchestrator(2, 10)
	orch.Start(context.Background())
	defer orch.Stop()

	job := NewJob("people.arch", []byte(workerArchive))
	if err := orch.Submit(job); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		snap := orch.GetJob(job.ID).Snapshot()
		if snap.Status == StatusCompleted {
			break
		}
		if snap.Status == StatusFailed {
			t.Fatalf("job failed: %v", snap.Progress.Problems)
		}
		select {
		case <-deadline:
			t.Fatalf("job did not complete, last status %q", snap.Status)
		case <-time.After(5 * time.Millisecond):
		}
	}

	if orch.Store().Len() != 1 {
		t.Errorf("expected 1 stored record, got %d", orch.Store().Len())
	}
	if orch.Stats().Count == 0 {
		t.Error("expected an ingest duration sample")
	}
}

func TestOrchestrator_GetJobMissing(t *testing.T) {
	orch := testOrchestrator(1, 10)
	if orch.GetJob("no-such-job") != nil {
		t.Error("expected nil for unknown job ID")
	}
}

func TestOrchestrator_SubmitFullQueue(t *testing.T) {
	// Workers never started, so the queue fills up.
	orch := testOrchestrator(1, 1)

	first := NewJob("a.arch", []byte("user a\n  nickname x\n"))
	if err := orch.Submit(first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second := NewJob("b.arch", []byte("user b\n  nickname y\n"))
	err := orch.Submit(second)
	if err == nil {
		t.Fatal("expected an error on a full queue")
	}
	if got := orch.GetJob(second.ID).Snapshot().Status; got != StatusFailed {
		t.Errorf("expected rejected job marked failed, got %q", got)
	}
}
