package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"dossier/internal/archive"
	"dossier/internal/config"
	"dossier/internal/importer"
	"dossier/internal/store"
)

// Worker processes a single archive job.
type Worker struct {
	store *store.Store
	log   *slog.Logger
	cfg   config.Config
	stats *IngestStats
}

func NewWorker(st *store.Store, log *slog.Logger, cfg config.Config, stats *IngestStats) *Worker {
	return &Worker{
		store: st,
		log:   log,
		cfg:   cfg,
		stats: stats,
	}
}

// Process runs the full ingest pipeline for a job.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "filename", job.Filename)
	start := time.Now()

	if ctx.Err() != nil {
		job.AddProblem("shutdown before processing started")
		job.SetStatus(StatusFailed, "queued")
		return
	}

	// Phase 1: Import. Unwrap the container format down to archive text.
	job.SetStatus(StatusImporting, "importing")
	imp, err := importer.ForFile(job.Filename)
	if err != nil {
		log.Error("unsupported format", "error", err)
		job.AddProblem(err.Error())
		job.SetStatus(StatusFailed, "importing")
		return
	}
	if pdf, ok := imp.(*importer.PDFImporter); ok {
		pdf.FallbackPdftotext = w.cfg.PDFFallbackPdftotext
	}

	text, err := imp.Extract(bytes.NewReader(job.FileData()), job.Filename)
	if err != nil {
		log.Error("import failed", "error", err)
		job.AddProblem(fmt.Sprintf("import: %s", err))
		job.SetStatus(StatusFailed, "importing")
		return
	}

	// Dedup on the extracted text rather than the container bytes, so
	// the same archive inside different wrappers still matches.
	hash := ContentHashHex([]byte(text))
	job.SetContentHash(hash)
	if !job.Force {
		if source, seen := w.store.SeenHash(hash); seen {
			log.Info("duplicate archive, skipping", "first_source", source)
			job.SetStatus(StatusDupSkipped, "dedup")
			return
		}
	}

	// Phase 2: Parse the archive text into records.
	job.SetStatus(StatusParsing, "parsing")
	reader := &archive.Reader{
		TabWidth: w.cfg.TabWidth,
		MaxDepth: w.cfg.MaxDepth,
	}
	if job.TabWidth > 0 {
		reader.TabWidth = job.TabWidth
	}
	res, err := reader.Parse(strings.NewReader(text), job.Filename)
	if err != nil {
		log.Error("parse failed", "error", err)
		job.AddProblem(fmt.Sprintf("parse: %s", err))
		job.SetStatus(StatusFailed, "parsing")
		return
	}
	for _, pr := range res.Problems {
		job.AddProblem(pr.String())
	}
	log.Info("parsed archive", "records", len(res.Records), "problems", len(res.Problems), "references", res.References)

	// Phase 3: Store.
	job.SetStatus(StatusStoring, "storing")
	stored := w.store.AddAll(res.Records)
	w.store.MarkHash(hash, job.Filename)

	byKind := make(map[string]int)
	for _, rec := range res.Records {
		byKind[string(rec.Kind())]++
	}
	job.SetResult(stored, byKind, res.References)

	w.stats.Record(time.Since(start).Milliseconds())
	log.Info("ingest complete", "stored", stored, "duration_ms", time.Since(start).Milliseconds())

	if len(res.Problems) > 0 {
		job.SetStatus(StatusProblems, "done")
	} else {
		job.SetStatus(StatusCompleted, "done")
	}
}
