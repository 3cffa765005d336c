// Package worker mirrors committed document revisions to dated backup
// snapshots on disk.
package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"lifedash/internal/amqp"
	"lifedash/internal/backup"
	"lifedash/internal/core"
	"lifedash/internal/store"
)

// MirrorWorker reads the current document from the shared medium whenever
// a document-saved notification arrives and writes a snapshot export for
// the day, keeping a bounded number of dated files.
type MirrorWorker struct {
	medium store.Medium
	dir    string
	keep   int
}

func NewMirrorWorker(medium store.Medium, dir string, keep int) *MirrorWorker {
	return &MirrorWorker{
		medium: medium,
		dir:    dir,
		keep:   keep,
	}
}

// HandleDocumentSaved processes a single saved notification from AMQP.
func (w *MirrorWorker) HandleDocumentSaved(ctx context.Context, msg *amqp.DocumentSavedMessage) error {
	slog.InfoContext(ctx, "Processing document-saved message", "revision", msg.Revision)
	return w.Snapshot(ctx)
}

// Snapshot writes today's backup file from the current medium contents.
// A missing document is not an error; there is simply nothing to mirror
// yet.
func (w *MirrorWorker) Snapshot(ctx context.Context) error {
	body, err := w.medium.Read(ctx)
	if errors.Is(err, store.ErrNotFound) {
		slog.InfoContext(ctx, "No document persisted yet, skipping snapshot")
		return nil
	}
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}

	doc, err := core.Decode(body)
	if err != nil {
		return fmt.Errorf("decode document: %w", err)
	}

	date := core.DateOf(time.Now())
	path, err := backup.Export(doc, w.dir, date)
	if err != nil {
		return fmt.Errorf("export snapshot: %w", err)
	}

	removed, err := backup.Prune(w.dir, w.keep)
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}

	slog.InfoContext(ctx, "Snapshot mirrored",
		"path", path,
		"pruned", removed)
	return nil
}

// StartupCheck writes an initial snapshot if none exists for today, so a
// worker that was down during mutations still catches up on boot.
func (w *MirrorWorker) StartupCheck(ctx context.Context) error {
	today := filepath.Join(w.dir, backup.Filename(core.DateOf(time.Now())))
	if _, err := os.Stat(today); err == nil {
		slog.InfoContext(ctx, "Today's snapshot already exists", "path", today)
		return nil
	}
	return w.Snapshot(ctx)
}
