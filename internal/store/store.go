// Package store owns the lifecycle of the single AppData document: one
// initial load, then full-document persistence on every mutation.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"lifedash/internal/core"
)

// ErrNotFound is returned by a Medium when no document has been persisted
// yet under the fixed storage key.
var ErrNotFound = errors.New("document not found")

// ErrNotLoaded is returned when a mutation is attempted before the
// one-shot initial load has resolved.
var ErrNotLoaded = errors.New("store not loaded")

// Medium is the persistent key-value storage behind the store. A single
// fixed key holds the whole serialized document; Write must overwrite it
// atomically.
type Medium interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, body []byte) error
}

// Publisher receives a notification after every committed mutation. It is
// optional; failures are logged and never fail the mutation, because the
// document is already durably persisted by then.
type Publisher interface {
	DocumentSaved(ctx context.Context, revision int64) error
}

// Store holds the current document value. Lifecycle is two-state:
// uninitialized until Load resolves, then ready. Mutations run strictly
// persist-before-commit: the medium write must succeed before the
// in-memory value changes.
type Store struct {
	mu       sync.Mutex
	medium   Medium
	pub      Publisher
	doc      core.AppData
	ready    bool
	restored bool
	revision int64
}

// New creates a store over the given medium. pub may be nil to disable
// change notifications.
func New(medium Medium, pub Publisher) *Store {
	return &Store{medium: medium, pub: pub}
}

// Load performs the one-shot initial resolution. An absent document
// yields the seed document; a corrupt one is replaced by the seed with a
// warning (the prior bytes stay untouched on the medium until the next
// mutation). Only a failing medium read is surfaced as an error. A second
// call is a no-op returning the current snapshot.
func (s *Store) Load(ctx context.Context) (core.AppData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ready {
		return s.doc, nil
	}

	body, err := s.medium.Read(ctx)
	switch {
	case errors.Is(err, ErrNotFound):
		s.doc = core.Seed()
	case err != nil:
		return core.AppData{}, fmt.Errorf("read document: %w", err)
	default:
		doc, derr := core.Decode(body)
		if derr != nil {
			slog.WarnContext(ctx, "Persisted document is corrupt, falling back to seed", "error", derr)
			s.doc = core.Seed()
			s.restored = true
		} else {
			s.doc = doc
		}
	}

	s.ready = true
	return s.doc, nil
}

// Snapshot returns the current document value and whether the store is
// ready. The returned value shares backing arrays with the store; all
// transforms are copy-on-write, so it stays a stable point-in-time view.
func (s *Store) Snapshot() (core.AppData, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc, s.ready
}

// Restored reports whether the initial load had to fall back to the seed
// document because the persisted payload was unreadable.
func (s *Store) Restored() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.restored
}

// Update applies a pure transform to the current document, persists the
// result and commits it. The transform receives a private deep clone, so
// even an ill-behaved fn cannot corrupt snapshots held elsewhere. Exactly
// one medium write happens per call.
func (s *Store) Update(ctx context.Context, fn core.Transform) (core.AppData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready {
		return core.AppData{}, ErrNotLoaded
	}

	next := fn(s.doc.Clone())
	if err := s.persist(ctx, next); err != nil {
		return core.AppData{}, err
	}
	s.commit(ctx, next)
	return next, nil
}

// Replace unconditionally overwrites the document, persisting first. Used
// for full import and full reset; the caller validates the shape.
func (s *Store) Replace(ctx context.Context, doc core.AppData) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready {
		return ErrNotLoaded
	}

	if err := s.persist(ctx, doc); err != nil {
		return err
	}
	s.commit(ctx, doc)
	return nil
}

// Reset replaces the document with the first-run seed.
func (s *Store) Reset(ctx context.Context) error {
	return s.Replace(ctx, core.Seed())
}

func (s *Store) persist(ctx context.Context, doc core.AppData) error {
	body, err := core.Encode(doc)
	if err != nil {
		return err
	}
	if err := s.medium.Write(ctx, body); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	return nil
}

func (s *Store) commit(ctx context.Context, doc core.AppData) {
	s.doc = doc
	s.revision++
	if s.pub == nil {
		return
	}
	if err := s.pub.DocumentSaved(ctx, s.revision); err != nil {
		slog.WarnContext(ctx, "Failed to publish document-saved event",
			"revision", s.revision, "error", err)
	}
}
