package repository

import (
	"context"
	"sync"

	"simplenotes/model"

	"github.com/google/uuid"
	"github.com/juju/errors"
)

// NotesRepository is the storage contract the notes service depends on.
type NotesRepository interface {
	ListNotes(ctx context.Context) []model.Note
	CreateNote(ctx context.Context, note model.Note) error
	GetNote(ctx context.Context, noteID uuid.UUID) (model.Note, error)
	UpdateNote(ctx context.Context, noteID uuid.UUID, mutate func(*model.Note) error) (model.Note, error)
	DeleteNote(ctx context.Context, noteID uuid.UUID) error
	CountNotes(ctx context.Context) int
}

// NotesRepo keeps notes in process memory. Notes are held by value, so a
// caller never shares memory with the stored record. The order slice
// records insertion order for ListNotes.
type NotesRepo struct {
	mu    sync.RWMutex
	notes map[uuid.UUID]model.Note
	order []uuid.UUID
}

var _ NotesRepository = (*NotesRepo)(nil)

func NewNotesRepo() *NotesRepo {
	return &NotesRepo{
		notes: make(map[uuid.UUID]model.Note),
	}
}

// ListNotes returns every stored note in insertion order.
func (r *NotesRepo) ListNotes(ctx context.Context) []model.Note {
	r.mu.RLock()
	defer r.mu.RUnlock()

	notes := make([]model.Note, 0, len(r.order))
	for _, id := range r.order {
		notes = append(notes, r.notes[id])
	}
	return notes
}

// CreateNote inserts a new note. The id must not already be stored.
func (r *NotesRepo) CreateNote(ctx context.Context, note model.Note) error {
	if note.ID == uuid.Nil {
		return errors.NotValidf("nil note ID")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.notes[note.ID]; exists {
		return errors.AlreadyExistsf("note %s", note.ID)
	}
	r.notes[note.ID] = note
	r.order = append(r.order, note.ID)
	return nil
}

// GetNote retrieves a specific note
func (r *NotesRepo) GetNote(ctx context.Context, noteID uuid.UUID) (model.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	note, ok := r.notes[noteID]
	if !ok {
		return model.Note{}, errors.NotFoundf("note %s", noteID)
	}
	return note, nil
}

// UpdateNote runs mutate against a copy of the stored note while holding
// the write lock. The copy replaces the stored note only when mutate
// returns nil; the ID and creation time are restored regardless of what
// mutate did to them.
func (r *NotesRepo) UpdateNote(ctx context.Context, noteID uuid.UUID, mutate func(*model.Note) error) (model.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.notes[noteID]
	if !ok {
		return model.Note{}, errors.NotFoundf("note %s", noteID)
	}

	updated := existing
	if err := mutate(&updated); err != nil {
		return model.Note{}, errors.Trace(err)
	}
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt

	r.notes[noteID] = updated
	return updated, nil
}

// DeleteNote deletes a specific note
func (r *NotesRepo) DeleteNote(ctx context.Context, noteID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.notes[noteID]; !ok {
		return errors.NotFoundf("note %s", noteID)
	}
	delete(r.notes, noteID)
	for i, id := range r.order {
		if id == noteID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *NotesRepo) CountNotes(ctx context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.notes)
}
