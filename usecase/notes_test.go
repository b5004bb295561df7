package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"simplenotes/model"
	"simplenotes/repository"

	"github.com/google/uuid"
	"github.com/juju/clock/testclock"
	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testStart = time.Date(2024, 3, 10, 9, 30, 0, 123456789, time.UTC)

func strPtr(s string) *string {
	return &s
}

func newTestService() (*NotesService, *testclock.Clock) {
	clk := testclock.NewClock(testStart)
	return NewNotesService(repository.NewNotesRepo(), clk), clk
}

func TestCreateNote(t *testing.T) {
	ctx := context.Background()
	notesService, _ := newTestService()

	note, err := notesService.CreateNote(ctx, model.NoteCreate{
		Title:   strPtr("Test Note"),
		Content: strPtr("Test Content"),
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, note.ID)
	assert.Equal(t, uuid.Version(4), note.ID.Version())
	assert.Equal(t, "Test Note", note.Title)
	assert.Equal(t, "Test Content", note.Content)
	assert.Equal(t, testStart.Truncate(time.Microsecond), note.CreatedAt)
	assert.Equal(t, note.CreatedAt, note.UpdatedAt)

	stored, err := notesService.GetNote(ctx, note.ID)
	require.NoError(t, err)
	assert.Equal(t, note, stored)
	assert.Equal(t, 1, notesService.CountNotes(ctx))
}

func TestCreateNoteGeneratesUniqueIDs(t *testing.T) {
	ctx := context.Background()
	notesService, _ := newTestService()

	seen := make(map[uuid.UUID]bool)
	for i := 0; i < 100; i++ {
		note, err := notesService.CreateNote(ctx, model.NoteCreate{Title: strPtr("t"), Content: strPtr("c")})
		require.NoError(t, err)
		assert.False(t, seen[note.ID], "duplicate id %s", note.ID)
		seen[note.ID] = true
	}
	assert.Len(t, notesService.ListNotes(ctx), 100)
}

func TestCreateNoteValidation(t *testing.T) {
	tests := []struct {
		name  string
		input model.NoteCreate
		valid bool
	}{
		{name: "Missing Title", input: model.NoteCreate{Content: strPtr("c")}},
		{name: "Missing Content", input: model.NoteCreate{Title: strPtr("t")}},
		{name: "Empty Title", input: model.NoteCreate{Title: strPtr(""), Content: strPtr("x")}},
		{name: "Empty Content", input: model.NoteCreate{Title: strPtr("t"), Content: strPtr("")}},
		{name: "Title Too Long", input: model.NoteCreate{Title: strPtr(strings.Repeat("a", 201)), Content: strPtr("c")}},
		{name: "Maximum Length Title", input: model.NoteCreate{Title: strPtr(strings.Repeat("a", 200)), Content: strPtr("c")}, valid: true},
		{name: "Multibyte Title Counted By Character", input: model.NoteCreate{Title: strPtr(strings.Repeat("é", 200)), Content: strPtr("c")}, valid: true},
		{name: "Whitespace Title", input: model.NoteCreate{Title: strPtr(" "), Content: strPtr(" ")}, valid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			notesService, _ := newTestService()

			_, err := notesService.CreateNote(ctx, tt.input)
			if tt.valid {
				assert.NoError(t, err)
				assert.Equal(t, 1, notesService.CountNotes(ctx))
				return
			}
			assert.True(t, errors.Is(err, errors.NotValid), "got %v", err)
			assert.Equal(t, 0, notesService.CountNotes(ctx))
		})
	}
}

func TestCreateNoteIDFailure(t *testing.T) {
	ctx := context.Background()
	notesService, _ := newTestService()
	notesService.NewID = func() (uuid.UUID, error) {
		return uuid.Nil, errors.New("entropy exhausted")
	}

	_, err := notesService.CreateNote(ctx, model.NoteCreate{Title: strPtr("t"), Content: strPtr("c")})
	assert.ErrorContains(t, err, "entropy exhausted")
	assert.Equal(t, 0, notesService.CountNotes(ctx))
}

func TestUpdateNote(t *testing.T) {
	ctx := context.Background()
	notesService, clk := newTestService()

	original, err := notesService.CreateNote(ctx, model.NoteCreate{Title: strPtr("A"), Content: strPtr("B")})
	require.NoError(t, err)

	t.Run("Title Only", func(t *testing.T) {
		clk.Advance(time.Minute)
		updated, err := notesService.UpdateNote(ctx, original.ID, model.NoteUpdate{Title: strPtr("A2")})
		require.NoError(t, err)

		assert.Equal(t, original.ID, updated.ID)
		assert.Equal(t, "A2", updated.Title)
		assert.Equal(t, "B", updated.Content)
		assert.Equal(t, original.CreatedAt, updated.CreatedAt)
		assert.Equal(t, original.UpdatedAt.Add(time.Minute), updated.UpdatedAt)
	})

	t.Run("Content Only", func(t *testing.T) {
		clk.Advance(time.Second)
		updated, err := notesService.UpdateNote(ctx, original.ID, model.NoteUpdate{Content: strPtr("C")})
		require.NoError(t, err)

		assert.Equal(t, "A2", updated.Title)
		assert.Equal(t, "C", updated.Content)
		assert.Equal(t, original.CreatedAt, updated.CreatedAt)
		assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))
	})

	t.Run("Empty Patch Rejected", func(t *testing.T) {
		before, err := notesService.GetNote(ctx, original.ID)
		require.NoError(t, err)

		_, err = notesService.UpdateNote(ctx, original.ID, model.NoteUpdate{})
		assert.True(t, errors.Is(err, errors.BadRequest), "got %v", err)

		after, err := notesService.GetNote(ctx, original.ID)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("Invalid Field Rejected", func(t *testing.T) {
		_, err := notesService.UpdateNote(ctx, original.ID, model.NoteUpdate{Title: strPtr("")})
		assert.True(t, errors.Is(err, errors.NotValid), "got %v", err)
	})

	t.Run("Missing Note", func(t *testing.T) {
		_, err := notesService.UpdateNote(ctx, uuid.New(), model.NoteUpdate{Title: strPtr("x")})
		assert.True(t, errors.Is(err, errors.NotFound), "got %v", err)
	})

	t.Run("Missing Note Wins Over Empty Patch", func(t *testing.T) {
		_, err := notesService.UpdateNote(ctx, uuid.New(), model.NoteUpdate{})
		assert.True(t, errors.Is(err, errors.NotFound), "got %v", err)
	})

	t.Run("Validation Wins Over Missing Note", func(t *testing.T) {
		_, err := notesService.UpdateNote(ctx, uuid.New(), model.NoteUpdate{Content: strPtr("")})
		assert.True(t, errors.Is(err, errors.NotValid), "got %v", err)
	})
}

func TestUpdateNoteClockSkew(t *testing.T) {
	ctx := context.Background()
	notesService, clk := newTestService()

	note, err := notesService.CreateNote(ctx, model.NoteCreate{Title: strPtr("A"), Content: strPtr("B")})
	require.NoError(t, err)

	clk.Advance(-time.Hour)
	updated, err := notesService.UpdateNote(ctx, note.ID, model.NoteUpdate{Title: strPtr("later")})
	require.NoError(t, err)
	assert.False(t, updated.UpdatedAt.Before(note.UpdatedAt))
	assert.False(t, updated.UpdatedAt.Before(updated.CreatedAt))
}

func TestDeleteNote(t *testing.T) {
	ctx := context.Background()
	notesService, _ := newTestService()

	keep, err := notesService.CreateNote(ctx, model.NoteCreate{Title: strPtr("keep"), Content: strPtr("k")})
	require.NoError(t, err)
	drop, err := notesService.CreateNote(ctx, model.NoteCreate{Title: strPtr("drop"), Content: strPtr("d")})
	require.NoError(t, err)

	require.NoError(t, notesService.DeleteNote(ctx, drop.ID))

	_, err = notesService.GetNote(ctx, drop.ID)
	assert.True(t, errors.Is(err, errors.NotFound))

	notes := notesService.ListNotes(ctx)
	require.Len(t, notes, 1)
	assert.Equal(t, keep.ID, notes[0].ID)

	err = notesService.DeleteNote(ctx, drop.ID)
	assert.True(t, errors.Is(err, errors.NotFound), "got %v", err)
}

func TestZeroValueServiceDefaults(t *testing.T) {
	ctx := context.Background()
	notesService := &NotesService{NotesRepo: repository.NewNotesRepo()}

	before := time.Now().UTC().Add(-time.Second)
	note, err := notesService.CreateNote(ctx, model.NoteCreate{Title: strPtr("t"), Content: strPtr("c")})
	require.NoError(t, err)
	assert.True(t, note.CreatedAt.After(before))
	assert.NotEqual(t, uuid.Nil, note.ID)
}
