package usecase

import (
	"context"
	"time"
	"unicode/utf8"

	"simplenotes/model"
	"simplenotes/repository"
	"simplenotes/utils"

	"github.com/google/uuid"
	"github.com/juju/clock"
	"github.com/juju/errors"
	"github.com/juju/loggo"
)

var logger = loggo.GetLogger("notes.usecase")

const (
	MaxTitleLength = 200

	// EmptyUpdateDetail is reported when an update carries no fields.
	EmptyUpdateDetail = "At least one of 'title' or 'content' must be provided"
)

type NotesService struct {
	NotesRepo repository.NotesRepository
	// Clock defaults to the wall clock.
	Clock clock.Clock
	// NewID defaults to utils.GenerateNoteID.
	NewID func() (uuid.UUID, error)
}

func NewNotesService(notesRepo repository.NotesRepository, clk clock.Clock) *NotesService {
	return &NotesService{
		NotesRepo: notesRepo,
		Clock:     clk,
		NewID:     utils.GenerateNoteID,
	}
}

// now returns UTC time at the microsecond precision notes are serialized with.
func (svc *NotesService) now() time.Time {
	clk := svc.Clock
	if clk == nil {
		clk = clock.WallClock
	}
	return clk.Now().UTC().Truncate(time.Microsecond)
}

func (svc *NotesService) newID() (uuid.UUID, error) {
	if svc.NewID == nil {
		return utils.GenerateNoteID()
	}
	return svc.NewID()
}

// helper functions
func validateTitle(title string) error {
	if title == "" {
		return errors.NotValidf("empty note title")
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return errors.NotValidf("note title longer than %d characters", MaxTitleLength)
	}
	return nil
}

func validateContent(content string) error {
	if content == "" {
		return errors.NotValidf("empty note content")
	}
	return nil
}

// ValidateCreate checks a create payload before it reaches the store.
func ValidateCreate(in model.NoteCreate) error {
	if in.Title == nil {
		return errors.NotValidf("missing note title")
	}
	if in.Content == nil {
		return errors.NotValidf("missing note content")
	}
	if err := validateTitle(*in.Title); err != nil {
		return err
	}
	return validateContent(*in.Content)
}

// ValidateUpdate checks the fields present in a patch. An empty patch is
// valid here; it is rejected once the note is known to exist.
func ValidateUpdate(patch model.NoteUpdate) error {
	if patch.Title != nil {
		if err := validateTitle(*patch.Title); err != nil {
			return err
		}
	}
	if patch.Content != nil {
		return validateContent(*patch.Content)
	}
	return nil
}

// service functions
func (svc *NotesService) ListNotes(ctx context.Context) []model.Note {
	return svc.NotesRepo.ListNotes(ctx)
}

func (svc *NotesService) CountNotes(ctx context.Context) int {
	return svc.NotesRepo.CountNotes(ctx)
}

func (svc *NotesService) CreateNote(ctx context.Context, in model.NoteCreate) (model.Note, error) {
	if err := ValidateCreate(in); err != nil {
		return model.Note{}, err
	}

	id, err := svc.newID()
	if err != nil {
		return model.Note{}, errors.Trace(err)
	}

	now := svc.now()
	note := model.Note{
		ID:        id,
		Title:     *in.Title,
		Content:   *in.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := svc.NotesRepo.CreateNote(ctx, note); err != nil {
		return model.Note{}, errors.Annotatef(err, "storing note %s", id)
	}

	logger.Debugf("created note %s", id)
	return note, nil
}

func (svc *NotesService) GetNote(ctx context.Context, noteID uuid.UUID) (model.Note, error) {
	return svc.NotesRepo.GetNote(ctx, noteID)
}

// UpdateNote applies patch to an existing note. Checks run in order:
// field validation, existence, then the empty-patch rule.
func (svc *NotesService) UpdateNote(ctx context.Context, noteID uuid.UUID, patch model.NoteUpdate) (model.Note, error) {
	if err := ValidateUpdate(patch); err != nil {
		return model.Note{}, err
	}

	updated, err := svc.NotesRepo.UpdateNote(ctx, noteID, func(note *model.Note) error {
		if patch.IsEmpty() {
			return errors.BadRequestf(EmptyUpdateDetail)
		}
		patch.Apply(note)

		// Never move updated_at backwards, even if the wall clock does.
		now := svc.now()
		if now.Before(note.UpdatedAt) {
			now = note.UpdatedAt
		}
		note.UpdatedAt = now
		return nil
	})
	if err != nil {
		return model.Note{}, err
	}

	logger.Debugf("updated note %s", noteID)
	return updated, nil
}

func (svc *NotesService) DeleteNote(ctx context.Context, noteID uuid.UUID) error {
	if err := svc.NotesRepo.DeleteNote(ctx, noteID); err != nil {
		return err
	}
	logger.Debugf("deleted note %s", noteID)
	return nil
}
