package model

import (
	"time"

	"github.com/google/uuid"
)

type Note struct {
	ID        uuid.UUID
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NoteCreate is the payload accepted by POST /notes. Both fields are
// pointers so that a missing field and an empty one fail differently.
type NoteCreate struct {
	Title   *string `json:"title" binding:"required,min=1,max=200"`
	Content *string `json:"content" binding:"required,min=1"`
}

// NoteUpdate is a patch: a nil field leaves the stored value unchanged.
type NoteUpdate struct {
	Title   *string `json:"title" binding:"omitempty,min=1,max=200"`
	Content *string `json:"content" binding:"omitempty,min=1"`
}

func (u NoteUpdate) IsEmpty() bool {
	return u.Title == nil && u.Content == nil
}

// Apply overwrites the fields present in the patch.
func (u NoteUpdate) Apply(note *Note) {
	if u.Title != nil {
		note.Title = *u.Title
	}
	if u.Content != nil {
		note.Content = *u.Content
	}
}
