package dto

import (
	"simplenotes/model"
)

type NoteResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt Timestamp `json:"created_at"`
	UpdatedAt Timestamp `json:"updated_at"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

// Convert a single note to NoteResponse
func ToNoteResponse(note model.Note) NoteResponse {
	return NoteResponse{
		ID:        note.ID.String(),
		Title:     note.Title,
		Content:   note.Content,
		CreatedAt: Timestamp(note.CreatedAt),
		UpdatedAt: Timestamp(note.UpdatedAt),
	}
}

// Convert slice of notes to slice of NoteResponse. Never returns nil so an
// empty store encodes as [].
func ToNoteResponses(notes []model.Note) []NoteResponse {
	responses := make([]NoteResponse, len(notes))
	for i, note := range notes {
		responses[i] = ToNoteResponse(note)
	}
	return responses
}
