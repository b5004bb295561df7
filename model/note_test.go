package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoteUpdateApply(t *testing.T) {
	title := "new title"
	empty := ""

	assert.True(t, NoteUpdate{}.IsEmpty())
	assert.False(t, NoteUpdate{Content: &empty}.IsEmpty())

	note := Note{Title: "old title", Content: "old content"}
	NoteUpdate{Title: &title}.Apply(&note)
	assert.Equal(t, "new title", note.Title)
	assert.Equal(t, "old content", note.Content)

	NoteUpdate{}.Apply(&note)
	assert.Equal(t, "new title", note.Title)
	assert.Equal(t, "old content", note.Content)
}
