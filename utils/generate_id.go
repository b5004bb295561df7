package utils

import (
	"github.com/google/uuid"
	"github.com/juju/errors"
)

// GenerateNoteID returns a random (version 4) UUID.
func GenerateNoteID() (uuid.UUID, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return uuid.Nil, errors.Annotate(err, "generating note ID")
	}
	return id, nil
}
