package service

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrIDRequired   = errors.New("id is required")
	ErrNotFound     = errors.New("landing page not found")
	ErrForbidden    = errors.New("not allowed")
	ErrSlugTaken    = errors.New("slug already in use")
	ErrInvalidSlug  = errors.New("invalid slug")
	ErrInvalidInput = errors.New("invalid input")
	ErrReaderNil    = errors.New("reader is nil")
	ErrNotImage     = errors.New("file is not an image")
	ErrTooLarge     = errors.New("file too large")
)

// checkID rejects empty and malformed ids before they reach the database.
// Ids are uuids, so anything else cannot exist.
func checkID(id string) error {
	if id == "" {
		return ErrIDRequired
	}
	if _, err := uuid.Parse(id); err != nil {
		return ErrNotFound
	}
	return nil
}

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
