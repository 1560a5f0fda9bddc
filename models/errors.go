package models

import "errors"

var (
	// ErrUnsupportedFormat — uploaded file is neither .xlsx nor .csv.
	ErrUnsupportedFormat = errors.New("unsupported file type (expecting .xlsx or .csv)")

	// ErrEmptyUpload — uploaded file has no header row to map.
	ErrEmptyUpload = errors.New("uploaded file is empty")

	// ErrInvalidDay — event day outside {1, 2, 3}.
	ErrInvalidDay = errors.New("event day must be 1, 2 or 3")

	// ErrParticipantNotFound — referenced participant does not exist.
	ErrParticipantNotFound = errors.New("participant not found")
)
