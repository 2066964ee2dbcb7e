package domain

import "errors"

var (
	ErrSessionsDirNotFound = errors.New("sessions directory not found")
	ErrNoSessionID         = errors.New("session file has no session identifier")
	ErrMalformedSession    = errors.New("session file is not valid JSON")
)
