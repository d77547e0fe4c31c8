package domain

import "errors"

var (
	ErrFrameUnavailable = errors.New("frame asset unavailable")
	ErrSequenceNotFound = errors.New("sequence not found")
)
