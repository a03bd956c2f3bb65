package repository

import "errors"

var (
	ErrFailedToGet    = errors.New("failed to get schedule")
	ErrFailedToUpsert = errors.New("failed to upsert schedule")
	ErrCorruptRecord  = errors.New("stored schedule is corrupt")
)
