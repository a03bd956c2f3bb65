package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert booking")
	ErrFailedToGet    = errors.New("failed to get booking")
	ErrFailedToUpdate = errors.New("failed to update booking")
	ErrFailedToList   = errors.New("failed to list bookings")
	ErrSlotTaken      = errors.New("booking overlaps an existing booking")
)
