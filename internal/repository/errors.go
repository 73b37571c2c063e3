package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert record")
	ErrFailedToGet    = errors.New("failed to get record")
	ErrFailedToList   = errors.New("failed to list records")
	ErrFailedToUpdate = errors.New("failed to update record")
	ErrFailedToBegin  = errors.New("failed to begin transaction")
	ErrFailedToCommit = errors.New("failed to commit transaction")

	// ErrStatusConflict means a conditional status update found the record in
	// a different state than expected.
	ErrStatusConflict = errors.New("record status changed concurrently")
	// ErrRecordNotFound is returned by updates that target a missing id.
	ErrRecordNotFound = errors.New("record not found")
)
