package impl_transfer

import "errors"

var (
	// ErrAccountNotFound is returned by reads addressed to an unknown account.
	ErrAccountNotFound = errors.New("account not found")
	// ErrCommitFailed matches every CommitError.
	ErrCommitFailed = errors.New("transfer commit failed")
)

// CommitError reports a transfer that passed validation but could not be
// persisted. No partial effect of it remains visible.
type CommitError struct {
	Err error
}

func (e *CommitError) Error() string {
	return "transfer commit failed: " + e.Err.Error()
}

func (e *CommitError) Unwrap() error { return e.Err }

func (e *CommitError) Is(target error) bool { return target == ErrCommitFailed }
