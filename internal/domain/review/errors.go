package review

import (
	"errors"

	"med-reconciliation/internal/domain/reconcile"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("session not found")
	ErrInvalidTransition  = errors.New("invalid state transition")
	ErrReferenceNotFound  = errors.New("medication reference not found")
	ErrAnalysisInProgress = errors.New("analysis already in progress")
	ErrNoPendingUpload    = errors.New("no pending upload to retry")
	ErrUnsupportedSchema  = errors.New("unsupported session schema version")

	// Alias para que los handlers no importen reconcile.
	ErrExtractionFailed = reconcile.ErrExtractionFailed
)
