package resource

import "errors"

var (
	// Lookup errors
	ErrNotFound   = errors.New("resource not found")
	ErrInvalidKey = errors.New("invalid resource key")

	// I/O operation errors - wrapped with context for debugging
	ErrFailedToReadResource    = errors.New("failed to read resource")
	ErrFailedToWriteResource   = errors.New("failed to write resource")
	ErrFailedToListResources   = errors.New("failed to list resources")
	ErrFailedToGetAbsolutePath = errors.New("failed to get absolute path")

	// Directory store errors
	ErrDirectoryNotFound = errors.New("directory not found")
	ErrNotDirectory      = errors.New("path is not a directory")

	// S3-specific errors for proper error classification
	ErrBucketNotFound     = errors.New("bucket not found")
	ErrAccessDenied       = errors.New("access denied")
	ErrRequestTimeout     = errors.New("request timed out")
	ErrServiceUnavailable = errors.New("service temporarily unavailable")

	// Context and cancellation errors
	ErrOperationTimeout  = errors.New("operation timed out")
	ErrOperationCanceled = errors.New("operation canceled")

	// Configuration errors
	ErrPaginatorNil       = errors.New("paginator factory returned nil") // Testing support
	ErrInvalidConfig      = errors.New("invalid configuration")
	ErrFailedToLoadConfig = errors.New("failed to load AWS config")
)
