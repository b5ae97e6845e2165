package ports

import "time"

// OperationObserver is told about every finished resource operation.
// err is the final, already classified error, or nil on success.
type OperationObserver interface {
	Observe(resource, operation string, err error, elapsed time.Duration)
}
