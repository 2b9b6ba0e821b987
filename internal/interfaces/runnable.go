package interfaces

import "context"

// Runnable is a long-living routine that returns only when ctx is cancelled or on unrecoverable error
type Runnable interface {
	Run(ctx context.Context) error
}
