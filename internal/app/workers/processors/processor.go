package processors

import "context"

// Processor handles one event taken from a worker queue. A returned error
// lets the worker decide whether the event goes back on the queue.
type Processor interface {
	ProcessEvent(ctx context.Context, event any) error
}
