package workers

import (
	"context"
	"francoggm/payment-gateway/internal/app/workers/processors"
	"sync"

	"go.uber.org/zap"
)

type Orchestrator struct {
	workers         []*worker
	eventsCh        chan any
	eventsProcessor processors.Processor
	logger          *zap.Logger

	wg      sync.WaitGroup
	mu      sync.RWMutex
	stopped bool
}

func NewOrchestrator(workersCount int, reenqueue bool, eventsCh chan any, eventsProcessor processors.Processor, logger *zap.Logger) *Orchestrator {
	o := &Orchestrator{
		eventsCh:        eventsCh,
		eventsProcessor: eventsProcessor,
		logger:          logger.Named("workers"),
	}

	for id := 0; id < workersCount; id++ {
		o.workers = append(o.workers, newWorker(id, reenqueue, o))
	}

	return o
}

func (o *Orchestrator) StartWorkers(ctx context.Context) {
	for _, worker := range o.workers {
		worker := worker
		o.wg.Add(1)
		go func() {
			defer o.wg.Done()
			worker.start(ctx)
		}()
	}
}

// Stop closes the events queue and waits for the workers to drain it.
// Producers must go through Enqueue, which is safe to call after Stop.
func (o *Orchestrator) Stop() {
	o.mu.Lock()
	if !o.stopped {
		o.stopped = true
		close(o.eventsCh)
	}
	o.mu.Unlock()

	o.wg.Wait()
}

// Enqueue hands an event to the workers without blocking. It reports false
// when the queue is full or already stopped, and never sends on a closed queue.
func (o *Orchestrator) Enqueue(event any) bool {
	o.mu.RLock()
	defer o.mu.RUnlock()

	if o.stopped {
		return false
	}

	select {
	case o.eventsCh <- event:
		return true
	default:
		return false
	}
}
