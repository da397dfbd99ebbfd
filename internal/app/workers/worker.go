package workers

import (
	"context"

	"go.uber.org/zap"
)

type worker struct {
	id        int
	reenqueue bool
	pool      *Orchestrator
}

func newWorker(id int, reenqueue bool, pool *Orchestrator) *worker {
	return &worker{
		id:        id,
		reenqueue: reenqueue,
		pool:      pool,
	}
}

func (w *worker) start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.pool.eventsCh:
			if !ok {
				return
			}

			if err := w.pool.eventsProcessor.ProcessEvent(ctx, event); err != nil {
				w.pool.logger.Error("error processing event", zap.Int("worker_id", w.id), zap.Error(err))

				if w.reenqueue && !w.pool.Enqueue(event) {
					w.pool.logger.Warn("dropping event after failure", zap.Int("worker_id", w.id))
				}
			}
		}
	}
}
