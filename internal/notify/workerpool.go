package notify

import (
	"context"

	"go.uber.org/zap"
)

type WorkerPoolI interface {
	AddTask(ctx context.Context, task Task) error
	Close()
}

// Task is a single delivery attempt queued for a worker.
type Task func() error

// WorkerPool fans notification deliveries out over a fixed set of workers,
// so one slow webhook call does not stall the whole dispatch cycle.
type WorkerPool struct {
	tasks chan Task
}

func NewWorkerPool(size int) *WorkerPool {
	wp := &WorkerPool{tasks: make(chan Task, size)}

	for i := 0; i < size; i++ {
		go wp.deliverLoop()
	}
	return wp
}

func (wp *WorkerPool) deliverLoop() {
	for task := range wp.tasks {
		if err := task(); err != nil {
			zap.L().Error("Notification delivery failed", zap.Error(err))
		}
	}
}

// AddTask queues a delivery. It blocks while every worker is busy and the
// queue is full, unless ctx is cancelled first.
func (wp *WorkerPool) AddTask(ctx context.Context, task Task) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case wp.tasks <- task:
		return nil
	}
}

func (wp *WorkerPool) Close() {
	select {
	case <-wp.tasks:
	default:
		close(wp.tasks)
	}
}
