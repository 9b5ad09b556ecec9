package queue

import (
	"context"
	"fmt"
	"hash/fnv"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/bistroboss/restaurant-api/internal/api/metrics"
	"github.com/bistroboss/restaurant-api/internal/core/ports"
)

const (
	defaultWorkers     = 4
	channelBuffer      = 256
	defaultTaskTimeout = 30 * time.Second
)

// Dispatcher runs background tasks on a fixed set of workers. Tasks are
// sharded by key, so tasks sharing a key run in the order they were queued.
type Dispatcher struct {
	workers     []chan ports.Task
	log         zerolog.Logger
	taskTimeout time.Duration

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:     make([]chan ports.Task, numWorkers),
		log:         log,
		taskTimeout: defaultTaskTimeout,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.Task, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled
// or after Close once their queue is drained.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands task to the worker responsible for its key. It never blocks:
// false means the task was dropped because the worker queue is full or the
// dispatcher is closed.
func (d *Dispatcher) Enqueue(task ports.Task) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return false
	}

	idx := d.shardIndex(task.Key)
	select {
	case d.workers[idx] <- task:
		metrics.TaskQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
		return true
	default:
		metrics.TasksTotal.WithLabelValues(task.Name, "dropped").Inc()
		d.log.Warn().Str("task", task.Name).Str("task_id", task.ID).Int("worker_id", idx).Msg("task queue full, dropping task")
		return false
	}
}

// Close stops accepting tasks and waits for the queued ones to finish.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	for _, ch := range d.workers {
		close(ch)
	}
	d.mu.Unlock()

	d.wg.Wait()
}

// shardIndex maps a key deterministically to a worker index.
func (d *Dispatcher) shardIndex(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.Task) {
	defer d.wg.Done()
	depth := metrics.TaskQueueDepth.WithLabelValues(strconv.Itoa(id))

	for {
		select {
		case <-ctx.Done():
			return
		case task, ok := <-ch:
			if !ok {
				return
			}
			depth.Set(float64(len(ch)))
			d.run(ctx, id, task)
		}
	}
}

func (d *Dispatcher) run(ctx context.Context, workerID int, task ports.Task) {
	taskCtx, cancel := context.WithTimeout(ctx, d.taskTimeout)
	defer cancel()

	start := time.Now()
	err := safeRun(taskCtx, task)
	metrics.TaskDuration.WithLabelValues(task.Name).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.TasksTotal.WithLabelValues(task.Name, "failed").Inc()
		d.log.Error().Err(err).
			Str("task", task.Name).
			Str("task_id", task.ID).
			Int("worker_id", workerID).
			Msg("background task failed")
		return
	}
	metrics.TasksTotal.WithLabelValues(task.Name, "ok").Inc()
	d.log.Debug().Str("task", task.Name).Str("task_id", task.ID).Msg("background task done")
}

// safeRun keeps a panicking task from taking its worker down.
func safeRun(ctx context.Context, task ports.Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("task panicked: %v", r)
		}
	}()
	return task.Run(ctx)
}
