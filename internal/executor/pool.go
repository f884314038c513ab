package executor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

// Batch-level construction and state errors
var (
	// ErrPoolSize indicates an invalid worker count
	ErrPoolSize = errors.New("pool size must be at least 1")

	// ErrNilHandler indicates a missing handler function
	ErrNilHandler = errors.New("handler must not be nil")

	// ErrRunning indicates the pool is already executing a batch
	ErrRunning = errors.New("pool is already running")
)

// Per-item terminal errors
var (
	// ErrCancelled marks items that were never dispatched because the
	// batch was cancelled first
	ErrCancelled = errors.New("cancelled before execution")

	// ErrDeadline marks items that were still in flight when the
	// post-cancellation grace period expired
	ErrDeadline = errors.New("abandoned after batch deadline")
)

// Item is one unit of work submitted to the pool.
// The payload is opaque to the executor; the label identifies the item
// in results and progress output. Items are immutable once submitted.
type Item[T any] struct {
	// Label identifies this item in reporting (e.g. an object name)
	Label string

	// Payload is the caller-defined work description
	Payload T
}

// Handler performs the remote operation for a single item.
// It may be invoked from any worker goroutine. Any retry policy is the
// handler's own concern (see Retry); the pool observes only the final
// outcome.
type Handler[T, R any] func(ctx context.Context, item Item[T]) (R, error)

// Pool dispatches items to a handler with bounded concurrency.
// A pool executes one batch at a time; per-item failures are isolated
// into that item's Result and never abort the batch.
type Pool[T, R any] struct {
	// workers is the maximum number of concurrent handler invocations
	workers int

	// handler is the per-item operation
	handler Handler[T, R]

	// items is the queue of submitted work
	items []Item[T]

	// mu protects the items slice
	mu sync.Mutex

	// active tracks items currently in flight
	active activeSet

	// completed counts items whose result has been recorded. Only the
	// collecting goroutine increments it, so a handler that outlives
	// its abandonment can never push the count past the batch total.
	completed atomic.Int64

	// total is the size of the batch currently executing
	total atomic.Int64

	// running indicates a batch is executing
	running atomic.Bool

	// limiter optionally throttles handler dispatch
	limiter *rate.Limiter

	// grace is how long in-flight items may run after cancellation
	// before they are abandoned with ErrDeadline
	grace time.Duration

	logger *slog.Logger
}

// Option configures a Pool
type Option[T, R any] func(*Pool[T, R])

// WithLogger sets the structured logger used by the pool
func WithLogger[T, R any](logger *slog.Logger) Option[T, R] {
	return func(p *Pool[T, R]) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithRateLimit throttles handler dispatch to opsPerSecond with the
// given burst. Useful when the remote management plane rate-limits
// configuration calls.
func WithRateLimit[T, R any](opsPerSecond float64, burst int) Option[T, R] {
	return func(p *Pool[T, R]) {
		if opsPerSecond > 0 && burst > 0 {
			p.limiter = rate.NewLimiter(rate.Limit(opsPerSecond), burst)
		}
	}
}

// WithGracePeriod sets how long in-flight items may keep running after
// the batch context is cancelled before being abandoned as ErrDeadline.
// Default is 5 seconds.
func WithGracePeriod[T, R any](d time.Duration) Option[T, R] {
	return func(p *Pool[T, R]) {
		if d > 0 {
			p.grace = d
		}
	}
}

// New creates a pool with the given worker bound and handler.
// It fails fast on an invalid pool size or nil handler, before any
// dispatch can occur.
func New[T, R any](workers int, handler Handler[T, R], opts ...Option[T, R]) (*Pool[T, R], error) {
	if workers < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrPoolSize, workers)
	}
	if handler == nil {
		return nil, ErrNilHandler
	}

	p := &Pool[T, R]{
		workers: workers,
		handler: handler,
		grace:   5 * time.Second,
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// Submit queues items for the next Execute call.
// Returns an error if the pool is currently executing a batch.
func (p *Pool[T, R]) Submit(items ...Item[T]) error {
	if p.running.Load() {
		return fmt.Errorf("%w: cannot submit new items", ErrRunning)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.items = append(p.items, items...)
	p.logger.Debug("items submitted", "added", len(items), "queued", len(p.items))

	return nil
}

// Len returns the number of items currently queued
func (p *Pool[T, R]) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.items)
}

// Workers returns the configured worker bound
func (p *Pool[T, R]) Workers() int {
	return p.workers
}

// Execute runs all submitted items through the handler and blocks until
// every item has reached a terminal state, or the batch is cancelled and
// the post-cancellation grace period expires.
//
// The returned summary holds exactly one result per submitted item, in
// completion order. An empty queue is a no-op returning an empty summary.
func (p *Pool[T, R]) Execute(ctx context.Context) (*Summary[R], error) {
	if !p.running.CompareAndSwap(false, true) {
		return nil, ErrRunning
	}
	defer p.running.Store(false)

	p.mu.Lock()
	items := make([]Item[T], len(p.items))
	copy(items, p.items)
	p.items = p.items[:0]
	p.mu.Unlock()

	total := len(items)
	summary := &Summary[R]{Workers: p.workers, Total: total}
	if total == 0 {
		p.logger.Debug("no items to execute")
		return summary, nil
	}

	p.total.Store(int64(total))
	p.completed.Store(0)
	p.active.reset()

	workerCount := p.workers
	if workerCount > total {
		workerCount = total
	}

	p.logger.Info("starting batch", "items", total, "workers", workerCount)
	start := time.Now()

	// Both channels are buffered to the batch size so workers never
	// block on either side; a late result from an abandoned handler
	// lands in the buffer and is simply dropped.
	itemCh := make(chan indexedItem[T], total)
	resultCh := make(chan indexedResult[R], total)

	for i, it := range items {
		itemCh <- indexedItem[T]{item: it, index: i}
	}
	close(itemCh)

	var wg sync.WaitGroup
	for w := 0; w < workerCount; w++ {
		wg.Add(1)
		go p.worker(ctx, w, itemCh, resultCh, &wg)
	}

	workersDone := make(chan struct{})
	go func() {
		wg.Wait()
		close(workersDone)
	}()

	done := make([]bool, total)
	recorded := 0
	timedOut := false

	ctxDone := ctx.Done()
	var graceTimer *time.Timer
	var graceCh <-chan time.Time

collect:
	for recorded < total {
		select {
		case res := <-resultCh:
			if done[res.index] {
				continue
			}
			done[res.index] = true
			recorded++
			p.completed.Add(1)
			summary.Results = append(summary.Results, res.result)

		case <-ctxDone:
			// Arm the grace timer once; keep collecting results from
			// items that are allowed to finish.
			ctxDone = nil
			graceTimer = time.NewTimer(p.grace)
			graceCh = graceTimer.C
			p.logger.Warn("batch cancelled, waiting for in-flight items", "grace", p.grace)

		case <-graceCh:
			timedOut = true
			break collect
		}
	}
	if graceTimer != nil {
		graceTimer.Stop()
	}

	if timedOut {
		// Abandon whatever is still pending: in-flight items become
		// deadline failures, undispatched ones cancellations.
		inFlight := p.active.indexes()
		abandoned := 0
		for i := range done {
			if done[i] {
				continue
			}
			err := ErrCancelled
			if inFlight[i] {
				err = ErrDeadline
				abandoned++
			}
			done[i] = true
			summary.Results = append(summary.Results, Result[R]{
				Label: items[i].Label,
				Err:   fmt.Errorf("%s: %w", items[i].Label, err),
			})
			p.completed.Add(1)
		}
		p.logger.Error("batch grace period expired", "abandoned", abandoned)
	} else {
		<-workersDone
	}

	summary.Duration = time.Since(start)
	summary.Peak = p.active.peakSize()
	for _, r := range summary.Results {
		if r.Err == nil {
			summary.Succeeded++
		} else {
			summary.Failed++
		}
	}

	p.logger.Info("batch complete",
		"total", summary.Total,
		"succeeded", summary.Succeeded,
		"failed", summary.Failed,
		"peak_concurrency", summary.Peak,
		"duration", summary.Duration)

	return summary, nil
}

// Snapshot returns a point-in-time view of batch progress.
// Safe to call concurrently with Execute; intended to be polled by a
// progress UI at a fixed interval.
func (p *Pool[T, R]) Snapshot() Snapshot {
	return Snapshot{
		Active:    p.active.size(),
		Completed: int(p.completed.Load()),
		Peak:      p.active.peakSize(),
		Total:     int(p.total.Load()),
	}
}

// worker pulls items and runs them through the handler.
// After cancellation it keeps draining the queue, marking each
// undispatched item as cancelled without invoking the handler.
func (p *Pool[T, R]) worker(
	ctx context.Context,
	id int,
	itemCh <-chan indexedItem[T],
	resultCh chan<- indexedResult[R],
	wg *sync.WaitGroup,
) {
	defer wg.Done()

	for it := range itemCh {
		select {
		case <-ctx.Done():
			resultCh <- indexedResult[R]{index: it.index, result: cancelledResult[R](it.item.Label)}
			continue
		default:
		}

		if p.limiter != nil {
			if err := p.limiter.Wait(ctx); err != nil {
				resultCh <- indexedResult[R]{index: it.index, result: cancelledResult[R](it.item.Label)}
				continue
			}
		}

		resultCh <- indexedResult[R]{index: it.index, result: p.runItem(ctx, id, it.index, it.item)}
	}

	p.logger.Debug("worker finished", "worker_id", id)
}

// runItem owns the active-entry lifecycle for one item.
// The entry must be created and removed by the goroutine that actually
// invokes the handler, never by the submitting context; otherwise the
// active set would describe intent rather than execution.
func (p *Pool[T, R]) runItem(ctx context.Context, worker, index int, item Item[T]) Result[R] {
	p.active.enter(worker, index, item.Label)
	defer p.active.exit(worker)

	start := time.Now()
	value, err := p.handler(ctx, item)
	duration := time.Since(start)

	res := Result[R]{
		Label:    item.Label,
		Value:    value,
		Err:      err,
		Duration: duration,
	}

	if err != nil {
		res.Attempts = AttemptCount(err)
		p.logger.Warn("item failed",
			"item", item.Label,
			"attempts", res.Attempts,
			"error", err,
			"duration", duration)
	} else {
		p.logger.Debug("item succeeded", "item", item.Label, "duration", duration)
	}

	return res
}

func cancelledResult[R any](label string) Result[R] {
	return Result[R]{
		Label: label,
		Err:   fmt.Errorf("%s: %w", label, ErrCancelled),
	}
}

// indexedItem pairs an item with its submission index
type indexedItem[T any] struct {
	item  Item[T]
	index int
}

// indexedResult pairs a result with the item's submission index so the
// collector can enforce exactly-once accounting
type indexedResult[R any] struct {
	result Result[R]
	index  int
}
