package queue

import (
	"context"
	"hash/fnv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/doramarin/wedding-rsvp/internal/core/domain"
	"github.com/doramarin/wedding-rsvp/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// DepthObserver is told the pending count of a worker channel after every
// enqueue and dequeue.
type DepthObserver func(workerID, depth int)

// Dispatcher moves activity entries off the request path. Entries are routed
// to a fixed set of workers by hashing the account username, so entries for
// one account are recorded in the order they were published.
type Dispatcher struct {
	workers  []chan domain.Activity
	recorder ports.ActivityRecorder
	observe  DepthObserver
	log      zerolog.Logger
	wg       sync.WaitGroup
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used. observe may be nil.
func NewDispatcher(numWorkers int, recorder ports.ActivityRecorder, observe DepthObserver, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	if observe == nil {
		observe = func(int, int) {}
	}
	d := &Dispatcher{
		workers:  make([]chan domain.Activity, numWorkers),
		recorder: recorder,
		observe:  observe,
		log:      log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.Activity, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers drain their channel and stop
// when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Wait blocks until every worker has returned.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// Publish hands an entry to the worker responsible for its account. It never
// blocks: when that worker's buffer is full the entry is dropped and logged.
func (d *Dispatcher) Publish(a domain.Activity) {
	idx := d.shardIndex(a.Username)
	ch := d.workers[idx]
	select {
	case ch <- a:
		d.observe(idx, len(ch))
	default:
		d.log.Warn().
			Str("username", a.Username).
			Str("kind", string(a.Kind)).
			Int("worker_id", idx).
			Msg("activity queue full, entry dropped")
	}
}

// shardIndex maps a username deterministically to a worker index.
func (d *Dispatcher) shardIndex(username string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(username))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.Activity) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			d.drain(context.WithoutCancel(ctx), id, ch)
			return
		case a := <-ch:
			// Entries already dequeued are recorded even if shutdown raced in.
			d.observe(id, len(ch))
			d.record(context.WithoutCancel(ctx), id, a)
		}
	}
}

// drain records whatever is still buffered after shutdown was requested.
func (d *Dispatcher) drain(ctx context.Context, id int, ch <-chan domain.Activity) {
	for {
		select {
		case a := <-ch:
			d.record(ctx, id, a)
		default:
			d.observe(id, 0)
			return
		}
	}
}

func (d *Dispatcher) record(ctx context.Context, id int, a domain.Activity) {
	if err := d.recorder.Record(ctx, a); err != nil {
		d.log.Error().Err(err).
			Str("username", a.Username).
			Str("kind", string(a.Kind)).
			Int("worker_id", id).
			Msg("activity recording failed")
	}
}
