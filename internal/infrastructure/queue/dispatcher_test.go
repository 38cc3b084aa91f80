package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/doramarin/wedding-rsvp/internal/core/domain"
)

type recorderStub struct {
	mu      sync.Mutex
	entries []domain.Activity
	fail    bool
	block   chan struct{}
	// strict fails writes issued with a cancelled context, like a real store.
	strict  bool
}

func (r *recorderStub) Record(ctx context.Context, a domain.Activity) error {
	if r.block != nil {
		<-r.block
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return errors.New("store down")
	}
	if r.strict && ctx.Err() != nil {
		return ctx.Err()
	}
	r.entries = append(r.entries, a)
	return nil
}

func (r *recorderStub) snapshot() []domain.Activity {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Activity(nil), r.entries...)
}

func TestDispatcher_PreservesPerAccountOrder(t *testing.T) {
	rec := &recorderStub{}
	d := NewDispatcher(3, rec, nil, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	d.Start(ctx)

	details := []string{"a", "b", "c", "d", "e"}
	for _, detail := range details {
		d.Publish(domain.Activity{Username: "dora123", Kind: domain.ActivityRSVPSaved, Detail: detail})
		d.Publish(domain.Activity{Username: "marin", Kind: domain.ActivityRSVPSaved, Detail: detail})
	}

	deadline := time.Now().Add(2 * time.Second)
	for len(rec.snapshot()) < 2*len(details) && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	cancel()
	d.Wait()

	var dora []string
	for _, a := range rec.snapshot() {
		if a.Username == "dora123" {
			dora = append(dora, a.Detail)
		}
	}
	if len(dora) != len(details) {
		t.Fatalf("expected %d entries for dora123, got %d", len(details), len(dora))
	}
	for i := range details {
		if dora[i] != details[i] {
			t.Fatalf("out of order: %v", dora)
		}
	}
}

func TestDispatcher_PublishNeverBlocks(t *testing.T) {
	rec := &recorderStub{block: make(chan struct{})}
	d := NewDispatcher(1, rec, nil, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	d.Start(ctx)

	done := make(chan struct{})
	go func() {
		for i := 0; i < channelBuffer*2; i++ {
			d.Publish(domain.Activity{Username: "dora123", Kind: domain.ActivityLogin})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("Publish blocked on a full queue")
	}

	cancel()
	close(rec.block)
	d.Wait()

	if got := len(rec.snapshot()); got > channelBuffer+1 {
		t.Fatalf("expected overflow to be dropped, recorded %d", got)
	}
}

func TestDispatcher_DrainsOnShutdownAndSurvivesErrors(t *testing.T) {
	rec := &recorderStub{fail: true}
	var (
		mu     sync.Mutex
		depths []int
	)
	observe := func(_, depth int) {
		mu.Lock()
		depths = append(depths, depth)
		mu.Unlock()
	}
	d := NewDispatcher(2, rec, observe, zerolog.Nop())

	for i := 0; i < 10; i++ {
		d.Publish(domain.Activity{Username: "dora123", Kind: domain.ActivityCommentAdded})
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	d.Start(ctx)
	d.Wait()

	for _, ch := range d.workers {
		if len(ch) != 0 {
			t.Fatalf("worker channel not drained: %d left", len(ch))
		}
	}
	mu.Lock()
	defer mu.Unlock()
	if len(depths) == 0 || depths[len(depths)-1] != 0 {
		t.Fatalf("expected final observed depth 0, got %v", depths)
	}
}

func TestDispatcher_RecordsBufferedEntriesAfterCancel(t *testing.T) {
	rec := &recorderStub{strict: true}
	d := NewDispatcher(1, rec, nil, zerolog.Nop())

	const n = 20
	for i := 0; i < n; i++ {
		d.Publish(domain.Activity{Username: "dora123", Kind: domain.ActivityRSVPSaved})
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	d.Start(ctx)
	d.Wait()

	if got := len(rec.snapshot()); got != n {
		t.Fatalf("recorded %d of %d buffered entries", got, n)
	}
}
