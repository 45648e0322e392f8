//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"court-slot-engine/internal/domain/booking"
	"court-slot-engine/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePublisher struct {
	fail      bool
	published map[string][][]byte
}

func (p *fakePublisher) Publish(_ context.Context, topic string, payload []byte) error {
	if p.fail {
		return errors.New("broker unavailable")
	}
	if p.published == nil {
		p.published = make(map[string][][]byte)
	}
	p.published[topic] = append(p.published[topic], payload)
	return nil
}

type publishCounter map[string]int

func (c publishCounter) OutboxPublished(result string) { c[result]++ }

func TestDispatchDue(t *testing.T) {
	f := newFixture(t)
	created := f.bookAt(t, 10)

	pub := &fakePublisher{}
	counts := publishCounter{}
	outbox := commands.NewOutboxUseCase(f.store, pub, f.clock, counts, 3)

	sent, err := outbox.DispatchDue(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	require.Len(t, pub.published[booking.TopicCreated], 1)

	var ev booking.Event
	require.NoError(t, json.Unmarshal(pub.published[booking.TopicCreated][0], &ev))
	assert.Equal(t, created.ID(), ev.BookingID)
	assert.Equal(t, "pending", ev.Status)

	sent, err = outbox.DispatchDue(context.Background(), 10)
	require.NoError(t, err)
	assert.Zero(t, sent, "sent events are not dispatched twice")
	assert.Equal(t, 1, counts[commands.PublishSent])
}

func TestDispatchDue_RetriesWithBackoff(t *testing.T) {
	f := newFixture(t)
	f.bookAt(t, 10)

	pub := &fakePublisher{fail: true}
	counts := publishCounter{}
	outbox := commands.NewOutboxUseCase(f.store, pub, f.clock, counts, 3)

	sent, err := outbox.DispatchDue(context.Background(), 10)
	require.NoError(t, err, "publish failures are recorded, not returned")
	assert.Zero(t, sent)
	assert.Equal(t, 1, counts[commands.PublishRetried])

	pub.fail = false
	sent, err = outbox.DispatchDue(context.Background(), 10)
	require.NoError(t, err)
	assert.Zero(t, sent, "not due before the backoff elapses")

	f.clock.Add(time.Second)
	sent, err = outbox.DispatchDue(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, 1, sent)
}

func TestDispatchDue_DeadAfterMaxAttempts(t *testing.T) {
	f := newFixture(t)
	f.bookAt(t, 10)

	pub := &fakePublisher{fail: true}
	counts := publishCounter{}
	outbox := commands.NewOutboxUseCase(f.store, pub, f.clock, counts, 2)

	for range 2 {
		_, err := outbox.DispatchDue(context.Background(), 10)
		require.NoError(t, err)
		f.clock.Add(time.Hour)
	}
	assert.Equal(t, 1, counts[commands.PublishRetried])
	assert.Equal(t, 1, counts[commands.PublishDead])

	pub.fail = false
	sent, err := outbox.DispatchDue(context.Background(), 10)
	require.NoError(t, err)
	assert.Zero(t, sent)
	assert.Empty(t, pub.published)
}
