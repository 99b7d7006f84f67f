package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeShih716/go-joint-ledger/internal/app/core/domain"
)

func openLog(t *testing.T) *EventLog {
	t.Helper()
	l, err := Open(filepath.Join(t.TempDir(), "events.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = l.Close() })
	return l
}

func TestEventLogPublishAndRead(t *testing.T) {
	ctx := context.Background()
	l := openLog(t)

	events := []domain.Event{
		{Sequence: 1, Type: domain.EventAccountCreated, Owners: []domain.Principal{"alice", "bob"}, AccountID: 1, Timestamp: 10},
		{Sequence: 2, Type: domain.EventDeposit, Owner: "bob", AccountID: 1, Amount: 50, Timestamp: 11},
		{Sequence: 3, Type: domain.EventAccountCreated, Owners: []domain.Principal{"carol", "dave"}, AccountID: 2, Timestamp: 12},
		{Sequence: 4, Type: domain.EventWithdrawRequested, Owner: "alice", AccountID: 1, WithdrawID: 1, Amount: 20, Timestamp: 13},
		{Sequence: 5, Type: domain.EventWithdrawApproved, AccountID: 1, WithdrawID: 1, Timestamp: 14},
	}
	for _, e := range events {
		require.NoError(t, l.Publish(ctx, e))
	}

	all, err := l.ReadFrom(ctx, 0, 100)
	require.NoError(t, err)
	assert.Equal(t, events, all)

	page, err := l.ReadFrom(ctx, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, events[2:4], page)

	account, err := l.ReadAccount(ctx, 1, 0, 100)
	require.NoError(t, err)
	assert.Equal(t, []domain.Event{events[0], events[1], events[3], events[4]}, account)

	last, err := l.LastSequence(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), last)
}

func TestEventLogIgnoresDuplicates(t *testing.T) {
	ctx := context.Background()
	l := openLog(t)

	first := domain.Event{Sequence: 1, Type: domain.EventDeposit, Owner: "alice", AccountID: 1, Amount: 5, Timestamp: 1}
	require.NoError(t, l.Publish(ctx, first))
	dup := first
	dup.Amount = 999
	require.NoError(t, l.Publish(ctx, dup))

	all, err := l.ReadFrom(ctx, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, []domain.Event{first}, all)
}

func TestEventLogEmpty(t *testing.T) {
	l := openLog(t)
	last, err := l.LastSequence(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(0), last)

	events, err := l.ReadFrom(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Empty(t, events)
}
