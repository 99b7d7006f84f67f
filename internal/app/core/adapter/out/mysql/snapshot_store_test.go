package mysql

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeShih716/go-joint-ledger/internal/app/core/domain"
)

func TestSnapshotRowsRoundTrip(t *testing.T) {
	state := domain.NewState(domain.Rules{MinFunding: 10})
	commands := []*domain.Command{
		{Type: domain.CommandCreateAccount, Caller: "alice", CoOwners: []domain.Principal{"bob", "carol"}, Amount: 100},
		{Type: domain.CommandCreateAccount, Caller: "dave", CoOwners: []domain.Principal{"alice"}, Amount: 50},
		{Type: domain.CommandRequestWithdrawal, Caller: "alice", AccountID: 1, Amount: 30},
		{Type: domain.CommandApproveRequest, Caller: "bob", AccountID: 1, WithdrawID: 1},
		{Type: domain.CommandRequestWithdrawal, Caller: "dave", AccountID: 2, Amount: 10},
		{Type: domain.CommandApproveRequest, Caller: "alice", AccountID: 2, WithdrawID: 1},
		{Type: domain.CommandWithdraw, Caller: "dave", AccountID: 2, WithdrawID: 1, CommandID: uuid.New()},
	}
	commands[1].CommandID = uuid.New()
	for _, cmd := range commands {
		_, err := state.Apply(cmd)
		require.NoError(t, err)
	}
	snap := state.Snapshot()

	accounts, withdrawals, processed, meta := toRows(snap)
	require.Len(t, accounts, 2)
	require.Len(t, withdrawals, 2)
	require.Len(t, processed, 2)
	assert.Equal(t, commands[1].CommandID.String(), processed[0].CommandID)
	assert.Equal(t, uint64(2), processed[0].Sequence)
	assert.Equal(t, "dave", processed[1].Caller)
	assert.Equal(t, uint8(domain.CommandWithdraw), processed[1].Type)
	assert.Equal(t, &domain.Payout{Recipient: "dave", Amount: 10}, processed[1].Result.Payout)
	assert.Equal(t, []string{"alice", "bob", "carol"}, accounts[0].Owners)
	assert.Equal(t, []string{"alice"}, withdrawals[1].Approvals)
	assert.True(t, withdrawals[1].Executed)
	assert.Equal(t, uint64(7), meta.Sequence)
	assert.Equal(t, int64(metaRowID), meta.ID)

	loaded, err := fromRows(meta, accounts, withdrawals, processed)
	require.NoError(t, err)
	assert.Equal(t, snap, loaded)

	restored, err := domain.RestoreState(domain.Rules{MinFunding: 10}, loaded)
	require.NoError(t, err)
	assert.Equal(t, snap, restored.Snapshot())

	// 重啟後重送同一筆提款，拿到原本的 Payout 而不是再執行一次
	retry := *commands[6]
	retry.Sequence = 0
	res, ok, err := restored.Processed(&retry)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, &domain.Payout{Recipient: "dave", Amount: 10}, res.Payout)
}

func TestFromRowsRejectsBadCommandID(t *testing.T) {
	_, err := fromRows(sqlLedgerMeta{ID: metaRowID, Sequence: 1, NextAccountID: 1}, nil, nil,
		[]sqlProcessedCommand{{CommandID: "not-a-uuid", Sequence: 1}})
	require.Error(t, err)
}

func TestFromRowsEmpty(t *testing.T) {
	snap, err := fromRows(sqlLedgerMeta{ID: metaRowID, NextAccountID: 1}, nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, &domain.Snapshot{
		NextAccountID: 1,
		Accounts:      []domain.Account{},
		Withdrawals:   []domain.WithdrawalRequest{},
		Commands:      []domain.CommandRecord{},
	}, snap)
}
