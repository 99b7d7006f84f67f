package mysql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/JoeShih716/go-joint-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-joint-ledger/internal/app/core/usecase"
	"github.com/JoeShih716/go-joint-ledger/pkg/mysql"
)

// sqlAccount 對應資料庫的 accounts 表
type sqlAccount struct {
	ID        int64    `gorm:"primaryKey;autoIncrement:false"`
	Owners    []string `gorm:"serializer:json;type:json"`
	Balance   int64
	UpdatedAt int64 `gorm:"autoUpdateTime:milli"` // 自動更新時間
}

func (*sqlAccount) TableName() string {
	return "accounts"
}

// sqlWithdrawal 對應資料庫的 withdrawals 表 (帳戶 ID + 請求 ID 為主鍵)
type sqlWithdrawal struct {
	AccountID  int64 `gorm:"primaryKey;autoIncrement:false"`
	WithdrawID int64 `gorm:"primaryKey;autoIncrement:false"`
	Requester  string
	Amount     int64
	Approvals  []string `gorm:"serializer:json;type:json"`
	Executed   bool     `gorm:"index"`
	UpdatedAt  int64    `gorm:"autoUpdateTime:milli"`
}

func (*sqlWithdrawal) TableName() string {
	return "withdrawals"
}

// sqlLedgerMeta 快照的序號與下一個帳戶 ID，只有一筆 (ID = 1)
type sqlLedgerMeta struct {
	ID            int64 `gorm:"primaryKey;autoIncrement:false"`
	Sequence      uint64
	NextAccountID int64
	UpdatedAt     int64 `gorm:"autoUpdateTime:milli"`
}

func (*sqlLedgerMeta) TableName() string {
	return "ledger_meta"
}

// sqlProcessedCommand 冪等紀錄，對應 processed_commands 表
type sqlProcessedCommand struct {
	CommandID  string `gorm:"primaryKey;type:char(36)"`
	Sequence   uint64 `gorm:"uniqueIndex"`
	Caller     string
	Type       uint8
	AccountID  int64
	WithdrawID int64
	Amount     int64
	Result     domain.Result `gorm:"serializer:json;type:json"`
	UpdatedAt  int64         `gorm:"autoUpdateTime:milli"`
}

func (*sqlProcessedCommand) TableName() string {
	return "processed_commands"
}

const metaRowID = 1

// upsert 批次大小
const batchSize = 500

// SnapshotStore 把帳本快照存到 MySQL
// 帳戶與請求永不刪除，因此每次快照都只需 upsert
type SnapshotStore struct {
	client *mysql.Client
}

func NewSnapshotStore(client *mysql.Client) *SnapshotStore {
	return &SnapshotStore{
		client: client,
	}
}

// Migrate 建立或更新資料表
func (s *SnapshotStore) Migrate(ctx context.Context) error {
	return s.client.DB().WithContext(ctx).AutoMigrate(&sqlAccount{}, &sqlWithdrawal{}, &sqlProcessedCommand{}, &sqlLedgerMeta{})
}

// SaveSnapshot 在單一交易中寫入快照
func (s *SnapshotStore) SaveSnapshot(ctx context.Context, snap *domain.Snapshot) error {
	accounts, withdrawals, commands, meta := toRows(snap)
	return s.client.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 避免舊的快照覆蓋新的
		var current sqlLedgerMeta
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&current, metaRowID).Error
		switch {
		case err == nil:
			if current.Sequence > meta.Sequence {
				return nil
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
		default:
			return fmt.Errorf("lock ledger meta: %w", err)
		}

		if len(accounts) > 0 {
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).
				CreateInBatches(accounts, batchSize).Error; err != nil {
				return fmt.Errorf("upsert accounts: %w", err)
			}
		}
		if len(withdrawals) > 0 {
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).
				CreateInBatches(withdrawals, batchSize).Error; err != nil {
				return fmt.Errorf("upsert withdrawals: %w", err)
			}
		}
		if len(commands) > 0 {
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).
				CreateInBatches(commands, batchSize).Error; err != nil {
				return fmt.Errorf("upsert processed commands: %w", err)
			}
		}
		if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&meta).Error; err != nil {
			return fmt.Errorf("upsert ledger meta: %w", err)
		}
		return nil
	})
}

// LoadSnapshot 載入快照，沒有資料時回傳 nil
func (s *SnapshotStore) LoadSnapshot(ctx context.Context) (*domain.Snapshot, error) {
	db := s.client.DB().WithContext(ctx)

	var meta sqlLedgerMeta
	err := db.First(&meta, metaRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load ledger meta: %w", err)
	}

	var accounts []sqlAccount
	if err := db.Order("id").Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("load accounts: %w", err)
	}
	var withdrawals []sqlWithdrawal
	if err := db.Order("account_id").Order("withdraw_id").Find(&withdrawals).Error; err != nil {
		return nil, fmt.Errorf("load withdrawals: %w", err)
	}
	var commands []sqlProcessedCommand
	if err := db.Order("sequence").Find(&commands).Error; err != nil {
		return nil, fmt.Errorf("load processed commands: %w", err)
	}
	return fromRows(meta, accounts, withdrawals, commands)
}

func toRows(snap *domain.Snapshot) ([]sqlAccount, []sqlWithdrawal, []sqlProcessedCommand, sqlLedgerMeta) {
	accounts := make([]sqlAccount, 0, len(snap.Accounts))
	for _, a := range snap.Accounts {
		accounts = append(accounts, sqlAccount{
			ID:      a.ID,
			Owners:  principalsToStrings(a.Owners),
			Balance: a.Balance,
		})
	}
	withdrawals := make([]sqlWithdrawal, 0, len(snap.Withdrawals))
	for _, w := range snap.Withdrawals {
		withdrawals = append(withdrawals, sqlWithdrawal{
			AccountID:  w.AccountID,
			WithdrawID: w.ID,
			Requester:  w.Requester.String(),
			Amount:     w.Amount,
			Approvals:  principalsToStrings(w.Approvals),
			Executed:   w.Executed,
		})
	}
	commands := make([]sqlProcessedCommand, 0, len(snap.Commands))
	for _, c := range snap.Commands {
		commands = append(commands, sqlProcessedCommand{
			CommandID:  c.CommandID.String(),
			Sequence:   c.Result.Sequence,
			Caller:     c.Caller.String(),
			Type:       uint8(c.Type),
			AccountID:  c.AccountID,
			WithdrawID: c.WithdrawID,
			Amount:     c.Amount,
			Result:     c.Result,
		})
	}
	meta := sqlLedgerMeta{
		ID:            metaRowID,
		Sequence:      snap.Sequence,
		NextAccountID: snap.NextAccountID,
	}
	return accounts, withdrawals, commands, meta
}

func fromRows(meta sqlLedgerMeta, accounts []sqlAccount, withdrawals []sqlWithdrawal, commands []sqlProcessedCommand) (*domain.Snapshot, error) {
	snap := &domain.Snapshot{
		Sequence:      meta.Sequence,
		NextAccountID: meta.NextAccountID,
		Accounts:      make([]domain.Account, 0, len(accounts)),
		Withdrawals:   make([]domain.WithdrawalRequest, 0, len(withdrawals)),
		Commands:      make([]domain.CommandRecord, 0, len(commands)),
	}
	for _, a := range accounts {
		snap.Accounts = append(snap.Accounts, domain.Account{
			ID:      a.ID,
			Owners:  stringsToPrincipals(a.Owners),
			Balance: a.Balance,
		})
	}
	for _, w := range withdrawals {
		snap.Withdrawals = append(snap.Withdrawals, domain.WithdrawalRequest{
			ID:        w.WithdrawID,
			AccountID: w.AccountID,
			Requester: domain.Principal(w.Requester),
			Amount:    w.Amount,
			Approvals: stringsToPrincipals(w.Approvals),
			Executed:  w.Executed,
		})
	}
	for _, c := range commands {
		id, err := uuid.Parse(c.CommandID)
		if err != nil {
			return nil, fmt.Errorf("parse command id %q: %w", c.CommandID, err)
		}
		snap.Commands = append(snap.Commands, domain.CommandRecord{
			CommandID:  id,
			Caller:     domain.Principal(c.Caller),
			Type:       domain.CommandType(c.Type),
			AccountID:  c.AccountID,
			WithdrawID: c.WithdrawID,
			Amount:     c.Amount,
			Result:     c.Result,
		})
	}
	return snap, nil
}

func principalsToStrings(ps []domain.Principal) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = string(p)
	}
	return out
}

func stringsToPrincipals(ss []string) []domain.Principal {
	if len(ss) == 0 {
		return nil
	}
	out := make([]domain.Principal, len(ss))
	for i, s := range ss {
		out[i] = domain.Principal(s)
	}
	return out
}

var _ usecase.SnapshotStore = (*SnapshotStore)(nil)
