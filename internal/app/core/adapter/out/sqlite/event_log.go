// Package sqlite 以 SQLite 保存已提交事件的 append-only 紀錄
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/JoeShih716/go-joint-ledger/internal/app/core/adapter/out/sqlite/migrations"
	"github.com/JoeShih716/go-joint-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-joint-ledger/internal/app/core/usecase"
	sqlitepkg "github.com/JoeShih716/go-joint-ledger/pkg/sqlite"
)

// EventLog 事件紀錄，以 seq 為主鍵，重複發送的事件會被忽略
type EventLog struct {
	db *sql.DB
}

// Open 開啟事件紀錄並套用 migrations
func Open(path string) (*EventLog, error) {
	db, err := sqlitepkg.Open(path, migrations.FS)
	if err != nil {
		return nil, err
	}
	return &EventLog{db: db}, nil
}

// Close 關閉資料庫
func (l *EventLog) Close() error {
	if l == nil || l.db == nil {
		return nil
	}
	return l.db.Close()
}

// Publish 寫入事件 (at-least-once，相同序號只保留第一筆)
func (l *EventLog) Publish(ctx context.Context, event domain.Event) error {
	owners, err := json.Marshal(nonNil(event.Owners))
	if err != nil {
		return fmt.Errorf("encode owners: %w", err)
	}
	_, err = l.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO events (seq, type, account_id, withdraw_id, owner, owners, amount, timestamp)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		int64(event.Sequence),
		string(event.Type),
		event.AccountID,
		event.WithdrawID,
		string(event.Owner),
		string(owners),
		event.Amount,
		event.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert event %d: %w", event.Sequence, err)
	}
	return nil
}

// ReadFrom 依序讀取序號大於 after 的事件
func (l *EventLog) ReadFrom(ctx context.Context, after uint64, limit int) ([]domain.Event, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := l.db.QueryContext(ctx,
		`SELECT seq, type, account_id, withdraw_id, owner, owners, amount, timestamp
		 FROM events WHERE seq > ? ORDER BY seq LIMIT ?`,
		int64(after), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	return scanEvents(rows)
}

// ReadAccount 讀取單一帳戶的事件 (帳戶歷史)
func (l *EventLog) ReadAccount(ctx context.Context, accountID int64, after uint64, limit int) ([]domain.Event, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := l.db.QueryContext(ctx,
		`SELECT seq, type, account_id, withdraw_id, owner, owners, amount, timestamp
		 FROM events WHERE account_id = ? AND seq > ? ORDER BY seq LIMIT ?`,
		accountID, int64(after), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query account events: %w", err)
	}
	return scanEvents(rows)
}

// LastSequence 最後一筆事件的序號，沒有事件時為 0
func (l *EventLog) LastSequence(ctx context.Context) (uint64, error) {
	var seq sql.NullInt64
	if err := l.db.QueryRowContext(ctx, `SELECT MAX(seq) FROM events`).Scan(&seq); err != nil {
		return 0, fmt.Errorf("query last sequence: %w", err)
	}
	return uint64(seq.Int64), nil
}

func scanEvents(rows *sql.Rows) ([]domain.Event, error) {
	defer rows.Close()

	events := make([]domain.Event, 0)
	for rows.Next() {
		var (
			e      domain.Event
			seq    int64
			typ    string
			owner  string
			owners string
		)
		if err := rows.Scan(&seq, &typ, &e.AccountID, &e.WithdrawID, &owner, &owners, &e.Amount, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		e.Sequence = uint64(seq)
		e.Type = domain.EventType(typ)
		e.Owner = domain.Principal(owner)
		if err := json.Unmarshal([]byte(owners), &e.Owners); err != nil {
			return nil, fmt.Errorf("decode owners of event %d: %w", seq, err)
		}
		if len(e.Owners) == 0 {
			e.Owners = nil
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return events, nil
}

func nonNil(owners []domain.Principal) []domain.Principal {
	if owners == nil {
		return []domain.Principal{}
	}
	return owners
}

var _ usecase.EventLog = (*EventLog)(nil)
