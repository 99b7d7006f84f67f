package usecase

import (
	"context"
	"errors"
	"sync"

	"github.com/JoeShih716/go-joint-ledger/internal/app/core/domain"
)

// stateLedger 以單一 mutex 包裝 domain.State 的最小帳本
type stateLedger struct {
	mu    sync.RWMutex
	state *domain.State
	hook  func(domain.Event)
}

func newStateLedger(hook func(domain.Event)) *stateLedger {
	return &stateLedger{
		state: domain.NewState(domain.Rules{MinFunding: 100}),
		hook:  hook,
	}
}

func (l *stateLedger) Submit(_ context.Context, cmd *domain.Command) (*domain.Result, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	res, err := l.state.Apply(cmd)
	if err != nil {
		return nil, err
	}
	if l.hook != nil {
		l.hook(res.Event)
	}
	return res, nil
}

func (l *stateLedger) Read(_ context.Context, fn func(*domain.State) error) error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return fn(l.state)
}

// sliceLog 記憶體版事件紀錄
type sliceLog struct {
	mu     sync.Mutex
	events []domain.Event
}

func (s *sliceLog) Publish(_ context.Context, event domain.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

func (s *sliceLog) ReadFrom(_ context.Context, after uint64, limit int) ([]domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Event
	for _, e := range s.events {
		if e.Sequence > after {
			out = append(out, e)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *sliceLog) ReadAccount(ctx context.Context, accountID int64, after uint64, limit int) ([]domain.Event, error) {
	all, err := s.ReadFrom(ctx, after, -1)
	if err != nil {
		return nil, err
	}
	var out []domain.Event
	for _, e := range all {
		if e.AccountID == accountID && len(out) < limit {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *sliceLog) sequences() []uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	seqs := make([]uint64, len(s.events))
	for i, e := range s.events {
		seqs[i] = e.Sequence
	}
	return seqs
}

// chanBus 每次 Subscribe 都回傳同一個 channel
type chanBus struct {
	mu sync.Mutex
	ch chan domain.Event
}

func (b *chanBus) Publish(_ context.Context, event domain.Event) error {
	b.mu.Lock()
	ch := b.ch
	b.mu.Unlock()
	if ch != nil {
		ch <- event
	}
	return nil
}

func (b *chanBus) Subscribe(buffer int) (<-chan domain.Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.ch = make(chan domain.Event, buffer)
	return b.ch, func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.ch = nil
	}
}

// closedBus 模擬跟不上而被移除的訂閱者
type closedBus struct{}

func (closedBus) Subscribe(int) (<-chan domain.Event, func()) {
	ch := make(chan domain.Event)
	close(ch)
	return ch, func() {}
}

type memorySnapshotStore struct {
	mu    sync.Mutex
	saved *domain.Snapshot
	// onSave 寫入時呼叫 (可為 nil)
	onSave func(*domain.Snapshot)
}

func (m *memorySnapshotStore) SaveSnapshot(_ context.Context, snap *domain.Snapshot) error {
	if m.onSave != nil {
		m.onSave(snap)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saved = snap
	return nil
}

func (m *memorySnapshotStore) LoadSnapshot(context.Context) (*domain.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saved, nil
}

// flakyPublisher 前 failures 次 Publish 失敗，之後成功並記錄事件
type flakyPublisher struct {
	sliceLog
	mu       sync.Mutex
	failures int
	attempts int
}

func (f *flakyPublisher) Publish(ctx context.Context, event domain.Event) error {
	f.mu.Lock()
	f.attempts++
	if f.failures > 0 {
		f.failures--
		f.mu.Unlock()
		return errors.New("database is locked")
	}
	f.mu.Unlock()
	return f.sliceLog.Publish(ctx, event)
}

// gatedPublisher gate 關閉前所有 Publish 都會阻塞
type gatedPublisher struct {
	gate chan struct{}
}

func (g *gatedPublisher) Publish(ctx context.Context, _ domain.Event) error {
	select {
	case <-g.gate:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
