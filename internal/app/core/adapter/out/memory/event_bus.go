package memory

import (
	"context"
	"sync"

	"github.com/JoeShih716/go-joint-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-joint-ledger/internal/app/core/usecase"
)

// EventBus 把事件即時推送給所有訂閱者
//
// Publish 不會阻塞：訂閱者的 buffer 滿了就直接移除並關閉其 channel，
// 訂閱者可從最後收到的序號重新訂閱。
type EventBus struct {
	mu     sync.Mutex
	nextID uint64
	subs   map[uint64]chan domain.Event
}

func NewEventBus() *EventBus {
	return &EventBus{
		subs: make(map[uint64]chan domain.Event),
	}
}

// Publish 推送事件
func (b *EventBus) Publish(_ context.Context, event domain.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for id, ch := range b.subs {
		select {
		case ch <- event:
		default:
			// 跟不上
			delete(b.subs, id)
			close(ch)
		}
	}
	return nil
}

// Subscribe 訂閱事件
//
// 參數:
//
//	buffer: channel 容量
//
// 回傳:
//
//	<-chan domain.Event: 事件 channel，被移除時會關閉
//	func(): 取消訂閱
func (b *EventBus) Subscribe(buffer int) (<-chan domain.Event, func()) {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan domain.Event, buffer)

	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = ch
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if c, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(c)
		}
	}
	return ch, cancel
}

// Len 目前訂閱者數量
func (b *EventBus) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

var (
	_ usecase.EventPublisher  = (*EventBus)(nil)
	_ usecase.EventSubscriber = (*EventBus)(nil)
)
