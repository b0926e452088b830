package event

import (
	"context"
	log "log/slog"
	"sync"

	"gorm.io/gorm"
)

// Handler 订阅回调。处理器自行消化错误，总线不关心投递结果。
type Handler func(ctx context.Context, e Event)

type txBufferKey struct{}

// txBuffer 暂存同一事务内发布的事件，提交后整批释放
type txBuffer struct {
	mu     sync.Mutex
	events []Event
}

func (b *txBuffer) append(e Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, e)
}

func (b *txBuffer) drain() []Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	events := b.events
	b.events = nil
	return events
}

// Bus 进程内事件总线。
// Publish 在调用方上下文中同步投递；PublishAfterCommit 把事件挂到当前事务上，
// 提交成功后才在独立 goroutine 上投递，回滚则静默丢弃。
// 同一事务内的事件按发布顺序投递，不同事务之间不保证任何顺序。
type Bus struct {
	mu          sync.RWMutex
	subscribers map[string][]Handler
	wg          sync.WaitGroup
}

func NewBus() *Bus {
	return &Bus{
		subscribers: make(map[string][]Handler),
	}
}

// Subscribe 按事件名注册订阅者
func (b *Bus) Subscribe(name string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers[name] = append(b.subscribers[name], h)
}

// Publish 同步投递，用于无异步要求的流程
func (b *Bus) Publish(ctx context.Context, e Event) {
	b.deliver(ctx, e)
}

// PublishAfterCommit 注册提交后投递。调用方必须已把变更交给当前事务；
// 不在事务内时视为变更已经落库，直接走异步投递。
func (b *Bus) PublishAfterCommit(ctx context.Context, e Event) {
	if buf, ok := ctx.Value(txBufferKey{}).(*txBuffer); ok {
		buf.append(e)
		return
	}
	b.dispatchAsync(ctx, []Event{e})
}

// Transactional 开启一个带提交门的工作单元。fn 内通过 PublishAfterCommit
// 发布的事件只在事务提交成功后整批异步投递，回滚时全部丢弃。
func (b *Bus) Transactional(ctx context.Context, db *gorm.DB, fn func(ctx context.Context, tx *gorm.DB) error) error {
	// 嵌套工作单元复用外层缓冲，事件随最外层提交释放
	if _, ok := ctx.Value(txBufferKey{}).(*txBuffer); ok {
		return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return fn(ctx, tx)
		})
	}

	buf := &txBuffer{}
	ctx = context.WithValue(ctx, txBufferKey{}, buf)

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, tx)
	})
	if err != nil {
		return err
	}

	b.dispatchAsync(ctx, buf.drain())
	return nil
}

// Drain 等待所有在途的异步投递完成，用于优雅退出和测试
func (b *Bus) Drain() {
	b.wg.Wait()
}

// dispatchAsync 每个事务批次占用一个 goroutine 顺序投递，
// 保证批内有序；批与批之间并发，互不排序。
func (b *Bus) dispatchAsync(ctx context.Context, events []Event) {
	if len(events) == 0 {
		return
	}
	ctx = context.WithoutCancel(ctx)
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		for _, e := range events {
			b.deliver(ctx, e)
		}
	}()
}

func (b *Bus) deliver(ctx context.Context, e Event) {
	b.mu.RLock()
	handlers := b.subscribers[e.Name()]
	b.mu.RUnlock()

	for _, h := range handlers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					log.ErrorContext(ctx, "event handler panic", "event", e.Name(), "panic", r)
				}
			}()
			h(ctx, e)
		}()
	}
}
