package queue

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"recipe-extractor/internal/core/ai/provider"
	"recipe-extractor/internal/pkg/common"

	"go.uber.org/zap"
)

// Request 隊列請求
type Request struct {
	Context context.Context
	Request *provider.Request
	Result  chan Result
}

// Result 處理結果
type Result struct {
	Response *provider.Response
	Error    error
}

// Status 隊列狀態
type Status struct {
	QueueLength    int `json:"queue_length"`
	ProcessedCount int `json:"processed_count"`
	MaxQueueSize   int `json:"max_queue_size"`
	Workers        int `json:"workers"`
}

// Manager 隊列管理器
// 將提供者請求排入佇列，由固定數量的 worker 依序送出，
// 避免同時打爆上游 AI 服務
type Manager struct {
	workers   int
	maxSize   int
	queue     chan *Request
	done      chan struct{}
	processed int64
	closeOnce sync.Once
}

// NewManager 創建新的隊列管理器並啟動 worker
func NewManager(workers, maxSize int, p provider.Provider) *Manager {
	m := &Manager{
		workers: workers,
		maxSize: maxSize,
		queue:   make(chan *Request, maxSize),
		done:    make(chan struct{}),
	}

	for i := 0; i < workers; i++ {
		go m.worker(i, p)
	}

	common.LogInfo("請求隊列已啟動",
		zap.Int("workers", workers),
		zap.Int("max_queue_size", maxSize),
	)

	return m
}

// worker 處理隊列請求
func (m *Manager) worker(id int, p provider.Provider) {
	for {
		select {
		case <-m.done:
			return
		case req, ok := <-m.queue:
			if !ok {
				return
			}
			resp, err := p.Generate(req.Context, req.Request)
			atomic.AddInt64(&m.processed, 1)
			req.Result <- Result{Response: resp, Error: err}
		}
	}
}

// Enqueue 將請求加入隊列
func (m *Manager) Enqueue(ctx context.Context, req *provider.Request) (chan Result, error) {
	// 檢查隊列容量
	if len(m.queue) >= m.maxSize {
		return nil, fmt.Errorf("queue is full")
	}

	queueReq := &Request{
		Context: ctx,
		Request: req,
		Result:  make(chan Result, 1),
	}

	select {
	case m.queue <- queueReq:
		common.LogDebug("Request enqueued",
			zap.Int("queue_length", len(m.queue)),
			zap.Int("max_queue_size", m.maxSize),
		)
		return queueReq.Result, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// GetStatus 獲取隊列狀態
func (m *Manager) GetStatus() Status {
	return Status{
		QueueLength:    len(m.queue),
		ProcessedCount: int(atomic.LoadInt64(&m.processed)),
		MaxQueueSize:   m.maxSize,
		Workers:        m.workers,
	}
}

// Close 關閉隊列
func (m *Manager) Close() {
	m.closeOnce.Do(func() {
		close(m.done)
	})
}
