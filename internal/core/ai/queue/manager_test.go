package queue

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipe-extractor/internal/core/ai/provider"
)

type countingProvider struct {
	calls int64
	err   error
	block chan struct{}
}

func (p *countingProvider) Generate(ctx context.Context, req *provider.Request) (*provider.Response, error) {
	if p.block != nil {
		<-p.block
	}
	atomic.AddInt64(&p.calls, 1)
	if p.err != nil {
		return nil, p.err
	}
	return &provider.Response{Content: "ok"}, nil
}

func (p *countingProvider) GetModel() string          { return "counting-model" }
func (p *countingProvider) GetTimeout() time.Duration { return time.Second }
func (p *countingProvider) Close() error              { return nil }

func TestManager_EnqueueAndProcess(t *testing.T) {
	p := &countingProvider{}
	m := NewManager(2, 10, p)
	defer m.Close()

	ch, err := m.Enqueue(context.Background(), &provider.Request{
		Messages: []provider.Message{{Role: "user", Content: "hello"}},
	})
	require.NoError(t, err)

	select {
	case result := <-ch:
		require.NoError(t, result.Error)
		assert.Equal(t, "ok", result.Response.Content)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for queue result")
	}

	assert.Equal(t, int64(1), atomic.LoadInt64(&p.calls))
}

func TestManager_ProviderErrorReturnedInResult(t *testing.T) {
	p := &countingProvider{err: errors.New("upstream down")}
	m := NewManager(1, 10, p)
	defer m.Close()

	ch, err := m.Enqueue(context.Background(), &provider.Request{})
	require.NoError(t, err)

	select {
	case result := <-ch:
		require.Error(t, result.Error)
		assert.Contains(t, result.Error.Error(), "upstream down")
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for queue result")
	}
}

func TestManager_QueueFull(t *testing.T) {
	block := make(chan struct{})
	defer close(block)

	p := &countingProvider{block: block}
	m := NewManager(1, 1, p)
	defer m.Close()

	ctx := context.Background()

	// 第一個請求進入 worker，第二個佔滿隊列
	_, err := m.Enqueue(ctx, &provider.Request{})
	require.NoError(t, err)

	// worker 取走第一個請求需要一點時間
	require.Eventually(t, func() bool {
		_, err := m.Enqueue(ctx, &provider.Request{})
		return err == nil
	}, time.Second, 10*time.Millisecond)

	_, err = m.Enqueue(ctx, &provider.Request{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "queue is full")
}

func TestManager_GetStatus(t *testing.T) {
	m := NewManager(3, 7, &countingProvider{})
	defer m.Close()

	status := m.GetStatus()
	assert.Equal(t, 3, status.Workers)
	assert.Equal(t, 7, status.MaxQueueSize)
	assert.Equal(t, 0, status.QueueLength)
	assert.Equal(t, 0, status.ProcessedCount)
}
