package service

import (
	"context"
	"sync"
	"time"

	"agent_connect/internal/domain"
)

type fakeSigner struct {
	mu    sync.Mutex
	calls []SigningRequest
	token string
	err   error
}

func (f *fakeSigner) Sign(_ context.Context, req SigningRequest) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, req)
	if f.err != nil {
		return "", f.err
	}
	return f.token, nil
}

func (f *fakeSigner) Calls() []SigningRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]SigningRequest(nil), f.calls...)
}

type fakeAudit struct {
	mu      sync.Mutex
	entries []*domain.IssuanceLog
	err     error
}

func (f *fakeAudit) RecordIssuance(_ context.Context, entry *domain.IssuanceLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, entry)
	return f.err
}

func (f *fakeAudit) Entries() []*domain.IssuanceLog {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*domain.IssuanceLog(nil), f.entries...)
}

type fakeRateLimitRepo struct {
	mu     sync.Mutex
	counts map[string]int64
	err    error
}

func newFakeRateLimitRepo() *fakeRateLimitRepo {
	return &fakeRateLimitRepo{counts: make(map[string]int64)}
}

func (f *fakeRateLimitRepo) Increment(_ context.Context, key string, _ time.Duration) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	f.counts[key]++
	return f.counts[key], nil
}
