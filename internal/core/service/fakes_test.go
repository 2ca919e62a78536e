package service

import (
	"context"
	"slowpoke/internal/core/domain"
	"sync"
)

type call struct {
	method   string
	response *domain.Response
}

type fakeTransport struct {
	mu    sync.Mutex
	calls []call
	errs  map[string]error
}

func (f *fakeTransport) record(method string, response *domain.Response) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, call{method: method, response: response})
	return f.errs[method]
}

func (f *fakeTransport) Defer(_ context.Context) error {
	return f.record("Defer", nil)
}

func (f *fakeTransport) Reply(_ context.Context, response *domain.Response) error {
	return f.record("Reply", response)
}

func (f *fakeTransport) EditReply(_ context.Context, response *domain.Response) error {
	return f.record("EditReply", response)
}

func (f *fakeTransport) FollowUp(_ context.Context, response *domain.Response) error {
	return f.record("FollowUp", response)
}

func (f *fakeTransport) methods() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	methods := make([]string, len(f.calls))
	for i, c := range f.calls {
		methods[i] = c.method
	}

	return methods
}
