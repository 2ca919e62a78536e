package command

import (
	"context"
	"slowpoke/internal/core/domain"
	"slowpoke/internal/core/service"
	"sync"
)

type sent struct {
	method   string
	response *domain.Response
}

// MockTransport records every reply primitive. Wrap it with service.NewReply to get a ReplyHandle.
type MockTransport struct {
	mu   sync.Mutex
	sent []sent
	errs map[string]error
}

func (m *MockTransport) record(method string, response *domain.Response) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sent = append(m.sent, sent{method: method, response: response})
	return m.errs[method]
}

func (m *MockTransport) Defer(_ context.Context) error {
	return m.record("Defer", nil)
}

func (m *MockTransport) Reply(_ context.Context, response *domain.Response) error {
	return m.record("Reply", response)
}

func (m *MockTransport) EditReply(_ context.Context, response *domain.Response) error {
	return m.record("EditReply", response)
}

func (m *MockTransport) FollowUp(_ context.Context, response *domain.Response) error {
	return m.record("FollowUp", response)
}

func (m *MockTransport) methods() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	methods := make([]string, len(m.sent))
	for i, s := range m.sent {
		methods[i] = s.method
	}

	return methods
}

// last returns the most recent response that carried content.
func (m *MockTransport) last() *domain.Response {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := len(m.sent) - 1; i >= 0; i-- {
		if m.sent[i].response != nil {
			return m.sent[i].response
		}
	}

	return nil
}

func newReply() (*MockTransport, *service.Reply) {
	mt := &MockTransport{}
	return mt, service.NewReply(mt)
}

type MockTextGenerator struct {
	response string
	err      error
	prompt   domain.Prompt
	calls    int
}

func (m *MockTextGenerator) PromptText(_ context.Context, prompt domain.Prompt) (string, error) {
	m.prompt = prompt
	m.calls++
	return m.response, m.err
}

type MockImageGenerator struct {
	image  domain.Image
	err    error
	prompt string
	base   domain.Image
}

func (m *MockImageGenerator) GenerateImage(_ context.Context, prompt string) (domain.Image, error) {
	m.prompt = prompt
	return m.image, m.err
}

func (m *MockImageGenerator) EditImage(_ context.Context, prompt string, base domain.Image) (domain.Image, error) {
	m.prompt = prompt
	m.base = base
	return m.image, m.err
}

type MockChannelHistory struct {
	messages []domain.ChannelMessage
	message  *domain.ChannelMessage
	err      error
	limit    int
}

func (m *MockChannelHistory) FetchMessages(_ context.Context, _ string, limit int) ([]domain.ChannelMessage, error) {
	m.limit = limit
	return m.messages, m.err
}

func (m *MockChannelHistory) FetchMessage(_ context.Context, _, _ string) (*domain.ChannelMessage, error) {
	return m.message, m.err
}

type MockDownloader struct {
	images map[string]domain.Image
	err    error
	urls   []string
}

func (m *MockDownloader) Download(_ context.Context, url string) (domain.Image, error) {
	m.urls = append(m.urls, url)
	return m.images[url], m.err
}

type MockTranscriptSource struct {
	transcript domain.Transcript
	err        error
}

func (m *MockTranscriptSource) Build(_ context.Context, _, _ string) (domain.Transcript, error) {
	return m.transcript, m.err
}

// stubStyle returns fixed colors.
type stubStyle struct{}

func (stubStyle) Random() int  { return 1 }
func (stubStyle) Success() int { return 2 }
func (stubStyle) Warning() int { return 3 }
func (stubStyle) Error() int   { return 4 }
func (stubStyle) Primary() int { return 5 }
func (stubStyle) Pastel() int  { return 6 }
