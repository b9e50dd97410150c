package services

import (
	"context"
	"errors"
	"io"
	"news-video-lambda/application/ports/outbound"
	"news-video-lambda/domain"
	"news-video-lambda/infrastructure/adapters"
	"os"
	"strings"
	"sync"
	"time"
)

func newTestLogger() outbound.LoggerPort {
	return adapters.NewZerologWrapperWithWriter(io.Discard, "debug")
}

// callLog records the order in which external services are reached.
type callLog struct {
	mu    sync.Mutex
	calls []string
}

func (c *callLog) add(call string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, call)
}

func (c *callLog) list() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.calls...)
}

type fakeTextGenerator struct {
	log       *callLog
	title     string
	script    string
	titleErr  error
	scriptErr error
	summaries []string
}

func (f *fakeTextGenerator) GenerateTitle(_ context.Context, summaryText string) (string, error) {
	f.log.add("generate_title")
	f.summaries = append(f.summaries, summaryText)
	return f.title, f.titleErr
}

func (f *fakeTextGenerator) GenerateScript(_ context.Context, summaryText string) (string, error) {
	f.log.add("generate_script")
	return f.script, f.scriptErr
}

type fakeAudioGenerator struct {
	log      *callLog
	audio    string
	err      error
	streamFn func() io.ReadCloser
	requests []outbound.GenerateAudioRequest
	mu       sync.Mutex
}

func (f *fakeAudioGenerator) Generate(_ context.Context, req outbound.GenerateAudioRequest) (io.ReadCloser, error) {
	f.log.add("synthesize")
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if f.streamFn != nil {
		return f.streamFn(), nil
	}
	return io.NopCloser(strings.NewReader(f.audio)), nil
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("connection reset")
}

type fakeAudioStore struct {
	log      *callLog
	url      string
	err      error
	requests []outbound.UploadAudioRequest
	contents []string
	mu       sync.Mutex
}

func (f *fakeAudioStore) Upload(_ context.Context, req outbound.UploadAudioRequest) (string, error) {
	f.log.add("upload")
	content, err := os.ReadFile(req.FileName)
	if err != nil {
		return "", err
	}
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.contents = append(f.contents, string(content))
	f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}

type fakeVideoGenerator struct {
	log       *callLog
	jobID     string
	createErr error
	statuses  []domain.VideoJob
	statusErr error
	// delay is applied before every status answer
	delay    time.Duration
	creates  []outbound.CreateVideoRequest
	polls    int
	statusMu sync.Mutex
}

func (f *fakeVideoGenerator) Create(_ context.Context, req outbound.CreateVideoRequest) (string, error) {
	f.log.add("commission")
	f.creates = append(f.creates, req)
	if f.createErr != nil {
		return "", f.createErr
	}
	return f.jobID, nil
}

func (f *fakeVideoGenerator) Status(ctx context.Context, jobID string) (*domain.VideoJob, error) {
	f.log.add("poll")
	f.statusMu.Lock()
	idx := f.polls
	f.polls++
	f.statusMu.Unlock()

	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.statusErr != nil {
		return nil, f.statusErr
	}
	if idx >= len(f.statuses) {
		idx = len(f.statuses) - 1
	}
	job := f.statuses[idx]
	job.JobID = jobID
	return &job, nil
}

func (f *fakeVideoGenerator) pollCount() int {
	f.statusMu.Lock()
	defer f.statusMu.Unlock()
	return f.polls
}

type fakeNewsStore struct {
	log     *callLog
	id      string
	err     error
	records []domain.NewsRecord
}

func (f *fakeNewsStore) Add(_ context.Context, record domain.NewsRecord) (string, error) {
	f.log.add("store")
	if f.err != nil {
		return "", f.err
	}
	f.records = append(f.records, record)
	return f.id, nil
}

type fixedTemplatePicker struct {
	template domain.Template
}

func (f fixedTemplatePicker) Pick() domain.Template {
	return f.template
}

func fastPollerOptions() PollerOptions {
	return PollerOptions{
		InitialInterval: time.Millisecond,
		MaxInterval:     5 * time.Millisecond,
		MaxAttempts:     20,
		Timeout:         5 * time.Second,
	}
}
