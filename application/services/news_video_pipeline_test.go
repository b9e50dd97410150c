package services

import (
	"context"
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"news-video-lambda/application/ports/inbound"
	"news-video-lambda/domain"
	"testing"
	"time"
)

type pipelineFixture struct {
	log    *callLog
	text   *fakeTextGenerator
	audio  *fakeAudioGenerator
	store  *fakeAudioStore
	videos *fakeVideoGenerator
	news   *fakeNewsStore
}

func newPipelineFixture(statuses ...domain.VideoJob) *pipelineFixture {
	log := &callLog{}
	return &pipelineFixture{
		log:    log,
		text:   &fakeTextGenerator{log: log, title: "Market Update", script: "a short script"},
		audio:  &fakeAudioGenerator{log: log, audio: "mp3"},
		store:  &fakeAudioStore{log: log, url: "https://bucket/audio/market_update.mp3"},
		videos: &fakeVideoGenerator{log: log, jobID: "vid-1", statuses: statuses},
		news:   &fakeNewsStore{log: log, id: "doc-1"},
	}
}

func (f *pipelineFixture) pipeline(t *testing.T, options PipelineOptions) inbound.NewsVideoPipelinePort {
	logger := newTestLogger()
	return NewNewsVideoPipeline(
		logger,
		f.text,
		NewNarrationSynthesizer(logger, f.audio, f.store, t.TempDir()),
		NewVideoCommissioner(logger, f.videos),
		NewCompletionPoller(logger, f.videos, fastPollerOptions()),
		NewNewsRecordSaver(logger, f.news),
		fixedTemplatePicker{template: domain.Templates[2]},
		options,
	)
}

func sampleRequest() domain.NewsRequest {
	return domain.NewsRequest{
		CreatedTime: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Title:       "T",
		SummaryText: "S",
		ImageURL:    "https://img",
	}
}

func TestNewsVideoPipeline_Success(t *testing.T) {
	fixture := newPipelineFixture(
		domain.VideoJob{Status: domain.VideoStatusProcessing},
		domain.VideoJob{Status: domain.VideoStatusProcessing},
		domain.VideoJob{Status: domain.VideoStatusCompleted, VideoURL: "https://v"},
	)

	record, err := fixture.pipeline(t, PipelineOptions{}).CreateNews(context.Background(), sampleRequest())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"generate_title", "synthesize", "upload", "commission", "poll", "poll", "poll", "store",
	}, fixture.log.list())

	assert.Equal(t, "doc-1", record.ID)
	assert.Equal(t, "S", record.Description)
	assert.Equal(t, "https://v", record.VideoURL)
	assert.Equal(t, "Market Update", record.Title)
	assert.Equal(t, domain.DefaultPriority, record.Priority)
	assert.True(t, record.IsDeployed)
	assert.NotNil(t, record.Likes)
	assert.Empty(t, record.Likes)
	assert.Equal(t, sampleRequest().CreatedTime, record.CreatedTime)

	require.Len(t, fixture.news.records, 1)
	assert.Equal(t, "https://v", fixture.news.records[0].VideoURL)

	assert.Equal(t, []string{"S"}, fixture.text.summaries)
	require.Len(t, fixture.audio.requests, 1)
	assert.Equal(t, "S", fixture.audio.requests[0].Text)
	assert.Equal(t, domain.Templates[2].VoiceID, fixture.audio.requests[0].VoiceID)
	assert.Equal(t, "market_update.mp3", fixture.store.requests[0].ObjectKey)

	require.Len(t, fixture.videos.creates, 1)
	assert.Equal(t, domain.Templates[2], fixture.videos.creates[0].Template)
	assert.Equal(t, "market_update", fixture.videos.creates[0].Title)
	assert.Equal(t, fixture.store.url, fixture.videos.creates[0].AudioURL)
	assert.Equal(t, "https://img", fixture.videos.creates[0].ImageURL)
}

func TestNewsVideoPipeline_JobFailed(t *testing.T) {
	fixture := newPipelineFixture(
		domain.VideoJob{Status: domain.VideoStatusProcessing},
		domain.VideoJob{Status: domain.VideoStatusFailed, ErrorDetail: "bad input"},
	)

	record, err := fixture.pipeline(t, PipelineOptions{}).CreateNews(context.Background(), sampleRequest())

	assert.Nil(t, record)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad input")
	var jobFailed *domain.JobFailedError
	assert.ErrorAs(t, err, &jobFailed)
	assert.Empty(t, fixture.news.records)
	assert.NotContains(t, fixture.log.list(), "store")
}

func TestNewsVideoPipeline_PollTimeout(t *testing.T) {
	fixture := newPipelineFixture(domain.VideoJob{Status: domain.VideoStatusProcessing})

	_, err := fixture.pipeline(t, PipelineOptions{}).CreateNews(context.Background(), sampleRequest())

	assert.ErrorIs(t, err, domain.ErrPollTimeout)
	assert.Empty(t, fixture.news.records)
}

func TestNewsVideoPipeline_TitleError(t *testing.T) {
	fixture := newPipelineFixture()
	fixture.text.titleErr = errors.New("401 Unauthorized")

	_, err := fixture.pipeline(t, PipelineOptions{}).CreateNews(context.Background(), sampleRequest())

	assert.EqualError(t, err, "failed to generate title: 401 Unauthorized")
	assert.Equal(t, []string{"generate_title"}, fixture.log.list())
}

func TestNewsVideoPipeline_EmptyTitleFallsBackToRequest(t *testing.T) {
	fixture := newPipelineFixture(domain.VideoJob{Status: domain.VideoStatusCompleted, VideoURL: "https://v"})
	fixture.text.title = ""

	record, err := fixture.pipeline(t, PipelineOptions{}).CreateNews(context.Background(), sampleRequest())
	require.NoError(t, err)

	assert.Equal(t, "T", record.Title)
	assert.Equal(t, "t.mp3", fixture.store.requests[0].ObjectKey)
}

func TestNewsVideoPipeline_SynthesisError(t *testing.T) {
	fixture := newPipelineFixture()
	fixture.audio.err = errors.New("quota exceeded")

	_, err := fixture.pipeline(t, PipelineOptions{}).CreateNews(context.Background(), sampleRequest())

	assert.EqualError(t, err, "failed to synthesize audio: quota exceeded")
	assert.Equal(t, []string{"generate_title", "synthesize"}, fixture.log.list())
}

func TestNewsVideoPipeline_NoVideoID(t *testing.T) {
	fixture := newPipelineFixture()
	fixture.videos.createErr = domain.ErrVideoNotCreated

	_, err := fixture.pipeline(t, PipelineOptions{}).CreateNews(context.Background(), sampleRequest())

	assert.ErrorIs(t, err, domain.ErrVideoNotCreated)
	assert.NotContains(t, fixture.log.list(), "poll")
}

func TestNewsVideoPipeline_StoreError(t *testing.T) {
	fixture := newPipelineFixture(domain.VideoJob{Status: domain.VideoStatusCompleted, VideoURL: "https://v"})
	fixture.news.err = errors.New("throttled")

	_, err := fixture.pipeline(t, PipelineOptions{}).CreateNews(context.Background(), sampleRequest())

	assert.EqualError(t, err, "failed to add news to store: throttled")
}

func TestNewsVideoPipeline_ScriptNarration(t *testing.T) {
	fixture := newPipelineFixture(domain.VideoJob{Status: domain.VideoStatusCompleted, VideoURL: "https://v"})

	record, err := fixture.pipeline(t, PipelineOptions{NarrateScript: true}).CreateNews(context.Background(), sampleRequest())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"generate_title", "generate_script", "synthesize", "upload", "commission", "poll", "store",
	}, fixture.log.list())
	assert.Equal(t, "a short script", fixture.audio.requests[0].Text)
	assert.Equal(t, "S", record.Description)
}

func TestNewsVideoPipeline_ScriptError(t *testing.T) {
	fixture := newPipelineFixture()
	fixture.text.scriptErr = errors.New("rate limited")

	_, err := fixture.pipeline(t, PipelineOptions{NarrateScript: true}).CreateNews(context.Background(), sampleRequest())

	assert.EqualError(t, err, "failed to generate script: rate limited")
	assert.NotContains(t, fixture.log.list(), "synthesize")
}
