package domain

import (
	"strings"
	"time"
)

// DefaultPriority is the feed priority every generated news item starts with.
const DefaultPriority = 4

type NewsRequest struct {
	CreatedTime time.Time
	Title       string
	SummaryText string
	ImageURL    string
}

type Template struct {
	TemplateID string
	VoiceID    string
}

type VideoStatus string

const (
	VideoStatusProcessing VideoStatus = "processing"
	VideoStatusCompleted  VideoStatus = "completed"
	VideoStatusFailed     VideoStatus = "failed"
)

// IsTerminal reports whether polling can stop. Anything the video service
// reports other than completed or failed (pending, waiting, ...) keeps the job
// in the processing state.
func (s VideoStatus) IsTerminal() bool {
	return s == VideoStatusCompleted || s == VideoStatusFailed
}

type VideoJob struct {
	JobID       string
	Status      VideoStatus
	VideoURL    string
	ErrorDetail string
}

type AudioArtifact struct {
	ObjectKey string
	URL       string
}

type NewsRecord struct {
	ID          string    `json:"id" dynamodbav:"id"`
	CreatedTime time.Time `json:"created_time" dynamodbav:"created_time"`
	Description string    `json:"description" dynamodbav:"description"`
	IsDeployed  bool      `json:"isDeployed" dynamodbav:"isDeployed"`
	Likes       []string  `json:"likes" dynamodbav:"likes"`
	Priority    int       `json:"priority" dynamodbav:"priority"`
	Title       string    `json:"title" dynamodbav:"title"`
	VideoURL    string    `json:"video_url" dynamodbav:"video_url"`
}

func NewNewsRecord(req NewsRequest, title string, videoURL string) NewsRecord {
	return NewsRecord{
		CreatedTime: req.CreatedTime,
		Description: req.SummaryText,
		IsDeployed:  true,
		Likes:       []string{},
		Priority:    DefaultPriority,
		Title:       title,
		VideoURL:    videoURL,
	}
}

// SanitizeTitle lower-cases the title and replaces spaces with underscores.
// Punctuation is kept as is.
func SanitizeTitle(title string) string {
	return strings.ToLower(strings.ReplaceAll(title, " ", "_"))
}

// AudioObjectKey derives the object name narration for a title is stored under.
func AudioObjectKey(title string) string {
	return SanitizeTitle(title) + ".mp3"
}
