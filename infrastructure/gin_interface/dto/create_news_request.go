package dto

import (
	"fmt"
	"news-video-lambda/domain"
)

// RequiredNewsKeys lists the keys a create request must carry, in the order
// they are checked.
var RequiredNewsKeys = []string{"created_time", "title", "summary_text", "image_url"}

type CreateNewsRequest struct {
	CreatedTime string `json:"created_time"`
	Title       string `json:"title"`
	SummaryText string `json:"summary_text"`
	ImageURL    string `json:"image_url"`
}

func (r CreateNewsRequest) ToDomain() (domain.NewsRequest, error) {
	createdTime, err := domain.ParseCreatedTime(r.CreatedTime)
	if err != nil {
		return domain.NewsRequest{}, &domain.ValidationError{
			Field:   "created_time",
			Message: fmt.Sprintf("Invalid created_time: %q is not an ISO-8601 timestamp", r.CreatedTime),
		}
	}

	return domain.NewsRequest{
		CreatedTime: createdTime,
		Title:       r.Title,
		SummaryText: r.SummaryText,
		ImageURL:    r.ImageURL,
	}, nil
}

type CreateNewsResponse struct {
	Message    string             `json:"message"`
	NewsObject *domain.NewsRecord `json:"news_object"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
