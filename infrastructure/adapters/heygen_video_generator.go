package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"news-video-lambda/application/ports/outbound"
	"news-video-lambda/config"
	"news-video-lambda/domain"
	"strings"
)

const (
	videoWidth       = 720
	videoHeight      = 1280
	videoAspectRatio = "9:16"
)

type HeyGenGenerateRequest struct {
	Test        bool                      `json:"test"`
	Caption     bool                      `json:"caption"`
	Dimension   HeyGenDimension           `json:"dimension"`
	AspectRatio string                    `json:"aspect_ratio"`
	TemplateID  string                    `json:"template_id"`
	Title       string                    `json:"title"`
	Variables   map[string]HeyGenVariable `json:"variables"`
}

type HeyGenDimension struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type HeyGenVariable struct {
	Name       string                   `json:"name"`
	Type       string                   `json:"type"`
	Properties HeyGenVariableProperties `json:"properties"`
}

type HeyGenVariableProperties struct {
	URL     string  `json:"url"`
	AssetID *string `json:"asset_id"`
	Fit     string  `json:"fit,omitempty"`
}

type heyGenGenerateResponse struct {
	Data *struct {
		VideoID string `json:"video_id"`
	} `json:"data"`
}

type heyGenStatusResponse struct {
	Data *struct {
		Status   string `json:"status"`
		VideoURL string `json:"video_url"`
		Error    *struct {
			Code    json.RawMessage `json:"code"`
			Detail  string          `json:"detail"`
			Message string          `json:"message"`
		} `json:"error"`
	} `json:"data"`
}

type heyGenVideoGenerator struct {
	ContentFetcher
	logger       outbound.LoggerPort
	heyGenConfig *config.HeyGenConfig
}

func NewHeyGenVideoGenerator(contentFetcher ContentFetcher, heyGenConfig *config.HeyGenConfig, logger outbound.LoggerPort) outbound.VideoGeneratorPort {
	return &heyGenVideoGenerator{
		ContentFetcher: contentFetcher,
		logger:         logger,
		heyGenConfig:   heyGenConfig,
	}
}

func (h *heyGenVideoGenerator) Create(ctx context.Context, req outbound.CreateVideoRequest) (string, error) {
	reqBody := HeyGenGenerateRequest{
		Test:        false,
		Caption:     true,
		Dimension:   HeyGenDimension{Width: videoWidth, Height: videoHeight},
		AspectRatio: videoAspectRatio,
		TemplateID:  req.Template.TemplateID,
		Title:       req.Title,
		Variables: map[string]HeyGenVariable{
			"voice": {
				Name:       "voice",
				Type:       "audio",
				Properties: HeyGenVariableProperties{URL: req.AudioURL},
			},
			"image": {
				Name:       "image",
				Type:       "image",
				Properties: HeyGenVariableProperties{URL: req.ImageURL, Fit: "none"},
			},
		},
	}

	jsonPayload, err := json.Marshal(reqBody)
	if err != nil {
		h.logger.Error(err, "Failed to marshal the video generation request")
		return "", err
	}

	endpoint := fmt.Sprintf("%s/v2/template/%s/generate", h.baseURL(), url.PathEscape(req.Template.TemplateID))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(jsonPayload))
	if err != nil {
		h.logger.Error(err, "Failed to create the HTTP request")
		return "", err
	}
	httpReq.Header.Set("X-Api-Key", h.heyGenConfig.ApiKey)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	rawRes, err := h.FetchContent(httpReq)
	if err != nil {
		return "", err
	}

	var res heyGenGenerateResponse
	err = json.Unmarshal(rawRes, &res)
	if err != nil {
		h.logger.Error(err, "Failed to unmarshal the video generation response")
		return "", fmt.Errorf("malformed video generation response: %w", err)
	}

	if res.Data == nil || res.Data.VideoID == "" {
		h.logger.WarnWithFields("Video generation response carried no video id", map[string]interface{}{
			"template_id": req.Template.TemplateID,
			"response":    string(rawRes),
		})
		return "", domain.ErrVideoNotCreated
	}

	return res.Data.VideoID, nil
}

func (h *heyGenVideoGenerator) Status(ctx context.Context, jobID string) (*domain.VideoJob, error) {
	endpoint := fmt.Sprintf("%s/v1/video_status.get?video_id=%s", h.baseURL(), url.QueryEscape(jobID))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		h.logger.Error(err, "Failed to create the HTTP request")
		return nil, err
	}
	httpReq.Header.Set("X-Api-Key", h.heyGenConfig.ApiKey)
	httpReq.Header.Set("Accept", "application/json")

	rawRes, err := h.FetchContent(httpReq)
	if err != nil {
		return nil, err
	}

	var res heyGenStatusResponse
	err = json.Unmarshal(rawRes, &res)
	if err != nil {
		h.logger.Error(err, "Failed to unmarshal the video status response")
		return nil, fmt.Errorf("malformed video status response: %w", err)
	}
	if res.Data == nil {
		return nil, fmt.Errorf("malformed video status response: missing data")
	}

	job := &domain.VideoJob{
		JobID:    jobID,
		Status:   domain.VideoStatus(res.Data.Status),
		VideoURL: res.Data.VideoURL,
	}
	if res.Data.Error != nil {
		job.ErrorDetail = res.Data.Error.Detail
		if job.ErrorDetail == "" {
			job.ErrorDetail = res.Data.Error.Message
		}
	}

	return job, nil
}

func (h *heyGenVideoGenerator) baseURL() string {
	return strings.TrimSuffix(h.heyGenConfig.ApiUrl, "/")
}
