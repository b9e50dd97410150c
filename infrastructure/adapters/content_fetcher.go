package adapters

import (
	"fmt"
	"io"
	"net/http"
	"news-video-lambda/application/ports/outbound"
)

type ContentFetcher interface {
	FetchContent(req *http.Request) ([]byte, error)
	// FetchStream returns the response body unread. Callers must close it.
	FetchStream(req *http.Request) (io.ReadCloser, error)
}

type contentFetcher struct {
	logger     outbound.LoggerPort
	httpClient *http.Client
}

func NewContentFetcher(logger outbound.LoggerPort, httpClient *http.Client) ContentFetcher {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &contentFetcher{
		logger:     logger,
		httpClient: httpClient,
	}
}

func (c *contentFetcher) FetchContent(req *http.Request) ([]byte, error) {
	body, err := c.FetchStream(req)
	if err != nil {
		return nil, err
	}
	defer c.closeBody(req, body)

	payload, err := io.ReadAll(body)
	if err != nil {
		c.logger.ErrorWithFields(err, "Failed to read the response body", map[string]interface{}{
			"method": req.Method,
			"URL":    req.URL.String(),
		})
		return nil, err
	}

	return payload, nil
}

func (c *contentFetcher) FetchStream(req *http.Request) (io.ReadCloser, error) {
	res, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.ErrorWithFields(err, "Failed to send the HTTP request", map[string]interface{}{
			"method": req.Method,
			"URL":    req.URL.String(),
		})
		return nil, err
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		defer c.closeBody(req, res.Body)
		bodyPayload, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		message := string(bodyPayload)
		c.logger.ErrorWithFields(nil, "HTTP request returned non-OK status code", map[string]interface{}{
			"method":  req.Method,
			"URL":     req.URL.String(),
			"status":  res.StatusCode,
			"message": message,
		})
		return nil, fmt.Errorf("HTTP request returned non-OK status code %d: %s", res.StatusCode, message)
	}

	return res.Body, nil
}

func (c *contentFetcher) closeBody(req *http.Request, body io.ReadCloser) {
	err := body.Close()
	if err != nil {
		c.logger.ErrorWithFields(err, "Failed to close the response body", map[string]interface{}{
			"method": req.Method,
			"URL":    req.URL.String(),
		})
	}
}
