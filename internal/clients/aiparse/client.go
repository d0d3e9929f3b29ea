// Package aiparse talks to the external CV-parsing microservice. The
// service is an opaque collaborator: upload a file, get a task id back,
// poll until the parse finishes.
package aiparse

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

// ErrNotReady is returned by GetResult while the parse task is still
// running.
var ErrNotReady = errors.New("parse result not ready")

const (
	StatusPending = "pending"
	StatusDone    = "done"
	StatusFailed  = "failed"
)

type ParseResult struct {
	Status    string          `json:"status"`
	Skills    []string        `json:"skills"`
	Summary   string          `json:"summary"`
	Education string          `json:"education"`
	Error     string          `json:"error"`
	Raw       json.RawMessage `json:"-"`
}

type uploadResponse struct {
	TaskID string `json:"taskId"`
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	baseURL     string
	httpClient  HTTPClient
	rateLimiter *rate.Limiter
}

func NewClient(baseURL string) *Client {
	return &Client{baseURL: baseURL, httpClient: &http.Client{}}
}

func (c *Client) SetHTTPClient(client HTTPClient) {
	c.httpClient = client
}

func (c *Client) SetRateLimit(maxRequestsPerSecond float32) {
	c.rateLimiter = rate.NewLimiter(rate.Limit(maxRequestsPerSecond), 1)
}

// Upload streams the CV file to the service and returns the parse task id.
func (c *Client) Upload(ctx context.Context, fileName string, file io.Reader) (string, error) {

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return "", fmt.Errorf("error creating form file: %v", err)
	}
	if _, err = io.Copy(part, file); err != nil {
		return "", fmt.Errorf("error copying file: %v", err)
	}
	if err = writer.Close(); err != nil {
		return "", fmt.Errorf("error closing multipart writer: %v", err)
	}

	body, err := c.sendRequest(ctx, "POST", c.baseURL+"/v1/parse", &buf, writer.FormDataContentType())
	if err != nil {
		return "", err
	}

	var response uploadResponse
	if err = json.NewDecoder(bytes.NewReader(body)).Decode(&response); err != nil {
		return "", fmt.Errorf("error decoding JSON response: %v", err)
	}
	if response.TaskID == "" {
		return "", errors.New("service returned empty task id")
	}

	return response.TaskID, nil
}

// GetResult fetches the parse result for a task. While the task is
// still running it returns ErrNotReady; a failed task surfaces the
// service's own error message.
func (c *Client) GetResult(ctx context.Context, taskID string) (*ParseResult, error) {

	body, err := c.sendRequest(ctx, "GET", c.baseURL+"/v1/parse/"+taskID, nil, "")
	if err != nil {
		return nil, err
	}

	var result ParseResult
	if err = json.NewDecoder(bytes.NewReader(body)).Decode(&result); err != nil {
		return nil, fmt.Errorf("error decoding JSON response: %v", err)
	}
	result.Raw = body

	switch result.Status {
	case StatusPending:
		return nil, ErrNotReady
	case StatusFailed:
		return nil, fmt.Errorf("parse task %v failed: %v", taskID, result.Error)
	case StatusDone:
		return &result, nil
	default:
		return nil, fmt.Errorf("unknown parse status: %v", result.Status)
	}
}

func (c *Client) sendRequest(ctx context.Context, method, url string, body io.Reader, contentType string) ([]byte, error) {

	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %v", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending request: %v", err)
	}
	defer resp.Body.Close()

	return c.handleResponse(resp)
}

func (c *Client) handleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request failed with status %v, body: %v", resp.StatusCode, string(body))
	}

	return body, nil
}
