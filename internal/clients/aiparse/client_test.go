package aiparse

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockHTTPClient struct {
	mock.Mock
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	return args.Get(0).(*http.Response), args.Error(1)
}

func jsonResponse(status int, body string) (*http.Response, error) {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
	}, nil
}

func Test_Client_Upload_ReturnsTaskID(t *testing.T) {

	assert := assert.New(t)

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.Method == "POST" &&
			req.URL.String() == "http://ai.local/v1/parse" &&
			strings.HasPrefix(req.Header.Get("Content-Type"), "multipart/form-data")
	})).Return(jsonResponse(200, `{"taskId": "task-42"}`))

	client := NewClient("http://ai.local")
	client.SetHTTPClient(mockClient)

	taskID, err := client.Upload(context.Background(), "cv.pdf", strings.NewReader("pdf bytes"))
	assert.NoError(err)
	assert.Equal("task-42", taskID)
}

func Test_Client_Upload_EmptyTaskIDIsAnError(t *testing.T) {

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.Anything).Return(jsonResponse(200, `{}`))

	client := NewClient("http://ai.local")
	client.SetHTTPClient(mockClient)

	_, err := client.Upload(context.Background(), "cv.pdf", strings.NewReader("pdf bytes"))
	assert.Error(t, err)
}

func Test_Client_GetResult_PendingReturnsErrNotReady(t *testing.T) {

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.String() == "http://ai.local/v1/parse/task-42"
	})).Return(jsonResponse(200, `{"status": "pending"}`))

	client := NewClient("http://ai.local")
	client.SetHTTPClient(mockClient)

	_, err := client.GetResult(context.Background(), "task-42")
	assert.ErrorIs(t, err, ErrNotReady)
}

func Test_Client_GetResult_Done(t *testing.T) {

	assert := assert.New(t)

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.Anything).Return(jsonResponse(200,
		`{"status": "done", "skills": ["go", "sql"], "summary": "3 năm backend", "education": "HUST"}`))

	client := NewClient("http://ai.local")
	client.SetHTTPClient(mockClient)

	result, err := client.GetResult(context.Background(), "task-42")
	assert.NoError(err)
	assert.Equal([]string{"go", "sql"}, result.Skills)
	assert.Equal("3 năm backend", result.Summary)
	assert.NotEmpty(result.Raw)
}

func Test_Client_GetResult_FailedSurfacesServiceError(t *testing.T) {

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.Anything).Return(jsonResponse(200, `{"status": "failed", "error": "unreadable file"}`))

	client := NewClient("http://ai.local")
	client.SetHTTPClient(mockClient)

	_, err := client.GetResult(context.Background(), "task-42")
	assert.ErrorContains(t, err, "unreadable file")
}

func Test_Client_NonOKStatusIsAnError(t *testing.T) {

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.Anything).Return(jsonResponse(500, `internal`))

	client := NewClient("http://ai.local")
	client.SetHTTPClient(mockClient)

	_, err := client.GetResult(context.Background(), "task-42")
	assert.Error(t, err)
}
