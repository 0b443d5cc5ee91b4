package aelapi

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"
)

var ErrCatalogAPI = errors.New("catalog api")

// ErrorResponse describes the JSON the catalog server sends with an error status.
type ErrorResponse struct {
	Message string `json:"message"`
}

// HTTPStatusError is returned by the query operations when the server answers with a
// non-2xx status. It matches ErrCatalogAPI with errors.Is.
type HTTPStatusError struct {
	URL        string
	StatusCode int
	Message    string
}

func (e *HTTPStatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: (HTTP Status: %d) %s", ErrCatalogAPI, e.StatusCode, e.URL)
	}

	return fmt.Sprintf("%s: (HTTP Status: %d) %s: %s", ErrCatalogAPI, e.StatusCode, e.URL, e.Message)
}

func (e *HTTPStatusError) Unwrap() error {
	return ErrCatalogAPI
}

// ToErrorFromResponse builds the error for a failed query. The message is taken from the
// body when it is an ErrorResponse, a body that isn't is ignored.
func ToErrorFromResponse(resp *resty.Response) *HTTPStatusError {
	statusErr := &HTTPStatusError{
		URL:        requestURL(resp),
		StatusCode: resp.StatusCode(),
	}

	var errorResponse ErrorResponse
	if err := json.Unmarshal(resp.Body(), &errorResponse); err == nil {
		statusErr.Message = errorResponse.Message
	}

	return statusErr
}

func requestURL(resp *resty.Response) string {
	if resp.Request == nil {
		return ""
	}

	if resp.Request.RawRequest != nil && resp.Request.RawRequest.URL != nil {
		return resp.Request.RawRequest.URL.String()
	}

	return resp.Request.URL
}
