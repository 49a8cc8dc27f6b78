package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrAPIKeyNotSet   = fmt.Errorf("api key not set")
	ErrBasePathNotSet = fmt.Errorf("base path not set")
	ErrMissingParam   = fmt.Errorf("required parameter not set")
	ErrInvalidParam   = fmt.Errorf("invalid parameter")
)

// RequiredError is returned, before any request is issued, when a parameter
// documented as required is not provided.
type RequiredError struct {
	Operation string
	Param     string
}

func (e *RequiredError) Error() string {
	return fmt.Sprintf("%s: required parameter '%s' was null or undefined", e.Operation, e.Param)
}

func (e *RequiredError) Unwrap() error {
	return ErrMissingParam
}

// Require returns a *RequiredError for the first param whose presence flag is
// false. Params are provided as pairs of name and presence.
func Require(operation string, params ...Param) error {
	for _, p := range params {
		if !p.Present {
			return &RequiredError{Operation: operation, Param: p.Name}
		}
	}
	return nil
}

// Param is a required parameter name with its presence flag.
type Param struct {
	Name    string
	Present bool
}

// StringParam checks that a required string parameter is not empty.
func StringParam(name, value string) Param {
	return Param{Name: name, Present: value != ""}
}

// FIDParam checks that a required fid parameter is not zero, fid 0 does not
// exist in the Farcaster registry.
func FIDParam(name string, value uint64) Param {
	return Param{Name: name, Present: value != 0}
}

// APIError is the error returned when the API responds with a non-2xx status.
// It contains the status code and the structured error payload returned by
// the server, if any.
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
	Property   string `json:"property"`
	Body       []byte `json:"-"`
}

func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status, Body: body}
	// the body is not always a valid error payload, keep it raw in that case
	_ = json.Unmarshal(body, apiErr)
	return apiErr
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("neynar api error: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	if e.Code == "" {
		return fmt.Sprintf("neynar api error: %d %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("neynar api error: %d %s (%s)", e.StatusCode, e.Message, e.Code)
}

// IsAPIError returns the *APIError wrapped by err, if any.
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsNotFound returns true if err is an *APIError with a 404 status.
func IsNotFound(err error) bool {
	apiErr, ok := IsAPIError(err)
	return ok && apiErr.StatusCode == http.StatusNotFound
}

// NilOnNotFound translates a 404 *APIError into an absent result. Any other
// error is returned unchanged.
func NilOnNotFound[T any](v *T, err error) (*T, error) {
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return v, nil
}
