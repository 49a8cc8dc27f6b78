// Package apitest provides a stub HTTP server that records the requests it
// receives and replies with canned responses.
package apitest

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"

	qt "github.com/frankban/quicktest"
)

// Request is a request received by the server.
type Request struct {
	Method   string
	Path     string
	RawQuery string
	Header   http.Header
	Body     []byte
}

// Response is the reply of the server to a request.
type Response struct {
	Status int
	Body   string
}

// JSON returns a response with the status and JSON body provided.
func JSON(status int, body string) Response {
	return Response{Status: status, Body: body}
}

// OK returns a 200 response with the JSON body provided.
func OK(body string) Response {
	return JSON(http.StatusOK, body)
}

// Server is a stub server, closed when the test ends.
type Server struct {
	*httptest.Server
	mtx      sync.Mutex
	requests []Request
}

// NewServer starts a server that replies to every request with the response
// returned by handler.
func NewServer(c *qt.C, handler func(Request) Response) *Server {
	s := &Server{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		req := Request{
			Method:   r.Method,
			Path:     r.URL.Path,
			RawQuery: r.URL.RawQuery,
			Header:   r.Header.Clone(),
			Body:     body,
		}
		s.mtx.Lock()
		s.requests = append(s.requests, req)
		s.mtx.Unlock()
		res := handler(req)
		if res.Status == 0 {
			res.Status = http.StatusOK
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(res.Status)
		_, _ = io.WriteString(w, res.Body)
	}))
	c.Cleanup(s.Close)
	return s
}

// Fixtures starts a server that replies with the response registered for the
// request path, or 404 if there is none.
func Fixtures(c *qt.C, fixtures map[string]Response) *Server {
	return NewServer(c, func(r Request) Response {
		if res, ok := fixtures[r.Path]; ok {
			return res
		}
		return JSON(http.StatusNotFound, `{"code":"NotFound","message":"not found"}`)
	})
}

// Requests returns the requests received so far.
func (s *Server) Requests() []Request {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return append([]Request(nil), s.requests...)
}

// Last returns the last request received, it fails the test if there is none.
func (s *Server) Last(c *qt.C) Request {
	reqs := s.Requests()
	c.Assert(reqs, qt.Not(qt.HasLen), 0)
	return reqs[len(reqs)-1]
}
