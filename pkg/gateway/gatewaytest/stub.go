// Package gatewaytest provides a scripted gateway for service tests.
package gatewaytest

import (
	"context"
	"errors"
	"fitlens-backend/pkg/gateway"
	"sync"
)

type Reply struct {
	Text string
	Err  error
}

func Text(s string) Reply { return Reply{Text: s} }

func Fail(err error) Reply { return Reply{Err: err} }

// Stub answers Complete calls with queued replies in order and records every
// request it receives.
type Stub struct {
	mu       sync.Mutex
	replies  []Reply
	requests []gateway.Request
}

func NewStub(replies ...Reply) *Stub {
	return &Stub{replies: replies}
}

func (s *Stub) Complete(_ context.Context, req gateway.Request) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, req)
	if len(s.replies) == 0 {
		return "", errors.New("gatewaytest: no reply queued")
	}
	r := s.replies[0]
	s.replies = s.replies[1:]
	return r.Text, r.Err
}

func (s *Stub) Name() string { return "stub" }

func (s *Stub) Close() error { return nil }

func (s *Stub) Requests() []gateway.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]gateway.Request(nil), s.requests...)
}

func (s *Stub) LastRequest() gateway.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return gateway.Request{}
	}
	return s.requests[len(s.requests)-1]
}
