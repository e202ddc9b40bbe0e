// TagForge - Trending Hashtag Aggregation and Recommendation Engine
// Copyright 2026 Alex M. (tagforge)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tagforge/tagforge

package services

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/thejerf/suture/v4"
)

// mockHTTPServer simulates an *http.Server lifecycle without binding a port.
type mockHTTPServer struct {
	mu            sync.Mutex
	listenCalls   int
	shutdownCalls int
	listenErr     error
	shutdownErr   error
	release       chan struct{}
}

func newMockHTTPServer() *mockHTTPServer {
	return &mockHTTPServer{release: make(chan struct{})}
}

func (m *mockHTTPServer) ListenAndServe() error {
	m.mu.Lock()
	m.listenCalls++
	err := m.listenErr
	m.mu.Unlock()

	if err != nil {
		return err
	}

	<-m.release
	return http.ErrServerClosed
}

func (m *mockHTTPServer) Shutdown(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.shutdownCalls++
	select {
	case <-m.release:
	default:
		close(m.release)
	}
	return m.shutdownErr
}

func (m *mockHTTPServer) shutdownCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.shutdownCalls
}

func TestHTTPServerServiceImplementsService(t *testing.T) {
	var _ suture.Service = (*HTTPServerService)(nil)
	var _ HTTPServer = (*http.Server)(nil)
}

func TestNewHTTPServerService(t *testing.T) {
	server := newMockHTTPServer()
	svc := NewHTTPServerService(server, 5*time.Second)

	if svc.server != server {
		t.Error("service does not hold the given server")
	}
	if svc.shutdownTimeout != 5*time.Second {
		t.Errorf("expected shutdown timeout 5s, got %v", svc.shutdownTimeout)
	}
}

func TestNewHTTPServerServiceDefaultTimeout(t *testing.T) {
	svc := NewHTTPServerService(newMockHTTPServer(), 0)

	if svc.shutdownTimeout != 10*time.Second {
		t.Errorf("expected default shutdown timeout 10s, got %v", svc.shutdownTimeout)
	}
}

func TestHTTPServerService_Serve(t *testing.T) {
	t.Run("graceful shutdown on context cancellation", func(t *testing.T) {
		server := newMockHTTPServer()
		svc := NewHTTPServerService(server, time.Second)

		ctx, cancel := context.WithCancel(context.Background())

		errCh := make(chan error, 1)
		go func() {
			errCh <- svc.Serve(ctx)
		}()

		time.Sleep(50 * time.Millisecond)
		cancel()

		select {
		case err := <-errCh:
			if !errors.Is(err, context.Canceled) {
				t.Errorf("expected context.Canceled, got %v", err)
			}
		case <-time.After(2 * time.Second):
			t.Fatal("Serve did not return after cancellation")
		}

		if server.shutdownCount() != 1 {
			t.Errorf("expected 1 shutdown call, got %d", server.shutdownCount())
		}
	})

	t.Run("returns error when server fails to start", func(t *testing.T) {
		server := newMockHTTPServer()
		server.listenErr = errors.New("address already in use")
		svc := NewHTTPServerService(server, time.Second)

		err := svc.Serve(context.Background())
		if err == nil {
			t.Fatal("expected startup error, got nil")
		}
		if !errors.Is(err, server.listenErr) {
			t.Errorf("expected wrapped listen error, got %v", err)
		}
	})

	t.Run("treats ErrServerClosed as clean stop", func(t *testing.T) {
		server := newMockHTTPServer()
		close(server.release) // ListenAndServe returns ErrServerClosed immediately
		svc := NewHTTPServerService(server, time.Second)

		if err := svc.Serve(context.Background()); err != nil {
			t.Errorf("expected nil for ErrServerClosed, got %v", err)
		}
	})

	t.Run("returns shutdown error", func(t *testing.T) {
		server := newMockHTTPServer()
		server.shutdownErr = errors.New("connections still open")
		svc := NewHTTPServerService(server, time.Second)

		ctx, cancel := context.WithCancel(context.Background())

		errCh := make(chan error, 1)
		go func() {
			errCh <- svc.Serve(ctx)
		}()

		time.Sleep(50 * time.Millisecond)
		cancel()

		select {
		case err := <-errCh:
			if err == nil || !errors.Is(err, server.shutdownErr) {
				t.Errorf("expected wrapped shutdown error, got %v", err)
			}
		case <-time.After(2 * time.Second):
			t.Fatal("Serve did not return after cancellation")
		}
	})
}

func TestHTTPServerService_String(t *testing.T) {
	svc := NewHTTPServerService(newMockHTTPServer(), time.Second)

	if got := svc.String(); got != "http-server" {
		t.Errorf("expected \"http-server\", got %q", got)
	}
}

func TestHTTPServerServiceWithSupervisor(t *testing.T) {
	server := newMockHTTPServer()
	svc := NewHTTPServerService(server, time.Second)

	sup := suture.New("test-supervisor", suture.Spec{
		EventHook: func(suture.Event) {},
	})
	sup.Add(svc)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := sup.ServeBackground(ctx)

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			t.Errorf("unexpected supervisor error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("supervisor did not stop")
	}

	if server.shutdownCount() != 1 {
		t.Errorf("expected 1 shutdown call, got %d", server.shutdownCount())
	}
}
