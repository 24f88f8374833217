package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/njchilds90/splitoct"
)

// server evaluates tool calls under a per-call deadline with at most
// cap(slots) calls running at once. A call that outlives its deadline keeps
// its slot until it returns.
type server struct {
	log     logrus.FieldLogger
	maxBody int64
	timeout time.Duration
	slots   chan struct{}
	call    func(splitoct.ToolRequest) splitoct.ToolResponse
}

func newServer(log logrus.FieldLogger, opts *options) *server {
	return &server{
		log:     log,
		maxBody: opts.maxBody,
		timeout: opts.timeout,
		slots:   make(chan struct{}, opts.maxInflight),
		call:    splitoct.HandleToolCall,
	}
}

func serve(log *logrus.Logger, opts *options) error {
	addr := fmt.Sprintf(":%d", opts.port)
	log.WithFields(logrus.Fields{
		"addr":         addr,
		"timeout":      opts.timeout,
		"max_inflight": opts.maxInflight,
	}).Info("splitoct tool server listening")
	log.Info("  POST /tool    execute a tool call")
	log.Info("  GET  /schema  tool schema for agent registration")
	log.Info("  GET  /health  health check")

	srv := &http.Server{
		Addr:              addr,
		Handler:           newServer(log, opts).mux(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      opts.timeout + 15*time.Second,
		IdleTimeout:       60 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *server) mux() *http.ServeMux {
	mux := http.NewServeMux()

	// POST /tool: handle a tool call
	mux.HandleFunc("/tool", s.handleTool)

	// GET /schema: return tool schema for agent registration
	mux.HandleFunc("/schema", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, splitoct.ToolSpec())
	})

	// GET /health: liveness check
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"status":   "ok",
			"inflight": len(s.slots),
			"time":     time.Now().UTC().Format(time.RFC3339),
		})
	})
	return mux
}

func (s *server) handleTool(w http.ResponseWriter, r *http.Request) {
	reqLog := s.log.WithField("request_id", uuid.NewString())
	start := time.Now()
	defer func() {
		if rec := recover(); rec != nil {
			reqLog.WithField("stack", string(debug.Stack())).Errorf("panic in /tool: %v", rec)
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
	}()

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.maxBody)
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	// Decimal literals reach the tool layer as json.Number and stay exact.
	dec.UseNumber()

	var req splitoct.ToolRequest
	if err := dec.Decode(&req); err != nil {
		reqLog.WithError(err).Warn("bad tool request")
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if dec.More() {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: trailing data"})
		return
	}

	select {
	case s.slots <- struct{}{}:
	default:
		reqLog.WithField("tool", req.Tool).Warn("tool call rejected: server busy")
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "server busy"})
		return
	}

	done := make(chan splitoct.ToolResponse, 1)
	go func() {
		defer func() { <-s.slots }()
		defer func() {
			if rec := recover(); rec != nil {
				reqLog.WithField("stack", string(debug.Stack())).Errorf("panic in tool %s: %v", req.Tool, rec)
				close(done)
			}
		}()
		done <- s.call(req)
	}()

	ctx, cancel := context.WithTimeout(r.Context(), s.timeout)
	defer cancel()

	fields := logrus.Fields{"tool": req.Tool}
	select {
	case resp, ok := <-done:
		fields["duration"] = time.Since(start)
		switch {
		case !ok:
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		case resp.Error != "":
			reqLog.WithFields(fields).WithField("error", resp.Error).Info("tool call failed")
		default:
			reqLog.WithFields(fields).Debug("tool call")
		}
		writeJSON(w, http.StatusOK, resp)
	case <-ctx.Done():
		fields["duration"] = time.Since(start)
		reqLog.WithFields(fields).WithError(ctx.Err()).Warn("tool call abandoned")
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"error": fmt.Sprintf("tool call exceeded %s", s.timeout),
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
