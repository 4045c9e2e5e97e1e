package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/firebase/genkit/go/ai"
	"github.com/joho/godotenv"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/faredesk/faredesk/bootstrap"
	"github.com/faredesk/faredesk/config"
	logcontext "github.com/faredesk/faredesk/context"
	"github.com/faredesk/faredesk/log"
)

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
	Error string `json:"error,omitempty"`
}

// ChatServer exposes the travel agent over a single JSON endpoint for the
// developer UI. One conversation per process; history lives in memory only.
type ChatServer struct {
	app *bootstrap.App

	mu      sync.Mutex
	history []*ai.Message
}

func (s *ChatServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Message == "" {
		http.Error(w, "message is required", http.StatusBadRequest)
		return
	}

	ctx := logcontext.WithRequestID(r.Context(), logcontext.NewRequestID())
	log.Infof(ctx, "Received chat message: %s", req.Message)

	// Turns are serialized: the shared history is not safe for interleaved
	// conversations.
	s.mu.Lock()
	defer s.mu.Unlock()

	reply, history, err := s.app.Agent.Run(ctx, req.Message, s.history)
	w.Header().Set("Content-Type", "application/json")
	if err != nil {
		log.Errorf(ctx, "Error processing chat message: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(ChatResponse{Error: err.Error()})
		return
	}
	s.history = history

	json.NewEncoder(w).Encode(ChatResponse{Reply: reply})
}

// corsHandler allows all origins (dev mode).
func corsHandler(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		h.ServeHTTP(w, r)
	})
}

func main() {
	// Load .env if present
	_ = godotenv.Load()

	log.Init()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle Ctrl+C (SIGINT)
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT)
	go func() {
		<-sigChan
		log.Info(context.Background(), "Program terminated externally. Exiting...")
		cancel()
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf(context.Background(), "Failed to load config: %v", err)
	}

	app, err := bootstrap.Setup(ctx, cfg)
	if err != nil {
		log.Fatalf(context.Background(), "Setup failed: %v", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/v1/chat", &ChatServer{app: app})

	// h2c for HTTP/2 without TLS (dev and internal use)
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: h2c.NewHandler(corsHandler(mux), &http2.Server{}),
	}

	go func() {
		<-ctx.Done()
		log.Info(context.Background(), "Shutting down server...")
		srv.Shutdown(context.Background())
	}()

	log.Infof(context.Background(), "Starting server on port %s", cfg.Server.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf(context.Background(), "Server failed: %v", err)
	}
}
