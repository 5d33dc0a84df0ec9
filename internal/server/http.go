package server

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/viper"

	"github.com/russross/blockdown"
	"github.com/russross/blockdown/internal/config"
)

// Server renders documents over HTTP: posted bodies on /render and files
// below a root directory on /doc/.
type Server struct {
	cfg *viper.Viper
	fs  FileSystem
	log *log.Logger
}

func New(cfg *viper.Viper, fsys FileSystem, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Server{cfg: cfg, fs: fsys, log: logger}
}

// Router returns an http.Handler with registered routes.
func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("POST /render", s.handleRender)
	mux.HandleFunc("GET /doc/{name...}", s.handleDoc)
	return mux
}

// ListenAndServe serves on serve.addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.GetString("serve.addr"),
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Printf("serve: listening on %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.log.Printf("serve: shutting down")
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	mode, ok := s.mode(w, r)
	if !ok {
		return
	}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.cfg.GetInt64("serve.max_body")))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "body too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}
	s.write(w, "render", body, mode)
}

func (s *Server) handleDoc(w http.ResponseWriter, r *http.Request) {
	mode, ok := s.mode(w, r)
	if !ok {
		return
	}
	name := r.PathValue("name")
	if name == "" {
		http.NotFound(w, r)
		return
	}
	data, err := s.fs.ReadFile(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			http.NotFound(w, r)
			return
		}
		s.log.Printf("doc %s: %v", name, err)
		http.Error(w, "failed to read document", http.StatusInternalServerError)
		return
	}
	s.write(w, "doc "+name, data, mode)
}

// mode reads ?mode=, falling back to the configured mode.
func (s *Server) mode(w http.ResponseWriter, r *http.Request) (blockdown.Mode, bool) {
	q := r.URL.Query().Get("mode")
	if q == "" {
		q = s.cfg.GetString("mode")
	}
	mode, err := blockdown.ParseMode(q)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return mode, false
	}
	return mode, true
}

func (s *Server) write(w http.ResponseWriter, what string, input []byte, mode blockdown.Mode) {
	renderer := config.Renderer(s.cfg)
	out := blockdown.Run(input,
		blockdown.WithRenderer(renderer),
		blockdown.WithExtensions(config.Extensions(s.cfg)),
		blockdown.WithMode(mode))

	if mode == blockdown.ModeRaw && renderer.Flags()&blockdown.Container == 0 {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	} else {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
	}
	if _, err := w.Write(out); err != nil {
		s.log.Printf("%s: write response: %v", what, err)
		return
	}
	s.log.Printf("%s mode=%s in=%s out=%s", what, mode,
		humanize.Bytes(uint64(len(input))), humanize.Bytes(uint64(len(out))))
}
