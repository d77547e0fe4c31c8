package httpserver

import (
	_ "embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/bnema/framecast/internal/adapters/transport/sse"
	"github.com/bnema/framecast/internal/adapters/transport/ws"
	"github.com/bnema/framecast/internal/application"
	"github.com/bnema/framecast/internal/domain"
	"github.com/bnema/framecast/internal/ports"
)

//go:embed index.html
var indexHTML string

// Server wires the playback page and the two streaming endpoints around
// one configured sequence. Every connection to /init or /ws starts an
// independent session.
type Server struct {
	seq    domain.Sequence
	tmpl   *template.Template
	mux    *http.ServeMux
	logger *slog.Logger
}

type indexData struct {
	Name string
	FPS  int
}

func New(streamer *application.StreamService, seq domain.Sequence, frames ports.FrameRepository, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = slog.Default()
	}

	tmpl, err := template.New("index").Parse(indexHTML)
	if err != nil {
		return nil, fmt.Errorf("parse index template: %w", err)
	}

	s := &Server{
		seq:    seq,
		tmpl:   tmpl,
		mux:    http.NewServeMux(),
		logger: logger,
	}

	s.mux.Handle("/init", sse.NewHandler(streamer, seq, frames, logger))
	s.mux.Handle("/ws", ws.NewHandler(streamer, seq, frames, logger))
	s.mux.HandleFunc("/", s.handleIndex)

	return s, nil
}

// Handler exposes the routing for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("listening", "addr", addr)
	return http.ListenAndServe(addr, s.mux)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	data := indexData{Name: s.seq.Name, FPS: s.seq.FPS}
	if data.Name == "" {
		data.Name = string(s.seq.ID)
	}

	if err := s.tmpl.Execute(w, data); err != nil {
		s.logger.Error("render index", "error", err)
	}
}
