// Package renderstub is a fake docframe engine. It accepts the same
// multipart requests as the real engine, decodes the document tree and
// answers with placeholder output built from the document's text.
package renderstub

import (
	"encoding/json"
	"fmt"
	"html"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
	"sync"

	"github.com/aretw0/docframe/internal/logging"
	"github.com/aretw0/docframe/pkg/output"
	"github.com/aretw0/docframe/pkg/schema"
	"github.com/aretw0/docframe/pkg/wire"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// APIPath matches the engine endpoint.
const APIPath = "/api/docframe"

const maxMemory = 32 << 20

// metaSchema lists the meta keys every request must carry. Format
// parameters are checked separately against the chosen format.
var metaSchema = schema.Schema{"format": schema.String()}

// Request is a conversion the stub received.
type Request struct {
	Format  output.Format
	Params  map[string]any
	Outline *wire.Outline
	// Size is the length of the encoded tree.
	Size int
}

// Server records requests and renders placeholder output.
type Server struct {
	token  string
	logger *slog.Logger

	mu       sync.Mutex
	requests []Request
}

type Option func(*Server)

// WithToken makes the stub reject requests without this token.
func WithToken(token string) Option {
	return func(s *Server) {
		s.token = token
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		s.logger = l
	}
}

func New(opts ...Option) *Server {
	s := &Server{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the HTTP handler for the stub.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Post(APIPath, s.convert)
	return r
}

// Requests returns the requests received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

func (s *Server) convert(w http.ResponseWriter, r *http.Request) {
	if s.token != "" && r.URL.Query().Get("token") != s.token {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		s.logger.Warn("Convert: invalid token")
		return
	}

	if err := r.ParseMultipartForm(maxMemory); err != nil {
		http.Error(w, "Invalid multipart body", http.StatusBadRequest)
		s.logger.Warn("Convert: invalid multipart body", "error", err)
		return
	}

	meta, err := readPart(r.MultipartForm, "meta")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	params := map[string]any{}
	if err := json.Unmarshal(meta, &params); err != nil {
		http.Error(w, "Invalid meta", http.StatusBadRequest)
		s.logger.Warn("Convert: invalid meta", "error", err)
		return
	}
	if err := schema.Validate(metaSchema, params); err != nil {
		unprocessable(w, err)
		return
	}
	formatName := params["format"].(string)
	delete(params, "format")

	format, err := output.Parse(formatName)
	if err != nil {
		unprocessable(w, err)
		return
	}
	if err := format.Validate(params); err != nil {
		unprocessable(w, err)
		return
	}

	data, err := readPart(r.MultipartForm, "proto-data")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	outline, err := wire.Unmarshal(data)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid document: %v", err), http.StatusBadRequest)
		s.logger.Warn("Convert: invalid document", "error", err)
		return
	}

	s.mu.Lock()
	s.requests = append(s.requests, Request{Format: format, Params: params, Outline: outline, Size: len(data)})
	s.mu.Unlock()

	s.logger.Info("Converted document", "format", format, "nodes", outline.Count(), "bytes", len(data))

	w.Header().Set("Content-Type", format.ContentType())
	if _, err := w.Write(Render(format, outline)); err != nil {
		s.logger.Error("Convert response write failed", "error", err)
	}
}

// unprocessable answers 422 with one validation failure per line.
func unprocessable(w http.ResponseWriter, err error) {
	errs := schema.ValidationErrors(err)
	if len(errs) == 0 {
		errs = []error{err}
	}
	lines := make([]string, len(errs))
	for i, e := range errs {
		lines[i] = e.Error()
	}
	http.Error(w, strings.Join(lines, "\n"), http.StatusUnprocessableEntity)
}

func readPart(form *multipart.Form, name string) ([]byte, error) {
	files := form.File[name]
	if len(files) == 0 {
		return nil, fmt.Errorf("missing part %q", name)
	}
	f, err := files[0].Open()
	if err != nil {
		return nil, fmt.Errorf("open part %q: %w", name, err)
	}
	defer f.Close()
	return io.ReadAll(f)
}

// Render produces placeholder output in format f carrying the document's text.
// Binary formats only get a valid signature.
func Render(f output.Format, o *wire.Outline) []byte {
	text := o.PlainText()
	switch f {
	case output.Text:
		return []byte(text)
	case output.HTML:
		return []byte("<!DOCTYPE html>\n<html><body><pre>" + html.EscapeString(text) + "</pre></body></html>\n")
	case output.PDF:
		return []byte("%PDF-1.4\n%docframe stub\n" + commentLines("%", text) + "%%EOF\n")
	case output.PS:
		return []byte("%!PS-Adobe-3.0\n" + commentLines("%", text) + "showpage\n")
	case output.PNG:
		return []byte("\x89PNG\r\n\x1a\n")
	case output.JPEG:
		return []byte{0xFF, 0xD8, 0xFF, 0xD9}
	}
	return nil
}

func commentLines(prefix, text string) string {
	var sb strings.Builder
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		if line == "" {
			continue
		}
		sb.WriteString(prefix + " " + line + "\n")
	}
	return sb.String()
}
