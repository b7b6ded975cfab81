package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/matzehuels/mermaidgen/pkg/buildinfo"
	"github.com/matzehuels/mermaidgen/pkg/errors"
	mio "github.com/matzehuels/mermaidgen/pkg/io"
	"github.com/matzehuels/mermaidgen/pkg/mermaid"
	"github.com/matzehuels/mermaidgen/pkg/observability"
)

type shapeResponse struct {
	Name  string `json:"name"`
	Open  string `json:"open"`
	Close string `json:"close"`
}

type healthResponse struct {
	Status string         `json:"status"`
	Build  buildinfo.Info `json:"build"`
}

type errorResponse struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, healthResponse{Status: "ok", Build: buildinfo.Get()})
}

func (s *Server) shapes(w http.ResponseWriter, r *http.Request) {
	names := mermaid.ShapeNames()
	out := make([]shapeResponse, 0, len(names))
	for _, name := range names {
		d, _ := mermaid.LookupShape(string(name))
		out = append(out, shapeResponse{Name: string(name), Open: d.Open, Close: d.Close})
	}
	s.respondJSON(w, http.StatusOK, out)
}

func (s *Server) render(w http.ResponseWriter, r *http.Request) {
	input := mio.FormatJSON
	if v := r.URL.Query().Get("input"); v != "" {
		input = mio.Format(v)
	}

	hooks := observability.Render()
	start := time.Now()
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	d, err := mio.Read(body, input)
	hooks.OnImport(r.Context(), string(input), time.Since(start), err)
	if err != nil {
		s.respondError(w, err)
		return
	}

	start = time.Now()
	text := d.Render()
	hooks.OnRender(r.Context(), observability.RenderStats{
		Type:  string(d.Type()),
		Nodes: d.NodeCount(),
		Edges: d.EdgeCount(),
		Bytes: len(text),
	}, time.Since(start))
	switch format := r.URL.Query().Get("format"); format {
	case "", "mermaid":
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, text)
	case "markdown":
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "```mermaid\n%s\n```\n", text)
	default:
		s.respondError(w, errors.New(errors.ErrCodeInvalidFormat, "unsupported output format %q (want mermaid or markdown)", format))
	}
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Encode response", "err", err)
	}
}

func (s *Server) respondError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	s.respondJSON(w, errors.HTTPStatus(err), errorResponse{Code: code, Message: errors.UserMessage(err)})
}
