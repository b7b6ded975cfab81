package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mermaidgen/pkg/observability"
)

func newTestServer(t *testing.T) (*httptest.Server, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	ts := httptest.NewServer(New(logger).Handler())
	t.Cleanup(ts.Close)
	return ts, &buf
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

func TestHealth(t *testing.T) {
	ts, _ := newTestServer(t)
	resp, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	if body := readBody(t, resp); !strings.Contains(body, `"ok"`) {
		t.Errorf("body = %q", body)
	}
}

func TestShapes(t *testing.T) {
	ts, _ := newTestServer(t)
	resp, err := http.Get(ts.URL + "/v1/shapes")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var shapes []shapeResponse
	if err := json.NewDecoder(resp.Body).Decode(&shapes); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(shapes) != 17 {
		t.Errorf("got %d shapes, want 17", len(shapes))
	}
	for _, s := range shapes {
		if s.Name == "circle" && (s.Open != "((" || s.Close != "))") {
			t.Errorf("circle = %+v", s)
		}
	}
}

func TestRender(t *testing.T) {
	doc := `{"direction": "LR",
		"nodes": [{"id": "A", "label": "Start", "raw": true}, {"id": "B", "label": "End", "raw": true}],
		"edges": [{"source": "A", "target": "B", "label": "Next"}]}`

	tests := []struct {
		name        string
		query       string
		body        string
		wantStatus  int
		wantBody    string
		contentType string
	}{
		{
			name:        "mermaid",
			body:        doc,
			wantStatus:  http.StatusOK,
			wantBody:    "flowchart LR\n    A[\"Start\"]\n    B[\"End\"]\n    A --> B|Next|",
			contentType: "text/plain",
		},
		{
			name:        "markdown",
			query:       "?format=markdown",
			body:        doc,
			wantStatus:  http.StatusOK,
			wantBody:    "```mermaid\nflowchart LR\n    A[\"Start\"]\n    B[\"End\"]\n    A --> B|Next|\n```\n",
			contentType: "text/markdown",
		},
		{
			name:        "toml input",
			query:       "?input=toml",
			body:        "direction = \"BT\"\n[[edges]]\nsource = \"x\"\ntarget = \"y\"\n",
			wantStatus:  http.StatusOK,
			wantBody:    "flowchart BT\n    x --> y",
			contentType: "text/plain",
		},
		{
			name:        "yaml input",
			query:       "?input=yaml",
			body:        "type: classDiagram\nnodes:\n  - id: A\n",
			wantStatus:  http.StatusOK,
			wantBody:    "classDiagram TD\n    A[\"A\"]",
			contentType: "text/plain",
		},
	}

	ts, _ := newTestServer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(ts.URL+"/v1/render"+tt.query, "application/json", strings.NewReader(tt.body))
			if err != nil {
				t.Fatal(err)
			}
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, tt.contentType) {
				t.Errorf("Content-Type = %q, want %q", ct, tt.contentType)
			}
			if body := readBody(t, resp); body != tt.wantBody {
				t.Errorf("body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}

func TestRender_Errors(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		body     string
		wantCode string
		wantMsg  string
	}{
		{"invalid shape", "", `{"nodes": [{"id": "A", "shape": "blob"}]}`, "INVALID_SHAPE", "node 0 (A): invalid shape: blob"},
		{"invalid direction", "", `{"direction": "UP"}`, "INVALID_DIRECTION", "UP"},
		{"missing target", "", `{"edges": [{"source": "A"}]}`, "MISSING_EDGE_TARGET", "target is required"},
		{"malformed", "", `{`, "INVALID_DOCUMENT", "decode JSON"},
		{"bad input", "?input=xml", `{}`, "INVALID_FORMAT", "xml"},
		{"bad output", "?format=svg", `{}`, "INVALID_FORMAT", "svg"},
	}

	ts, logs := newTestServer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(ts.URL+"/v1/render"+tt.query, "application/json", strings.NewReader(tt.body))
			if err != nil {
				t.Fatal(err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", resp.StatusCode)
			}
			var er errorResponse
			if err := json.NewDecoder(resp.Body).Decode(&er); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if string(er.Code) != tt.wantCode {
				t.Errorf("code = %q, want %q", er.Code, tt.wantCode)
			}
			if !strings.Contains(er.Message, tt.wantMsg) {
				t.Errorf("message = %q, want it to contain %q", er.Message, tt.wantMsg)
			}
		})
	}

	if !strings.Contains(logs.String(), "HTTP request") {
		t.Error("request logger wrote nothing")
	}
}

func TestRender_MethodNotAllowed(t *testing.T) {
	ts, _ := newTestServer(t)
	resp, err := http.Get(ts.URL + "/v1/render")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", resp.StatusCode)
	}
}

func TestListenAndServe_Shutdown(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	addr := l.Addr().String()
	l.Close()

	var buf bytes.Buffer
	s := New(log.New(&buf))
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe(ctx, addr) }()

	deadline := time.Now().Add(2 * time.Second)
	for {
		resp, err := http.Get("http://" + addr + "/health")
		if err == nil {
			resp.Body.Close()
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("server did not start: %v", err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("ListenAndServe() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

type countingHooks struct {
	mu      sync.Mutex
	imports []error
	renders []observability.RenderStats
}

func (c *countingHooks) OnImport(_ context.Context, _ string, _ time.Duration, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.imports = append(c.imports, err)
}

func (c *countingHooks) OnRender(_ context.Context, stats observability.RenderStats, _ time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.renders = append(c.renders, stats)
}

func TestRenderHooks(t *testing.T) {
	hooks := &countingHooks{}
	observability.SetRenderHooks(hooks)
	t.Cleanup(observability.Reset)

	ts, _ := newTestServer(t)
	for _, body := range []string{
		`{"nodes":[{"id":"A"},{"id":"B"}],"edges":[{"source":"A","target":"B"}]}`,
		`{"nodes":[{"id":"A","shape":"blob"}]}`,
	} {
		resp, err := http.Post(ts.URL+"/v1/render", "application/json", strings.NewReader(body))
		if err != nil {
			t.Fatal(err)
		}
		readBody(t, resp)
	}

	hooks.mu.Lock()
	defer hooks.mu.Unlock()
	if len(hooks.imports) != 2 || hooks.imports[0] != nil || hooks.imports[1] == nil {
		t.Errorf("imports = %v, want one success then one failure", hooks.imports)
	}
	want := observability.RenderStats{Type: "flowchart", Nodes: 2, Edges: 1, Bytes: len("flowchart TD\n    A[\"A\"]\n    B[\"B\"]\n    A --> B")}
	if len(hooks.renders) != 1 || hooks.renders[0] != want {
		t.Errorf("renders = %+v, want [%+v]", hooks.renders, want)
	}
}
