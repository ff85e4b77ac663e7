package main

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/aretw0/docframe/internal/renderstub"
	"github.com/aretw0/docframe/internal/testutils"
	"github.com/aretw0/docframe/pkg/output"
	"github.com/aretw0/docframe/pkg/registry"
	"github.com/aretw0/docframe/pkg/wire"
)

// run executes the root command with args and returns what it wrote to stdout.
// Flags keep their values across runs, so every test passes the flags it relies on.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, _, err := runWithStderr(t, args...)
	return out, err
}

func runWithStderr(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if out != "docframe version 0.1.0\n" {
		t.Errorf("Unexpected output: %q", out)
	}
}

func TestDump_Stdout(t *testing.T) {
	out, err := run(t, "dump", "simple-text", "--out", "-")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	outline, err := wire.Unmarshal([]byte(out))
	if err != nil {
		t.Fatalf("Dump is not a valid wire form: %v", err)
	}
	if outline.Kind != wire.KindNone || len(outline.Children) == 0 {
		t.Errorf("Expected a bare root with children, got %q", outline.Kind)
	}
	if !strings.Contains(outline.PlainText(), "Hello World!") {
		t.Errorf("Text missing from dump: %q", outline.PlainText())
	}
}

func TestDump_File(t *testing.T) {
	path := testutils.TempPath(t, "table.bin")
	if _, err := run(t, "dump", "table", "--out", path, "--log-level", "error"); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Dump file missing: %v", err)
	}
	if _, err := wire.Unmarshal(data); err != nil {
		t.Errorf("Dump file is not a valid wire form: %v", err)
	}
}

func TestInspect(t *testing.T) {
	tests := []struct {
		as   string
		want string
	}{
		{"text", "wonderful table"},
		{"mermaid", "graph TD\n"},
		{"markdown", "Document outline"},
	}

	for _, tt := range tests {
		t.Run(tt.as, func(t *testing.T) {
			out, err := run(t, "inspect", "table", "--as", tt.as, "--plain")
			if err != nil {
				t.Fatalf("Execute failed: %v", err)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("Expected %q in output, got %q", tt.want, out)
			}
		})
	}

	if _, err := run(t, "inspect", "table", "--as", "yaml"); err == nil {
		t.Error("Expected error for unknown --as value")
	}
}

func TestRender_AgainstStub(t *testing.T) {
	stub, srv := testutils.StartEngine(t, renderstub.WithToken("secret"))
	path := testutils.TempPath(t, "paragraph.txt")

	out, err := run(t, "render", "paragraph",
		"--url", srv.URL, "--token", "secret", "--log-level", "error",
		"--format", "text", "--out", path)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !strings.Contains(out, path) {
		t.Errorf("Status line should name the output file, got %q", out)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Rendered file missing: %v", err)
	}
	if !strings.Contains(string(data), "I'm in a bold paragraph") {
		t.Errorf("Unexpected rendering: %q", data)
	}

	reqs := stub.Requests()
	if len(reqs) != 1 || reqs[0].Format != output.Text {
		t.Errorf("Expected one text request, got %+v", reqs)
	}
}

func TestRender_Metrics(t *testing.T) {
	_, srv := testutils.StartEngine(t)

	_, stderr, err := runWithStderr(t, "render", "simple-text",
		"--url", srv.URL, "--token", "", "--log-level", "error",
		"--format", "text", "--out", testutils.TempPath(t, "out.txt"), "--metrics")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	for _, want := range []string{
		`docframe_client_requests_total{format="text",status="200"} 1`,
		"docframe_client_request_duration_seconds_count",
		"docframe_client_payload_bytes_bucket",
	} {
		if !strings.Contains(stderr, want) {
			t.Errorf("Expected %q in metrics output, got:\n%s", want, stderr)
		}
	}
}

func TestRender_Rejected(t *testing.T) {
	_, srv := testutils.StartEngine(t, renderstub.WithToken("secret"))

	_, err := run(t, "render", "simple-text",
		"--url", srv.URL, "--token", "wrong", "--log-level", "error",
		"--format", "pdf", "--out", testutils.TempPath(t, "x.pdf"))
	if err == nil {
		t.Fatal("Expected error for rejected token")
	}
}

func TestRender_UnknownExample(t *testing.T) {
	_, err := run(t, "render", "nope", "--format", "pdf", "--log-level", "error")
	if !errors.Is(err, registry.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

// The --param map accumulates across runs, so this test runs last.
func TestRender_Params(t *testing.T) {
	stub, srv := testutils.StartEngine(t)
	path := testutils.TempPath(t, "out.png")

	_, err := run(t, "render", "simple-text",
		"--url", srv.URL, "--token", "", "--log-level", "error",
		"--format", "png", "--out", path, "--param", "dpi=150")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	reqs := stub.Requests()
	if len(reqs) != 1 {
		t.Fatalf("Expected one request, got %d", len(reqs))
	}
	if got := reqs[0].Params["dpi"]; got != 150.0 {
		t.Errorf("Expected dpi 150, got %v", got)
	}
}

func TestIsTerminal(t *testing.T) {
	if isTerminal(&bytes.Buffer{}) {
		t.Error("A buffer is not a terminal")
	}

	f, err := os.Create(testutils.TempPath(t, "out"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if isTerminal(f) {
		t.Error("A regular file is not a terminal")
	}
}
