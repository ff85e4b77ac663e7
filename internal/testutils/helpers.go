package testutils

import (
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/aretw0/docframe/internal/renderstub"
	"github.com/stretchr/testify/require"
)

// StartEngine serves a stand-in engine for the duration of the test.
// It returns the stub, to inspect received requests, and the test server.
func StartEngine(t *testing.T, opts ...renderstub.Option) (*renderstub.Server, *httptest.Server) {
	t.Helper()

	stub := renderstub.New(opts...)
	srv := httptest.NewServer(stub.Handler())
	t.Cleanup(srv.Close)

	return stub, srv
}

// TempPath returns an absolute path for name inside a per-test directory.
// The file itself is not created.
func TempPath(t *testing.T, name string) string {
	t.Helper()

	absPath, err := filepath.Abs(t.TempDir())
	require.NoError(t, err, "Failed to get absolute path for temp dir")

	return filepath.Join(absPath, name)
}
