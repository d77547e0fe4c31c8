package httpserver

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/bnema/framecast/internal/adapters/repo/svgdir"
	"github.com/bnema/framecast/internal/application"
	"github.com/bnema/framecast/internal/domain"
	"github.com/bnema/framecast/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	dir := t.TempDir()
	for i := 1; i <= 3; i++ {
		content := fmt.Sprintf("<svg>\n<path d=\"M %d %d\nz\"/>\n</svg>\n", i, i)
		require.NoError(t, os.WriteFile(filepath.Join(dir, strconv.Itoa(i)+".svg"), []byte(content), 0o644))
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	seq := domain.Sequence{ID: "demo", Name: "Demo", Dir: dir, FPS: 1000, LastFrame: 3}
	streamer := application.NewStreamService(ports.SystemClock{}, ports.SystemSleeper{}, logger)

	server, err := New(streamer, seq, svgdir.NewRepository(dir, logger), logger)
	require.NoError(t, err)

	ts := httptest.NewServer(server.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func TestIndexPage(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Demo @ 1000 fps")
	assert.Contains(t, string(body), "EventSource('/init')")
}

func TestUnknownPathIsNotFound(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/nope")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestInitEndpointStreamsEvents(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/init")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(string(body), "event: online"))
}
