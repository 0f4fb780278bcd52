package main

import (
	"bytes"
	"context"
	"log"
	"net"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tareqmohamed/instanceinfo/internal/config"
)

// lockedBuffer — bytes.Buffer для логгера, который пишет из другой горутины.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

var runningRe = regexp.MustCompile(`Server running on port (\d+)`)

func TestServe_LogsPortServesAndStops(t *testing.T) {
	cfg := config.Default()
	cfg.ListenAddr = "127.0.0.1:0"
	cfg.StaticDir = t.TempDir()

	var out lockedBuffer
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- serve(ctx, cfg, log.New(&out, "", 0)) }()

	require.Eventually(t, func() bool { return runningRe.MatchString(out.String()) }, 5*time.Second, 10*time.Millisecond)
	port := runningRe.FindStringSubmatch(out.String())[1]

	resp, err := http.Get("http://127.0.0.1:" + port + "/missing.txt")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not stop after cancel")
	}
}

func TestServe_BindFailure(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = busy.Close() })

	cfg := config.Default()
	cfg.ListenAddr = busy.Addr().String()
	cfg.StaticDir = t.TempDir()

	var out lockedBuffer
	err = serve(context.Background(), cfg, log.New(&out, "", 0))

	require.Error(t, err)
	assert.NotContains(t, out.String(), "Server running")
}

func TestListenPort(t *testing.T) {
	assert.Equal(t, "5000", listenPort(&net.TCPAddr{IP: net.IPv6zero, Port: 5000}))
	assert.Equal(t, "5000", listenPort(&net.TCPAddr{IP: net.IPv4zero, Port: 5000}))
}

func TestInstanceIDCmd_MetadataUnreachable(t *testing.T) {
	dead := httptest.NewServer(http.NotFoundHandler())
	dead.Close()

	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("METADATA_URL", dead.URL)
	for _, k := range []string{"LISTEN_ADDR", "STATIC_DIR", "MOCK_LISTEN_ADDR", "MOCK_INSTANCE_ID"} {
		t.Setenv(k, "")
	}

	var stdout bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"instance-id"})

	require.NoError(t, cmd.ExecuteContext(context.Background()))
	assert.True(t, strings.HasPrefix(stdout.String(), "Unable to retrieve instance ID: "), stdout.String())
	assert.Contains(t, stdout.String(), dead.URL)
}
