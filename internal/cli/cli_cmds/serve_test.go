package cli_cmds

import (
	"context"
	"encoding/json"
	"net/http"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/PedroCamargo-dev/core-bank-ledger-service/internal/cli"
	"github.com/PedroCamargo-dev/core-bank-ledger-service/internal/config"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func testConfig() *config.Config {
	return &config.Config{
		HTTP: config.HTTPConfig{
			Addr:            "127.0.0.1:0",
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    5 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Storage: config.StorageConfig{Driver: config.StorageMemory},
		Lock: config.LockConfig{
			Driver:     config.LockMemory,
			Expiry:     5 * time.Second,
			Tries:      8,
			RetryDelay: 10 * time.Millisecond,
		},
	}
}

// startServe runs serve in the background and returns its base URL plus a
// func that stops it and reports serve's error.
func startServe(t *testing.T, cfg *config.Config) (string, func() error) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	ready := make(chan string, 1)
	done := make(chan error, 1)

	go func() { done <- serve(ctx, cfg, zaptest.NewLogger(t), ready) }()

	select {
	case addr := <-ready:
		return "http://" + addr, func() error {
			cancel()
			return <-done
		}
	case err := <-done:
		cancel()
		t.Fatalf("expected server to start, got %v", err)
	case <-time.After(5 * time.Second):
		cancel()
		t.Fatalf("server did not start")
	}

	return "", nil
}

func createBank(t *testing.T, base, name string) string {
	t.Helper()

	resp, err := http.Post(base+"/api/v1/banks", "application/json", strings.NewReader(`{"name":"`+name+`"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, name, body.Name)

	return body.ID
}

func getStatus(t *testing.T, url string) int {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	resp.Body.Close()

	return resp.StatusCode
}

func TestServe_MemoryBackends(t *testing.T) {
	base, stop := startServe(t, testConfig())

	assert.Equal(t, http.StatusOK, getStatus(t, base+"/health"))

	id := createBank(t, base, "Central")
	assert.Equal(t, http.StatusOK, getStatus(t, base+"/api/v1/banks/"+id))

	require.NoError(t, stop())
}

func TestServe_SQLiteAndRedis(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	cfg := testConfig()
	cfg.Storage = config.StorageConfig{Driver: config.StorageSQLite, Path: filepath.Join(t.TempDir(), "ledger.db")}
	cfg.Lock.Driver = config.LockRedis
	cfg.Lock.Redis.Addr = mr.Addr()

	base, stop := startServe(t, cfg)

	assert.Equal(t, http.StatusOK, getStatus(t, base+"/health"))
	id := createBank(t, base, "Persisted")

	mr.Close()
	assert.Equal(t, http.StatusServiceUnavailable, getStatus(t, base+"/health"))

	require.NoError(t, stop())

	// The data outlives the process.
	cfg.Lock = testConfig().Lock
	base, stop = startServe(t, cfg)
	assert.Equal(t, http.StatusOK, getStatus(t, base+"/api/v1/banks/"+id))
	require.NoError(t, stop())
}

func TestBuildApp_RedisUnreachable(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	addr := mr.Addr()
	mr.Close()

	cfg := testConfig()
	cfg.Lock.Driver = config.LockRedis
	cfg.Lock.Redis.Addr = addr

	_, err = buildApp(context.Background(), cfg, zaptest.NewLogger(t))
	require.Error(t, err)
}

func TestBuildApp_UnknownStorage(t *testing.T) {
	cfg := testConfig()
	cfg.Storage.Driver = "postgres"

	_, err := buildApp(context.Background(), cfg, zaptest.NewLogger(t))
	require.ErrorIs(t, err, config.ErrStorageDriver)
}

func newRoot() *cli.CmdParams {
	params := &cli.CmdParams{Use: "ledger", Short: "ledger"}
	params.Palette = GeneratePalette(params)
	return params
}

func TestVersionCommand(t *testing.T) {
	params := newRoot()

	out, err := cli.ExecuteCommand(context.Background(), cli.NewRoot(params), "version")
	require.NoError(t, err)
	assert.Contains(t, out, "ledger version "+cli.Version)
}

func TestServeCommand_MissingConfigFile(t *testing.T) {
	params := newRoot()

	_, err := cli.ExecuteCommand(context.Background(), cli.NewRoot(params),
		"serve", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
