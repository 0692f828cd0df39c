package app

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-board/internal/config"
	"github.com/vancomm/minesweeper-board/internal/mines"
)

func newTestApp(addr string) *App {
	log := logrus.New()
	log.SetOutput(io.Discard)
	mines.Log.SetOutput(io.Discard)
	board := &config.Board{Params: mines.DefaultParams, Glyphs: mines.PlainGlyphs}
	return New(log, board, addr)
}

func TestRoutes(t *testing.T) {
	srv := httptest.NewServer(newTestApp("").Handler())
	defer srv.Close()

	res, err := http.Get(srv.URL + "/v1/board?seed=1")
	require.NoError(t, err)
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	// one byte glyph and a space per cell, a newline per row
	assert.Len(t, body, mines.DefaultHeight*(2*mines.DefaultWidth+1))

	res, err = http.Post(srv.URL+"/v1/board", "text/plain", nil)
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, res.StatusCode)
}

func TestCors(t *testing.T) {
	srv := httptest.NewServer(newTestApp("").Handler())
	defer srv.Close()

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/v1/status", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://example.com")
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, "https://example.com", res.Header.Get("Access-Control-Allow-Origin"))
}

func TestStartShutdown(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- newTestApp(addr).Start(ctx) }()

	require.Eventually(t, func() bool {
		res, err := http.Get("http://" + addr + "/v1/status")
		if err != nil {
			return false
		}
		res.Body.Close()
		return res.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
