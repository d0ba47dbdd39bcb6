package handler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/duopad/duopad/apiclient"
	"github.com/duopad/duopad/internal/server/api"
	"github.com/duopad/duopad/internal/server/api/handler"
	handlerTest "github.com/duopad/duopad/internal/testing"
	"github.com/duopad/duopad/merger"
)

func startOutputServer(t *testing.T) (string, *merger.Engine, func()) {
	t.Helper()
	addr, e, _, done := handlerTest.StartAPIServer(t, api.ServerConfig{}, func(r *api.Router, e *merger.Engine, apiSrv *api.Server) {
		r.Register("output/start", handler.OutputStart(e))
		r.Register("output/stop", handler.OutputStop(e))
	})
	return addr, e, done
}

func TestOutputStartStop(t *testing.T) {
	addr, e, done := startOutputServer(t)
	defer done()

	c := apiclient.New(addr)

	resp, err := c.StartOutput()
	assert.NoError(t, err)
	assert.True(t, resp.Running)
	assert.True(t, e.Running())

	resp, err = c.StopOutput()
	assert.NoError(t, err)
	assert.False(t, resp.Running)
	assert.False(t, e.Running())
}

func TestOutputStartIdempotent(t *testing.T) {
	addr, e, done := startOutputServer(t)
	defer done()

	c := apiclient.New(addr)

	_, err := c.StartOutput()
	assert.NoError(t, err)
	resp, err := c.StartOutput()
	assert.NoError(t, err)
	assert.True(t, resp.Running)
	assert.True(t, e.Running())
}

func TestOutputStopIdempotent(t *testing.T) {
	addr, e, done := startOutputServer(t)
	defer done()

	c := apiclient.New(addr)

	resp, err := c.StopOutput()
	assert.NoError(t, err)
	assert.False(t, resp.Running)

	resp, err = c.StopOutput()
	assert.NoError(t, err)
	assert.False(t, resp.Running)
	assert.False(t, e.Running())
}
