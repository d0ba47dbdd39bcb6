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

func TestStatus(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, e *merger.Engine)
		check func(t *testing.T, c *apiclient.Client)
	}{
		{
			name:  "idle engine",
			setup: nil,
			check: func(t *testing.T, c *apiclient.Client) {
				resp, err := c.Status()
				assert.NoError(t, err)
				assert.True(t, resp.Initialized)
				assert.False(t, resp.Running)
				assert.False(t, resp.Player1Assigned)
				assert.False(t, resp.Player2Assigned)
			},
		},
		{
			name: "running with one feed",
			setup: func(t *testing.T, e *merger.Engine) {
				assert.NoError(t, e.SetSource(1, merger.NewStreamSource()))
				assert.NoError(t, e.Start())
			},
			check: func(t *testing.T, c *apiclient.Client) {
				resp, err := c.Status()
				assert.NoError(t, err)
				assert.True(t, resp.Running)
				assert.True(t, resp.Player1Assigned)
				assert.False(t, resp.Player2Assigned)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr, e, _, done := handlerTest.StartAPIServer(t, api.ServerConfig{}, func(r *api.Router, e *merger.Engine, apiSrv *api.Server) {
				r.Register("status", handler.Status(e))
			})
			defer done()
			if tt.setup != nil {
				tt.setup(t, e)
			}
			tt.check(t, apiclient.New(addr))
		})
	}
}
