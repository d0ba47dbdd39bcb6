package apiclient_test

import (
	"errors"
	"testing"

	"github.com/duopad/duopad/apiclient"
	"github.com/duopad/duopad/apitypes"

	"github.com/stretchr/testify/assert"
)

// testClient constructs a client backed by a simple in-memory responder.
// responses maps full, already-filled paths (after path param substitution) to raw JSON payloads.
// If err is non-nil, every request returns that error, simulating dial failures.
func testClient(responses map[string]string, err error) *apiclient.Client {
	return apiclient.WithTransport(apiclient.NewMockTransport(func(path string, _ any, _ map[string]string) (string, error) {
		if err != nil {
			return "", err
		}
		if out, ok := responses[path]; ok {
			return out, nil
		}
		return "", nil
	}))
}

func TestHighLevelClient(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(responses map[string]string) (err error)
		call       func(c *apiclient.Client) (any, error)
		wantErr    string
		assertFunc func(t *testing.T, got any)
	}{
		{
			name: "ping success",
			setup: func(responses map[string]string) error {
				responses["ping"] = `{"server":"DuoPad","version":"0.0.1-dev"}`
				return nil
			},
			call: func(c *apiclient.Client) (any, error) { return c.Ping() },
			assertFunc: func(t *testing.T, got any) {
				resp, ok := got.(*apitypes.PingResponse)
				assert.True(t, ok, "expected *apitypes.PingResponse type")
				assert.Equal(t, "DuoPad", resp.Server)
			},
		},
		{
			name: "status success",
			setup: func(responses map[string]string) error {
				responses["status"] = `{"initialized":true,"running":false,"player1Assigned":true,"player2Assigned":false}`
				return nil
			},
			call: func(c *apiclient.Client) (any, error) { return c.Status() },
			assertFunc: func(t *testing.T, got any) {
				resp, ok := got.(*apitypes.StatusResponse)
				assert.True(t, ok, "expected *apitypes.StatusResponse type")
				assert.True(t, resp.Initialized)
				assert.True(t, resp.Player1Assigned)
				assert.False(t, resp.Running)
			},
		},
		{
			name: "output start success",
			setup: func(responses map[string]string) error {
				responses["output/start"] = `{"running":true}`
				return nil
			},
			call: func(c *apiclient.Client) (any, error) { return c.StartOutput() },
			assertFunc: func(t *testing.T, got any) {
				resp, ok := got.(*apitypes.OutputResponse)
				assert.True(t, ok, "expected *apitypes.OutputResponse type")
				assert.True(t, resp.Running)
			},
		},
		{
			name: "output start conflict",
			setup: func(responses map[string]string) error {
				responses["output/start"] = `{"status":409,"title":"Conflict","detail":"output bridge is not initialized"}`
				return nil
			},
			call:    func(c *apiclient.Client) (any, error) { return c.StartOutput() },
			wantErr: "409 Conflict: output bridge is not initialized",
		},
		{
			name: "merged state",
			setup: func(responses map[string]string) error {
				responses["state/{which}"] = `{"buttons":{"cross":true},"axes":{"lx":-0.5}}`
				return nil
			},
			call: func(c *apiclient.Client) (any, error) { return c.State("merged") },
			assertFunc: func(t *testing.T, got any) {
				resp, ok := got.(*apitypes.StateResponse)
				assert.True(t, ok, "expected *apitypes.StateResponse type")
				assert.True(t, resp.Buttons["cross"])
				assert.Equal(t, -0.5, resp.Axes["lx"])
			},
		},
		{
			name: "state unknown which",
			setup: func(responses map[string]string) error {
				responses["state/{which}"] = `{"status":400,"title":"Bad Request","detail":"unknown state: p3 (want player1, player2 or merged)"}`
				return nil
			},
			call:    func(c *apiclient.Client) (any, error) { return c.State("p3") },
			wantErr: "400 Bad Request: unknown state: p3 (want player1, player2 or merged)",
		},
		{
			name:    "transport failure",
			setup:   func(responses map[string]string) error { return errors.New("dial fail") },
			call:    func(c *apiclient.Client) (any, error) { return c.Status() },
			wantErr: "dial fail",
		},
		{
			name:    "blank response error",
			setup:   func(responses map[string]string) error { return nil },
			call:    func(c *apiclient.Client) (any, error) { return c.Status() },
			wantErr: "empty response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			responses := map[string]string{}
			err := tt.setup(responses)
			c := testClient(responses, err)

			got, callErr := tt.call(c)
			if tt.wantErr != "" {
				assert.Error(t, callErr)
				assert.EqualError(t, callErr, tt.wantErr)
				return
			}
			assert.NoError(t, callErr)
			if tt.assertFunc != nil {
				tt.assertFunc(t, got)
			}
		})
	}
}
