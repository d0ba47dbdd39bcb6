package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/duopad/duopad/apitypes"
	"github.com/duopad/duopad/internal/server/api"
	"github.com/duopad/duopad/merger"
	"github.com/duopad/duopad/output"
)

// OutputStart returns a handler that starts the merge cycle and the virtual
// pad. Starting while already running succeeds without side effects.
func OutputStart(e *merger.Engine) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		if err := e.Start(); err != nil {
			if errors.Is(err, output.ErrNotInitialized) {
				return api.ErrConflict("output bridge is not initialized")
			}
			return api.ErrInternal(fmt.Sprintf("failed to start output: %v", err))
		}
		out, err := json.Marshal(apitypes.OutputResponse{Running: e.Running()})
		if err != nil {
			return api.ErrInternal(fmt.Sprintf("failed to marshal response: %v", err))
		}
		res.JSON = string(out)
		return nil
	}
}

// OutputStop returns a handler that stops the merge cycle and releases the
// virtual pad. Stopping while already stopped succeeds without side effects.
func OutputStop(e *merger.Engine) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		e.Stop()
		out, err := json.Marshal(apitypes.OutputResponse{Running: e.Running()})
		if err != nil {
			return api.ErrInternal(fmt.Sprintf("failed to marshal response: %v", err))
		}
		res.JSON = string(out)
		return nil
	}
}
