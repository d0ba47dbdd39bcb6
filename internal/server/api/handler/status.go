package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/duopad/duopad/apitypes"
	"github.com/duopad/duopad/internal/server/api"
	"github.com/duopad/duopad/merger"
)

// Status returns a handler that reports the merger lifecycle state.
// Error logging is centralized in the API server; this handler only returns errors.
func Status(e *merger.Engine) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		out, err := json.Marshal(apitypes.StatusResponse{
			Initialized:     e.Driver().Initialized(),
			Running:         e.Running(),
			Player1Assigned: e.SourceAssigned(1),
			Player2Assigned: e.SourceAssigned(2),
		})
		if err != nil {
			return api.ErrInternal(fmt.Sprintf("failed to marshal response: %v", err))
		}
		res.JSON = string(out)
		return nil
	}
}
