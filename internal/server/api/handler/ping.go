package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/duopad/duopad/apitypes"
	"github.com/duopad/duopad/internal/server/api"
	"github.com/duopad/duopad/internal/version"
)

// Ping returns a handler that reports server identity and version.
func Ping() api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		out, err := json.Marshal(apitypes.PingResponse{Server: "DuoPad", Version: version.Get()})
		if err != nil {
			return api.ErrInternal(fmt.Sprintf("failed to marshal response: %v", err))
		}
		res.JSON = string(out)
		return nil
	}
}
