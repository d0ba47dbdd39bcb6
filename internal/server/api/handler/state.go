package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/duopad/duopad/apitypes"
	"github.com/duopad/duopad/internal/server/api"
	"github.com/duopad/duopad/merger"
	"github.com/duopad/duopad/pad"
)

// State returns a handler that renders one snapshot as a read-only view keyed
// by canonical button and axis names. The {which} parameter selects "player1",
// "player2" or "merged".
func State(e *merger.Engine) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		which, ok := req.Params["which"]
		if !ok {
			return api.ErrBadRequest("missing which parameter")
		}

		var snap pad.Snapshot
		switch which {
		case "merged":
			snap = e.MergedState()
		case "player1", "player2":
			player, _ := strconv.Atoi(which[len("player"):])
			snap = e.PlayerState(player)
		default:
			return api.ErrBadRequest(fmt.Sprintf("unknown state: %s (want player1, player2 or merged)", which))
		}

		out, err := json.Marshal(snapshotResponse(snap))
		if err != nil {
			return api.ErrInternal(fmt.Sprintf("failed to marshal response: %v", err))
		}
		res.JSON = string(out)
		return nil
	}
}

func snapshotResponse(s pad.Snapshot) apitypes.StateResponse {
	resp := apitypes.StateResponse{
		Buttons: make(map[string]bool, pad.ButtonCount),
		Axes:    make(map[string]float64, pad.AxisCount),
	}
	for b := pad.Button(0); b < pad.ButtonCount; b++ {
		resp.Buttons[b.String()] = s.Buttons[b]
	}
	for a := pad.Axis(0); a < pad.AxisCount; a++ {
		resp.Axes[a.String()] = s.Axes[a]
	}
	return resp
}
