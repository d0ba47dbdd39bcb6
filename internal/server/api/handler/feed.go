package handler

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"strconv"

	"github.com/duopad/duopad/internal/server/api"
	"github.com/duopad/duopad/merger"
	"github.com/duopad/duopad/pad"
)

// Feed returns a stream handler that attaches a player input feed. The client
// keeps the connection open and pushes fixed-size binary snapshot frames; each
// frame replaces that player's held state. Closing the connection unassigns
// the player.
func Feed(e *merger.Engine) api.StreamHandlerFunc {
	return func(conn net.Conn, req *api.Request, logger *slog.Logger) error {
		playerStr, ok := req.Params["player"]
		if !ok {
			return api.ErrBadRequest("missing player parameter")
		}
		player, err := strconv.Atoi(playerStr)
		if err != nil || player < 1 || player > merger.Players {
			return api.ErrBadRequest(fmt.Sprintf("invalid player: %s (want 1..%d)", playerStr, merger.Players))
		}
		if e.SourceAssigned(player) {
			return api.ErrConflict(fmt.Sprintf("player %d already has a feed", player))
		}

		src := merger.NewStreamSource()
		if err := e.SetSource(player, src); err != nil {
			return api.ErrInternal(err.Error())
		}
		defer func() { _ = e.SetSource(player, nil) }()

		frame := make([]byte, pad.WireSize)
		for {
			if _, err := io.ReadFull(conn, frame); err != nil {
				if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, net.ErrClosed) {
					return nil
				}
				return fmt.Errorf("read feed frame: %w", err)
			}
			var snap pad.Snapshot
			if err := snap.UnmarshalBinary(frame); err != nil {
				return api.ErrBadRequest(fmt.Sprintf("invalid feed frame: %v", err))
			}
			src.Update(snap)
		}
	}
}
