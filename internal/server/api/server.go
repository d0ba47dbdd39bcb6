package api

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"regexp"
	"strings"

	"github.com/duopad/duopad/internal/server/api/auth"
	"github.com/duopad/duopad/merger"
)

// Server implements a small TCP API for controlling the merger engine.
type Server struct {
	engine  *merger.Engine
	addr    string
	ln      net.Listener
	logger  *slog.Logger
	router  *Router
	config  ServerConfig
	authKey []byte
}

// New creates a new ApiServer bound to a merger.Engine instance.
func New(e *merger.Engine, addr string, config ServerConfig, logger *slog.Logger) *Server {
	a := &Server{
		engine: e,
		addr:   addr,
		logger: logger,
		config: config,
	}
	a.router = NewRouter()
	return a
}

// Router returns the router used by the API server so callers can register handlers.
func (a *Server) Router() *Router { return a.router }

// Engine returns the underlying merger engine.
func (a *Server) Engine() *merger.Engine { return a.engine }

// Config returns the server configuration.
func (a *Server) Config() ServerConfig { return a.config }

// Addr returns the address the server is listening on. Empty before Start.
func (a *Server) Addr() string {
	if a.ln == nil {
		return ""
	}
	return a.ln.Addr().String()
}

// Start listens on the configured address and serves incoming API commands.
func (a *Server) Start() error {
	if a.config.Password != "" {
		// Stretch the password once; the per-connection handshake only does
		// cheap HMAC and session key derivation.
		key, err := auth.DeriveKey(a.config.Password)
		if err != nil {
			return fmt.Errorf("derive api key: %w", err)
		}
		a.authKey = key
	}
	ln, err := net.Listen("tcp", a.addr)
	if err != nil {
		return err
	}
	a.ln = ln
	a.logger.Info("API listening", "addr", ln.Addr().String())
	go a.serve()
	return nil
}

// Close stops the API server.
func (a *Server) Close() {
	if a.ln != nil {
		_ = a.ln.Close()
	}
}

func (a *Server) serve() {
	for {
		c, err := a.ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) || strings.Contains(strings.ToLower(err.Error()), "use of closed network connection") {
				a.logger.Info("API server stopped")
				return
			}
			a.logger.Info("API accept error", "error", err)
			return
		}
		go a.handleConn(c)
	}
}

func (a *Server) writeError(w io.Writer, err error) {
	apiErr := WrapError(err)
	problemJSON, _ := json.Marshal(apiErr)
	fmt.Fprintf(w, "%s\n", string(problemJSON))
}

func (a *Server) writeOK(w io.Writer, rest string) {
	if rest == "" {
		fmt.Fprintln(w)
	} else {
		fmt.Fprintf(w, "%s\n", rest)
	}
}

func (a *Server) handleConn(conn net.Conn) {
	defer conn.Close()

	connCtx, connCancel := context.WithCancel(context.Background())
	defer connCancel()

	connLogger := a.logger.With("remote", conn.RemoteAddr().String())
	r := bufio.NewReader(conn)
	var w io.Writer = conn

	if a.authKey != nil {
		isHandshake, err := auth.IsAuthHandshake(r)
		if err != nil {
			connLogger.Error("read handshake", "error", err)
			return
		}
		if !isHandshake {
			connLogger.Error("api unauthenticated connection rejected")
			a.writeError(w, ErrUnauthorized("authentication required"))
			return
		}
		clientNonce, serverNonce, err := auth.HandleAuthHandshake(r, conn, a.authKey, false)
		if err != nil {
			connLogger.Error("api handshake failed", "error", err)
			a.writeError(w, err)
			return
		}
		sessionKey := auth.DeriveSessionKey(a.authKey, serverNonce, clientNonce)
		sconn, err := auth.WrapConn(conn, sessionKey)
		if err != nil {
			connLogger.Error("api session setup failed", "error", err)
			return
		}
		conn = sconn
		r = bufio.NewReader(sconn)
		w = sconn
	}

	// Read until null terminator
	reqData, err := r.ReadString('\x00')
	if err != nil {
		if err == io.EOF {
			connLogger.Error("api incomplete request (no null terminator)")
		} else {
			connLogger.Error("read api data", "error", err)
		}
		return
	}
	// Remove null terminator
	reqData = strings.TrimSuffix(reqData, "\x00")

	if reqData == "" {
		connLogger.Error("api empty command")
		a.writeError(w, ErrBadRequest("empty request"))
		return
	}

	// Split on first whitespace character using regex \s
	wsRegex := regexp.MustCompile(`\s`)
	loc := wsRegex.FindStringIndex(reqData)

	var path, payload string
	if loc != nil {
		path = reqData[:loc[0]]
		payload = reqData[loc[1]:]
	} else {
		path = reqData
		payload = ""
	}

	if path == "" {
		connLogger.Error("api empty path")
		a.writeError(w, ErrBadRequest("empty path"))
		return
	}

	path = strings.ToLower(path)
	connLogger.Info("api cmd", "path", path)

	if h, params := a.router.Match(path); h != nil {
		req := &Request{Ctx: connCtx, Params: params, Payload: payload}
		res := &Response{}
		if err := h(req, res, connLogger); err != nil {
			connLogger.Error("api handler error", "path", path, "error", err)
			a.writeError(w, err)
			return
		}
		connLogger.Debug("api handler success", "path", path)
		a.writeOK(w, res.JSON)
		return
	} else if sh, params := a.router.MatchStream(path); sh != nil {
		connLogger.Info("api stream begin", "path", path)
		req := &Request{Ctx: connCtx, Params: params, Payload: payload}
		// Stream handler takes ownership of connection. Frames the client sent
		// right behind the request line may already sit in the buffered
		// reader, so hand over a conn that drains it first.
		if err := sh(&streamConn{Conn: conn, r: r}, req, connLogger); err != nil {
			connLogger.Error("api stream handler error", "path", path, "error", err)
			a.writeError(w, err)
		}
		connLogger.Info("api stream end", "path", path)
		return
	}
	connLogger.Error("api unknown path", "path", path)
	a.writeError(w, ErrNotFound(fmt.Sprintf("unknown path: %s", path)))
}

type streamConn struct {
	net.Conn
	r *bufio.Reader
}

func (c *streamConn) Read(p []byte) (int, error) { return c.r.Read(p) }
