// Copyright (c) 2025, Kamaran Layne <kamaran@layne.dev>
// See LICENSE for licensing information

package bridge

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/kamaranl/tiptapri/internal/logtarget"
	"github.com/sirupsen/logrus"
)

// Path is the websocket endpoint served by Server.
const Path = "/bridge"

const writeTimeout = 5 * time.Second

// Server exposes the command registry to web frontends over a websocket on a
// loopback address. Each connection is a session: requests are answered in
// the order they arrive, and in debug builds the embedded-view console is
// streamed to the client as Log frames.
type Server struct {
	invoker  Invoker
	console  *logtarget.ConsoleHook
	log      logrus.FieldLogger
	upgrader websocket.Upgrader

	listener net.Listener
	http     *http.Server

	mu     sync.Mutex
	conns  map[*websocket.Conn]struct{}
	closed bool
	wg    sync.WaitGroup
}

// NewServer creates a Server invoking commands through inv. console may be nil.
func NewServer(inv Invoker, console *logtarget.ConsoleHook, log logrus.FieldLogger) *Server {
	s := &Server{
		invoker: inv,
		console: console,
		log:     log.WithField("component", "bridge"),
		conns:   make(map[*websocket.Conn]struct{}),
	}
	s.upgrader = websocket.Upgrader{CheckOrigin: localOrigin}
	return s
}

// Handler returns the HTTP handler serving Path.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(Path, s.serveWS)
	return mux
}

// Listen binds addr. Call Serve afterwards.
func (s *Server) Listen(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	s.listener = ln
	s.http = &http.Server{Handler: s.Handler(), ReadHeaderTimeout: 10 * time.Second}
	return nil
}

// Addr is the bound address, or nil before Listen.
func (s *Server) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Serve accepts connections until Close. It returns nil after a clean Close.
func (s *Server) Serve() error {
	if s.http == nil {
		return errors.New("bridge server is not listening")
	}
	s.log.WithField("addr", s.listener.Addr().String()).Info("Command bridge listening")
	if err := s.http.Serve(s.listener); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Close stops accepting connections, closes open sessions and waits for them.
func (s *Server) Close() error {
	var err error
	if s.http != nil {
		err = s.http.Close()
	}

	s.mu.Lock()
	s.closed = true
	for c := range s.conns {
		_ = c.Close()
	}
	s.mu.Unlock()

	s.wg.Wait()
	return err
}

// serveWS upgrades r to a websocket and runs a session on it until the peer
// disconnects or the server closes. Upgrades that finish after Close are
// refused so no session outlives Close.
func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.WithError(err).Warn("Websocket upgrade failed")
		return
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server closed"),
			time.Now().Add(writeTimeout))
		_ = conn.Close()
		return
	}
	s.conns[conn] = struct{}{}
	s.wg.Add(1)
	s.mu.Unlock()

	sess := &session{id: uuid.NewString(), conn: conn, server: s}
	sess.run()
}

type session struct {
	id     string
	conn   *websocket.Conn
	server *Server
	wmu    sync.Mutex
}

func (c *session) run() {
	s := c.server
	log := s.log.WithField("session", c.id)
	log.Debug("Frontend connected")

	defer func() {
		s.mu.Lock()
		delete(s.conns, c.conn)
		s.mu.Unlock()
		_ = c.conn.Close()
		log.Debug("Frontend disconnected")
		s.wg.Done()
	}()

	if s.console != nil {
		records, cancel := s.console.Subscribe()
		defer cancel()
		go func() {
			for rec := range records {
				if err := c.write(Response{Type: TypeLog, Record: &rec}); err != nil {
					return
				}
			}
		}()
	}

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.WithError(err).Debug("Websocket read ended")
			}
			return
		}

		var req Request
		if err := json.Unmarshal(data, &req); err != nil {
			_ = c.write(errorFrame("", &Error{Code: CodeParseError, Message: "parse error: " + err.Error()}))
			continue
		}
		if req.ID == "" {
			req.ID = uuid.NewString()
		}

		result, err := s.invoker.Call(req.Cmd, req.Args)
		if err != nil {
			log.WithFields(logrus.Fields{"cmd": req.Cmd, "request": req.ID}).WithError(err).Warn("Command failed")
			_ = c.write(errorFrame(req.ID, err))
			continue
		}
		if err := c.write(resultFrame(req.ID, result)); err != nil {
			return
		}
	}
}

func (c *session) write(resp Response) error {
	c.wmu.Lock()
	defer c.wmu.Unlock()

	_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return c.conn.WriteJSON(resp)
}

// localOrigin accepts requests without an Origin header (native clients) and
// from pages served on the loopback interface.
func localOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	switch u.Hostname() {
	case "localhost", "127.0.0.1", "::1":
		return true
	default:
		return false
	}
}
