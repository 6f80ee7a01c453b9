// Package server streams generated sequences over websocket connections,
// one text message per value.
package server

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gorilla/websocket"
	"github.com/tutils/untwist/family"
	"github.com/tutils/untwist/logger"
)

var (
	upgrader = websocket.Upgrader{
		ReadBufferSize:  4 << 10,
		WriteBufferSize: 4 << 10,
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}
)

// Server serves sequences at a single websocket endpoint. The query selects
// the sequence: algo, seed, kind, count and optionally origin and bound.
type Server struct {
	opts Options
	srv  *http.Server

	// done when Shutdown starts, ends the streams in flight
	ctx    context.Context
	cancel context.CancelFunc
}

// NewServer create a new Server
func NewServer(opts ...Option) *Server {
	opt := newOptions(opts...)

	s := &Server{
		opts: *opt,
	}
	s.ctx, s.cancel = context.WithCancel(context.Background())

	mux := http.NewServeMux()
	mux.Handle(opt.path, s)
	s.srv = &http.Server{
		Addr:    opt.addr,
		Handler: mux,
	}

	return s
}

// Handler returns the routing handler of the server
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

func (s *Server) ListenAndServe() error {
	logger.Log().Info().Str("addr", s.opts.addr).Str("path", s.opts.path).Msg("serving sequences")
	return s.srv.ListenAndServe()
}

// Shutdown ends the streams in flight, websocket and line protocol alike,
// then shuts the http server down.
func (s *Server) Shutdown(ctx context.Context) error {
	s.cancel()
	return s.srv.Shutdown(ctx)
}

type request struct {
	algo string
	seed int64
	seq family.Sequence
}

func (s *Server) parseRequest(q url.Values) (*request, error) {
	req := &request{
		algo: q.Get("algo"),
		seq: family.Sequence{Kind: q.Get("kind"), Count: 10},
	}
	if req.algo == "" {
		req.algo = family.LCG
	}
	if req.seq.Kind == "" {
		req.seq.Kind = family.Int
	}

	var err error
	if v := q.Get("seed"); v != "" {
		if req.seed, err = strconv.ParseInt(v, 0, 64); err != nil {
			return nil, fmt.Errorf("invalid seed %q", v)
		}
	}
	if v := q.Get("count"); v != "" {
		if req.seq.Count, err = strconv.ParseInt(v, 10, 64); err != nil || req.seq.Count < 0 {
			return nil, fmt.Errorf("invalid count %q", v)
		}
	}
	if req.seq.Count > s.opts.maxCount {
		return nil, fmt.Errorf("count %d exceeds limit %d", req.seq.Count, s.opts.maxCount)
	}

	origin, bound := q.Get("origin"), q.Get("bound")
	if origin != "" || bound != "" {
		req.seq.Ranged = true
		if origin != "" {
			if req.seq.Origin, err = strconv.ParseInt(origin, 0, 64); err != nil {
				return nil, fmt.Errorf("invalid origin %q", origin)
			}
		}
		if req.seq.Bound, err = strconv.ParseInt(bound, 0, 64); err != nil {
			return nil, fmt.Errorf("invalid bound %q", bound)
		}
	}
	return req, nil
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRequest(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	g, err := family.New(req.algo, req.seed)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	values, err := family.Text(g, req.seq)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	log := logger.Log().With().Str("remote", r.RemoteAddr).Str("algo", req.algo).
		Int64("seed", req.seed).Str("kind", req.seq.Kind).Int64("count", req.seq.Count).Logger()
	log.Debug().Msg("stream opened")

	// read side setup happens before the reader goroutine owns the conn
	conn.SetReadDeadline(time.Now().Add(readTimeout))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(readTimeout))
		return nil
	})

	done := make(chan struct{})
	defer close(done)
	go startPing(conn, done)

	// the client only sends control frames; a read error means it is gone
	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	stop := context.AfterFunc(s.ctx, cancel)
	defer stop()
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	sent := 0
	for v := range values.All() {
		if ctx.Err() != nil {
			break
		}
		conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteMessage(websocket.TextMessage, []byte(v)); err != nil {
			log.Warn().Err(err).Int("sent", sent).Msg("stream aborted")
			return
		}
		sent++
	}

	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	switch {
	case s.ctx.Err() != nil:
		msg = websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down")
	case ctx.Err() != nil:
		// client gone
		return
	case values.Err() != nil:
		msg = websocket.FormatCloseMessage(websocket.CloseUnsupportedData, values.Err().Error())
	}
	conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeTimeout))
	log.Debug().Int("sent", sent).Msg("stream closed")
}

const readTimeout = time.Second * 15
const pingPeriod = time.Second * 10
const writeTimeout = time.Second

func startPing(conn *websocket.Conn, done chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			conn.WriteControl(websocket.PingMessage, []byte{}, time.Now().Add(writeTimeout))
		case <-done:
			return
		}
	}
}
