package server

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/tutils/untwist/family"
	"github.com/tutils/untwist/logger"
)

const maxRequestLine = 1 << 10

// ServeTCP implements tcp.Handler with a line protocol: the client sends
// one query line in the websocket query syntax, the server answers with one
// value per line and closes. Failures are reported as a final "ERR" line.
func (s *Server) ServeTCP(ctx context.Context, conn net.Conn) {
	w := bufio.NewWriter(conn)
	defer w.Flush()

	fail := func(err error) {
		fmt.Fprintf(w, "ERR %s\n", err)
	}

	conn.SetReadDeadline(time.Now().Add(readTimeout))
	r := bufio.NewReaderSize(conn, maxRequestLine)
	line, err := r.ReadSlice('\n')
	if err != nil {
		fail(fmt.Errorf("read request: %w", err))
		return
	}
	conn.SetReadDeadline(time.Time{})

	q, err := url.ParseQuery(strings.TrimSpace(string(line)))
	if err != nil {
		fail(err)
		return
	}
	req, err := s.parseRequest(q)
	if err != nil {
		fail(err)
		return
	}
	g, err := family.New(req.algo, req.seed)
	if err != nil {
		fail(err)
		return
	}
	values, err := family.Text(g, req.seq)
	if err != nil {
		fail(err)
		return
	}

	log := logger.Log().With().Str("remote", conn.RemoteAddr().String()).Str("algo", req.algo).
		Int64("seed", req.seed).Str("kind", req.seq.Kind).Int64("count", req.seq.Count).Logger()
	log.Debug().Msg("line stream opened")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(s.ctx, cancel)
	defer stop()

	sent := 0
	for v := range values.All() {
		if ctx.Err() != nil {
			log.Debug().Int("sent", sent).Msg("line stream cancelled")
			return
		}
		w.WriteString(v)
		if err := w.WriteByte('\n'); err != nil {
			log.Warn().Err(err).Int("sent", sent).Msg("line stream aborted")
			return
		}
		sent++
	}
	if err := values.Err(); err != nil {
		fail(err)
	}
	log.Debug().Int("sent", sent).Msg("line stream closed")
}
