package tcp

import (
	"context"
	"errors"
	"net"
	"runtime"
	"sync"
	"time"

	"github.com/tutils/untwist/logger"
)

type onceCloseListener struct {
	net.Listener
	once     sync.Once
	closeErr error
}

func (oc *onceCloseListener) Close() error {
	oc.once.Do(oc.close)
	return oc.closeErr
}

func (oc *onceCloseListener) close() { oc.closeErr = oc.Listener.Close() }

// Server over tcp
type Server struct {
	opts ServerOptions

	mu         sync.Mutex
	listeners  map[*net.Listener]struct{}
	activeConn map[net.Conn]struct{}

	inShutdown atomicBool // true when when server is in shutdown
	doneChan   chan struct{}

	// done once Shutdown or Close starts, cancels every handler context
	ctx    context.Context
	cancel context.CancelFunc
}

// ErrServerClosed means server has been closed
var ErrServerClosed = errors.New("untwist/tcp: Server closed")

// ListenAndServe listens on the configured address and serves it
func (srv *Server) ListenAndServe() error {
	if srv.shuttingDown() {
		return ErrServerClosed
	}

	l, err := net.Listen("tcp", srv.opts.addr)
	if err != nil {
		return err
	}
	return srv.Serve(l)
}

// Serve accepts connections on l until the server is closed
func (srv *Server) Serve(l net.Listener) error {
	logger.Log().Info().Str("addr", l.Addr().String()).Msg("tcp serving")

	origListener := l
	l = &onceCloseListener{Listener: l}
	defer l.Close()

	if !srv.trackListener(&l, true) {
		return ErrServerClosed
	}
	defer srv.trackListener(&l, false)

	ctx := context.Background()
	if srv.opts.baseContext != nil {
		ctx = srv.opts.baseContext(origListener)
		if ctx == nil {
			panic("BaseContext returned a nil context")
		}
	}

	var tempDelay time.Duration // how long to sleep on accept failure

	for {
		rw, err := l.Accept()
		if err != nil {
			select {
			case <-srv.getDoneChan():
				return ErrServerClosed
			default:
			}
			var ne net.Error
			if errors.As(err, &ne) && ne.Timeout() {
				if tempDelay == 0 {
					tempDelay = 5 * time.Millisecond
				} else {
					tempDelay *= 2
				}
				if max := 1 * time.Second; tempDelay > max {
					tempDelay = max
				}
				logger.Log().Warn().Err(err).Dur("retry", tempDelay).Msg("accept")
				time.Sleep(tempDelay)
				continue
			}
			return err
		}
		tempDelay = 0

		srv.setKeepAlive(rw)
		if !srv.trackConn(rw, true) {
			rw.Close()
			continue
		}
		go srv.serve(ctx, rw)
	}
}

func (srv *Server) setKeepAlive(c net.Conn) {
	tc, ok := c.(*net.TCPConn)
	if !ok || srv.opts.keepAlive <= 0 {
		return
	}
	tc.SetKeepAlive(true)
	tc.SetKeepAlivePeriod(srv.opts.keepAlive)
	if srv.opts.keepAliveCount > 0 {
		if err := SetKeepAliveCount(tc, srv.opts.keepAliveCount); err != nil {
			logger.Log().Debug().Err(err).Msg("keep-alive count")
		}
	}
}

func (srv *Server) serve(ctx context.Context, c net.Conn) {
	remote := c.RemoteAddr().String()
	defer func() {
		if err := recover(); err != nil {
			const size = 64 << 10
			buf := make([]byte, size)
			buf = buf[:runtime.Stack(buf, false)]
			logger.Log().Error().Str("remote", remote).Interface("panic", err).Bytes("stack", buf).Msg("serving")
		}
		c.Close()
		srv.trackConn(c, false)
	}()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(srv.ctx, cancel)
	defer stop()
	if h := srv.opts.handler; h != nil {
		h.ServeTCP(ctx, c)
	}
}

func (srv *Server) shuttingDown() bool {
	return srv.inShutdown.isSet()
}

// Close closes the listeners and every active connection
func (srv *Server) Close() error {
	srv.inShutdown.setTrue()
	srv.cancel()
	srv.mu.Lock()
	defer srv.mu.Unlock()
	srv.closeDoneChanLocked()
	err := srv.closeListenersLocked()
	for c := range srv.activeConn {
		c.Close()
		delete(srv.activeConn, c)
	}
	return err
}

// Shutdown closes the listeners, cancels the handler contexts and waits for
// active connections to finish or ctx to be done
func (srv *Server) Shutdown(ctx context.Context) error {
	srv.inShutdown.setTrue()
	srv.cancel()

	srv.mu.Lock()
	lnerr := srv.closeListenersLocked()
	srv.closeDoneChanLocked()
	srv.mu.Unlock()

	ticker := time.NewTicker(shutdownPollInterval)
	defer ticker.Stop()
	for {
		if srv.numConns() == 0 {
			return lnerr
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (srv *Server) closeListenersLocked() error {
	var err error
	for ln := range srv.listeners {
		if cerr := (*ln).Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

func (srv *Server) closeDoneChanLocked() {
	ch := srv.getDoneChanLocked()
	select {
	case <-ch:
		// Already closed.
	default:
		close(ch)
	}
}

func (srv *Server) getDoneChan() <-chan struct{} {
	srv.mu.Lock()
	defer srv.mu.Unlock()
	return srv.getDoneChanLocked()
}

func (srv *Server) getDoneChanLocked() chan struct{} {
	if srv.doneChan == nil {
		srv.doneChan = make(chan struct{})
	}
	return srv.doneChan
}

func (srv *Server) numConns() int {
	srv.mu.Lock()
	defer srv.mu.Unlock()
	return len(srv.activeConn)
}

func (srv *Server) trackListener(ln *net.Listener, add bool) bool {
	srv.mu.Lock()
	defer srv.mu.Unlock()
	if srv.listeners == nil {
		srv.listeners = make(map[*net.Listener]struct{})
	}
	if add {
		if srv.shuttingDown() {
			return false
		}
		srv.listeners[ln] = struct{}{}
	} else {
		delete(srv.listeners, ln)
	}
	return true
}

func (srv *Server) trackConn(c net.Conn, add bool) bool {
	srv.mu.Lock()
	defer srv.mu.Unlock()
	if srv.activeConn == nil {
		srv.activeConn = make(map[net.Conn]struct{})
	}
	if add {
		if srv.shuttingDown() {
			return false
		}
		srv.activeConn[c] = struct{}{}
	} else {
		delete(srv.activeConn, c)
	}
	return true
}

// NewServer create a new tcp server
func NewServer(opts ...ServerOption) *Server {
	opt := newServerOptions(opts...)

	srv := &Server{
		opts: *opt,
	}
	srv.ctx, srv.cancel = context.WithCancel(context.Background())
	return srv
}
