// Package tcp is a minimal TCP server: an accept loop that hands every
// connection to a Handler and shuts down gracefully.
package tcp

import (
	"context"
	"net"
	"sync/atomic"
	"time"
)

// Handler serves one accepted connection. The server closes conn once
// ServeTCP returns.
type Handler interface {
	ServeTCP(ctx context.Context, conn net.Conn)
}

// HandlerFunc adapts a function to Handler
type HandlerFunc func(ctx context.Context, conn net.Conn)

// ServeTCP implements Handler.
func (f HandlerFunc) ServeTCP(ctx context.Context, conn net.Conn) {
	f(ctx, conn)
}

type atomicBool int32

func (b *atomicBool) isSet() bool { return atomic.LoadInt32((*int32)(b)) != 0 }
func (b *atomicBool) setTrue()    { atomic.StoreInt32((*int32)(b), 1) }

var shutdownPollInterval = 100 * time.Millisecond
