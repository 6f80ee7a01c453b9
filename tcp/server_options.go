package tcp

import (
	"context"
	"net"
	"time"
)

// ServerOptions is tcp server options
type ServerOptions struct {
	addr    string
	handler Handler

	keepAlive      time.Duration
	keepAliveCount int
	baseContext    func(net.Listener) context.Context
}

// ServerOption is option setter for tcp server
type ServerOption func(opts *ServerOptions)

// default server options
var (
	DefaultListenAddress = "0.0.0.0:8081"
)

func newServerOptions(opts ...ServerOption) *ServerOptions {
	opt := &ServerOptions{}
	for _, o := range opts {
		o(opt)
	}

	if opt.addr == "" {
		opt.addr = DefaultListenAddress
	}

	return opt
}

func WithListenAddress(addr string) ServerOption {
	return func(opts *ServerOptions) {
		opts.addr = addr
	}
}

func WithHandler(h Handler) ServerOption {
	return func(opts *ServerOptions) {
		opts.handler = h
	}
}

// WithKeepAlive enables keep-alive probes on accepted connections,
// count <= 0 leaves the system probe count
func WithKeepAlive(period time.Duration, count int) ServerOption {
	return func(opts *ServerOptions) {
		opts.keepAlive = period
		opts.keepAliveCount = count
	}
}

func WithBaseContextFunc(f func(net.Listener) context.Context) ServerOption {
	return func(opts *ServerOptions) {
		opts.baseContext = f
	}
}
