package server

// Options is server options
type Options struct {
	addr     string
	path     string
	maxCount int64
}

// Option is option setter for server
type Option func(*Options)

// default server options
var (
	DefaultListenAddress       = "0.0.0.0:8080"
	DefaultPath                = "/stream"
	DefaultMaxCount      int64 = 1 << 20
)

func newOptions(opts ...Option) *Options {
	opt := &Options{}
	for _, o := range opts {
		o(opt)
	}

	if opt.addr == "" {
		opt.addr = DefaultListenAddress
	}
	if opt.path == "" {
		opt.path = DefaultPath
	}
	if opt.maxCount <= 0 {
		opt.maxCount = DefaultMaxCount
	}

	return opt
}

// WithListenAddress sets server listen address opt
func WithListenAddress(addr string) Option {
	return func(opts *Options) {
		opts.addr = addr
	}
}

// WithPath sets the websocket endpoint path opt
func WithPath(path string) Option {
	return func(opts *Options) {
		opts.path = path
	}
}

// WithMaxCount caps the length of a requested sequence
func WithMaxCount(n int64) Option {
	return func(opts *Options) {
		opts.maxCount = n
	}
}
