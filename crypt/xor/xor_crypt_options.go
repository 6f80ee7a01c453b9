package xor

import (
	"github.com/tutils/untwist"
	"github.com/tutils/untwist/crypt"
	"github.com/tutils/untwist/lcg"
)

// GeneratorNewer creates the keystream generator from the crypt seed
type GeneratorNewer func(seed int64) untwist.Generator

func newLCG(seed int64) untwist.Generator {
	return lcg.New(seed)
}

type xorEncoderOptions struct {
	generatorNewer GeneratorNewer
}

func newXorEncoderOptions(opts ...crypt.EncoderOption) *xorEncoderOptions {
	var opt xorEncoderOptions
	for _, o := range opts {
		o(&opt)
	}
	if opt.generatorNewer == nil {
		opt.generatorNewer = newLCG
	}
	return &opt
}

// WithEncoderGeneratorNewer sets the keystream generator of an encoder
func WithEncoderGeneratorNewer(newer GeneratorNewer) crypt.EncoderOption {
	return func(opts crypt.EncoderOptions) {
		if o, ok := opts.(*xorEncoderOptions); ok {
			o.generatorNewer = newer
		}
	}
}

type xorDecoderOptions struct {
	generatorNewer GeneratorNewer
}

func newXorDecoderOptions(opts ...crypt.DecoderOption) *xorDecoderOptions {
	var opt xorDecoderOptions
	for _, o := range opts {
		o(&opt)
	}
	if opt.generatorNewer == nil {
		opt.generatorNewer = newLCG
	}
	return &opt
}

// WithDecoderGeneratorNewer sets the keystream generator of a decoder
func WithDecoderGeneratorNewer(newer GeneratorNewer) crypt.DecoderOption {
	return func(opts crypt.DecoderOptions) {
		if o, ok := opts.(*xorDecoderOptions); ok {
			o.generatorNewer = newer
		}
	}
}
