package archive

import (
	"github.com/hupe1980/booklist"
	"github.com/hupe1980/booklist/codec"
)

type options struct {
	compression Compression
	codec       codec.Codec
	listOpts    []booklist.Option
}

// Option configures Save and Load behavior.
type Option func(*options)

// WithCompression selects the payload compression. The default is
// CompressionNone; archives record what was actually stored, so Load needs no
// matching option.
func WithCompression(c Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithCodec configures the codec used for the archive manifest.
//
// All built-in codecs emit plain JSON, so archives written with one codec are
// readable with any other. If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithListOptions passes collection options through to the List that Load
// constructs. They are applied after the manifest's recorded capacity, so an
// explicit WithCapacity here wins.
func WithListOptions(opts ...booklist.Option) Option {
	return func(o *options) {
		o.listOpts = append(o.listOpts, opts...)
	}
}

func defaultOptions() options {
	return options{
		compression: CompressionNone,
		codec:       codec.Default,
	}
}
