package swfshape

import "log/slog"

// decodeConfig holds the resolved options for one Decode/DecodeMorph call.
type decodeConfig struct {
	logger               *slog.Logger
	strictUnknownRecords bool
}

func newDecodeConfig(opts []DecodeOption) *decodeConfig {
	cfg := &decodeConfig{
		logger:               Logger(),
		strictUnknownRecords: true,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// DecodeOption configures a single Decode/DecodeMorph call without
// altering the package-wide defaults set by SetLogger.
type DecodeOption func(*decodeConfig)

// WithLogger overrides the logger for a single decode call.
func WithLogger(l *slog.Logger) DecodeOption {
	return func(c *decodeConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithStrictUnknownRecords controls whether an unrecognized Record
// implementation is a hard decode error (the default) or is skipped.
// Skipping unknown records desyncs morph pairing, since it would
// misalign the end-record cursor against the start stream, so it
// should only be disabled for non-morph decoding against inputs from a
// newer SWF revision than this decoder understands.
func WithStrictUnknownRecords(strict bool) DecodeOption {
	return func(c *decodeConfig) {
		c.strictUnknownRecords = strict
	}
}
