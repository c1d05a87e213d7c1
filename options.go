package i18ndate

import "log/slog"

type (
	options struct {
		formats          *Formats
		formatOptions    []FormatOption
		classifier       *Classifier
		logger           *slog.Logger
		captureOriginals bool
		err              error
	}

	//Option represents service option
	Option func(o *options)

	//Options represents service options
	Options []Option
)

// apply applies options
func (o Options) apply(opts *options) {
	for _, opt := range o {
		opt(opts)
	}
}

func newOptions(opts []Option) *options {
	ret := &options{captureOriginals: true}
	Options(opts).apply(ret)
	if ret.classifier == nil {
		ret.classifier = NewClassifier()
	}
	if ret.logger == nil {
		ret.logger = slog.New(slog.DiscardHandler)
	}
	return ret
}

// WithFormats returns option with supplied formats, format options are ignored when formats are supplied
func WithFormats(formats *Formats) Option {
	return func(o *options) {
		o.formats = formats
	}
}

// WithFormatOptions returns option with format options used to build service formats
func WithFormatOptions(opts ...FormatOption) Option {
	return func(o *options) {
		o.formatOptions = append(o.formatOptions, opts...)
	}
}

// WithConfig returns option with format options taken from config
func WithConfig(config *Config) Option {
	return func(o *options) {
		if config == nil {
			return
		}
		formatOptions, err := config.Options()
		if err != nil {
			o.err = err
			return
		}
		o.formatOptions = append(o.formatOptions, formatOptions...)
	}
}

// WithClassifier returns option with shared classifier
func WithClassifier(classifier *Classifier) Option {
	return func(o *options) {
		o.classifier = classifier
	}
}

// WithLogger returns option with logger
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithCaptureOriginals returns option controlling whether storage values are stashed in OriginalHolder records
// before display conversion, enabled by default
func WithCaptureOriginals(flag bool) Option {
	return func(o *options) {
		o.captureOriginals = flag
	}
}
