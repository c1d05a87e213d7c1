package i18ndate

import (
	"fmt"
	ftime "github.com/viant/i18ndate/format/time"
	"time"
)

const (
	//DefaultStorageDatePattern default storage date pattern
	DefaultStorageDatePattern = "YYYY-MM-DD"
	//DefaultStorageDateTimePattern default storage datetime pattern
	DefaultStorageDateTimePattern = "YYYY-MM-DD HH:MM:SS"
)

type (
	//FormatSpec represents parse and output pattern pair
	FormatSpec struct {
		ParsePattern  string
		OutputPattern string
		parseLayout   string
		outputLayout  string
		//patterns the cached layouts were computed from
		layoutParse  string
		layoutOutput string
	}

	//Formats represents storage and display formats for date and datetime kinds
	Formats struct {
		StorageDate     FormatSpec
		StorageDateTime FormatSpec
		DisplayDate     FormatSpec
		DisplayDateTime FormatSpec
	}

	//FormatOption represents formats option
	FormatOption func(f *Formats)
)

// NewFormatSpec creates a format spec
func NewFormatSpec(parsePattern, outputPattern string) FormatSpec {
	ret := FormatSpec{ParsePattern: parsePattern, OutputPattern: outputPattern}
	ret.init()
	return ret
}

func (s *FormatSpec) init() {
	s.parseLayout, s.layoutParse = ftime.Layout(s.ParsePattern), s.ParsePattern
	s.outputLayout, s.layoutOutput = ftime.Layout(s.OutputPattern), s.OutputPattern
}

// ParseLayout returns go time layout for parse pattern,
// layout is derived from ParsePattern when the spec was not built with NewFormatSpec or the pattern changed since
func (s *FormatSpec) ParseLayout() string {
	if s.layoutParse != s.ParsePattern || s.parseLayout == "" {
		return ftime.Layout(s.ParsePattern)
	}
	return s.parseLayout
}

// OutputLayout returns go time layout for output pattern
func (s *FormatSpec) OutputLayout() string {
	if s.layoutOutput != s.OutputPattern || s.outputLayout == "" {
		return ftime.Layout(s.OutputPattern)
	}
	return s.outputLayout
}

// Parse parses value with parse pattern
func (s *FormatSpec) Parse(value string) (time.Time, error) {
	return ftime.Parse(s.ParseLayout(), value)
}

// Format formats ts with output pattern
func (s *FormatSpec) Format(ts time.Time) string {
	return ts.Format(s.OutputLayout())
}

func (s *FormatSpec) validate(name string) error {
	if s.ParsePattern == "" {
		return fmt.Errorf("%v parse pattern was empty", name)
	}
	if s.OutputPattern == "" {
		return fmt.Errorf("%v output pattern was empty", name)
	}
	s.init()
	return nil
}

// Storage returns storage format spec for supplied kind
func (f *Formats) Storage(kind Kind) *FormatSpec {
	if kind == DateTime {
		return &f.StorageDateTime
	}
	return &f.StorageDate
}

// Display returns display format spec for supplied kind
func (f *Formats) Display(kind Kind) *FormatSpec {
	if kind == DateTime {
		return &f.DisplayDateTime
	}
	return &f.DisplayDate
}

// WithDisplay returns formats copy with display pattern replaced for supplied kind
func (f *Formats) WithDisplay(kind Kind, pattern string) *Formats {
	ret := *f
	spec := NewFormatSpec(pattern, pattern)
	if kind == DateTime {
		ret.DisplayDateTime = spec
	} else {
		ret.DisplayDate = spec
	}
	return &ret
}

// Validate checks that all patterns are defined and computes their go layouts
func (f *Formats) Validate() error {
	if err := f.StorageDate.validate("storage date"); err != nil {
		return err
	}
	if err := f.StorageDateTime.validate("storage datetime"); err != nil {
		return err
	}
	if err := f.DisplayDate.validate("display date"); err != nil {
		return err
	}
	return f.DisplayDateTime.validate("display datetime")
}

// NewFormats creates formats, storage defaults to YYYY-MM-DD and YYYY-MM-DD HH:MM:SS, display defaults to en-US patterns
func NewFormats(opts ...FormatOption) (*Formats, error) {
	display := defaultLocale
	ret := &Formats{
		StorageDate:     NewFormatSpec(DefaultStorageDatePattern, DefaultStorageDatePattern),
		StorageDateTime: NewFormatSpec(DefaultStorageDateTimePattern, DefaultStorageDateTimePattern),
		DisplayDate:     NewFormatSpec(display.date, display.date),
		DisplayDateTime: NewFormatSpec(display.dateTime, display.dateTime),
	}
	for _, opt := range opts {
		opt(ret)
	}
	if err := ret.Validate(); err != nil {
		return nil, fmt.Errorf("invalid formats: %w", err)
	}
	return ret, nil
}

// WithStorageDate returns option overriding storage date patterns
func WithStorageDate(parsePattern, outputPattern string) FormatOption {
	return func(f *Formats) {
		f.StorageDate = NewFormatSpec(parsePattern, outputPattern)
	}
}

// WithStorageDateTime returns option overriding storage datetime patterns
func WithStorageDateTime(parsePattern, outputPattern string) FormatOption {
	return func(f *Formats) {
		f.StorageDateTime = NewFormatSpec(parsePattern, outputPattern)
	}
}

// WithDisplayDate returns option overriding display date patterns
func WithDisplayDate(parsePattern, outputPattern string) FormatOption {
	return func(f *Formats) {
		f.DisplayDate = NewFormatSpec(parsePattern, outputPattern)
	}
}

// WithDisplayDateTime returns option overriding display datetime patterns
func WithDisplayDateTime(parsePattern, outputPattern string) FormatOption {
	return func(f *Formats) {
		f.DisplayDateTime = NewFormatSpec(parsePattern, outputPattern)
	}
}
