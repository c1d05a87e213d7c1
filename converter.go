package i18ndate

import (
	"errors"
	"fmt"
)

type (
	//Converter converts values between storage and display representation
	Converter struct {
		formats *Formats
	}

	//ConversionError represents display value that can not be parsed on the way to storage
	ConversionError struct {
		Field   string
		Value   string
		Pattern string
		Kind    Kind
		Err     error
	}
)

func (e *ConversionError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("failed to convert %v field %v value %q with pattern %q: %v", e.Kind, e.Field, e.Value, e.Pattern, e.Err)
	}
	return fmt.Sprintf("failed to convert %v value %q with pattern %q: %v", e.Kind, e.Value, e.Pattern, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// IsConversionError returns true if err is or wraps *ConversionError
func IsConversionError(err error) bool {
	var conversionErr *ConversionError
	return errors.As(err, &conversionErr)
}

// Formats returns converter formats
func (c *Converter) Formats() *Formats {
	return c.formats
}

// ToStorage converts display value to storage value, empty value returns nil,
// unparsable value returns *ConversionError
func (c *Converter) ToStorage(value string, kind Kind) (*string, error) {
	if len(value) == 0 {
		return nil, nil
	}
	display := c.formats.Display(kind)
	ts, err := display.Parse(value)
	if err != nil {
		return nil, &ConversionError{Value: value, Pattern: display.ParsePattern, Kind: kind, Err: err}
	}
	ret := c.formats.Storage(kind).Format(ts)
	return &ret, nil
}

// ToDisplay converts storage value to display value, empty or unparsable value (including zero date) returns nil
func (c *Converter) ToDisplay(value string, kind Kind) *string {
	ret, _ := c.toDisplay(value, kind)
	return ret
}

func (c *Converter) toDisplay(value string, kind Kind) (*string, error) {
	if len(value) == 0 {
		return nil, nil
	}
	ts, err := c.formats.Storage(kind).Parse(value)
	if err != nil {
		return nil, err
	}
	ret := c.formats.Display(kind).Format(ts)
	return &ret, nil
}

// NewConverter creates a converter
func NewConverter(formats *Formats) *Converter {
	return &Converter{formats: formats}
}
