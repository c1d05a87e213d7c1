package i18ndate

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"sync"
)

type (
	//Hooks represents record lifecycle observer invoked by host persistence layer
	Hooks interface {
		//OnBeforePersist converts display values to storage values, error aborts persist
		OnBeforePersist(record Record) error
		//OnAfterPersist converts storage values back to display values
		OnAfterPersist(record Record)
		//OnAfterLoad converts loaded storage values to display values
		OnAfterLoad(record Record)
	}

	//Service converts record date and datetime fields between storage and display representation
	Service struct {
		converter        *Converter
		classifier       *Classifier
		logger           *slog.Logger
		captureOriginals bool
		converters       sync.Map
		structTypes      sync.Map
	}

	fieldUpdate struct {
		name  string
		value *string
	}
)

// Converter returns service converter
func (s *Service) Converter() *Converter {
	return s.converter
}

// Classifier returns service classifier
func (s *Service) Classifier() *Classifier {
	return s.classifier
}

// Classify returns record field map
func (s *Service) Classify(record Record) *FieldMap {
	return s.classifier.Classify(record.TypeID(), record.Columns)
}

func (s *Service) converterFor(fieldMap *FieldMap, name string, kind Kind) *Converter {
	pattern := fieldMap.DisplayPattern(name)
	if pattern == "" {
		return s.converter
	}
	key := kind.String() + ":" + pattern
	if converter, ok := s.converters.Load(key); ok {
		return converter.(*Converter)
	}
	converter, _ := s.converters.LoadOrStore(key, NewConverter(s.converter.formats.WithDisplay(kind, pattern)))
	return converter.(*Converter)
}

// OnBeforePersist converts every date and datetime field to storage value,
// no field is modified if any of them fails to convert
func (s *Service) OnBeforePersist(record Record) error {
	fieldMap := s.Classify(record)
	updates := make([]fieldUpdate, 0, fieldMap.Len())
	err := fieldMap.Each(func(name string, kind Kind) error {
		raw := record.Get(name)
		if raw == nil {
			updates = append(updates, fieldUpdate{name: name})
			return nil
		}
		value, err := s.converterFor(fieldMap, name, kind).ToStorage(*raw, kind)
		if err != nil {
			var conversionErr *ConversionError
			if errors.As(err, &conversionErr) {
				conversionErr.Field = name
			}
			return err
		}
		updates = append(updates, fieldUpdate{name: name, value: value})
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to prepare %v for persist: %w", record.TypeID(), err)
	}
	for _, update := range updates {
		record.Set(update.name, update.value)
	}
	return nil
}

// OnAfterPersist converts persisted storage values back to display values
func (s *Service) OnAfterPersist(record Record) {
	s.toDisplay(record, s.captureOriginals)
}

// OnAfterLoad converts loaded storage values to display values, malformed values become nil
func (s *Service) OnAfterLoad(record Record) {
	s.toDisplay(record, s.captureOriginals)
}

// CaptureOriginal stashes current values of date and datetime fields if record implements OriginalHolder
func (s *Service) CaptureOriginal(record Record) {
	holder, ok := record.(OriginalHolder)
	if !ok {
		return
	}
	_ = s.Classify(record).Each(func(name string, kind Kind) error {
		holder.SetOriginal(name, record.Get(name))
		return nil
	})
}

func (s *Service) toDisplay(record Record, capture bool) {
	fieldMap := s.Classify(record)
	if capture {
		s.CaptureOriginal(record)
	}
	_ = fieldMap.Each(func(name string, kind Kind) error {
		raw := record.Get(name)
		if raw == nil {
			record.Set(name, nil)
			return nil
		}
		value, err := s.converterFor(fieldMap, name, kind).toDisplay(*raw, kind)
		if err != nil {
			s.logger.Debug("discarding malformed stored value", "typeID", record.TypeID(), "field", name, "kind", kind.String(), "value", *raw, "error", err)
		}
		record.Set(name, value)
		return nil
	})
}

// ToDisplayDate converts storage date value to display value
func (s *Service) ToDisplayDate(value string) *string {
	return s.converter.ToDisplay(value, Date)
}

// ToDisplayDateTime converts storage datetime value to display value
func (s *Service) ToDisplayDateTime(value string) *string {
	return s.converter.ToDisplay(value, DateTime)
}

// ToStorageDate converts display date value to storage value
func (s *Service) ToStorageDate(value string) (*string, error) {
	return s.converter.ToStorage(value, Date)
}

// ToStorageDateTime converts display datetime value to storage value
func (s *Service) ToStorageDateTime(value string) (*string, error) {
	return s.converter.ToStorage(value, DateTime)
}

// StructType returns memoized struct type
func (s *Service) StructType(rType reflect.Type) (*StructType, error) {
	if structType, ok := s.structTypes.Load(rType); ok {
		return structType.(*StructType), nil
	}
	structType, err := NewStructType(rType)
	if err != nil {
		return nil, err
	}
	actual, _ := s.structTypes.LoadOrStore(rType, structType)
	return actual.(*StructType), nil
}

// Struct returns record for supplied struct pointer
func (s *Service) Struct(value interface{}) (*StructRecord, error) {
	rType := reflect.TypeOf(value)
	if rType == nil {
		return nil, fmt.Errorf("struct value was nil")
	}
	structType, err := s.StructType(rType)
	if err != nil {
		return nil, err
	}
	return structType.Record(value)
}

// New creates a service
func New(opts ...Option) (*Service, error) {
	options := newOptions(opts)
	if options.err != nil {
		return nil, options.err
	}
	formats := options.formats
	if formats == nil {
		var err error
		if formats, err = NewFormats(options.formatOptions...); err != nil {
			return nil, err
		}
	} else if err := formats.Validate(); err != nil {
		return nil, fmt.Errorf("invalid formats: %w", err)
	}
	return &Service{
		converter:        NewConverter(formats),
		classifier:       options.classifier,
		logger:           options.logger,
		captureOriginals: options.captureOriginals,
	}, nil
}
