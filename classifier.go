package i18ndate

import (
	"golang.org/x/sync/singleflight"
	"sync"
)

type (
	//Column represents declared record field
	Column struct {
		Name string
		//Type declared storage type tag, only "date" and "datetime" are tracked
		Type string
		//DisplayPattern optional field level display pattern
		DisplayPattern string
	}

	//FieldMap represents classified date and datetime fields of a record type, read only once built
	FieldMap struct {
		Date     []string
		DateTime []string
		kinds    map[string]Kind
		display  map[string]string
	}

	//Classifier memoizes field maps per type identifier
	Classifier struct {
		entries sync.Map
		group   singleflight.Group
		onScan  func(typeID string, columns []Column)
	}

	//ClassifierOption represents classifier option
	ClassifierOption func(c *Classifier)
)

// Kind returns tracked field kind
func (m *FieldMap) Kind(name string) (Kind, bool) {
	kind, ok := m.kinds[name]
	return kind, ok
}

// DisplayPattern returns field level display pattern or empty string
func (m *FieldMap) DisplayPattern(name string) string {
	return m.display[name]
}

// Len returns number of tracked fields
func (m *FieldMap) Len() int {
	return len(m.Date) + len(m.DateTime)
}

// Each iterates tracked fields, dates first, in declared order
func (m *FieldMap) Each(cb func(name string, kind Kind) error) error {
	for _, name := range m.Date {
		if err := cb(name, Date); err != nil {
			return err
		}
	}
	for _, name := range m.DateTime {
		if err := cb(name, DateTime); err != nil {
			return err
		}
	}
	return nil
}

func newFieldMap(columns []Column) *FieldMap {
	ret := &FieldMap{kinds: map[string]Kind{}, display: map[string]string{}}
	for _, column := range columns {
		kind, ok := KindOf(column.Type)
		if !ok {
			continue
		}
		if _, ok := ret.kinds[column.Name]; ok {
			continue
		}
		ret.kinds[column.Name] = kind
		switch kind {
		case Date:
			ret.Date = append(ret.Date, column.Name)
		case DateTime:
			ret.DateTime = append(ret.DateTime, column.Name)
		}
		if column.DisplayPattern != "" {
			ret.display[column.Name] = column.DisplayPattern
		}
	}
	return ret
}

// Classify returns field map for supplied type, columns are requested and scanned only on the first call per type
func (c *Classifier) Classify(typeID string, columns func() []Column) *FieldMap {
	if entry, ok := c.entries.Load(typeID); ok {
		return entry.(*FieldMap)
	}
	entry, _, _ := c.group.Do(typeID, func() (interface{}, error) {
		if entry, ok := c.entries.Load(typeID); ok {
			return entry, nil
		}
		var declared []Column
		if columns != nil {
			declared = columns()
		}
		if c.onScan != nil {
			c.onScan(typeID, declared)
		}
		fieldMap := newFieldMap(declared)
		c.entries.Store(typeID, fieldMap)
		return fieldMap, nil
	})
	return entry.(*FieldMap)
}

// Lookup returns cached field map
func (c *Classifier) Lookup(typeID string) (*FieldMap, bool) {
	entry, ok := c.entries.Load(typeID)
	if !ok {
		return nil, false
	}
	return entry.(*FieldMap), true
}

// NewClassifier creates a classifier
func NewClassifier(opts ...ClassifierOption) *Classifier {
	ret := &Classifier{}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// WithScanListener returns option with listener notified on every schema scan
func WithScanListener(fn func(typeID string, columns []Column)) ClassifierOption {
	return func(c *Classifier) {
		c.onScan = fn
	}
}
