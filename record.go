package i18ndate

type (
	//Record represents host entity exposing named string field values and its declared schema
	Record interface {
		//TypeID returns stable identifier of the record shape
		TypeID() string
		//Columns returns declared schema, called at most once per TypeID
		Columns() []Column
		//Get returns field value or nil
		Get(name string) *string
		//Set sets field value, nil represents no value
		Set(name string, value *string)
	}

	//OriginalHolder represents record keeping untouched storage values
	OriginalHolder interface {
		SetOriginal(name string, value *string)
	}

	//MapRecord represents map backed record
	MapRecord struct {
		Type      string
		Schema    []Column
		Values    map[string]*string
		Originals map[string]*string
	}
)

func (r *MapRecord) TypeID() string {
	return r.Type
}

func (r *MapRecord) Columns() []Column {
	return r.Schema
}

func (r *MapRecord) Get(name string) *string {
	return r.Values[name]
}

func (r *MapRecord) Set(name string, value *string) {
	if r.Values == nil {
		r.Values = map[string]*string{}
	}
	r.Values[name] = value
}

// SetOriginal stores untouched storage value
func (r *MapRecord) SetOriginal(name string, value *string) {
	if r.Originals == nil {
		r.Originals = map[string]*string{}
	}
	r.Originals[name] = value
}

// String returns field value or empty string
func (r *MapRecord) String(name string) string {
	if value := r.Values[name]; value != nil {
		return *value
	}
	return ""
}

// NewMapRecord creates map record with supplied string values, empty values are stored as nil
func NewMapRecord(typeID string, columns []Column, values map[string]string) *MapRecord {
	ret := &MapRecord{Type: typeID, Schema: columns, Values: make(map[string]*string, len(values))}
	for k, v := range values {
		if v == "" {
			ret.Values[k] = nil
			continue
		}
		value := v
		ret.Values[k] = &value
	}
	return ret
}
