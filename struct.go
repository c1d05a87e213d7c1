package i18ndate

import (
	"fmt"
	"github.com/viant/i18ndate/tags"
	"github.com/viant/tagly/format"
	"github.com/viant/tagly/format/text"
	"github.com/viant/xunsafe"
	"reflect"
	"unsafe"
)

type (
	structField struct {
		field *xunsafe.Field
		isPtr bool
	}

	//StructType represents struct record type
	StructType struct {
		rType     reflect.Type
		typeID    string
		columns   []Column
		fields    []*structField
		index     map[string]int
		originals *xunsafe.Field
	}

	//StructRecord represents struct backed record
	StructRecord struct {
		structType *StructType
		value      interface{}
		ptr        unsafe.Pointer
	}
)

// Type returns struct type
func (t *StructType) Type() reflect.Type {
	return t.rType
}

// TypeID returns struct type identifier
func (t *StructType) TypeID() string {
	return t.typeID
}

// Columns returns declared columns in struct field order
func (t *StructType) Columns() []Column {
	return t.columns
}

// HasOriginals returns true if struct defines originals holder
func (t *StructType) HasOriginals() bool {
	return t.originals != nil
}

func (t *StructType) lookup(name string) *structField {
	pos, ok := t.index[name]
	if !ok {
		return nil
	}
	return t.fields[pos]
}

// Record creates a record for supplied struct pointer
func (t *StructType) Record(value interface{}) (*StructRecord, error) {
	rType := reflect.TypeOf(value)
	if rType == nil || rType.Kind() != reflect.Ptr || rType.Elem() != t.rType {
		return nil, fmt.Errorf("expected *%s, but had %T", t.rType.String(), value)
	}
	if reflect.ValueOf(value).IsNil() {
		return nil, fmt.Errorf("*%s was nil", t.rType.String())
	}
	return &StructRecord{structType: t, value: value, ptr: xunsafe.AsPointer(value)}, nil
}

func (r *StructRecord) TypeID() string {
	return r.structType.typeID
}

func (r *StructRecord) Columns() []Column {
	return r.structType.columns
}

// Value returns underlying struct pointer
func (r *StructRecord) Value() interface{} {
	return r.value
}

// Get returns field value, empty string field returns nil
func (r *StructRecord) Get(name string) *string {
	aField := r.structType.lookup(name)
	if aField == nil {
		return nil
	}
	if aField.isPtr {
		value, _ := aField.field.Value(r.ptr).(*string)
		return value
	}
	value := aField.field.String(r.ptr)
	if value == "" {
		return nil
	}
	return &value
}

// Set sets field value, nil clears string field
func (r *StructRecord) Set(name string, value *string) {
	aField := r.structType.lookup(name)
	if aField == nil {
		return
	}
	if aField.isPtr {
		aField.field.SetValue(r.ptr, value)
		return
	}
	if value == nil {
		aField.field.SetString(r.ptr, "")
		return
	}
	aField.field.SetString(r.ptr, *value)
}

// SetOriginal stores untouched storage value in originals holder if struct defines one
func (r *StructRecord) SetOriginal(name string, value *string) {
	holder := r.structType.originals
	if holder == nil {
		return
	}
	originals, _ := holder.Value(r.ptr).(map[string]*string)
	if originals == nil {
		originals = map[string]*string{}
		holder.SetValue(r.ptr, originals)
	}
	originals[name] = value
}

// Originals returns originals holder content
func (r *StructRecord) Originals() map[string]*string {
	holder := r.structType.originals
	if holder == nil {
		return nil
	}
	originals, _ := holder.Value(r.ptr).(map[string]*string)
	return originals
}

func columnName(fieldName string, i18nTag *tags.Tag, formatTag *format.Tag) string {
	if i18nTag != nil && i18nTag.Name != "" {
		return i18nTag.Name
	}
	if formatTag != nil && formatTag.Name != "" {
		return formatTag.Name
	}
	if fieldName == "ID" {
		return "id"
	}
	return text.CaseFormatUpperCamel.Format(fieldName, text.CaseFormatLowerCamel)
}

func structTypeID(rType reflect.Type) string {
	if rType.Name() == "" {
		return rType.String()
	}
	return rType.PkgPath() + "." + rType.Name()
}

// NewStructType creates struct type, columns are taken from exported fields,
// i18n tag defines column name and type (i.e. `i18n:"name=birth_date,type=date"`),
// format tag dateFormat defines field display pattern (i.e. `format:"dateFormat=DD.MM.YYYY"`)
func NewStructType(rType reflect.Type) (*StructType, error) {
	structType := EnsureStructType(rType)
	if structType == nil {
		return nil, fmt.Errorf("supplied type is not struct: %v", rType)
	}
	ret := &StructType{rType: structType, typeID: structTypeID(structType), index: map[string]int{}}
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if field.PkgPath != "" {
			continue
		}
		i18nTag, err := tags.Parse(field.Tag)
		if err != nil {
			return nil, fmt.Errorf("invalid %v.%v tag: %w", structType.Name(), field.Name, err)
		}
		if i18nTag != nil && i18nTag.Ignore {
			continue
		}
		if i18nTag != nil && i18nTag.Originals {
			if field.Type != originalsMapType {
				return nil, fmt.Errorf("originals holder %v.%v has to be %v, but had %v", structType.Name(), field.Name, originalsMapType, field.Type)
			}
			ret.originals = xunsafe.NewField(field)
			continue
		}
		formatTag, _ := format.Parse(field.Tag)
		column := Column{Name: columnName(field.Name, i18nTag, formatTag), Type: field.Type.String()}
		if i18nTag != nil && i18nTag.Type != "" {
			column.Type = i18nTag.Type
		}
		ret.columns = append(ret.columns, column)
		if _, ok := KindOf(column.Type); !ok {
			continue
		}
		if field.Type != stringType && field.Type != stringPtrType {
			return nil, fmt.Errorf("%v field %v.%v has to be string or *string, but had %v", column.Type, structType.Name(), field.Name, field.Type)
		}
		if formatTag != nil && formatTag.DateFormat != "" {
			ret.columns[len(ret.columns)-1].DisplayPattern = formatTag.DateFormat
		}
		ret.index[column.Name] = len(ret.fields)
		ret.fields = append(ret.fields, &structField{field: xunsafe.NewField(field), isPtr: field.Type == stringPtrType})
	}
	return ret, nil
}
