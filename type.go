package i18ndate

import (
	"reflect"
)

var (
	stringType       = reflect.TypeOf("")
	stringPtrType    = reflect.PtrTo(stringType)
	originalsMapType = reflect.TypeOf(map[string]*string{})
)

// EnsureStructType returns struct type for struct, pointer or slice type, or nil
func EnsureStructType(t reflect.Type) reflect.Type {
	switch t.Kind() {
	case reflect.Struct:
		return t
	case reflect.Ptr:
		return EnsureStructType(t.Elem())
	case reflect.Slice:
		return EnsureStructType(t.Elem())
	}
	return nil
}
