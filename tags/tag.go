package tags

import (
	"fmt"
	"reflect"
	"strings"
)

// TagName i18n struct tag name
const TagName = "i18n"

// Tag represents i18n struct tag, i.e. `i18n:"name=birth_date,type=date"`
type Tag struct {
	Name      string
	Type      string
	Originals bool
	Ignore    bool
}

func (t *Tag) update(key, value string) error {
	switch strings.ToLower(key) {
	case "name", "column":
		t.Name = value
	case "type", "dbtype":
		t.Type = value
	case "originals":
		t.Originals = true
	case "-", "ignore", "transient":
		t.Ignore = true
	default:
		return fmt.Errorf("unsupported %v tag key: %v", TagName, key)
	}
	return nil
}

// Parse parses i18n struct tag, returns nil if the tag is not defined
func Parse(tag reflect.StructTag) (*Tag, error) {
	encoded, ok := tag.Lookup(TagName)
	if !ok {
		return nil, nil
	}
	ret := &Tag{}
	if err := Values(encoded).MatchPairs(ret.update); err != nil {
		return nil, err
	}
	return ret, nil
}
