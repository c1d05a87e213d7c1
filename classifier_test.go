package i18ndate

import (
	"github.com/stretchr/testify/assert"
	"sync"
	"sync/atomic"
	"testing"
)

func TestClassifier_Classify(t *testing.T) {
	var testCases = []struct {
		description    string
		columns        []Column
		expectDate     []string
		expectDateTime []string
	}{
		{
			description:    "mixed schema",
			columns:        []Column{{Name: "id", Type: "int"}, {Name: "birthDate", Type: "date"}, {Name: "createdAt", Type: "datetime"}},
			expectDate:     []string{"birthDate"},
			expectDateTime: []string{"createdAt"},
		},
		{
			description:    "declared order",
			columns:        []Column{{Name: "z", Type: "date"}, {Name: "b", Type: "datetime"}, {Name: "a", Type: "date"}, {Name: "y", Type: "datetime"}},
			expectDate:     []string{"z", "a"},
			expectDateTime: []string{"b", "y"},
		},
		{
			description: "exact tags only",
			columns:     []Column{{Name: "a", Type: "DATE"}, {Name: "b", Type: "timestamp"}, {Name: "c", Type: "datetime2"}, {Name: "d", Type: "time"}},
		},
		{
			description: "empty schema",
		},
	}

	for _, testCase := range testCases {
		scans := 0
		classifier := NewClassifier(WithScanListener(func(typeID string, columns []Column) {
			scans++
		}))
		provider := func() []Column { return testCase.columns }
		first := classifier.Classify("record", provider)
		second := classifier.Classify("record", provider)
		assert.EqualValues(t, 1, scans, testCase.description)
		assert.Same(t, first, second, testCase.description)
		assert.EqualValues(t, testCase.expectDate, first.Date, testCase.description)
		assert.EqualValues(t, testCase.expectDateTime, first.DateTime, testCase.description)
		assert.EqualValues(t, len(testCase.expectDate)+len(testCase.expectDateTime), first.Len(), testCase.description)
	}
}

func TestClassifier_ClassifySkipsProviderWhenCached(t *testing.T) {
	classifier := NewClassifier()
	calls := 0
	provider := func() []Column {
		calls++
		return []Column{{Name: "birthDate", Type: "date"}}
	}
	classifier.Classify("person", provider)
	classifier.Classify("person", provider)
	classifier.Classify("person", nil)
	assert.EqualValues(t, 1, calls)

	fieldMap, ok := classifier.Lookup("person")
	assert.True(t, ok)
	kind, ok := fieldMap.Kind("birthDate")
	assert.True(t, ok)
	assert.EqualValues(t, Date, kind)
	_, ok = fieldMap.Kind("id")
	assert.False(t, ok)
	_, ok = classifier.Lookup("unknown")
	assert.False(t, ok)
}

func TestClassifier_ClassifyConcurrently(t *testing.T) {
	var scans int32
	classifier := NewClassifier(WithScanListener(func(typeID string, columns []Column) {
		atomic.AddInt32(&scans, 1)
	}))
	columns := []Column{{Name: "id", Type: "int"}, {Name: "birthDate", Type: "date"}, {Name: "createdAt", Type: "datetime"}}
	typeIDs := []string{"a", "b", "c"}
	results := make([]*FieldMap, 64)
	wg := sync.WaitGroup{}
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = classifier.Classify(typeIDs[i%len(typeIDs)], func() []Column { return columns })
		}(i)
	}
	wg.Wait()
	assert.EqualValues(t, len(typeIDs), atomic.LoadInt32(&scans))
	for i, result := range results {
		expect, _ := classifier.Lookup(typeIDs[i%len(typeIDs)])
		assert.Same(t, expect, result)
		assert.EqualValues(t, []string{"birthDate"}, result.Date)
		assert.EqualValues(t, []string{"createdAt"}, result.DateTime)
	}
}

func TestFieldMap_DisplayPattern(t *testing.T) {
	fieldMap := newFieldMap([]Column{
		{Name: "birthDate", Type: "date", DisplayPattern: "DD.MM.YYYY"},
		{Name: "birthDate", Type: "datetime"},
		{Name: "note", Type: "text", DisplayPattern: "ignored"},
	})
	assert.EqualValues(t, "DD.MM.YYYY", fieldMap.DisplayPattern("birthDate"))
	assert.EqualValues(t, "", fieldMap.DisplayPattern("note"))
	assert.EqualValues(t, []string{"birthDate"}, fieldMap.Date)
	assert.Nil(t, fieldMap.DateTime)
}
