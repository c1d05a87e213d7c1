package i18ndate

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"reflect"
	"testing"
)

type structPerson struct {
	ID        int
	Name      string
	BirthDate string             `i18n:"type=date"`
	CreatedAt *string            `i18n:"name=created_at,type=datetime"`
	Expires   string             `i18n:"type=date" format:"dateFormat=DD.MM.YYYY"`
	Originals map[string]*string `i18n:"originals"`
	internal  string
}

type structInvalidKind struct {
	BirthDate int `i18n:"type=date"`
}

type structInvalidHolder struct {
	Originals map[string]string `i18n:"originals"`
}

type structInvalidTag struct {
	BirthDate string `i18n:"kind=date"`
}

func TestNewStructType(t *testing.T) {
	var testCases = []struct {
		description     string
		rType           reflect.Type
		expectColumns   []Column
		expectOriginals bool
		expectError     bool
	}{
		{
			description: "tagged struct",
			rType:       reflect.TypeOf(&structPerson{}),
			expectColumns: []Column{
				{Name: "id", Type: "int"},
				{Name: "name", Type: "string"},
				{Name: "birthDate", Type: "date"},
				{Name: "created_at", Type: "datetime"},
				{Name: "expires", Type: "date", DisplayPattern: "DD.MM.YYYY"},
			},
			expectOriginals: true,
		},
		{
			description: "anonymous struct",
			rType: reflect.TypeOf(struct {
				Ignored string `i18n:"-"`
				Day     string `i18n:"name=day,type=date"`
			}{}),
			expectColumns: []Column{{Name: "day", Type: "date"}},
		},
		{description: "non string date field", rType: reflect.TypeOf(structInvalidKind{}), expectError: true},
		{description: "invalid originals holder", rType: reflect.TypeOf(structInvalidHolder{}), expectError: true},
		{description: "invalid tag", rType: reflect.TypeOf(structInvalidTag{}), expectError: true},
		{description: "not a struct", rType: reflect.TypeOf(""), expectError: true},
	}

	for _, testCase := range testCases {
		structType, err := NewStructType(testCase.rType)
		if testCase.expectError {
			assert.NotNil(t, err, testCase.description)
			continue
		}
		require.Nil(t, err, testCase.description)
		assert.EqualValues(t, testCase.expectColumns, structType.Columns(), testCase.description)
		assert.EqualValues(t, testCase.expectOriginals, structType.HasOriginals(), testCase.description)
	}
}

func TestStructType_TypeID(t *testing.T) {
	structType, err := NewStructType(reflect.TypeOf(structPerson{}))
	require.Nil(t, err)
	assert.EqualValues(t, "github.com/viant/i18ndate.structPerson", structType.TypeID())
	assert.EqualValues(t, reflect.TypeOf(structPerson{}), structType.Type())
}

func TestStructType_Record(t *testing.T) {
	structType, err := NewStructType(reflect.TypeOf(structPerson{}))
	require.Nil(t, err)

	_, err = structType.Record(structPerson{})
	assert.NotNil(t, err)
	var nilPerson *structPerson
	_, err = structType.Record(nilPerson)
	assert.NotNil(t, err)
	_, err = structType.Record(&structInvalidKind{})
	assert.NotNil(t, err)

	person := &structPerson{BirthDate: "1990-05-21"}
	record, err := structType.Record(person)
	require.Nil(t, err)
	assert.EqualValues(t, "1990-05-21", *record.Get("birthDate"))
	assert.Nil(t, record.Get("created_at"))
	assert.Nil(t, record.Get("expires"))
	assert.Nil(t, record.Get("name"))

	record.Set("created_at", stringPtr("2024-01-03 14:30:00"))
	require.NotNil(t, person.CreatedAt)
	assert.EqualValues(t, "2024-01-03 14:30:00", *person.CreatedAt)
	record.Set("created_at", nil)
	assert.Nil(t, person.CreatedAt)
	record.Set("birthDate", nil)
	assert.EqualValues(t, "", person.BirthDate)

	record.SetOriginal("birthDate", stringPtr("1990-05-21"))
	assert.EqualValues(t, "1990-05-21", *person.Originals["birthDate"])
	assert.Same(t, person, record.Value())
}

func TestService_Struct(t *testing.T) {
	srv, err := New()
	require.Nil(t, err)

	createdAt := "2024-01-03 14:30:00"
	person := &structPerson{ID: 1, Name: "Ann", BirthDate: "1990-05-21", CreatedAt: &createdAt, Expires: "2030-12-31", internal: "x"}
	record, err := srv.Struct(person)
	require.Nil(t, err)

	srv.OnAfterLoad(record)
	assert.EqualValues(t, "05/21/1990", person.BirthDate)
	require.NotNil(t, person.CreatedAt)
	assert.EqualValues(t, "01/03/2024 02:30 PM", *person.CreatedAt)
	assert.EqualValues(t, "31.12.2030", person.Expires)
	assert.EqualValues(t, "2024-01-03 14:30:00", *record.Originals()["created_at"])
	assert.EqualValues(t, "1990-05-21", *record.Originals()["birthDate"])
	assert.EqualValues(t, "Ann", person.Name)
	assert.EqualValues(t, "x", person.internal)

	require.Nil(t, srv.OnBeforePersist(record))
	assert.EqualValues(t, "1990-05-21", person.BirthDate)
	assert.EqualValues(t, "2024-01-03 14:30:00", *person.CreatedAt)
	assert.EqualValues(t, "2030-12-31", person.Expires)

	person.BirthDate = "1990-05-21"
	err = srv.OnBeforePersist(record)
	assert.True(t, IsConversionError(err))
	assert.EqualValues(t, "2024-01-03 14:30:00", *person.CreatedAt)

	again, err := srv.Struct(&structPerson{})
	require.Nil(t, err)
	assert.Same(t, record.structType, again.structType)

	_, err = srv.Struct(nil)
	assert.NotNil(t, err)
	_, err = srv.Struct(&structInvalidKind{})
	assert.NotNil(t, err)
}
