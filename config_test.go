package i18ndate

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	var testCases = []struct {
		description          string
		input                string
		expectError          bool
		expectStorageDate    string
		expectDisplayDate    string
		expectDisplayDateOut string
		expectDisplayTime    string
	}{
		{
			description:          "locale only",
			input:                "locale: de\n",
			expectStorageDate:    "YYYY-MM-DD",
			expectDisplayDate:    "DD.MM.YYYY",
			expectDisplayDateOut: "DD.MM.YYYY",
			expectDisplayTime:    "DD.MM.YYYY HH:mm",
		},
		{
			description: "explicit patterns override locale",
			input: `locale: pt-BR
storage:
  date:
    parse: YYYYMMDD
display:
  date:
    parse: D/M/YYYY
    output: DD/MM/YYYY
`,
			expectStorageDate:    "YYYYMMDD",
			expectDisplayDate:    "D/M/YYYY",
			expectDisplayDateOut: "DD/MM/YYYY",
			expectDisplayTime:    "DD/MM/YYYY HH:mm:ss",
		},
		{
			description: "invalid locale",
			input:       "locale: '!!'\n",
			expectError: true,
		},
		{
			description: "invalid yaml",
			input:       "storage: [",
			expectError: true,
		},
	}

	for _, testCase := range testCases {
		config, err := LoadConfig([]byte(testCase.input))
		if testCase.expectError {
			assert.NotNil(t, err, testCase.description)
			continue
		}
		require.Nil(t, err, testCase.description)
		options, err := config.Options()
		require.Nil(t, err, testCase.description)
		formats, err := NewFormats(options...)
		require.Nil(t, err, testCase.description)
		assert.EqualValues(t, testCase.expectStorageDate, formats.StorageDate.OutputPattern, testCase.description)
		assert.EqualValues(t, testCase.expectDisplayDate, formats.DisplayDate.ParsePattern, testCase.description)
		assert.EqualValues(t, testCase.expectDisplayDateOut, formats.DisplayDate.OutputPattern, testCase.description)
		assert.EqualValues(t, testCase.expectDisplayTime, formats.DisplayDateTime.OutputPattern, testCase.description)
	}
}

func TestConfig_Options(t *testing.T) {
	var testCases = []struct {
		description string
		config      *Config
		expectError bool
	}{
		{
			description: "valid locale",
			config:      &Config{Locale: "de"},
		},
		{
			description: "no locale",
			config:      &Config{},
		},
		{
			description: "invalid locale",
			config:      &Config{Locale: "!!"},
			expectError: true,
		},
	}

	for _, testCase := range testCases {
		_, err := testCase.config.Options()
		_, srvErr := New(WithConfig(testCase.config))
		if testCase.expectError {
			assert.NotNil(t, err, testCase.description)
			assert.NotNil(t, srvErr, testCase.description)
			continue
		}
		assert.Nil(t, err, testCase.description)
		assert.Nil(t, srvErr, testCase.description)
	}
}
