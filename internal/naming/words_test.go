package naming_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sublee/declare/internal/naming"
)

func TestSplitWords(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "camelCase",
			input:    "getId",
			expected: []string{"get", "Id"},
		},
		{
			name:     "PascalCase",
			input:    "MyStruct",
			expected: []string{"My", "Struct"},
		},
		{
			name:     "snake_case",
			input:    "send_message",
			expected: []string{"send", "message"},
		},
		{
			name:     "DigitAfterLetter",
			input:    "iso8601",
			expected: []string{"iso8601"},
		},
		{
			name:     "LowercaseAfterDigit",
			input:    "file2name",
			expected: []string{"file2name"},
		},
		{
			name:     "UppercaseAfterDigit",
			input:    "Point3D",
			expected: []string{"Point3", "D"},
		},
		{
			name:     "AcronymWithDigit",
			input:    "HTTP2Server",
			expected: []string{"HTTP2", "Server"},
		},
		{
			name:     "LeadingUnderscore",
			input:    "_Hidden",
			expected: []string{"Hidden"},
		},
		{
			name:     "MultipleUnderscores",
			input:    "send__nowait",
			expected: []string{"send", "nowait"},
		},
		{
			name:     "EmptyString",
			input:    "",
			expected: ([]string)(nil),
		},
		{
			name:     "AllUppercase",
			input:    "HELLO",
			expected: []string{"HELLO"},
		},
		{
			name:     "UppercaseAcronymAtStart",
			input:    "JSONParser",
			expected: []string{"JSON", "Parser"},
		},
		{
			name:     "UnderscoresOnly",
			input:    "___",
			expected: ([]string)(nil),
		},
		{
			name:     "Korean",
			input:    "안녕",
			expected: []string{"안녕"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, naming.SplitWords(tt.input))
		})
	}
}
