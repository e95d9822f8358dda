package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNodeTypeFromString(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		expected  NodeType
		expectErr bool
	}{
		{
			name:      "file",
			input:     "file",
			expected:  NodeFile,
			expectErr: false,
		},
		{
			name:      "directory upper case",
			input:     "DIRECTORY",
			expected:  NodeDirectory,
			expectErr: false,
		},
		{
			name:      "invalid type",
			input:     "dir",
			expected:  NodeUnsupported,
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := NodeTypeFromString(tc.input)
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestNodeType_String(t *testing.T) {
	tests := []struct {
		name string
		s    NodeType
		want string
	}{
		{
			name: "Test NodeFile string representation",
			s:    NodeFile,
			want: "file",
		},
		{
			name: "Test NodeDirectory string representation",
			s:    NodeDirectory,
			want: "directory",
		},
		{
			name: "Test NodeUnsupported string representation",
			s:    NodeUnsupported,
			want: "unsupported",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.String(); got != tt.want {
				t.Errorf("NodeType.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNodeType_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(NodeDirectory)
	assert.NoError(t, err)
	assert.JSONEq(t, `"directory"`, string(b))

	_, err = json.Marshal(NodeUnsupported)
	assert.Error(t, err)
}

func TestTreeStrategyFromString(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		expected  TreeStrategy
		expectErr bool
	}{
		{name: "nested", input: "nested", expected: TreeNested},
		{name: "flat", input: "Flat", expected: TreeFlat},
		{name: "empty", input: "", expected: TreeUnsupported, expectErr: true},
		{name: "unknown", input: "recursive", expected: TreeUnsupported, expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := TreeStrategyFromString(tc.input)
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}
}
