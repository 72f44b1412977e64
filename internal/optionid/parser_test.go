// internal/optionid/parser_test.go
package optionid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name       string
		raw        string
		expectErr  bool
		expectedID *ID
	}{
		{
			name:       "toolchain base id",
			raw:        "com.arm.toolchain.v6.base",
			expectedID: &ID{Segments: []string{"com", "arm", "toolchain", "v6", "base"}},
		},
		{
			name:       "option id with underscore",
			raw:        "com.arm.toolchain.ac5.option.target.cpu_fpu",
			expectedID: &ID{Segments: []string{"com", "arm", "toolchain", "ac5", "option", "target", "cpu_fpu"}},
		},
		{
			name:       "single segment",
			raw:        "scatter",
			expectedID: &ID{Segments: []string{"scatter"}},
		},
		{
			name:      "error - empty string",
			raw:       "",
			expectErr: true,
		},
		{
			name:      "error - empty segment",
			raw:       "com..arm",
			expectErr: true,
		},
		{
			name:      "error - trailing dot",
			raw:       "com.arm.",
			expectErr: true,
		},
		{
			name:      "error - whitespace",
			raw:       "com.arm tool",
			expectErr: true,
		},
		{
			name:      "error - lone hyphen segment",
			raw:       "com.-.arm",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			id, err := Parse(tc.raw)

			if tc.expectErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, id)
			assert.True(t, tc.expectedID.Equal(id), "parsed id does not match expected id")
		})
	}
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParse("a..b") })
	assert.NotPanics(t, func() { MustParse("com.arm.toolchain.ac5") })
}
