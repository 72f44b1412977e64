package integration_tests

import (
	"encoding/json"
	"testing"

	"github.com/specialistvlad/rteopts/internal/app"
	it "github.com/specialistvlad/rteopts/internal/integration_tests"
	"github.com/specialistvlad/rteopts/internal/macroscan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const startupFile = `;/**************************************************************************//**
; * @file     startup_ARMCM4.s
; ******************************************************************************/
#define Stack_Size 1024
#define Heap_Size (512)
#define	Tabbed_Size 256
#define 9Invalid 1
#define Missing_Value
#define Zeta_Size 64
`

// TestScanner_ScanFile runs the #define scanner through the app with and
// without tab separators.
func TestScanner_ScanFile(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		tabs     bool
		expected []string
	}{
		{name: "spaces only", expected: []string{"Stack_Size", "Heap_Size", "Zeta_Size"}},
		{name: "with tabs", tabs: true, expected: []string{"Stack_Size", "Heap_Size", "Tabbed_Size", "Zeta_Size"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			result := it.Run(t, map[string]string{"startup.s": startupFile}, app.Config{ScanFile: "startup.s", Tabs: tc.tabs, Format: "json"})
			require.NoError(t, result.Err)

			var report struct {
				File    string            `json:"file"`
				Matches []macroscan.Match `json:"matches"`
			}
			require.NoError(t, json.Unmarshal([]byte(result.Out), &report))

			var names []string
			for _, m := range report.Matches {
				names = append(names, m.Name)
			}
			assert.Equal(t, tc.expected, names)
			assert.Equal(t, "512", report.Matches[1].Value)
			assert.Contains(t, result.LogOutput, "Scan finished.")
		})
	}
}
