package armcompiler

import (
	"testing"

	"github.com/specialistvlad/rteopts/internal/registry"
	"github.com/specialistvlad/rteopts/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModule_Register(t *testing.T) {
	ctx, _ := testutil.NewContext(t)

	r := registry.New()
	(&Module{}).Register(r)

	assert.Equal(t, []string{AC5Prefix, AC6Prefix}, r.Prefixes())
	require.NoError(t, r.ValidateRegistry(ctx))

	testCases := []struct {
		baseID   string
		expected string
	}{
		{"com.arm.toolchain.ac5.exe", "armcc"},
		{"com.arm.toolchain.v6.base", "armclang"},
		{"com.arm.toolchain.v6.base.exe", "armclang"},
		{"org.gnu.arm.toolchain", "armcc"},
	}
	for _, tc := range testCases {
		t.Run(tc.baseID, func(t *testing.T) {
			assert.Equal(t, tc.expected, r.Lookup(tc.baseID).Name)
		})
	}
}

func TestModule_RegisterTwicePanics(t *testing.T) {
	r := registry.New()
	(&Module{}).Register(r)
	assert.Panics(t, func() { (&Module{}).Register(r) })
}
