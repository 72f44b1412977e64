package resolver

import (
	"fmt"
	"testing"

	"github.com/specialistvlad/rteopts/internal/config"
	"github.com/specialistvlad/rteopts/internal/registry"
	"github.com/specialistvlad/rteopts/modules/armcompiler"
	"github.com/specialistvlad/rteopts/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegistry() *registry.Registry {
	r := registry.New()
	(&armcompiler.Module{}).Register(r)
	return r
}

func TestResolveAll_KeepsInputOrder(t *testing.T) {
	ctx, _ := testutil.NewContext(t)

	var cfgs []*config.Configuration
	for i := 0; i < 40; i++ {
		tc := "com.arm.toolchain.ac5.exe"
		if i%2 == 0 {
			tc = "com.arm.toolchain.v6.base"
		}
		cfgs = append(cfgs, &config.Configuration{
			Name:      fmt.Sprintf("cfg-%02d", i),
			Toolchain: tc,
			Device:    config.Device{Core: "Cortex-M4", FPU: "SP_FPU"},
			Options:   []config.OptionSlot{{ID: "com.arm.toolchain.ac5.option.target.cpu_fpu"}},
		})
	}

	results, err := ResolveAll(ctx, cfgs, newRegistry(), 8)
	require.NoError(t, err)
	require.Len(t, results, len(cfgs))

	for i, r := range results {
		assert.Equal(t, cfgs[i].Name, r.Configuration)
		require.Len(t, r.Options, 1)
		v, ok := r.Options[0].Value.Scalar()
		require.True(t, ok)
		if i%2 == 0 {
			assert.Equal(t, "armclang", r.Strategy)
			assert.Equal(t, "AC6", r.RteOptions["Toptions"])
			assert.Equal(t, "Cortex-M4.FPv4_SP_D16", v)
		} else {
			assert.Equal(t, "armcc", r.Strategy)
			assert.Equal(t, "AC5", r.RteOptions["Toptions"])
			assert.Equal(t, "Cortex-M4.FPv4_SP", v)
		}
		require.NotNil(t, r.Context)
	}
}

func TestResolveAll_Errors(t *testing.T) {
	ctx, _ := testutil.NewContext(t)

	_, err := ResolveAll(ctx, []*config.Configuration{{Name: "ok"}, nil}, newRegistry(), 0)
	require.ErrorIs(t, err, ErrNilConfiguration)
	assert.Contains(t, err.Error(), "configuration #1")

	_, err = ResolveAll(ctx, []*config.Configuration{{Name: "bad", CompilerVersion: "x.y"}}, newRegistry(), 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration 'bad'")
}

func TestResolveAll_Empty(t *testing.T) {
	ctx, _ := testutil.NewContext(t)
	results, err := ResolveAll(ctx, nil, newRegistry(), 4)
	require.NoError(t, err)
	assert.Empty(t, results)
}
