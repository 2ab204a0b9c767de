package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rulescroll/internal/core"
	"rulescroll/internal/sims/elementary"
)

type bareSim struct{}

func (bareSim) Name() string    { return "bare" }
func (bareSim) Size() core.Size { return core.Size{W: 2, H: 2} }
func (bareSim) Reset(int64)     {}
func (bareSim) Step()           {}
func (bareSim) Cells() []uint8  { return make([]uint8, 4) }

func newElementary(t *testing.T, rule uint8) *elementary.Elementary {
	t.Helper()
	cfg := elementary.DefaultConfig()
	cfg.Width, cfg.Height, cfg.Rule = 9, 4, rule
	sim, err := elementary.New(cfg)
	require.NoError(t, err)
	return sim
}

func TestAdjustRule(t *testing.T) {
	sim := newElementary(t, 150)
	require.True(t, AdjustIntParameter(sim, "rule", 1))
	assert.Equal(t, uint8(151), sim.Rule())
	require.True(t, AdjustIntParameter(sim, "rule", -10))
	assert.Equal(t, uint8(141), sim.Rule())
}

func TestAdjustRuleClamps(t *testing.T) {
	sim := newElementary(t, 250)
	require.True(t, AdjustIntParameter(sim, "rule", 10))
	assert.Equal(t, uint8(255), sim.Rule())
	assert.False(t, AdjustIntParameter(sim, "rule", 1), "already at max")

	sim = newElementary(t, 0)
	assert.False(t, AdjustIntParameter(sim, "rule", -1))
	assert.Equal(t, uint8(0), sim.Rule())
}

func TestAdjustUnknown(t *testing.T) {
	assert.False(t, AdjustIntParameter(newElementary(t, 30), "speed", 1))
	assert.False(t, AdjustIntParameter(bareSim{}, "rule", 1))
}
