package elementary

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rulescroll/internal/core"
	"rulescroll/pkg/automaton"
)

func newSim(t *testing.T, w, h int, rule uint8) *Elementary {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Width, cfg.Height, cfg.Rule = w, h, rule
	sim, err := New(cfg)
	require.NoError(t, err)
	return sim
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"w": "40", "h": "30", "rule": "30", "seed": "random", "density": "0.25",
	})
	assert.Equal(t, Config{Width: 40, Height: 30, Rule: 30, Seed: SeedRandom, Density: 0.25}, c)

	c = FromMap(map[string]string{"w": "-1", "rule": "256", "seed": "sideways", "density": "2"})
	assert.Equal(t, DefaultConfig(), c)
	assert.Equal(t, DefaultConfig(), FromMap(nil))
}

func TestNewSeedsBottomCenter(t *testing.T) {
	sim := newSim(t, 7, 4, 150)
	cells := sim.Cells()
	require.Len(t, cells, 28)
	for i, c := range cells {
		want := uint8(0)
		if i == 3*7+3 {
			want = 1
		}
		require.Equal(t, want, c, "index %d", i)
	}
}

func TestStepScrollsHistory(t *testing.T) {
	sim := newSim(t, 7, 2, 150)
	sim.Step()
	assert.Equal(t, []uint8{
		0, 0, 0, 1, 0, 0, 0,
		0, 0, 1, 1, 1, 0, 0,
	}, sim.Cells())
}

func TestRandomSeedIsDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height, cfg.Seed, cfg.Density = 64, 3, SeedRandom, 0.5
	a, err := New(cfg)
	require.NoError(t, err)
	b, err := New(cfg)
	require.NoError(t, err)
	a.Reset(9)
	b.Reset(9)
	assert.Equal(t, a.Cells(), b.Cells())

	bottom := a.Engine().Grid()[2]
	assert.False(t, bottom[0])
	assert.False(t, bottom[63])
	assert.Positive(t, a.Engine().Population(2))
	assert.Zero(t, a.Engine().Population(0))
}

func TestSetRuleRestarts(t *testing.T) {
	sim := newSim(t, 9, 3, 150)
	sim.Step()
	sim.Step()
	sim.SetRule(30)

	assert.Equal(t, uint8(30), sim.Rule())
	assert.Equal(t, uint8(30), sim.Engine().Rule())
	assert.Zero(t, sim.Engine().Generation())
	assert.Equal(t, 1, sim.Engine().Population(2))
	assert.Zero(t, sim.Engine().Population(1))
}

func TestResize(t *testing.T) {
	sim := newSim(t, 9, 3, 150)
	require.NoError(t, sim.Resize(12, 5))
	assert.Equal(t, core.Size{W: 12, H: 5}, sim.Size())
	assert.Len(t, sim.Cells(), 60)
	assert.True(t, sim.Engine().Cell(6, 4))

	sim.Step()
	err := sim.Resize(1, 40)
	var verr *automaton.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, core.Size{W: 12, H: 5}, sim.Size())
	assert.Equal(t, uint64(1), sim.Engine().Generation(), "rejected resize keeps history")

	require.NoError(t, sim.Resize(12, 5))
	assert.Equal(t, uint64(1), sim.Engine().Generation(), "same size is a no-op")
}

func TestNewRejectsTinyGrid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 1
	sim, err := New(cfg)
	assert.Nil(t, sim)
	var verr *automaton.ValidationError
	assert.True(t, errors.As(err, &verr))
}

func TestIntParameter(t *testing.T) {
	sim := newSim(t, 9, 3, 150)
	assert.False(t, sim.SetIntParameter("rule", 256))
	assert.False(t, sim.SetIntParameter("width", 10))
	require.True(t, sim.SetIntParameter("rule", 90))

	p, ok := sim.Parameters().Lookup("rule")
	require.True(t, ok)
	assert.Equal(t, "90", p.Value)

	controls := sim.ParameterControls()
	require.Len(t, controls, 1)
	assert.Equal(t, 255, controls[0].Clamp(1000))
}

func TestParametersTrackGeneration(t *testing.T) {
	sim := newSim(t, 9, 3, 150)
	sim.Step()
	sim.Step()
	p, ok := sim.Parameters().Lookup("generation")
	require.True(t, ok)
	assert.Equal(t, "2", p.Value)
}

func TestRegistered(t *testing.T) {
	factory, ok := core.Sims()["elementary"]
	require.True(t, ok)

	sim, err := factory(map[string]string{"w": "16", "h": "8", "rule": "30"})
	require.NoError(t, err)
	assert.Equal(t, core.Size{W: 16, H: 8}, sim.Size())
	assert.Implements(t, (*core.Resizer)(nil), sim)
	assert.Implements(t, (*core.IntParameterSetter)(nil), sim)

	sim, err = factory(map[string]string{"w": "1"})
	assert.Nil(t, sim)
	var verr *automaton.ValidationError
	assert.True(t, errors.As(err, &verr))
}
