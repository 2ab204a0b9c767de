package elementary

import (
	"strconv"

	"github.com/pkg/errors"

	"rulescroll/internal/core"
	"rulescroll/pkg/automaton"
)

// Elementary adapts an automaton.Engine to the core.Sim contract. The engine
// is rebuilt whenever the rule or the dimensions change.
type Elementary struct {
	cfg     Config
	seed    int64
	engine  *automaton.Engine
	display *core.ByteGrid
}

// New creates a sim from cfg. Invalid dimensions are reported as a wrapped
// *automaton.ValidationError.
func New(cfg Config) (*Elementary, error) {
	e := &Elementary{cfg: cfg}
	if err := e.rebuild(cfg.Width, cfg.Height); err != nil {
		return nil, err
	}
	return e, nil
}

// Name returns the simulation identifier.
func (e *Elementary) Name() string { return "elementary" }

// Size returns the simulation grid dimensions.
func (e *Elementary) Size() core.Size {
	return core.Size{W: e.engine.Width(), H: e.engine.Height()}
}

// Engine exposes the underlying automaton.
func (e *Elementary) Engine() *automaton.Engine { return e.engine }

// Cells renders the engine grid into the display buffer, 1 for live cells.
func (e *Elementary) Cells() []uint8 {
	e.display.LoadBool(e.engine.Grid())
	return e.display.Cells()
}

// Reset discards history and seeds the bottom row.
func (e *Elementary) Reset(seed int64) {
	e.seed = seed
	if err := e.rebuild(e.engine.Width(), e.engine.Height()); err != nil {
		// dimensions were validated when the current engine was built
		panic(err)
	}
}

// Step advances the automaton by one generation.
func (e *Elementary) Step() { e.engine.Advance() }

// Rule returns the active Wolfram code.
func (e *Elementary) Rule() uint8 { return e.cfg.Rule }

// SetRule switches to a new rule. History is not carried over.
func (e *Elementary) SetRule(rule uint8) {
	e.cfg.Rule = rule
	e.Reset(e.seed)
}

// Resize rebuilds the automaton at w x h. The current grid is kept when the
// dimensions are rejected.
func (e *Elementary) Resize(w, h int) error {
	if w == e.engine.Width() && h == e.engine.Height() {
		return nil
	}
	return e.rebuild(w, h)
}

func (e *Elementary) rebuild(w, h int) error {
	engine, err := automaton.New(w, h, e.cfg.Rule)
	if err != nil {
		return errors.Wrapf(err, "elementary: resize to %dx%d", w, h)
	}
	e.cfg.Width, e.cfg.Height = w, h
	e.engine = engine
	e.display = core.NewByteGrid(w, h)
	e.plant()
	return nil
}

func (e *Elementary) plant() {
	w, h := e.engine.Width(), e.engine.Height()
	bottom := h - 1
	if e.cfg.Seed != SeedRandom {
		e.engine.Fill(w/2, bottom)
		return
	}
	rng := core.NewRNG(e.seed)
	for x := 1; x < w-1; x++ {
		if rng.Chance(e.cfg.Density) {
			e.engine.Fill(x, bottom)
		}
	}
}

// Parameters reports the grid and rule for the HUD.
func (e *Elementary) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("w", "Width", e.engine.Width()),
				intParam("h", "Height", e.engine.Height()),
			},
		},
		{
			Name: "Automaton",
			Params: []core.Parameter{
				intParam("rule", "Rule", int(e.cfg.Rule)),
				{
					Key:   "generation",
					Label: "Generation",
					Type:  core.ParamTypeInt,
					Value: strconv.FormatUint(e.engine.Generation(), 10),
				},
				{
					Key:   "random",
					Label: "Random seed",
					Type:  core.ParamTypeBool,
					Value: strconv.FormatBool(e.cfg.Seed == SeedRandom),
				},
			},
		},
	}}
}

// ParameterControls lists the values that can be changed while running.
func (e *Elementary) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{{
		Key:    "rule",
		Label:  "Rule",
		Type:   core.ParamTypeInt,
		Step:   1,
		Min:    0,
		Max:    255,
		HasMin: true,
		HasMax: true,
	}}
}

// SetIntParameter applies an integer parameter update.
func (e *Elementary) SetIntParameter(key string, value int) bool {
	switch key {
	case "rule":
		if value < 0 || value > 255 {
			return false
		}
		e.SetRule(uint8(value))
		return true
	}
	return false
}

func intParam(key, label string, v int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(v)}
}

func init() {
	core.Register("elementary", func(cfg map[string]string) (core.Sim, error) {
		sim, err := New(FromMap(cfg))
		if err != nil {
			return nil, err
		}
		return sim, nil
	})
}
