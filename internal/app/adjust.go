package app

import (
	"strconv"

	"rulescroll/internal/core"
)

// AdjustIntParameter moves the integer control key by delta steps, clamped to
// the control's bounds. It reports whether the sim accepted a new value.
func AdjustIntParameter(sim core.Sim, key string, delta int) bool {
	controls, ok := sim.(core.ParameterControlsProvider)
	if !ok {
		return false
	}
	setter, ok := sim.(core.IntParameterSetter)
	if !ok {
		return false
	}
	params, ok := sim.(core.ParameterProvider)
	if !ok {
		return false
	}
	for _, ctrl := range controls.ParameterControls() {
		if ctrl.Key != key || ctrl.Type != core.ParamTypeInt {
			continue
		}
		p, ok := params.Parameters().Lookup(key)
		if !ok {
			return false
		}
		cur, err := strconv.Atoi(p.Value)
		if err != nil {
			return false
		}
		step := ctrl.Step
		if step <= 0 {
			step = 1
		}
		next := ctrl.Clamp(cur + delta*step)
		if next == cur {
			return false
		}
		return setter.SetIntParameter(key, next)
	}
	return false
}
