package ui

import (
	"math"
	"strconv"

	"frontier/internal/core"
)

// stepTarget returns the value one step away in direction, clamped to the
// control range. It reports false when the value would not change.
func stepTarget(ctrl core.ParameterControl, current float64, direction int) (float64, bool) {
	step := ctrl.Step
	if step <= 0 {
		step = 1
	}
	target := current + float64(direction)*step
	if ctrl.Type == core.ParamTypeInt {
		target = math.Round(target)
	}
	if ctrl.HasMin {
		target = max(target, ctrl.Min)
	}
	if ctrl.HasMax {
		target = min(target, ctrl.Max)
	}
	return target, math.Abs(target-current) > 1e-9
}

func formatValue(ctrl core.ParameterControl, v float64) string {
	if ctrl.Type == core.ParamTypeInt {
		return strconv.Itoa(int(math.Round(v)))
	}
	precision := 1
	switch {
	case ctrl.Step < 0.001:
		precision = 4
	case ctrl.Step < 0.01:
		precision = 3
	case ctrl.Step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}
