package ui

import (
	"image"
	"math"
	"strconv"

	"fluid-ca/internal/core"
)

type hudControlState struct {
	control core.ParameterControl
	value   string

	intValue  int
	boolValue bool
	hasValue  bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

const (
	panelPadding   = 12
	lineHeight     = 30
	statsLine      = 16
	buttonSize     = 22
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 20
	infoSpacing    = 36
	controlsTop    = panelPadding + headerBaseline + 14
)

func newControlStates(controls []core.ParameterControl, width int) []hudControlState {
	states := make([]hudControlState, len(controls))
	for i, ctrl := range controls {
		states[i] = hudControlState{control: ctrl, value: "--"}
	}
	layoutControls(states, width)
	return states
}

func layoutControls(states []hudControlState, width int) {
	if len(states) == 0 || width <= 0 {
		return
	}
	for i := range states {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		states[i].top = top
		states[i].minusRect = minusRect
		states[i].plusRect = plusRect
	}
}

// statsTop is the baseline of the first stats line, below the controls.
func statsTop(controls int) int {
	return controlsTop + controls*lineHeight + infoSpacing/2
}

// refresh loads the state's displayed value from a snapshot parameter.
func (s *hudControlState) refresh(param core.Parameter, ok bool) {
	s.hasValue = false
	s.value = "--"
	if !ok {
		return
	}
	switch s.control.Type {
	case core.ParamTypeInt:
		parsed, err := strconv.Atoi(param.Value)
		if err != nil {
			return
		}
		s.intValue = parsed
		s.value = strconv.Itoa(parsed)
	case core.ParamTypeBool:
		parsed, err := strconv.ParseBool(param.Value)
		if err != nil {
			return
		}
		s.boolValue = parsed
		s.value = onOff(parsed)
	default:
		return
	}
	s.hasValue = true
}

func intTarget(ctrl core.ParameterControl, current, direction int) (int, bool) {
	step := int(math.Round(ctrl.Step))
	if step <= 0 {
		step = 1
	}
	target := current + direction*step
	if ctrl.HasMin {
		target = max(target, int(math.Round(ctrl.Min)))
	}
	if ctrl.HasMax {
		target = min(target, int(math.Round(ctrl.Max)))
	}
	return target, target != current
}

// boolTarget maps the plus button to on and the minus button to off.
func boolTarget(current bool, direction int) (bool, bool) {
	target := direction > 0
	return target, target != current
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}
