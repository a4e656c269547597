package fluid

import (
	"strconv"

	"fluid-ca/internal/core"
)

func (f *Fluid) Parameters() core.ParameterSnapshot {
	params := f.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("w", "Columns", f.cfg.Width),
				intParam("h", "Rows", f.cfg.Height),
				intParam("cell", "Cell size", f.cfg.CellSize),
				intParam("max_water", "Max water", params.MaxWater),
				int64Param("seed", "Seed", f.cfg.Seed),
				{Key: "scene", Label: "Scene", Value: f.cfg.Scene},
			},
		},
		{
			Name: "Flow",
			Params: []core.Parameter{
				intParam("gravity_rate", "Gravity rate", params.GravityRate),
				intParam("flow_rate", "Flow rate", params.FlowRate),
				intParam("min_spread", "Min spread level", params.MinSpreadLevel),
				intParam("pressure_threshold", "Pressure threshold", params.PressureThreshold),
				intParam("pressure_divisor", "Pressure divisor", params.PressureDivisor),
				intParam("settle_threshold", "Settle threshold", params.SettleThreshold),
				boolParam("clamp_outflow", "Clamp outflow", params.ClampOutflow),
			},
		},
		{
			Name: "Input",
			Params: []core.Parameter{
				intParam("brush_amount", "Brush amount", params.BrushAmount),
				intParam("rain_drops", "Rain drops", params.RainDrops),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the HUD-adjustable rules. Grid geometry and
// capacity are fixed for the lifetime of the sim.
func (f *Fluid) ParameterControls() []core.ParameterControl {
	maxWater := float64(f.cfg.Params.MaxWater)
	return []core.ParameterControl{
		intControl("gravity_rate", "Gravity rate", 5, 0, maxWater),
		intControl("flow_rate", "Flow rate", 5, 0, maxWater),
		intControl("min_spread", "Min spread", 1, 0, maxWater),
		intControl("pressure_threshold", "Pressure diff", 1, 0, maxWater),
		intControl("pressure_divisor", "Pressure div", 1, float64(f.cfg.Params.minPressureDivisor()), 10),
		intControl("settle_threshold", "Settle below", 1, 0, maxWater),
		intControl("brush_amount", "Brush amount", 10, 0, maxWater),
		intControl("rain_drops", "Rain drops", 1, 0, 32),
		{Key: "clamp_outflow", Label: "Clamp outflow", Type: core.ParamTypeBool},
	}
}

// SetIntParameter updates an integer rule, clamping it to the control's
// bounds. Callers apply it between ticks.
func (f *Fluid) SetIntParameter(key string, value int) bool {
	for _, ctrl := range f.ParameterControls() {
		if ctrl.Key != key || ctrl.Type != core.ParamTypeInt {
			continue
		}
		if ctrl.HasMin && value < int(ctrl.Min) {
			value = int(ctrl.Min)
		}
		if ctrl.HasMax && value > int(ctrl.Max) {
			value = int(ctrl.Max)
		}
		p := &f.cfg.Params
		switch key {
		case "gravity_rate":
			p.GravityRate = value
		case "flow_rate":
			p.FlowRate = value
		case "min_spread":
			p.MinSpreadLevel = value
		case "pressure_threshold":
			p.PressureThreshold = value
		case "pressure_divisor":
			p.PressureDivisor = value
		case "settle_threshold":
			p.SettleThreshold = value
		case "brush_amount":
			p.BrushAmount = value
		case "rain_drops":
			p.RainDrops = value
		default:
			return false
		}
		return true
	}
	return false
}

// SetBoolParameter toggles a boolean rule.
func (f *Fluid) SetBoolParameter(key string, value bool) bool {
	switch key {
	case "clamp_outflow":
		f.cfg.Params.ClampOutflow = value
		f.cfg.Params = f.cfg.Params.normalized()
		return true
	}
	return false
}

// Stats reports runtime counters for the HUD.
func (f *Fluid) Stats() []core.Parameter {
	state := "flowing"
	if f.Quiescent() {
		state = "settled"
	}
	rain := "off"
	if f.raining {
		rain = "on"
	}
	return []core.Parameter{
		{Key: "tick", Label: "Tick", Type: core.ParamTypeInt, Value: strconv.FormatUint(f.tick, 10)},
		intParam("total_water", "Total water", f.grid.TotalWater()),
		intParam("fell", "Fell", f.last.Fell),
		intParam("spread", "Spread", f.last.Spread),
		intParam("settled", "Settled", f.last.Settled),
		{Key: "state", Label: "State", Value: state},
		{Key: "rain", Label: "Rain", Value: rain},
	}
}

func intControl(key, label string, step, min, max float64) core.ParameterControl {
	return core.ParameterControl{
		Key:    key,
		Label:  label,
		Type:   core.ParamTypeInt,
		Step:   step,
		Min:    min,
		Max:    max,
		HasMin: true,
		HasMax: true,
	}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}
