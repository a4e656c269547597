package main

import "fluid-ca/internal/sims/fluid"

type settleReport struct {
	Ticks   uint64
	Settled bool
	Initial int
	Rained  int
	Final   int
	Lost    int
}

// runSettle rains for rainTicks, then steps until the grid stops changing or
// maxSteps ticks have run in total.
func runSettle(f *fluid.Fluid, maxSteps, rainTicks int, onTick func(uint64, fluid.StepStats)) settleReport {
	rep := settleReport{Initial: f.Grid().TotalWater()}
	for i := 0; i < maxSteps; i++ {
		raining := i < rainTicks
		f.SetRaining(raining)
		before := f.Grid().TotalWater()
		f.Step()
		stats := f.LastStats()
		// Rain lands before the step, so the gain is what the step did not explain.
		rep.Rained += f.Grid().TotalWater() - before + stats.Settled
		rep.Lost += stats.Settled
		if onTick != nil {
			onTick(f.Tick(), stats)
		}
		if !raining && f.Quiescent() {
			rep.Settled = true
			break
		}
	}
	f.SetRaining(false)
	rep.Ticks = f.Tick()
	rep.Final = f.Grid().TotalWater()
	return rep
}
