package simulator

import (
	"github.com/emrzvv/genrand/internal/config"
	"github.com/emrzvv/genrand/internal/model"
	"github.com/fschuetz04/simgo"
)

func collectSnapshots(
	proc simgo.Process,
	cfg *config.Config,
	queue *model.Queue) {

	step := cfg.Simulation.StepSeconds
	for t := 0.0; t < cfg.Simulation.TimeSeconds; t += step {
		proc.Wait(proc.Timeout(step))
		queue.AddSnapshot(proc.Now())
	}
}
