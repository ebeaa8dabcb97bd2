package simulator

import (
	"sync"

	"github.com/emrzvv/genrand/internal/common"
	"github.com/emrzvv/genrand/internal/config"
	"github.com/emrzvv/genrand/internal/model"
	"github.com/emrzvv/genrand/internal/stats"
	"github.com/fschuetz04/simgo"
	"github.com/rs/zerolog"
)

type rateCtrl struct {
	mu      sync.RWMutex
	base    float64
	current float64
}

func (r *rateCtrl) Get() float64 {
	r.mu.RLock()
	v := r.current
	r.mu.RUnlock()
	return v
}

func (r *rateCtrl) Set(v float64) {
	r.mu.Lock()
	r.current = v
	r.mu.Unlock()
}

// Run simulates a single FIFO queue fed by Poisson arrivals with gamma
// service times. Every random quantity comes from one generator seeded with
// cfg.Seed(), so equal configs give equal traces.
func Run(cfg *config.Config, log zerolog.Logger) (*stats.Trace, *model.Queue) {
	simulation := simgo.NewSimulation()
	trace := stats.NewTrace()
	queue := model.NewQueue()
	rng := common.NewRNG(cfg.Seed())

	rc := &rateCtrl{base: cfg.Simulation.ArrivalRate, current: cfg.Simulation.ArrivalRate}

	simulation.Process(func(proc simgo.Process) { collectSnapshots(proc, cfg, queue) })
	simulation.Process(func(proc simgo.Process) { generateSpikes(proc, cfg, rc) })
	simulation.Process(func(proc simgo.Process) {
		generateJobs(proc, simulation, cfg, rc, queue, trace, rng)
	})

	simulation.RunUntil(cfg.Simulation.TimeSeconds)

	log.Info().
		Int("arrivals", len(trace.Arrivals)).
		Int("served", queue.Served).
		Int("in_system", queue.Length).
		Msg("simulation finished")
	return trace, queue
}
