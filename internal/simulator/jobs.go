package simulator

import (
	"github.com/emrzvv/genrand/internal/common"
	"github.com/emrzvv/genrand/internal/config"
	"github.com/emrzvv/genrand/internal/model"
	"github.com/emrzvv/genrand/internal/stats"
	"github.com/fschuetz04/simgo"
)

const minInterArrival = 1e-6

func generateJobs(
	proc simgo.Process,
	sim *simgo.Simulation,
	cfg *config.Config,
	rc *rateCtrl,
	queue *model.Queue,
	st *stats.Trace,
	rng *common.RNG) {

	var jobID int64
	for {
		ia := model.RandExp(rc.Get(), rng)
		if ia < minInterArrival {
			ia = minInterArrival
		}
		proc.Wait(proc.Timeout(ia))
		now := proc.Now()

		jobID++
		id := jobID
		st.AddArrival(&stats.ArrivalEvent{T: now, JobID: id})

		service := model.RandGamma(cfg.Simulation.ServiceMean, cfg.Simulation.ServiceCV, rng)
		start := queue.Admit(now, service)

		sim.Process(func(job simgo.Process) {
			job.Wait(job.Timeout(start + service - job.Now()))
			queue.Done()
			st.AddJob(&stats.JobEvent{
				JobID:   id,
				Arrival: now,
				Start:   start,
				End:     job.Now(),
			})
		})
	}
}
