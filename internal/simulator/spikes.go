package simulator

import (
	"github.com/emrzvv/genrand/internal/config"
	"github.com/fschuetz04/simgo"
)

func generateSpikes(
	proc simgo.Process,
	cfg *config.Config,
	rc *rateCtrl) {

	for _, sp := range cfg.Simulation.Spikes {
		wait := sp.At - proc.Now()
		if wait > 0 {
			proc.Wait(proc.Timeout(wait))
		}
		rc.Set(rc.base * sp.Factor)
		proc.Wait(proc.Timeout(sp.Duration))
		rc.Set(rc.base)
	}
}
