package model

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

func RandGamma(mean, cv float64, src rand.Source) float64 {
	if cv <= 0 {
		panic("cv must be > 0")
	}

	k := 1.0 / (cv * cv)
	theta := mean / k

	g := distuv.Gamma{
		Alpha: k,
		Beta:  1.0 / theta,
		Src:   src,
	}
	return g.Rand()
}

func RandNormal(mean, cv float64, src rand.Source) float64 {
	n := distuv.Normal{
		Mu:    mean,
		Sigma: mean * cv,
		Src:   src,
	}

	return n.Rand()
}

func RandLogNormal(mean, sigma float64, src rand.Source) float64 {
	lnDist := distuv.LogNormal{
		Mu:    mean,
		Sigma: sigma,
		Src:   src,
	}

	return lnDist.Rand()
}

// RandExp draws an inter-arrival time for a Poisson process with the given rate.
func RandExp(rate float64, src rand.Source) float64 {
	e := distuv.Exponential{
		Rate: rate,
		Src:  src,
	}
	return e.Rand()
}
