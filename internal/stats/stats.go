package stats

import "sync"

// Trace collects the events of one simulation run.
type Trace struct {
	mu       sync.Mutex
	Arrivals []*ArrivalEvent
	Jobs     []*JobEvent
}

type ArrivalEvent struct {
	T     float64
	JobID int64
}

type JobEvent struct {
	JobID   int64
	Arrival float64
	Start   float64
	End     float64
}

func (e *JobEvent) Wait() float64 { return e.Start - e.Arrival }

func NewTrace() *Trace {
	return &Trace{
		mu:       sync.Mutex{},
		Arrivals: make([]*ArrivalEvent, 0),
		Jobs:     make([]*JobEvent, 0),
	}
}

func (tr *Trace) AddArrival(ae *ArrivalEvent) {
	tr.mu.Lock()
	tr.Arrivals = append(tr.Arrivals, ae)
	tr.mu.Unlock()
}

func (tr *Trace) AddJob(je *JobEvent) {
	tr.mu.Lock()
	tr.Jobs = append(tr.Jobs, je)
	tr.mu.Unlock()
}

// Waits returns the queueing delay of every completed job.
func (tr *Trace) Waits() []float64 {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	w := make([]float64, len(tr.Jobs))
	for i, j := range tr.Jobs {
		w[i] = j.Wait()
	}
	return w
}
