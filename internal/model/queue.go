package model

import "sync"

type QueueSnapshot struct {
	T      float64
	Length int
	Busy   bool
}

// Queue is a single FIFO server. Jobs are admitted in arrival order and
// start when the previous one finishes.
type Queue struct {
	Length    int
	BusyUntil float64
	Served    int
	Snapshots []*QueueSnapshot
	mu        sync.Mutex
}

func NewQueue() *Queue {
	return &Queue{Snapshots: make([]*QueueSnapshot, 0)}
}

// Admit enqueues a job arriving at now and returns its service start.
func (q *Queue) Admit(now, service float64) (start float64) {
	q.mu.Lock()
	defer q.mu.Unlock()
	start = max(now, q.BusyUntil)
	q.BusyUntil = start + service
	q.Length++
	return start
}

func (q *Queue) Done() {
	q.mu.Lock()
	q.Length--
	q.Served++
	q.mu.Unlock()
}

func (q *Queue) AddSnapshot(t float64) {
	q.mu.Lock()
	q.Snapshots = append(q.Snapshots, &QueueSnapshot{
		T:      t,
		Length: q.Length,
		Busy:   q.BusyUntil > t,
	})
	q.mu.Unlock()
}
