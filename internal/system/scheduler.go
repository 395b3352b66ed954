// internal/system/scheduler.go
package system

import "container/heap"

// Scheduler — очередь отложенных действий на времени симуляции.
// Время двигается только через Advance, поэтому пауза замораживает все задержки.
type Scheduler struct {
	now   float64
	seq   uint64
	queue taskQueue
}

type task struct {
	at  float64
	seq uint64
	run func()
}

type taskQueue []task

func (q taskQueue) Len() int { return len(q) }
func (q taskQueue) Less(i, j int) bool {
	if q[i].at != q[j].at {
		return q[i].at < q[j].at
	}
	return q[i].seq < q[j].seq
}
func (q taskQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *taskQueue) Push(x any)   { *q = append(*q, x.(task)) }
func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	*q = old[:n-1]
	return t
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now is the simulation time of the last Advance.
func (s *Scheduler) Now() float64 { return s.now }

// After schedules fn to run delay seconds from now. Actions with equal due
// time run in insertion order.
func (s *Scheduler) After(delay float64, fn func()) {
	s.seq++
	heap.Push(&s.queue, task{at: s.now + max(0, delay), seq: s.seq, run: fn})
}

// Advance moves the clock to now and runs every due action, including ones
// scheduled by actions during the drain. While an action runs the clock reads
// its due time, so nested delays count from there.
func (s *Scheduler) Advance(now float64) {
	for len(s.queue) > 0 && s.queue[0].at <= now {
		t := heap.Pop(&s.queue).(task)
		s.now = max(s.now, t.at)
		t.run()
	}
	if now > s.now {
		s.now = now
	}
}

func (s *Scheduler) Len() int { return len(s.queue) }
