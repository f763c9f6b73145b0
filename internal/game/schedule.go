package game

// ScheduledAction runs against the simulation when its countdown expires
type ScheduledAction func(s *Simulation)

type scheduledEvent struct {
	remaining int
	action    ScheduledAction
}

// Scheduler is a frame-countdown queue for delayed effects
type Scheduler struct {
	events []scheduledEvent
}

// After queues action to run once frames gameplay ticks have elapsed
func (q *Scheduler) After(frames int, action ScheduledAction) {
	if action == nil {
		return
	}
	q.events = append(q.events, scheduledEvent{remaining: max(frames, 1), action: action})
}

// Pending returns the number of queued events
func (q *Scheduler) Pending() int {
	return len(q.events)
}

// Advance counts every event down by one frame and runs the ones that expire,
// in the order they were queued. Actions queued while advancing wait for the
// next tick.
func (q *Scheduler) Advance(s *Simulation) {
	if len(q.events) == 0 {
		return
	}

	var due []ScheduledAction
	keep := q.events[:0]
	for _, ev := range q.events {
		ev.remaining--
		if ev.remaining <= 0 {
			due = append(due, ev.action)
			continue
		}
		keep = append(keep, ev)
	}
	clear(q.events[len(keep):])
	q.events = keep

	for _, action := range due {
		action(s)
	}
}

// Reset drops every pending event
func (q *Scheduler) Reset() {
	q.events = nil
}
