package tween

type handleState int

const (
	stateRunning handleState = iota
	stateCompleted
	stateCancelled
)

// Handle refers to one submitted animation.
type Handle struct {
	id         uint64
	anim       Animation
	onComplete func()
	state      handleState
}

// ID is unique per scheduler.
func (h *Handle) ID() uint64 {
	return h.id
}

// Running reports whether the animation is still being stepped.
func (h *Handle) Running() bool {
	return h.state == stateRunning
}

// Completed reports whether the animation ran to its end.
func (h *Handle) Completed() bool {
	return h.state == stateCompleted
}

// Cancel stops a running animation. Its completion callback will not fire.
func (h *Handle) Cancel() {
	if h.state == stateRunning {
		h.state = stateCancelled
	}
}

// Scheduler steps submitted animations once per frame and fires each
// completion callback exactly once. It is not safe for concurrent use; call it
// from the update loop only.
type Scheduler struct {
	handles  []*Handle
	finished []*Handle
	nextID   uint64
}

// NewScheduler returns an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Submit starts stepping anim from the next Update. onComplete may be nil.
func (s *Scheduler) Submit(anim Animation, onComplete func()) *Handle {
	if anim == nil {
		anim = NewParallel()
	}
	s.nextID++
	h := &Handle{
		id:         s.nextID,
		anim:       anim,
		onComplete: onComplete,
	}
	s.handles = append(s.handles, h)
	return h
}

// Update advances every running animation by dt seconds. Animations submitted
// from a completion callback start on the following Update.
func (s *Scheduler) Update(dt float64) {
	active := s.handles
	kept := active[:0]
	s.finished = s.finished[:0]
	for _, h := range active {
		if h.state != stateRunning {
			continue
		}
		if _, done := h.anim.Update(float32(dt)); !done {
			kept = append(kept, h)
			continue
		}
		h.state = stateCompleted
		s.finished = append(s.finished, h)
	}
	for i := len(kept); i < len(active); i++ {
		active[i] = nil
	}
	s.handles = kept

	for _, h := range s.finished {
		if h.onComplete != nil {
			h.onComplete()
		}
	}
}

// Len is the number of running animations.
func (s *Scheduler) Len() int {
	n := 0
	for _, h := range s.handles {
		if h.state == stateRunning {
			n++
		}
	}
	return n
}

// Clear cancels everything without firing callbacks.
func (s *Scheduler) Clear() {
	for _, h := range s.handles {
		h.Cancel()
	}
	s.handles = s.handles[:0]
}
