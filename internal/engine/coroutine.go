package engine

import "iter"

// YieldInstruction tells the scheduler when to resume a coroutine.
// The zero value resumes on the next frame.
type YieldInstruction struct {
	Seconds float32
}

// WaitForSeconds suspends a coroutine for the given scaled time.
func WaitForSeconds(seconds float32) YieldInstruction {
	return YieldInstruction{Seconds: seconds}
}

// NextFrame suspends a coroutine until the next Update.
var NextFrame = YieldInstruction{}

// Coroutine is a cooperative task. Each yielded instruction suspends it;
// the scene resumes it from Update once the wait has elapsed.
type Coroutine = iter.Seq[YieldInstruction]

type coroutine struct {
	owner   *GameObject
	next    func() (YieldInstruction, bool)
	stop    func()
	waiting float32
}

// StartCoroutine runs co until its first yield, then schedules the rest.
// Coroutines owned by a destroyed GameObject are stopped.
func (s *Scene) StartCoroutine(owner *GameObject, co Coroutine) {
	next, stop := iter.Pull(co)
	instr, ok := next()
	if !ok {
		stop()
		return
	}
	s.coroutines = append(s.coroutines, &coroutine{
		owner:   owner,
		next:    next,
		stop:    stop,
		waiting: instr.Seconds,
	})
}

// CoroutineCount returns the number of suspended coroutines.
func (s *Scene) CoroutineCount() int {
	return len(s.coroutines)
}

func (s *Scene) stepCoroutines(deltaTime float32) {
	pending := s.coroutines
	// Coroutines started during this step land in s.coroutines and run
	// from the next frame.
	s.coroutines = nil
	var kept []*coroutine
	for _, co := range pending {
		if co.owner != nil && co.owner.destroyed {
			co.stop()
			continue
		}
		co.waiting -= deltaTime
		if co.waiting > 0 {
			kept = append(kept, co)
			continue
		}
		instr, ok := co.next()
		if !ok {
			co.stop()
			continue
		}
		co.waiting = instr.Seconds
		kept = append(kept, co)
	}
	s.coroutines = append(kept, s.coroutines...)
}

func (s *Scene) stopCoroutines(owner *GameObject) {
	var kept []*coroutine
	for _, co := range s.coroutines {
		if co.owner == owner {
			co.stop()
			continue
		}
		kept = append(kept, co)
	}
	s.coroutines = kept
}
