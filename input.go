package loopback

import "github.com/hajimehoshi/ebiten/v2"

// InputSample is one logical tick's worth of input: the cursor in buffer
// pixel coordinates and the primary button's classified click state.
type InputSample struct {
	Cursor Vec2
	Click  ClickState
}

// Sampler turns device input into InputSamples, one per tick. Synthetic
// samples queued with the Inject methods are consumed first, one per tick,
// ahead of the real device, so tests and scripted runs share the exact code
// path that live input takes.
type Sampler struct {
	prevDown bool
	last     Vec2
	queue    []InputSample
}

// Sample returns this tick's input. A queued synthetic sample wins over the
// device.
func (s *Sampler) Sample() InputSample {
	if len(s.queue) > 0 {
		smp := s.queue[0]
		copy(s.queue, s.queue[1:])
		s.queue = s.queue[:len(s.queue)-1]
		// Keep transition tracking coherent for when the queue drains.
		s.prevDown = smp.Click == ClickPressed || smp.Click == ClickHeld
		s.last = smp.Cursor
		return smp
	}
	return s.readDevice()
}

// Pending reports how many synthetic samples are still queued.
func (s *Sampler) Pending() int { return len(s.queue) }

// readDevice samples the mouse and classifies the button transition.
func (s *Sampler) readDevice() InputSample {
	mx, my := ebiten.CursorPosition()
	s.last = V2(float64(mx), float64(my))
	down := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	return InputSample{Cursor: s.last, Click: s.classify(down)}
}

// classify maps the raw button level to a ClickState using the previous
// tick's level: Pressed and Released fire exactly once per transition.
func (s *Sampler) classify(down bool) ClickState {
	prev := s.prevDown
	s.prevDown = down
	switch {
	case down && !prev:
		return ClickPressed
	case down && prev:
		return ClickHeld
	case !down && prev:
		return ClickReleased
	default:
		return ClickIdle
	}
}

// InjectPress queues a synthetic press at (x, y).
func (s *Sampler) InjectPress(x, y float64) {
	s.queue = append(s.queue, InputSample{Cursor: V2(x, y), Click: ClickPressed})
}

// InjectMove queues a synthetic held-button move at (x, y). Use between
// InjectPress and InjectRelease to simulate a drag.
func (s *Sampler) InjectMove(x, y float64) {
	s.queue = append(s.queue, InputSample{Cursor: V2(x, y), Click: ClickHeld})
}

// InjectRelease queues a synthetic release at (x, y).
func (s *Sampler) InjectRelease(x, y float64) {
	s.queue = append(s.queue, InputSample{Cursor: V2(x, y), Click: ClickReleased})
}

// InjectClick queues a press followed by a release at the same position.
// Consumes two ticks.
func (s *Sampler) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectDrag queues a full drag: press at (fromX, fromY), linearly
// interpolated held moves, and release at (toX, toY). The sequence consumes
// `ticks` ticks; the minimum is 2 (press + release).
func (s *Sampler) InjectDrag(fromX, fromY, toX, toY float64, ticks int) {
	if ticks < 2 {
		ticks = 2
	}
	s.InjectPress(fromX, fromY)
	steps := ticks - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		s.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	s.InjectRelease(toX, toY)
}
