package retrospector

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// FrameAnimation cycles through a sequence of atlas linear indices, one
// per fixed duration. Feed it the per-tick time delta and draw whatever
// Frame returns:
//
//	anim.Update(dt)
//	sprite, _ := atlas.SpriteAt(anim.Frame())
//	r.DrawImage(sprite, at)
//
// There is no global animation manager; callers drive Update themselves.
type FrameAnimation struct {
	frames    []int
	frameTime float64 // milliseconds per frame
	elapsed   float64
	cursor    int
	loop      bool
	done      bool
}

// NewFrameAnimation creates an animation over the given atlas indices with
// frameTime milliseconds per frame. When loop is false the animation holds
// its last frame once the sequence ends.
func NewFrameAnimation(frames []int, frameTime float64, loop bool) *FrameAnimation {
	return &FrameAnimation{frames: frames, frameTime: frameTime, loop: loop}
}

// Update advances the animation by dt milliseconds.
func (a *FrameAnimation) Update(dt float64) {
	if a.done || len(a.frames) == 0 || a.frameTime <= 0 {
		return
	}
	a.elapsed += dt
	for a.elapsed >= a.frameTime {
		a.elapsed -= a.frameTime
		a.cursor++
		if a.cursor < len(a.frames) {
			continue
		}
		if a.loop {
			a.cursor = 0
		} else {
			a.cursor = len(a.frames) - 1
			a.done = true
			return
		}
	}
}

// Frame returns the atlas linear index for the current frame, or -1 for an
// empty animation.
func (a *FrameAnimation) Frame() int {
	if len(a.frames) == 0 {
		return -1
	}
	return a.frames[a.cursor]
}

// Done reports whether a non-looping animation has reached its last frame.
func (a *FrameAnimation) Done() bool { return a.done }

// Reset rewinds the animation to its first frame.
func (a *FrameAnimation) Reset() {
	a.elapsed = 0
	a.cursor = 0
	a.done = false
}

// Slide eases a Location from a start point to a target over a fixed
// duration. Update takes the tick delta in seconds and returns the current
// location; Done is set once both axes arrive.
type Slide struct {
	x, y *gween.Tween
	at   Location
	Done bool
}

// NewSlide creates a slide from one location to another over duration
// seconds using the given easing function.
func NewSlide(from, to Location, duration float32, fn ease.TweenFunc) *Slide {
	return &Slide{
		x:  gween.New(float32(from.DX), float32(to.DX), duration, fn),
		y:  gween.New(float32(from.DY), float32(to.DY), duration, fn),
		at: from,
	}
}

// Update advances the slide by dt seconds and returns the eased location.
func (s *Slide) Update(dt float32) Location {
	if s.Done {
		return s.at
	}
	x, xDone := s.x.Update(dt)
	y, yDone := s.y.Update(dt)
	s.at = Location{DX: float64(x), DY: float64(y)}
	s.Done = xDone && yDone
	return s.at
}

// At returns the slide's current location without advancing it.
func (s *Slide) At() Location { return s.at }
