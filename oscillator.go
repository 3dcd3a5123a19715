package glquad

import "github.com/chewxy/math32"

// Oscillator moves a value linearly back and forth between two bounds.
// The direction flips on the first step after the value leaves the range, so
// the value overshoots a bound by at most one step.
type Oscillator struct {
	value    float32
	step     float32
	min, max float32
}

// NewOscillator starts at start, moving up by step.
func NewOscillator(start, step, min, max float32) *Oscillator {
	return &Oscillator{value: start, step: math32.Abs(step), min: min, max: max}
}

// Value returns the current value without advancing.
func (o *Oscillator) Value() float32 {
	return o.value
}

// Next returns the current value and then advances by one step.
func (o *Oscillator) Next() float32 {
	v := o.value
	switch {
	case o.value > o.max:
		o.step = -math32.Abs(o.step)
	case o.value < o.min:
		o.step = math32.Abs(o.step)
	}
	o.value += o.step
	return v
}
