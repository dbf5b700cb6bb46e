// SPDX-License-Identifier: Unlicense OR MIT

package stepper

import (
	"image"
	"math"
	"strconv"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op/clip"
)

// Control identifies a button of a Stepper.
type Control uint8

const (
	// Decrement is the button that lowers the value by one.
	Decrement Control = iota
	// Increment is the button that raises the value by one.
	Increment
)

// Stepper is a non-negative counter adjusted by a decrement and an
// increment button. Use New to create a Stepper; the zero value is
// not usable.
type Stepper struct {
	ready     bool
	value     int
	text      string
	observers []func(*Stepper)

	// buttons are the areas of the decrement and increment buttons
	// as of the last Layout, relative to the stepper.
	buttons [2]image.Rectangle
	// pressed is the button under the active press, if pressing.
	pressed  Control
	pressing bool
	pid      pointer.ID
}

// New returns a Stepper with value 1.
func New() *Stepper {
	s := &Stepper{ready: true}
	s.SetValue(1)
	return s
}

// Value returns the current value.
func (s *Stepper) Value() int {
	s.mustBeReady()
	return s.value
}

// SetValue sets the value, clamping negative values to 0. Observers
// are not notified.
func (s *Stepper) SetValue(v int) {
	s.mustBeReady()
	if v < 0 {
		v = 0
	}
	s.value = v
	s.text = strconv.Itoa(v)
}

// Text returns the decimal representation of the value, as
// displayed by the label.
func (s *Stepper) Text() string {
	s.mustBeReady()
	return s.text
}

// OnChange registers f to be called after every tap. Observers are
// called in registration order.
func (s *Stepper) OnChange(f func(s *Stepper)) {
	s.mustBeReady()
	s.observers = append(s.observers, f)
}

// Tap adjusts the value as if the button c was tapped and notifies
// the observers. Tap reports false and does nothing for an unknown
// control.
func (s *Stepper) Tap(c Control) bool {
	s.mustBeReady()
	switch c {
	case Decrement:
		s.SetValue(s.value - 1)
	case Increment:
		if s.value < math.MaxInt {
			s.SetValue(s.value + 1)
		}
	default:
		return false
	}
	for _, f := range s.observers {
		f(s)
	}
	return true
}

// Update processes the pending pointer events in the order they
// arrived and taps a button for every press released over the same
// button. It reports whether any button was tapped.
func (s *Stepper) Update(gtx layout.Context) bool {
	s.mustBeReady()
	tapped := false
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: s,
			Kinds:  pointer.Press | pointer.Release | pointer.Cancel,
		})
		if !ok {
			break
		}
		e, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		if c, ok := s.tapUp(e); ok {
			tapped = s.Tap(c) || tapped
		}
	}
	return tapped
}

// tapUp tracks the press of a pointer and reports the button tapped
// when it is released.
func (s *Stepper) tapUp(e pointer.Event) (Control, bool) {
	switch e.Kind {
	case pointer.Press:
		if s.pressing {
			break
		}
		if e.Source == pointer.Mouse && e.Buttons != pointer.ButtonPrimary {
			break
		}
		if c, ok := s.hit(e.Position); ok {
			s.pressed, s.pressing, s.pid = c, true, e.PointerID
		}
	case pointer.Release:
		if !s.pressing || e.PointerID != s.pid {
			break
		}
		s.pressing = false
		if c, ok := s.hit(e.Position); ok && c == s.pressed {
			return c, true
		}
	case pointer.Cancel:
		s.pressing = false
	}
	return 0, false
}

func (s *Stepper) hit(p f32.Point) (Control, bool) {
	pt := image.Pt(int(math.Floor(float64(p.X))), int(math.Floor(float64(p.Y))))
	for i, r := range s.buttons {
		if pt.In(r) {
			return Control(i), true
		}
	}
	return 0, false
}

// Layout lays out the decrement button, the label and the increment
// button in a row, spread over the minimum width, and registers the
// stepper for pointer input. Each button covers the full height of
// the row.
func (s *Stepper) Layout(gtx layout.Context, decrease, label, increase layout.Widget) layout.Dimensions {
	s.mustBeReady()
	var decW, incW int
	dims := layout.Flex{
		Axis:      layout.Horizontal,
		Spacing:   layout.SpaceBetween,
		Alignment: layout.Middle,
	}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			d := decrease(gtx)
			decW = d.Size.X
			return d
		}),
		layout.Rigid(label),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			d := increase(gtx)
			incW = d.Size.X
			return d
		}),
	)
	sz := dims.Size
	s.buttons[Decrement] = image.Rect(0, 0, decW, sz.Y)
	s.buttons[Increment] = image.Rect(sz.X-incW, 0, sz.X, sz.Y)

	defer clip.Rect{Max: sz}.Push(gtx.Ops).Pop()
	event.Op(gtx.Ops, s)
	for _, r := range s.buttons {
		st := clip.Rect(r).Push(gtx.Ops)
		pointer.CursorPointer.Add(gtx.Ops)
		st.Pop()
	}
	return dims
}

// UnmarshalText is not supported: a Stepper cannot be decoded, only
// created by New. It always panics.
//
// Decoders that bypass UnmarshalText and UnmarshalJSON leave a zero
// Stepper, which panics on first use.
func (s *Stepper) UnmarshalText(text []byte) error {
	panic("stepper: UnmarshalText is not implemented; create Steppers with New")
}

// UnmarshalJSON is not supported, for any JSON input. It always
// panics.
func (s *Stepper) UnmarshalJSON(data []byte) error {
	panic("stepper: UnmarshalJSON is not implemented; create Steppers with New")
}

func (s *Stepper) mustBeReady() {
	if !s.ready {
		panic("stepper: Stepper not created by New")
	}
}

func (c Control) String() string {
	switch c {
	case Decrement:
		return "decrement"
	case Increment:
		return "increment"
	default:
		return "Control(" + strconv.Itoa(int(c)) + ")"
	}
}
