// SPDX-License-Identifier: Unlicense OR MIT

package stepper_test

import (
	"encoding/json"
	"math"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dtuielement/uielements/stepper"
)

// record registers an observer on s and returns the values it saw.
func record(s *stepper.Stepper) *[]int {
	var got []int
	s.OnChange(func(s *stepper.Stepper) {
		got = append(got, s.Value())
	})
	return &got
}

func checkValue(t *testing.T, s *stepper.Stepper, want int) {
	t.Helper()
	if got := s.Value(); got != want {
		t.Errorf("got value %d; want %d", got, want)
	}
	if got, want := s.Text(), strconv.Itoa(want); got != want {
		t.Errorf("got text %q; want %q", got, want)
	}
}

func TestNew(t *testing.T) {
	s := stepper.New()
	checkValue(t, s, 1)
}

func TestTapDecrement(t *testing.T) {
	for _, tc := range []struct{ start, taps int }{
		{0, 1},
		{1, 1},
		{5, 3},
		{5, 5},
		{3, 10},
	} {
		s := stepper.New()
		s.SetValue(tc.start)
		got := record(s)
		for i := 0; i < tc.taps; i++ {
			if !s.Tap(stepper.Decrement) {
				t.Fatalf("decrement tap %d not handled", i)
			}
			if want := strconv.Itoa(s.Value()); s.Text() != want {
				t.Errorf("got text %q after tap %d; want %q", s.Text(), i, want)
			}
		}
		want := max(0, tc.start-tc.taps)
		checkValue(t, s, want)
		if n := len(*got); n != tc.taps {
			t.Errorf("start %d, %d taps: got %d notifications; want %d", tc.start, tc.taps, n, tc.taps)
		}
	}
}

func TestTapIncrement(t *testing.T) {
	for _, tc := range []struct{ start, taps int }{
		{0, 1},
		{1, 2},
		{7, 13},
	} {
		s := stepper.New()
		s.SetValue(tc.start)
		got := record(s)
		for i := 0; i < tc.taps; i++ {
			s.Tap(stepper.Increment)
		}
		checkValue(t, s, tc.start+tc.taps)
		if n := len(*got); n != tc.taps {
			t.Errorf("start %d, %d taps: got %d notifications; want %d", tc.start, tc.taps, n, tc.taps)
		}
	}
}

func TestTapTwice(t *testing.T) {
	s := stepper.New()
	got := record(s)
	s.Tap(stepper.Increment)
	s.Tap(stepper.Increment)
	checkValue(t, s, 3)
	if diff := cmp.Diff([]int{2, 3}, *got); diff != "" {
		t.Errorf("notifications mismatch (-want +got):\n%s", diff)
	}
}

func TestDecrementAtZero(t *testing.T) {
	s := stepper.New()
	s.SetValue(0)
	got := record(s)
	s.Tap(stepper.Decrement)
	checkValue(t, s, 0)
	if diff := cmp.Diff([]int{0}, *got); diff != "" {
		t.Errorf("notifications mismatch (-want +got):\n%s", diff)
	}
}

func TestTapUnknownControl(t *testing.T) {
	s := stepper.New()
	got := record(s)
	if s.Tap(stepper.Control(99)) {
		t.Error("unknown control was handled")
	}
	checkValue(t, s, 1)
	if len(*got) != 0 {
		t.Errorf("got %d notifications; want none", len(*got))
	}
}

func TestIncrementSaturates(t *testing.T) {
	s := stepper.New()
	s.SetValue(math.MaxInt)
	got := record(s)
	s.Tap(stepper.Increment)
	checkValue(t, s, math.MaxInt)
	if len(*got) != 1 {
		t.Errorf("got %d notifications; want 1", len(*got))
	}
}

func TestSetValue(t *testing.T) {
	s := stepper.New()
	got := record(s)
	for _, tc := range []struct{ in, want int }{
		{10, 10},
		{0, 0},
		{-1, 0},
		{math.MinInt, 0},
		{42, 42},
	} {
		s.SetValue(tc.in)
		checkValue(t, s, tc.want)
	}
	if len(*got) != 0 {
		t.Errorf("SetValue fired %d notifications; want none", len(*got))
	}
}

func TestObserverOrder(t *testing.T) {
	s := stepper.New()
	var calls []string
	for _, name := range []string{"a", "b", "c"} {
		name := name
		s.OnChange(func(o *stepper.Stepper) {
			if o != s {
				t.Errorf("observer %s got a different Stepper", name)
			}
			calls = append(calls, name+strconv.Itoa(o.Value()))
		})
	}
	s.Tap(stepper.Increment)
	s.Tap(stepper.Decrement)
	want := []string{"a2", "b2", "c2", "a1", "b1", "c1"}
	if diff := cmp.Diff(want, calls); diff != "" {
		t.Errorf("observer calls mismatch (-want +got):\n%s", diff)
	}
}

func TestControlString(t *testing.T) {
	for c, want := range map[stepper.Control]string{
		stepper.Decrement:  "decrement",
		stepper.Increment:  "increment",
		stepper.Control(7): "Control(7)",
	} {
		if got := c.String(); got != want {
			t.Errorf("got %q; want %q", got, want)
		}
	}
}

func TestUnsupportedConstruction(t *testing.T) {
	mustPanic := func(name string, f func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Errorf("%s did not panic", name)
			}
		}()
		f()
	}
	mustPanic("zero Stepper Tap", func() {
		var s stepper.Stepper
		s.Tap(stepper.Increment)
	})
	mustPanic("zero Stepper Value", func() {
		var s stepper.Stepper
		s.Value()
	})
	mustPanic("UnmarshalText", func() {
		s := stepper.New()
		s.UnmarshalText([]byte("3"))
	})
	mustPanic("zero Stepper OnChange", func() {
		var s stepper.Stepper
		s.OnChange(func(*stepper.Stepper) {})
	})
	mustPanic("json.Unmarshal string", func() {
		var s stepper.Stepper
		json.Unmarshal([]byte(`"3"`), &s)
	})
	mustPanic("json.Unmarshal object", func() {
		var s stepper.Stepper
		json.Unmarshal([]byte(`{}`), &s)
	})
}
