// SPDX-License-Identifier: Unlicense OR MIT

package stepper

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"
)

// Style draws a Stepper.
type Style struct {
	Stepper *Stepper

	Decrease ButtonStyle
	Increase ButtonStyle
	// Label displays the value. Layout sets its Text to the value
	// text.
	Label material.LabelStyle

	Background   color.NRGBA
	CornerRadius unit.Dp
	// Width of the row of buttons and label.
	Width unit.Dp
}

// ButtonStyle draws a flat text button of a Stepper.
type ButtonStyle struct {
	Label material.LabelStyle
	Inset layout.Inset
}

var (
	black = color.NRGBA{A: 0xff}
	gray6 = color.NRGBA{R: 0xf2, G: 0xf2, B: 0xf7, A: 0xff}
)

// Number returns the default style of s: flat "-" and "+" buttons
// around a monospace value label on a rounded gray background.
func Number(th *material.Theme, s *Stepper) Style {
	st := Style{
		Stepper:      s,
		Decrease:     flatButton(th, "-"),
		Increase:     flatButton(th, "+"),
		Label:        material.Label(th, unit.Sp(15), s.Text()),
		Background:   gray6,
		CornerRadius: 15,
		Width:        90,
	}
	st.Label.Color = black
	st.Label.Font.Typeface = "Go Mono, monospace"
	st.Label.Alignment = text.Middle
	st.Label.MaxLines = 1
	return st
}

func flatButton(th *material.Theme, txt string) ButtonStyle {
	l := material.Label(th, th.TextSize, txt)
	l.Color = black
	l.Alignment = text.Middle
	l.MaxLines = 1
	return ButtonStyle{
		Label: l,
		Inset: layout.Inset{Top: 8, Bottom: 8, Left: 10, Right: 10},
	}
}

func (b ButtonStyle) Layout(gtx layout.Context) layout.Dimensions {
	return b.Inset.Layout(gtx, b.Label.Layout)
}

// Layout processes the taps of the Stepper and draws it. The width
// is fixed to Width within the constraints; the height is the minimum
// height of the constraints, or the height of the content if larger.
func (st *Style) Layout(gtx layout.Context) layout.Dimensions {
	st.Stepper.Update(gtx)
	st.Label.Text = st.Stepper.Text()

	w := gtx.Constraints.Constrain(image.Pt(gtx.Dp(st.Width), 0)).X
	gtx.Constraints.Min.X = w
	gtx.Constraints.Max.X = w
	return layout.Background{}.Layout(gtx,
		func(gtx layout.Context) layout.Dimensions {
			sz := gtx.Constraints.Min
			rr := gtx.Dp(st.CornerRadius)
			paint.FillShape(gtx.Ops, st.Background, clip.UniformRRect(image.Rectangle{Max: sz}, rr).Op(gtx.Ops))
			return layout.Dimensions{Size: sz}
		},
		func(gtx layout.Context) layout.Dimensions {
			return st.Stepper.Layout(gtx, st.Decrease.Layout, st.Label.Layout, st.Increase.Layout)
		},
	)
}
