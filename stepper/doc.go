// SPDX-License-Identifier: Unlicense OR MIT

// Package stepper implements a numeric stepper control for Gio: a
// decrement button, a value label and an increment button laid out in
// a row. Stepper holds the state and processes clicks; Style draws it
// with a material theme.
package stepper
