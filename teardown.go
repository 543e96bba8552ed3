// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vkshell

// release is a single pending teardown step.
type release struct {
	name string
	fn   func()
}

// teardown records releases in acquisition order and runs them in reverse.
// Each release runs at most once.
type teardown struct {
	steps []release
}

// push records fn to be run by unwind.
func (t *teardown) push(name string, fn func()) {
	t.steps = append(t.steps, release{name: name, fn: fn})
}

// unwind runs pending releases last-in first-out and forgets them.
func (t *teardown) unwind() {
	log := Logger()
	for len(t.steps) > 0 {
		last := len(t.steps) - 1
		r := t.steps[last]
		t.steps = t.steps[:last]
		log.Debug("vkshell: release", "step", r.name)
		r.fn()
	}
}
