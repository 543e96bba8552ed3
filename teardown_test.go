// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vkshell

import (
	"slices"
	"testing"
)

func TestTeardownReverseOrder(t *testing.T) {
	var got []string
	var td teardown
	for _, name := range []string{"a", "b", "c"} {
		td.push(name, func() { got = append(got, name) })
	}

	td.unwind()

	if want := []string{"c", "b", "a"}; !slices.Equal(got, want) {
		t.Errorf("unwind order = %v, want %v", got, want)
	}
}

func TestTeardownRunsOnce(t *testing.T) {
	n := 0
	var td teardown
	td.push("count", func() { n++ })

	td.unwind()
	td.unwind()

	if n != 1 {
		t.Errorf("release ran %d times, want 1", n)
	}
}

func TestTeardownEmpty(t *testing.T) {
	var td teardown
	td.unwind()
}
