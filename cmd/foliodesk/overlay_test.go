package main

import (
	"strings"
	"testing"
)

func TestOverlayPlainBlocks(t *testing.T) {
	bg := strings.Join([]string{
		"..........",
		"..........",
		"..........",
	}, "\n")
	fg := "AB\nCD"

	got := overlay(2, 1, fg, bg)
	want := strings.Join([]string{
		"..........",
		"..AB......",
		"..CD......",
	}, "\n")
	if got != want {
		t.Errorf("overlay =\n%s\nwant\n%s", got, want)
	}
}

func TestOverlayAtOrigin(t *testing.T) {
	got := overlay(0, 0, "XX", "....\n....")
	want := "XX..\n...."
	if got != want {
		t.Errorf("overlay = %q, want %q", got, want)
	}
}

func TestOverlayPreservesUncoveredRows(t *testing.T) {
	bg := "aaaa\nbbbb\ncccc"
	got := overlay(1, 1, "Z", bg)
	lines := strings.Split(got, "\n")
	if lines[0] != "aaaa" || lines[2] != "cccc" {
		t.Errorf("uncovered rows changed: %q", got)
	}
	if lines[1] != "bZbb" {
		t.Errorf("covered row = %q, want bZbb", lines[1])
	}
}

func TestCutLeft(t *testing.T) {
	tests := []struct {
		s    string
		cut  int
		want string
	}{
		{"abcdef", 2, "cdef"},
		{"abcdef", 0, "abcdef"},
		{"abcdef", 6, ""},
		{"abcdef", 10, ""},
	}
	for _, tt := range tests {
		if got := cutLeft(tt.s, tt.cut); got != tt.want {
			t.Errorf("cutLeft(%q, %d) = %q, want %q", tt.s, tt.cut, got, tt.want)
		}
	}
}

func TestClipBlock(t *testing.T) {
	got := clipBlock("abcdef\nxy", 4, 3)
	want := "abcd\nxy  \n    "
	if got != want {
		t.Errorf("clipBlock = %q, want %q", got, want)
	}
}

func TestClipBlockTruncatesHeight(t *testing.T) {
	got := clipBlock("a\nb\nc\nd", 1, 2)
	if got != "a\nb" {
		t.Errorf("clipBlock = %q, want %q", got, "a\nb")
	}
}
