// File: width.go
// Title: Display Width and Grapheme Clusters
// Description: Terminal column width measurement and width based padding
//              and truncation, plus helpers that treat user perceived
//              characters (grapheme clusters) as the unit instead of runes.
// Author: satish049
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial implementation

package stringx

import (
	"strings"

	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/mattn/go-runewidth"
)

// displayCondition measures widths for a non East Asian locale with emoji
// counted by their Unicode width property.
var displayCondition = newDisplayCondition()

func newDisplayCondition() *runewidth.Condition {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = false
	cond.StrictEmojiNeutral = true
	return cond
}

// DisplayWidth returns the number of monospace terminal columns s occupies.
// Wide East Asian characters take two columns, combining marks none.
func DisplayWidth(s string) int {
	return displayCondition.StringWidth(s)
}

// PadLeftWidth pads s on the left with pad until it occupies width
// columns. A pad wider than the remaining space is not written.
func PadLeftWidth(s string, width int, pad rune) string {
	n := widthPadCount(s, width, pad)
	if n == 0 {
		return s
	}
	return RepeatRune(pad, n) + s
}

// PadRightWidth pads s on the right with pad until it occupies width
// columns.
func PadRightWidth(s string, width int, pad rune) string {
	n := widthPadCount(s, width, pad)
	if n == 0 {
		return s
	}
	return s + RepeatRune(pad, n)
}

func widthPadCount(s string, width int, pad rune) int {
	missing := width - DisplayWidth(s)
	if missing <= 0 {
		return 0
	}
	pw := displayCondition.RuneWidth(pad)
	if pw <= 0 {
		return 0
	}
	return missing / pw
}

// TruncateWidth cuts s so that it, followed by tail, fits in width
// columns. Grapheme clusters are never split. s is returned unchanged when
// it already fits.
func TruncateWidth(s string, width int, tail string) string {
	if DisplayWidth(s) <= width {
		return s
	}
	budget := width - DisplayWidth(tail)
	if budget <= 0 {
		return ""
	}

	var sb strings.Builder
	used := 0
	iter := graphemes.FromString(s)
	for iter.Next() {
		w := displayCondition.StringWidth(iter.Value())
		if used+w > budget {
			break
		}
		used += w
		sb.WriteString(iter.Value())
	}
	sb.WriteString(tail)
	return sb.String()
}

// Graphemes splits s into grapheme clusters, so "é" and flag emoji
// stay whole. An empty s yields an empty slice.
func Graphemes(s string) []string {
	out := []string{}
	iter := graphemes.FromString(s)
	for iter.Next() {
		out = append(out, iter.Value())
	}
	return out
}

// GraphemeCount returns the number of grapheme clusters in s.
func GraphemeCount(s string) int {
	n := 0
	iter := graphemes.FromString(s)
	for iter.Next() {
		n++
	}
	return n
}

// ReverseGraphemes reverses s cluster by cluster, keeping combining marks
// attached to their base character.
func ReverseGraphemes(s string) string {
	gs := Graphemes(s)
	var sb strings.Builder
	sb.Grow(len(s))
	for i := len(gs) - 1; i >= 0; i-- {
		sb.WriteString(gs[i])
	}
	return sb.String()
}
