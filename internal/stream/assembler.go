// Package stream accumulates normalized per-page text into one logical
// document per column, in page order, with page and character accounting.
package stream

import (
	"strings"
	"unicode/utf8"

	"gazette-extractor/internal/types"
)

// PageSeparator joins consecutive page texts so paragraph boundaries stay
// visible without page-number markers.
const PageSeparator = "\n\n"

// Result is the finalized output of one column stream
type Result struct {
	Side      types.ColumnSide `json:"side"`
	Text      string           `json:"-"`
	PageCount int              `json:"page_count"` // pages that contributed text
	CharCount int              `json:"char_count"` // runes across contributed text
}

// Assembler collects normalized page texts for one column. It is owned by
// a single extraction run; there is no concurrent writer and no locking.
type Assembler struct {
	side     types.ColumnSide
	segments []string
	pages    []int // page indices that contributed, ascending
	skipped  []int // page indices that yielded no text
	chars    int
}

// NewAssembler creates an empty assembler for one column side
func NewAssembler(side types.ColumnSide) *Assembler {
	return &Assembler{side: side}
}

// Side returns the column side this assembler accumulates
func (a *Assembler) Side() types.ColumnSide {
	return a.side
}

// Append adds one page's normalized text to the stream. Empty text is
// skipped entirely: it contributes no segment and no separator, so blank
// pages cannot accumulate runs of empty separators. The skipped page index
// is still recorded for downstream page accounting.
func (a *Assembler) Append(pageIndex int, text string) {
	if text == "" {
		a.skipped = append(a.skipped, pageIndex)
		return
	}
	a.segments = append(a.segments, text)
	a.pages = append(a.pages, pageIndex)
	a.chars += utf8.RuneCountInString(text)
}

// PageCount returns the number of pages that have contributed text so far
func (a *Assembler) PageCount() int {
	return len(a.pages)
}

// CharCount returns the running rune count of contributed text
func (a *Assembler) CharCount() int {
	return a.chars
}

// SkippedPages returns the indices of pages that yielded no text, in the
// order they were visited.
func (a *Assembler) SkippedPages() []int {
	return a.skipped
}

// Finalize joins the accumulated segments with the page separator and
// returns the result with its counters. It is read-only over accumulated
// state: calling it twice without further appends yields identical output.
func (a *Assembler) Finalize() Result {
	return Result{
		Side:      a.side,
		Text:      strings.Join(a.segments, PageSeparator),
		PageCount: len(a.pages),
		CharCount: a.chars,
	}
}
