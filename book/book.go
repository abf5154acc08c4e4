// Package book holds the table of contents of "Structure and Interpretation
// of Computer Programs" as it is laid out in the HTML edition.
package book

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBadEntry is returned by Validate for malformed table entries.
var ErrBadEntry = errors.New("bad table of contents entry")

// Title is either literal text or a placeholder to be replaced with an
// automatically generated chapter label.
type Title struct {
	text string
	auto bool
}

// Text returns literal title.
func Text(s string) Title {
	return Title{text: s}
}

// AutoNumber returns title which is rendered as "Chapter N".
func AutoNumber() Title {
	return Title{auto: true}
}

func (t Title) IsAutoNumbered() bool {
	return t.auto
}

// Label returns text to be presented to the reader, number is positional
// number of the entry in the navigation map.
func (t Title) Label(number string) string {
	if t.auto {
		return "Chapter " + number
	}
	return t.text
}

func (t Title) String() string {
	if t.auto {
		return "<auto>"
	}
	return t.text
}

// Entry is single node of the table of contents. ID is the numeric suffix of
// the HTML file (book-Z-H-<ID>.html) entry points to.
type Entry struct {
	ID       int
	Title    Title
	Children []Entry
}

// Contents is ordered table of contents, order is the reading order.
type Contents []Entry

// Count returns total number of entries on all levels.
func (c Contents) Count() int {
	n := 0
	for _, e := range c {
		n += 1 + Contents(e.Children).Count()
	}
	return n
}

// Validate makes sure ids are positive and unique across the whole tree and
// that literal titles are not blank.
func (c Contents) Validate() error {
	return c.validate(make(map[int]struct{}))
}

func (c Contents) validate(seen map[int]struct{}) error {
	for _, e := range c {
		if e.ID <= 0 {
			return fmt.Errorf("%w: id %d is not positive", ErrBadEntry, e.ID)
		}
		if _, exists := seen[e.ID]; exists {
			return fmt.Errorf("%w: duplicate id %d", ErrBadEntry, e.ID)
		}
		seen[e.ID] = struct{}{}
		if !e.Title.auto && strings.TrimSpace(e.Title.text) == "" {
			return fmt.Errorf("%w: id %d has empty title", ErrBadEntry, e.ID)
		}
		if err := Contents(e.Children).validate(seen); err != nil {
			return err
		}
	}
	return nil
}
