package domain

import "fmt"

// BookletContent is the generated travel-guide document associated with one
// preferences submission. Section content is markdown text (headings, lists,
// emphasis, block quotes) rendered by the client.
type BookletContent struct {
	Title    string           `json:"title"`
	Summary  string           `json:"summary"`
	Sections []BookletSection `json:"sections"`
}

// BookletSection is one titled chunk of a booklet, in reading order.
type BookletSection struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Validate checks that a parsed booklet has the minimum usable shape:
// a title, a summary, and at least one section with a non-empty title.
// Model output that parses as JSON but misses these is still unusable.
func (b *BookletContent) Validate() error {
	if b.Title == "" {
		return &GenerationError{Reason: "booklet has no title"}
	}
	if b.Summary == "" {
		return &GenerationError{Reason: "booklet has no summary"}
	}
	if len(b.Sections) == 0 {
		return &GenerationError{Reason: "booklet has no sections"}
	}
	for i, s := range b.Sections {
		if s.Title == "" {
			return &GenerationError{Reason: fmt.Sprintf("booklet section %d has no title", i+1)}
		}
	}
	return nil
}
