// Package outcome defines the per-target result vocabulary of a delivery run.
package outcome

import (
	"fmt"
	"sync"
)

// Status is the terminal state of one delivery attempt.
type Status string

const (
	Delivered    Status = "delivered"
	Replaced     Status = "replaced"
	Unchanged    Status = "unchanged"
	Filtered     Status = "filtered"
	Excluded     Status = "excluded"
	NotAvailable Status = "not_available"
	NotFound     Status = "not_found"
	Failed       Status = "failed"
)

// Icon returns the leading marker of a status line.
func (s Status) Icon() string {
	switch s {
	case Delivered:
		return "✅"
	case Replaced:
		return "♻️"
	case Unchanged, Filtered, Excluded:
		return "⏩"
	case NotAvailable, NotFound:
		return "⚠️"
	case Failed:
		return "❌"
	default:
		return "•"
	}
}

// Updated reports whether the status counts as an asset update.
func (s Status) Updated() bool {
	return s == Delivered || s == Replaced
}

// Outcome is one line of a run's report.
type Outcome struct {
	Status  Status `json:"status"`
	Message string `json:"message"`
	Library string `json:"library,omitempty"`
	Title   string `json:"title,omitempty"`
}

func (o Outcome) String() string {
	return o.Status.Icon() + " " + o.Message
}

// New builds an Outcome with a formatted message.
func New(status Status, format string, args ...any) Outcome {
	return Outcome{Status: status, Message: fmt.Sprintf(format, args...)}
}

// In sets the library the outcome applies to.
func (o Outcome) In(library string) Outcome {
	o.Library = library
	return o
}

// Summary aggregates the outcomes of a run. It is safe for concurrent use.
type Summary struct {
	mu        sync.Mutex
	Processed int            `json:"processed"`
	Updated   int            `json:"updated"`
	Counts    map[Status]int `json:"counts"`
	Outcomes  []Outcome      `json:"outcomes"`
}

// NewSummary returns an empty Summary.
func NewSummary() *Summary {
	return &Summary{Counts: make(map[Status]int)}
}

// Add records an outcome.
func (s *Summary) Add(o Outcome) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Outcomes = append(s.Outcomes, o)
	s.Counts[o.Status]++
	if o.Status.Updated() {
		s.Updated++
	}
}

// Record counts one processed record.
func (s *Summary) Record() {
	s.mu.Lock()
	s.Processed++
	s.mu.Unlock()
}

// Line is the final report line.
func (s *Summary) Line() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fmt.Sprintf("✔️ Finished processing. %d records processed, %d assets updated.", s.Processed, s.Updated)
}
