package harness

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Ahmed-Anwar-PMO/notesync/internal/notesync"
)

// Scenario defines one conformance test: fixtures, invocation, and
// expectations.
type Scenario struct {
	// Name uniquely identifies this scenario; it is also the golden file
	// name.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Ticket is the ticketing-side fixture.
	Ticket TicketFixture `yaml:"ticket"`

	// Orders is the commerce-side fixture.
	Orders []OrderFixture `yaml:"orders,omitempty"`

	// DryRun invokes the pipeline in preview mode.
	DryRun bool `yaml:"dry_run,omitempty"`

	// Runs invokes the pipeline this many times (default 1). Used to pin
	// the absence of deduplication.
	Runs int `yaml:"runs,omitempty"`

	// Expect describes the expected terminal state.
	Expect Expectation `yaml:"expect"`
}

// TicketFixture seeds the fake ticketing collaborator.
type TicketFixture struct {
	ID int64 `yaml:"id"`

	// Missing makes the collaborator report ticket-not-found.
	Missing bool `yaml:"missing,omitempty"`

	Annotations []AnnotationFixture `yaml:"annotations,omitempty"`
}

// AnnotationFixture is one ticket annotation, in source order.
type AnnotationFixture struct {
	ID        int64     `yaml:"id"`
	Body      string    `yaml:"body"`
	Author    string    `yaml:"author"`
	CreatedAt time.Time `yaml:"created_at"`
	Private   bool      `yaml:"private"`
}

// OrderFixture is one commerce order.
type OrderFixture struct {
	ID   int64  `yaml:"id"`
	Name string `yaml:"name"`
	Note string `yaml:"note,omitempty"`
}

// Expectation describes the expected result of the final run.
type Expectation struct {
	// Outcome is the expected terminal outcome: updated, skipped, failed.
	Outcome notesync.Outcome `yaml:"outcome"`

	// Code is the expected failure classification, empty on success.
	Code notesync.Code `yaml:"code,omitempty"`

	// ReasonContains is a substring the reason must contain.
	ReasonContains string `yaml:"reason_contains,omitempty"`

	// OrderName is the expected matched order name.
	OrderName string `yaml:"order_name,omitempty"`

	// FindCalls and UpdateCalls pin collaborator call counts across all
	// runs. Nil means unchecked.
	FindCalls   *int `yaml:"find_calls,omitempty"`
	UpdateCalls *int `yaml:"update_calls,omitempty"`

	// Golden compares the final order note (or the preview text for
	// skipped outcomes) against testdata/golden/<name>.golden.
	Golden bool `yaml:"golden,omitempty"`
}

// LoadScenario reads and validates a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario %s: %w", path, err)
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if sc.Name == "" {
		return nil, fmt.Errorf("scenario %s: name is required", path)
	}
	if sc.Ticket.ID == 0 {
		return nil, fmt.Errorf("scenario %s: ticket.id is required", path)
	}
	if sc.Expect.Outcome == "" {
		return nil, fmt.Errorf("scenario %s: expect.outcome is required", path)
	}
	if sc.Runs == 0 {
		sc.Runs = 1
	}
	return &sc, nil
}
