// Package harness provides scenario-driven conformance testing for the
// sync pipeline.
//
// Scenarios are YAML files describing a ticket fixture, an order fixture,
// and the expected outcome. The harness runs the full pipeline against
// in-memory fake collaborators and compares the final order note (or the
// preview text) against a golden file.
//
// # Scenario Format
//
//	name: scenario_name
//	description: "What this scenario validates"
//	ticket:
//	  id: 123456
//	  missing: false
//	  annotations:
//	    - id: 1
//	      body: "A273302 please hold shipment"
//	      author: Ahmed Anwar
//	      created_at: 2025-11-29T18:10:00Z
//	      private: true
//	orders:
//	  - id: 9001
//	    name: A273302
//	    note: ""
//	dry_run: false
//	runs: 1
//	expect:
//	  outcome: updated
//	  code: ""
//	  reason_contains: ""
//	  order_name: A273302
//	  find_calls: 1
//	  update_calls: 1
//	  golden: true
//
// # Deterministic Testing
//
// Scenarios execute with a fixed run-id sequence and a discard logger so
// golden comparison is byte-stable across runs.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
package harness
