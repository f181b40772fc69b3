// Package harness runs recovery scenarios: YAML files listing observation
// sequences and the parameters (or failure) recovery must produce.
//
// # Scenario Format
//
//	name: scenario_name
//	description: "What this scenario validates"
//	cases:
//	  - name: glibc
//	    preset: glibc
//	    count: 100
//	    expect:
//	      multiplier: "1103515245"
//	      increment: "12345"
//	      modulus: "2147483648"
//	  - name: composite
//	    generator: {multiplier: "6329", increment: "43291", modulus: "4294967295", seed: "1"}
//	    count: 10
//	    expect: {modulus: "4294967295"}
//	  - name: equal_first_pair
//	    states: ["3", "3", "5", "9", "17"]
//	    expect: {error: NON_INVERTIBLE_DIFFERENCE}
//
// Each case takes its observations from exactly one source: a catalog
// preset, an explicit generator, or literal states. Integers are strings,
// decimal or 0x-prefixed hex. known_modulus skips modulus recovery.
//
// Expected parameters are a subset match: only the fields given are
// compared. An expected error names a recovery error code.
//
// # Deterministic Output
//
// Cases run in file order and are numbered from 1. Results carry the
// observation ID of each sequence, so golden files pin both the inputs and
// the outcome.
//
// # Usage
//
//	scenario, err := harness.LoadScenario("testdata/scenarios/known_generators.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := harness.Run(scenario)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !result.Pass {
//	    for _, msg := range result.Errors {
//	        log.Println(msg)
//	    }
//	}
package harness
