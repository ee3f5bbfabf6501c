// Package analytics turns the two raw business datasets — client
// contract history and yearly department finances — into the derived
// tables consumed by the reporting surface.
//
// # Architecture
//
// The package has two layers:
//
// 1. Normalizer: cleans and validates the raw rows into an immutable Snapshot
// 2. Analyzers: six independent metric computations over that snapshot
//
// The analyzers have no dependencies on each other and produce disjoint
// outputs, so the pipeline runs them concurrently.
//
// # Usage
//
//	pipeline := analytics.NewPipeline(logger, prometheus.DefaultRegisterer)
//	report, err := pipeline.Run(ctx, clientsDataset, financeDataset)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Error Handling
//
// Row-level defects in the client data (missing company or department,
// unparseable year) drop the row and never surface past normalization.
// A finance row whose Year cannot be cast to an integer is fatal and
// aborts the run before any analyzer executes: every downstream join
// assumes integer years. Ratios with a zero denominator yield nil
// metric values, never an error.
//
// # Determinism
//
// Every computation is a pure function of the snapshot. Iteration over
// grouping maps is always followed by an explicit sort, so two runs on
// identical inputs produce identical reports.
package analytics
