// Package ratesync implements a multi-source utility-rate reconciliation
// pipeline.
//
// # Architecture
//
// The pipeline is structured into several key packages:
//   - reference: static reference tables (query points, customer counts,
//     EIA state averages, net-metering policy)
//   - openei: rate API client with bounded retries and response caching
//   - extract: pure heuristics deriving rate, structure, and ownership
//     classifications from raw API items
//   - reconcile: per-state merge of all query results into one record per
//     utility identity, with known-utility backfill
//   - aggregate: per-state and national summary arithmetic
//   - output: JSON file writer
//   - pipeline: sequential state-by-state runner
//
// Data flows one way: reference tables feed the client's queries, the
// extractor normalizes each raw item, the reconciler deduplicates by EIA
// identifier with last-writer-wins-by-start-date semantics, and the
// aggregator rolls the per-utility records into the output files.
//
// Query failures degrade to empty results with narrower coverage; no
// error escapes the per-state loop short of context cancellation.
package ratesync
