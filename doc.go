// Package rentbook computes derived financial and operational metrics from a
// landlord's rental ledger: monthly cash flow, tenant delinquency, unit
// vacancy cost, opex/capex expense classification, a point-in-time rent
// roll, year-over-year revenue comparison, and capital cost allowance
// (declining-balance tax depreciation with the half-year rule).
//
// The package is a pure computation layer: it consumes an immutable
// in-memory Ledger snapshot, never mutates it, and emits ordered flat report
// rows with numerically exact decimal arithmetic. Storage, ingestion and
// rendering are external collaborators; see the rbk command for a CLI that
// loads JSONL ledger files and renders each report as a markdown table.
//
// This is cash-basis single-pass aggregation, not a double-entry
// bookkeeping engine.
package rentbook
