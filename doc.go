// Package capgains computes realized capital gains and losses for asset
// sales, replaying a chronological ledger of buy and sell events through a
// strict First-In-First-Out (FIFO) lot matching engine.
//
// The core functionalities include:
//   - Journal: an immutable, chronologically sorted sequence of normalized
//     trade events, the single source of truth for a run.
//   - Holdings Ledger: a per-symbol FIFO queue of open lots, created fresh
//     for each replay and owned exclusively by it.
//   - Lot Consumption: matching a sale against the oldest open lots first,
//     splitting the last matched lot when it is larger than the sale, and
//     prorating acquisition fees against the consumed fraction.
//   - Gains Reporting: the cumulative realized gain for a requested reporting
//     year, with one audit row per qualifying sale.
//
// This package serves as the foundational logic for the `cgt` command-line
// tool. Ingestion of raw exchange exports lives in the bitstamp subpackage.
package capgains
