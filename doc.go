// Package sellbook turns a merchant's sold-item ledger into profit
// reports.
//
// The ledger is the merged export of marketplace transaction reports,
// one row per sold item. A cost catalog maps item names (through an
// alias table) to the acquisition cost in effect on a given date.
// Tallies accumulate sales, profit and margin statistics over inclusive
// date windows, and a Report assembles the standard set of tallies:
// all-time, one per calendar month, trailing 7/31/90/365 days and
// year-to-date.
package sellbook
