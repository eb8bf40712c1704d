// Package stats aggregates task records into time-tracking statistics.
//
// Aggregate is a pure function: given a list of tasks and an inclusive date
// range it produces total/billable/break hour sums, a per-project breakdown
// sorted by hours descending, a gap-free daily series covering every
// calendar day in the range, and a weekly roll-up keyed by ISO week Monday
// for ranges longer than two weeks. All accumulation happens in seconds;
// values are converted to hours and rounded only at the edges, so sorting
// and the sum properties are not disturbed by rounding.
package stats
