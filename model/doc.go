// Package model defines the record types shared by the loader, the database,
// the filters and the writers.
//
// # Records
//
//   - NEO: a near-Earth object keyed by its primary designation
//   - CloseApproach: one recorded pass of an NEO near Earth
//
// An approach carries the designation of its NEO as a plain string until the
// database links it; after linking, CloseApproach.NEO points at the owning NEO
// and the approach is listed in NEO.Approaches.
//
// # Time Formats
//
// Close-approach data uses calendar dates such as "2020-Jan-01 12:30".
// Output uses "2020-01-01 12:30". Both are UTC.
package model
