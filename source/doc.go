// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package source wraps the external record store behind the RecordSource
interface.

Three implementations exist:

  - Airtable: flat records, fields object per record
  - ClickUp: tasks with a nested status object and a custom-field side
    table carrying the company
  - Mock: a fixed five-record demo set, one per pipeline bucket

The adapter is chosen exactly once at construction (source.New) from
configuration, never inferred per call, so the live/mock decision is
observable through Mode() and tests can force either side.

Failure policy: a live fetch that errors (network failure or non-success
response) returns the error with an empty slice. Callers are expected to
log a warning and render whatever they have; no failure crosses this
boundary as a panic or a fatal condition. Create on an unconfigured
(mock) source is a silent no-op.
*/
package source
