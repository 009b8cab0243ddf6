// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package board normalizes raw records from a record source into the fixed
five-bucket pipeline board.

Normalization is a pure projection with three rules:

  - the status token is trimmed and uppercased, then matched exactly
    against the five column labels; no fuzzy matching
  - an unmatched (or missing) status falls back to INVITACIÓN, never
    dropping the record
  - an empty company becomes the "N/A" sentinel

The record count is preserved: the bucket sizes always sum to the input
length, and order within each bucket is the input order.
*/
package board
