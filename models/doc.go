/*
Package models defines the canonical domain and transport types shared by
every component of the Congress Kanban server.

# Pipeline Statuses

The board has exactly five columns, in a fixed order:

	INVITACIÓN → ACEPTADO → EN ESPERA → VALIDACIÓN DOCTOS → ACEPTADOS

The Status values are the literal labels used by the external record
store. Matching against them is case-insensitive (see the board package)
but otherwise value-exact. Records whose status matches no label are
assigned DefaultStatus (INVITACIÓN) rather than dropped.

# Record Shapes

RawRecord is what record source adapters produce: the external record
reduced to id, name, raw status string, and raw company string. Each
external API (Airtable-style flat fields, ClickUp-style nested status and
custom-field side table) maps its own shape into RawRecord so the
normalizer never sees API-specific structure.

Client is the normalized record: status resolved to a bucket, company
defaulted to the "N/A" sentinel when the source had none.

# Board

Board maps Status to clients in source fetch order. It is a derived,
disposable view: rebuilt in full on every fetch, never cached across
requests, never patched in place. The external record store remains the
sole source of truth.
*/
package models
