// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db owns the sqlite schema and the session store.

The only table is session: the client records live in the external
record store, and the board is a disposable projection that is never
persisted. Schema creation is idempotent:

	err := db.CreateSchema(conn)

Sessions expire after SessionTTL (24h). Expired rows are ignored by Get
and swept by DeleteExpired at startup.
*/
package db
