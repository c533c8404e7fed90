// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens database connections and creates the schema.

# Connections

Open selects the driver by database type:

	conn, err := db.Open(db.TypeSQLite, db.SQLiteURL("voting_system.db"))
	conn, err := db.Open(db.TypePostgres, "postgres://...")

SQLite uses modernc.org/sqlite and is limited to one open connection, so
all transactions are serialized. PostgreSQL uses github.com/lib/pq.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - voter: Registered voters and their has_voted flag
  - candidate: Candidates and their running votes_count
  - vote: One immutable row per cast ballot

# Relationships

	voter 1──0..1 vote
	candidate 1──* vote

Foreign keys have no ON DELETE action: a voter or candidate that is still
referenced by a vote cannot be removed.

# Indexes

  - voter.email (unique)
  - voter.name, candidate.name (dual-role lookups)
  - voter.has_voted (statistics)
  - vote.voter_id (unique)
  - vote.candidate_id
*/
package db
