// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the ballot-box API server.

ballot-box registers voters and candidates, records exactly one vote per
voter, and reports per-candidate tallies.

# Starting the Server

With no configuration the server listens on port 8000 and stores data in
a local SQLite file:

	go run .

PostgreSQL:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run .

Or with flags:

	go run . -p 8000 -t postgres -d "postgres://..."

A .env file in the working directory is loaded first.

# Configuration

Optional settings:

  - PORT (-p): Server port (default: 8000)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): Connection string (required for postgres)
  - LOG_LEVEL (-log-level): debug, info, warn, error
  - JWT_SECRET (-jwt-secret): Enables bearer tokens on mutating routes
  - ADMIN_PASSWORD_HASH (-admin-hash): Required with JWT_SECRET
  - TOKEN_TTL_MINUTES (-token-ttl): Token lifetime (default: 30)

Generate an admin password hash:

	go run . hash-password 's3cret'

# Architecture

  - handlers: HTTP request handlers (voters, candidates, votes, tokens)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, token guard, JSON helpers
  - election: Integrity rules and statistics
  - store: SQL access and transactions
  - models: Request/response types
  - auth: Tokens and password hashing
  - db: Connections and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
