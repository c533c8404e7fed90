// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

LoadDotEnv reads a .env file first; variables already present in the
environment win and a missing file is ignored:

	if err := cliparse.LoadDotEnv(".env"); err != nil {
		log.Fatal(err)
	}

# Config Fields

  - Port: Server listen port (default: 8000)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - DatabaseURL: Connection string (default: local voting_system.db for sqlite)
  - JWTSecret: Enables the auth guard on mutating routes
  - AdminPasswordHash: bcrypt hash exchanged for tokens (required with JWTSecret)
  - TokenTTL: Access token lifetime (default: 30 minutes)
  - LogLevel: debug, info, warn or error (default: info)

# CLI Flags

	-p            Server port
	-t            Database type
	-d            Database URL
	-log-level    Log level
	-jwt-secret   JWT signing secret
	-admin-hash   Admin password hash
	-token-ttl    Token lifetime in minutes

# Environment Variables

Flags fall back to environment variables:

	PORT                → -p
	DATABASE_TYPE       → -t
	DATABASE_URL        → -d
	LOG_LEVEL           → -log-level
	JWT_SECRET          → -jwt-secret
	ADMIN_PASSWORD_HASH → -admin-hash
	TOKEN_TTL_MINUTES   → -token-ttl

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if:

  - PORT or TOKEN_TTL_MINUTES is not an integer
  - DATABASE_TYPE is not sqlite or postgres
  - DATABASE_URL is missing for postgres
  - JWT_SECRET is set without ADMIN_PASSWORD_HASH
*/
package cliparse
