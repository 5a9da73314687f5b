/*
Package db handles database connection and schema creation.

Two backends are supported, selected by Config.DatabaseType:

  - sqlite (modernc.org/sqlite, pure Go) for local development and tests
  - postgres (lib/pq) for deployments

The schema is a single test_results table. CreateSchema is idempotent
and runs at startup, so no external migration tooling is needed.
*/
package db
