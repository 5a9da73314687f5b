/*
Package main provides the entry point for the PLM Translator API server.

PLM Translator is a web front-end for translating text through the
Azure Translator API and recording human-reviewed translation-quality
checks, with paginated querying and xlsx export of the recorded results.

# Starting the Server

The server requires a database URL via environment variables, a .env
file, or CLI flags:

	DATABASE_URL=results.db go run .

Or with flags:

	go run . -p 5000 -d results.db -t sqlite

# Configuration

Required settings:

  - DATABASE_URL (-d): connection string (postgres) or file path (sqlite)

Optional settings:

  - PORT (-p): Server port (default: 5000)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - TRANSLATOR_KEY / TRANSLATOR_ENDPOINT / TRANSLATOR_REGION: Azure
    Translator credentials; without them /translate answers with a
    "not configured" error while everything else keeps working

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (translation, test results)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Domain and request/response types
  - translator: Azure Translator client and language catalog cache
  - store: Test-result persistence and pagination
  - export: xlsx serialization
  - validate: Payload validators
  - db: Connection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
