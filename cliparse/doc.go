/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 5000)
  - DatabaseURL: Connection string or sqlite file path (required)
  - DatabaseType: "sqlite" or "postgres" (default: sqlite)
  - TranslatorKey / TranslatorEndpoint / TranslatorRegion: Azure
    Translator credentials (optional)

# CLI Flags

	-p                    Server port
	-d                    Database URL
	-t                    Database type
	--translator-key      Azure Translator subscription key
	--translator-endpoint Azure Translator endpoint
	--translator-region   Azure Translator region

# Environment Variables

Flags fall back to environment variables:

	PORT                → -p
	DATABASE_URL        → -d
	DATABASE_TYPE       → -t
	TRANSLATOR_KEY      → --translator-key
	TRANSLATOR_ENDPOINT → --translator-endpoint
	TRANSLATOR_REGION   → --translator-region

CLI flags take precedence over environment variables. Main loads a .env
file via godotenv before parsing, so a local .env feeds the same path.

# Validation

ParseFlags returns an error if DATABASE_URL is missing or DATABASE_TYPE
is not sqlite/postgres. Translator credentials are deliberately not
required here: the translator client reports "not configured" per call,
so the rest of the app stays usable without them.
*/
package cliparse
