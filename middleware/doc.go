/*
Package middleware provides HTTP helpers shared by all handlers.

# Components

  - WithLogging: wraps handlers with slog request/duration logging
  - JSONResponse: UTF-8 JSON writer with HTML escaping disabled
  - FailureResponse: the {success:false, error} failure body
  - ErrorResponse: the bare {error} body (delete, export)
  - ParseJSONBody: request body decoding
  - CORS: permissive cross-origin headers with preflight handling
*/
package middleware
