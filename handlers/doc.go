/*
Package handlers contains the HTTP request handlers for the API.

# Handler Groups

  - TranslateHandler: /languages, /translate, /azure-user — the
    translator service surface
  - ResultsHandler: /save-test-results, /test-results,
    /export-test-results, DELETE /test-results/{id} — the result store
    surface

Handlers validate with the validate package before any I/O, log through
slog, and shape responses with the middleware helpers. Translation and
save failures use {success:false, error}; delete and export use the
bare {error} body.
*/
package handlers
