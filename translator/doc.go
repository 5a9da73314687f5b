/*
Package translator wraps the Microsoft Azure Translator API.

# Components

  - Service.Translate: one HTTP round trip per call, 30s timeout, no
    retries. Failures come back as typed, user-facing errors.
  - Service.SupportedLanguages: the language catalog, fetched once with
    a 10s timeout and cached for the process lifetime. Failures degrade
    to a fixed fallback list and never reach the caller.

# Configuration

The service needs TRANSLATOR_KEY, TRANSLATOR_ENDPOINT and
TRANSLATOR_REGION. Without them Translate returns ErrNotConfigured
before any network call; the language catalog still works since the
listing endpoint is unauthenticated.

# Wire format

Translate POSTs a one-element JSON array [{"text": ...}] to
{endpoint}/translator/text/v3.0/translate?api-version=3.0&to={lang}
with Ocp-Apim-Subscription-Key and Ocp-Apim-Subscription-Region
headers, and reads the first translation of the first array element
of the response.
*/
package translator
