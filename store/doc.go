/*
Package store is the persistence layer for TestResult records.

Queries are built with squirrel so the same code runs against sqlite
(question-mark placeholders) and postgres (dollar placeholders). Each
Save and Delete is one atomic transaction; List pairs a COUNT with a
LIMIT/OFFSET page, ordered by created_at DESC with id DESC as the
deterministic tiebreaker.
*/
package store
