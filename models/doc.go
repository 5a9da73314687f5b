/*
Package models defines the domain types and the JSON request/response
shapes for the PLM Translator API.

The TestResult field names and JSON tags mirror the columns of the
test_results table; optional text columns map to pointer fields so that
NULL survives a round trip through the API.
*/
package models
