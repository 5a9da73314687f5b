// Package validate holds the pure payload validators for the API.
// No I/O: handlers run these before touching the translator or the store.
package validate
