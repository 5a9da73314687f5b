/*
Package router defines the route table using Go 1.22+ ServeMux method
routing.

NewRouter wires the translator service and the result store from the
given database handle and configuration, wraps every API route in the
logging middleware, and returns the mux for main to serve.
*/
package router
