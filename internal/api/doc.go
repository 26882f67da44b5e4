// Package api contains the HTTP handlers, request/response models and
// error mapping for the service's REST endpoints. Handlers decode and
// validate input, call the relevant service or store, and translate
// internal errors into sanitized JSON responses.
package api
