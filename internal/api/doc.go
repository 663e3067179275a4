// Package api contains the HTTP handlers and the error-to-status mapping
// for the public JSON API. Handlers translate between transport and the
// service layer; they never touch the stores directly.
package api
