// Package postgres contains the PostgreSQL-backed implementations of the
// store interfaces. All implementations accept a store.DBTX so they work
// against either a database connection or a transaction.
package postgres
