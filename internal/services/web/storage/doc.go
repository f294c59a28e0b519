// Package storage declares persistence interfaces for web-owned session data.
//
// Sessions and wizard drafts are a server-side cache; offers live in the
// backend and are the source of truth.
package storage
