// Package app assembles the roman binary: it turns Config into a logger and
// a translator and runs either the interactive shell or the HTTP API.
package app
