// Package clientip resolves the caller's IP address behind reverse proxies.
//
// A Resolver checks the configured proxy headers in order and falls back to
// the connection's RemoteAddr. Addresses are validated and normalized, so
// garbage header values are skipped instead of logged.
//
//	ips := clientip.New() // X-Forwarded-For, X-Real-IP
//	r.Use(ips.Middleware)
//	log := logger.New(logger.WithContextExtractors(clientip.Extractor()))
//
// Only enable headers your proxy overwrites; clients can set any header.
package clientip
