// Package api exposes numeral conversion over HTTP.
//
// Routes:
//
//	GET /convert?numeral=XIV   200 {"code":"ok","data":{...}}
//	                           422 {"error":{"code":"validation_error",...}}
//	GET /healthz               200 ALIVE
//
// Error messages are translated with pkg/i18n according to the request's
// Accept-Language header. Every response carries an X-Request-ID header;
// the same id is attached to log records written while serving the request.
package api
