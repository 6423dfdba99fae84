package httputil

import (
	"github.com/gin-gonic/gin"
)

// RequestHost returns the base URL the client used to reach the
// backend, honoring the x-forwarded-* headers a reverse proxy sets.
//
// When x-forwarded-host is present, the proxy's prefix is appended so
// that generated links point back through the proxy; an unset prefix
// falls back to "/api". Without a proxy the request host is used as-is.
// The scheme is http unless x-forwarded-proto says https.
func RequestHost(c *gin.Context) string {
	scheme := "http"
	if c.Request.Header.Get("x-forwarded-proto") == "https" {
		scheme = "https"
	}

	host := c.Request.Host
	var prefix string

	if forwardedHost := c.Request.Header.Get("x-forwarded-host"); forwardedHost != "" {
		host = forwardedHost

		prefix = c.Request.Header.Get("x-forwarded-prefix")
		if prefix == "" {
			prefix = "/api"
		}
	}

	return scheme + "://" + host + prefix
}
