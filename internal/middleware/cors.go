package middleware

import (
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

// wildcardOrigin is a parsed origin pattern like "https://*.example.com".
// The wildcard matches exactly one subdomain label.
type wildcardOrigin struct {
	scheme string
	suffix string
}

// parseWildcardOrigin parses an origin pattern containing a single "*"
// subdomain wildcard. Returns nil for exact origins and malformed
// patterns.
func parseWildcardOrigin(pattern string) *wildcardOrigin {
	var scheme string
	switch {
	case strings.HasPrefix(pattern, "https://"):
		scheme = "https://"
	case strings.HasPrefix(pattern, "http://"):
		scheme = "http://"
	default:
		return nil
	}

	host := pattern[len(scheme):]
	if !strings.HasPrefix(host, "*.") {
		return nil
	}
	suffix := host[1:] // ".example.com"
	if strings.Contains(suffix, "*") {
		return nil
	}
	// Require at least two labels after the wildcard so "https://*.com"
	// cannot be registered.
	if strings.Count(suffix, ".") < 2 {
		return nil
	}
	return &wildcardOrigin{scheme: scheme, suffix: suffix}
}

// matches reports whether origin is the pattern's scheme plus exactly one
// subdomain label followed by the pattern's suffix.
func (w *wildcardOrigin) matches(origin string) bool {
	if !strings.HasPrefix(origin, w.scheme) {
		return false
	}
	host := origin[len(w.scheme):]
	if !strings.HasSuffix(host, w.suffix) {
		return false
	}
	label := host[:len(host)-len(w.suffix)]
	return label != "" && !strings.Contains(label, ".")
}

// CORS middleware to handle cross-origin requests
// Reads CORS_ALLOWED_ORIGINS environment variable to restrict origins.
// Entries may be exact origins or single-subdomain wildcard patterns
// like "https://*.zeen-app.pages.dev". If not set, defaults to "*"
// (allow all origins).
func CORS() gin.HandlerFunc {
	allowedOriginsStr := os.Getenv("CORS_ALLOWED_ORIGINS")
	allowAll := allowedOriginsStr == ""

	var exactOrigins []string
	var wildcards []*wildcardOrigin
	if !allowAll {
		for _, origin := range strings.Split(allowedOriginsStr, ",") {
			origin = strings.TrimSpace(origin)
			if origin == "" {
				continue
			}
			if w := parseWildcardOrigin(origin); w != nil {
				wildcards = append(wildcards, w)
				continue
			}
			exactOrigins = append(exactOrigins, origin)
		}
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		// Determine if this origin is allowed
		if allowAll {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		} else {
			allowed := false
			for _, exact := range exactOrigins {
				if origin == exact {
					allowed = true
					break
				}
			}
			if !allowed {
				for _, w := range wildcards {
					if w.matches(origin) {
						allowed = true
						break
					}
				}
			}

			if allowed {
				c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
				c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			} else {
				// Origin not allowed, but still need to reject preflight
				if c.Request.Method == "OPTIONS" {
					c.AbortWithStatus(403)
					return
				}
			}
		}

		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-Request-ID, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
