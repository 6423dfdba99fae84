package sharedprops

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const contextKey = "lumen-ledger-snapshot"

// Middleware computes the snapshot once per request and stores it on
// the context for downstream handlers.
//
// A failed computation is logged and leaves no snapshot behind, the
// request itself proceeds. Handlers that need the error, like the
// shared endpoint, call Share directly instead.
func (p *Producer) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		snapshot, err := p.Share(c)
		if err != nil {
			log.Error().Err(err).Msg("snapshot computation failed")
			return
		}

		c.Set(contextKey, snapshot)
	}
}

// FromContext returns the snapshot the middleware stored for this
// request. ok is false when the middleware did not run or failed.
func FromContext(c *gin.Context) (Snapshot, bool) {
	value, exists := c.Get(contextKey)
	if !exists {
		return Snapshot{}, false
	}

	return value.(Snapshot), true
}
