package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lumenledger/backend/internal/httputil"
	"github.com/lumenledger/backend/internal/sharedprops"
)

// SharedResponse wraps the snapshot in the common response envelope.
type SharedResponse struct {
	Data  *sharedprops.Snapshot `json:"data"`
	Error *string               `json:"error" example:"there is no user matching your query"` // The error, if any occurred
}

// RegisterSharedRoutes registers the routes for the shared snapshot
// with the RouterGroup that is passed.
func RegisterSharedRoutes(r *gin.RouterGroup, producer *sharedprops.Producer) {
	r.OPTIONS("", OptionsShared)
	r.GET("", GetShared(producer))
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Shared
// @Success		204
// @Router			/v1/shared [options]
func OptionsShared(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Shared page state
// @Description	Returns the per-navigation snapshot of authentication, flash, configuration, preference and currency state
// @Tags			Shared
// @Produce		json
// @Success		200	{object}	SharedResponse
// @Failure		404	{object}	SharedResponse
// @Failure		500	{object}	SharedResponse
// @Router			/v1/shared [get]
func GetShared(producer *sharedprops.Producer) gin.HandlerFunc {
	return func(c *gin.Context) {
		snapshot, err := producer.Share(c)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), SharedResponse{
				Error: &s,
			})
			return
		}

		c.JSON(http.StatusOK, SharedResponse{Data: &snapshot})
	}
}
