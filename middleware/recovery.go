package middleware

import (
	"net/http"
	"runtime/debug"

	"simplenotes/utils"

	"github.com/gin-gonic/gin"
	"github.com/juju/loggo"
)

var logger = loggo.GetLogger("notes.middleware")

func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Errorf("panic serving %s %s (request %s): %v\n%s",
					c.Request.Method, c.Request.URL.Path, c.GetString("request_id"), err, debug.Stack())
				TrackError("panic")
				if c.Writer.Written() {
					c.Abort()
					return
				}
				utils.InternalError(c, http.StatusText(http.StatusInternalServerError))
				c.Abort()
			}
		}()
		c.Next()
	}
}
