package cookie

import (
	"github.com/gin-gonic/gin"
)

// AccessTokenCookieName is set by the platform's account service; this
// service only reads it as an alternative to the Authorization header.
const AccessTokenCookieName = "access_token"

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}
