package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lutongbahay/v2/internal/ports/inbound"
)

const (
	// GuestSessionHeader carries the client-held guest session ID.
	// The middleware mints one when absent and echoes it back so the
	// client can persist it.
	GuestSessionHeader = "X-Guest-Session"

	callerContextKey = "caller"
)

// Identify resolves the caller for every request. A valid Bearer
// token yields an authenticated caller; otherwise the request runs as
// a guest under its session header.
func Identify(jwtSecret string, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, ok := userFromToken(c, jwtSecret, logger); ok {
			c.Set(callerContextKey, inbound.Caller{UserID: userID})
			c.Next()
			return
		}

		sessionID := c.GetHeader(GuestSessionHeader)
		if sessionID == "" {
			sessionID = "guest_" + uuid.NewString()
		}
		c.Header(GuestSessionHeader, sessionID)

		c.Set(callerContextKey, inbound.Caller{SessionID: sessionID})
		c.Next()
	}
}

// CallerFrom extracts the resolved caller from the gin context
func CallerFrom(c *gin.Context) inbound.Caller {
	if v, ok := c.Get(callerContextKey); ok {
		if caller, ok := v.(inbound.Caller); ok {
			return caller
		}
	}
	return inbound.Caller{}
}

// userFromToken validates the Bearer token and extracts the user ID
// from the subject claim. An invalid token demotes the request to
// guest rather than rejecting it; endpoints that require an account
// reject guests themselves.
func userFromToken(c *gin.Context, secret string, logger *zap.Logger) (uuid.UUID, bool) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return uuid.Nil, false
	}
	tokenString := strings.TrimPrefix(header, "Bearer ")

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		logger.Debug("Rejected bearer token", zap.Error(err))
		return uuid.Nil, false
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		logger.Debug("Token subject is not a user ID", zap.String("subject", subject))
		return uuid.Nil, false
	}
	return userID, true
}
