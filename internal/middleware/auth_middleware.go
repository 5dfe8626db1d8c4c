package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appauth "github.com/alumniconnect/backend/internal/app/auth"
	"github.com/alumniconnect/backend/internal/app/models"
	"github.com/alumniconnect/backend/internal/app/models/dto"
	"github.com/alumniconnect/backend/internal/app/repositories"
	"github.com/alumniconnect/backend/internal/pkg/auth"
	"github.com/alumniconnect/backend/internal/pkg/logger"
)

// JWTAuth verifies the bearer token, confirms the user still exists, and
// attaches the identity to the request context. Missing or malformed
// headers yield 401 "Authentication required"; every token verification
// failure collapses into a single 401 "Invalid or expired token" so the
// response does not reveal why the token was rejected.
func JWTAuth(jwtService *auth.JWTService, userRepo repositories.IUserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(msgAuthRequired))
			return
		}

		token, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(msgAuthRequired))
			return
		}

		claims, err := jwtService.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(msgInvalidToken))
			return
		}

		user, err := userRepo.FindByID(c.Request.Context(), claims.UserID)
		if err != nil {
			logger.Debug().Str("userID", claims.UserID).Msg("Token refers to a missing user")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(msgUserNotFound))
			return
		}

		c.Set(appauth.ContextKey, appauth.Identity{
			ID:         user.ID.Hex(),
			Role:       user.Role,
			IsApproved: user.IsApproved,
		})

		c.Next()
	}
}

// AllowRoles passes only identities whose role is in the allow-list.
// Requests that somehow reach it without an identity get 401; a known
// identity with the wrong role gets 403 "Forbidden".
func AllowRoles(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := appauth.FromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(msgAuthRequired))
			return
		}

		for _, role := range roles {
			if identity.Role == role {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(msgForbidden))
	}
}
