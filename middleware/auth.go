package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	providerRepo "github.com/odacaict/domee.ro/database/repository/provider"
	userRepo "github.com/odacaict/domee.ro/database/repository/user"
	"github.com/odacaict/domee.ro/models"
	"github.com/odacaict/domee.ro/utils"
)

// Context keys set by the auth middleware.
const (
	CtxUserID     = "userID"
	CtxUserType   = "userType"
	CtxProviderID = "providerID"
)

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")
	return token, token != ""
}

// JWTAuthUserMiddleware authenticates any signed-in account. The session is
// valid when the token hash matches the cached session or the stored record.
func JWTAuthUserMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}

		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		computedHash := utils.HashToken(tokenString)
		if cached := utils.GetCachedSession(userID); cached != "" && cached == computedHash {
			c.Set(CtxUserID, userID)
			c.Next()
			return
		}

		rec, err := users.GetByID(userID)
		if err != nil || rec.TokenHash != computedHash {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired, please sign in again"})
			return
		}

		c.Set(CtxUserID, rec.ID)
		c.Set(CtxUserType, rec.UserType)
		c.Next()
	}
}

// JWTAuthProviderMiddleware authenticates provider accounts and resolves their
// salon profile, exposing the provider ID to handlers.
func JWTAuthProviderMiddleware(users userRepo.UserRepository, providers providerRepo.ProviderRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}

		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		rec, err := users.GetByID(userID)
		if err != nil || rec.TokenHash != utils.HashToken(tokenString) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired, please sign in again"})
			return
		}
		if rec.UserType != models.UserTypeProvider {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Provider account required"})
			return
		}

		prov, err := providers.GetByUserID(rec.ID)
		if err != nil || prov == nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "No salon profile for this account"})
			return
		}

		c.Set(CtxUserID, rec.ID)
		c.Set(CtxUserType, rec.UserType)
		c.Set(CtxProviderID, prov.ID)
		c.Next()
	}
}
