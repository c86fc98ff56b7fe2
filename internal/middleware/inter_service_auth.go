package middleware

import (
	"context"
	"errors"
	"net/http"

	"keystone-site/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InterServiceTokenHeader - заголовок с межсервисным JWT.
const InterServiceTokenHeader = "X-Internal-Service-Token"

// InterServiceTokenVerifier - то, что нужно middleware от верификатора токенов.
type InterServiceTokenVerifier interface {
	VerifyInterServiceToken(ctx context.Context, tokenString string) (*models.InterServiceClaims, error)
}

// InterServiceAuth создает Gin middleware для проверки межсервисного JWT.
func InterServiceAuth(verifier InterServiceTokenVerifier, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := logger.With(zap.String("path", c.Request.URL.Path))

		tokenString := c.GetHeader(InterServiceTokenHeader)
		if tokenString == "" {
			log.Warn("X-Internal-Service-Token header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{Error: "Unauthorized: Missing inter-service token"})
			return
		}

		claims, err := verifier.VerifyInterServiceToken(c.Request.Context(), tokenString)
		if err != nil {
			status := http.StatusUnauthorized
			msg := "Unauthorized: Invalid inter-service token"
			switch {
			case errors.Is(err, models.ErrTokenExpired):
				msg = "Unauthorized: Inter-service token expired"
			case errors.Is(err, models.ErrTokenMalformed), errors.Is(err, models.ErrTokenInvalid):
			default:
				log.Error("Unexpected inter-service token verification error", zap.Error(err))
				status = http.StatusInternalServerError
				msg = models.MsgInternalError
			}
			log.Warn("Inter-service token verification failed", zap.Error(err))
			c.AbortWithStatusJSON(status, models.ErrorResponse{Error: msg})
			return
		}

		if claims.Subject != "" {
			c.Set(string(models.SourceServiceContextKey), claims.Subject)
			log.Debug("Inter-service request authorized", zap.String("sourceService", claims.Subject))
		} else {
			log.Warn("Inter-service token authorized but Subject (source service) is missing")
		}
		c.Next()
	}
}
