package authutils

import (
	"context"
	"errors"
	"fmt"
	"time"

	"keystone-site/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InterServiceVerifier проверяет и выпускает межсервисные JWT (HS256).
type InterServiceVerifier struct {
	secret []byte
	logger *zap.Logger
}

// NewInterServiceVerifier создает верификатор. Пустой секрет недопустим.
func NewInterServiceVerifier(secret string, logger *zap.Logger) (*InterServiceVerifier, error) {
	if secret == "" {
		return nil, errors.New("inter-service secret cannot be empty")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InterServiceVerifier{
		secret: []byte(secret),
		logger: logger.Named("InterServiceVerifier"),
	}, nil
}

// VerifyInterServiceToken проверяет подпись и срок действия токена и возвращает его claims.
func (v *InterServiceVerifier) VerifyInterServiceToken(ctx context.Context, tokenString string) (*models.InterServiceClaims, error) {
	log := v.logger.With(zap.String("tokenSnippet", tokenSnippet(tokenString)))
	claims := &models.InterServiceClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			log.Warn("Unexpected signing method", zap.Any("alg", token.Header["alg"]))
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		log.Warn("Failed to parse or verify inter-service token", zap.Error(err))
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, models.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, models.ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, models.ErrTokenInvalid
		}
		return nil, fmt.Errorf("%w: %v", models.ErrTokenInvalid, err)
	}
	if !token.Valid {
		return nil, models.ErrTokenInvalid
	}

	log.Debug("Inter-service token verified", zap.String("subject", claims.Subject), zap.String("issuer", claims.Issuer))
	return claims, nil
}

// GenerateInterServiceToken выпускает токен для сервиса serviceName со сроком жизни ttl.
// Используется бэк-офисными утилитами и тестами.
func (v *InterServiceVerifier) GenerateInterServiceToken(serviceName string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &models.InterServiceClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "keystone-site",
			Subject:   serviceName,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// tokenSnippet возвращает безопасную для логгирования часть токена.
func tokenSnippet(tokenString string) string {
	limit := 15
	if len(tokenString) > limit {
		return tokenString[:limit] + "..."
	}
	return tokenString
}
