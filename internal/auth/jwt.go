package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/essentia-tours/internal/config"
	"github.com/BruksfildServices01/essentia-tours/internal/models"
)

type Claims struct {
	Email string `json:"email"`
	Nome  string `json:"nome"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

type JWTManager struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTManager(cfg *config.Config) *JWTManager {
	hours := cfg.JWT.ExpirationHours
	if hours <= 0 {
		hours = 24
	}
	return &JWTManager{
		secret: []byte(cfg.JWT.Secret),
		ttl:    time.Duration(hours) * time.Hour,
	}
}

// GenerateToken signs an HS256 token whose subject is the user id.
func (j *JWTManager) GenerateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		Email: user.Email,
		Nome:  user.Nome,
		Role:  user.UserType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secret)
}

func (j *JWTManager) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return j.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.Subject == "" {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
