package services

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jfk9unit/caninecompanionapp/internal/models"
)

type CustomClaims struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	jwt.RegisteredClaims
}

type Authentication struct {
	secret string
}

func NewAuthentication(secret string) (*Authentication, error) {
	return &Authentication{secret}, nil
}

func (authentication *Authentication) CreateToken(user *models.UserFromAuth) (string, error) {
	claims := jwt.MapClaims{
		"id":           user.ID,
		"display_name": user.DisplayName,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(authentication.secret))
}

func (authentication *Authentication) Validate(token string) (*models.UserFromAuth, error) {
	keyFunc := func(token *jwt.Token) (interface{}, error) {
		return []byte(authentication.secret), nil
	}
	jwtToken, err := jwt.ParseWithClaims(token, &CustomClaims{}, keyFunc)
	if err != nil {
		return nil, err
	}

	claims, ok := jwtToken.Claims.(*CustomClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	return &models.UserFromAuth{
		ID:          claims.ID,
		DisplayName: claims.DisplayName,
	}, nil
}
