package security

import (
	"encoding/base64"
	"time"

	"easattend.com/easattend/model"
	"github.com/golang-jwt/jwt/v5"
)

type Identity struct {
	UserID string `json:"nameid"`
	Name   string `json:"unique_name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == string(model.RoleAdmin)
}

type IdentityClaims struct {
	Identity
	jwt.RegisteredClaims
}

// CreateIdentityToken issues an HS256 token for the user. The secret is
// base64 encoded in configuration.
func CreateIdentityToken(user *model.User, base64Secret string, expiresInSeconds int64) (string, error) {
	secretBytes, err := base64.StdEncoding.DecodeString(base64Secret)
	if err != nil {
		return "", err
	}
	claims := IdentityClaims{
		Identity: Identity{
			UserID: user.ID.String(),
			Name:   user.Name,
			Email:  user.Email,
			Role:   string(user.Role),
		},
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "easattend",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(expiresInSeconds) * time.Second)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretBytes)
}
