package security

import (
	"encoding/base64"
	"testing"

	"easattend.com/easattend/model"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCreateIdentityToken(t *testing.T) {
	secret := base64.StdEncoding.EncodeToString([]byte("test-signing-secret"))
	user := &model.User{
		ID:    uuid.New(),
		Name:  "Test Employee",
		Email: "employee@example.com",
		Role:  model.RoleEmployee,
	}

	tokenStr, err := CreateIdentityToken(user, secret, 3600)
	assert.NoError(t, err)
	assert.NotEmpty(t, tokenStr)

	claims := &IdentityClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-signing-secret"), nil
	})
	assert.NoError(t, err)
	assert.True(t, token.Valid)

	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, "Test Employee", claims.Name)
	assert.Equal(t, "employee@example.com", claims.Email)
	assert.Equal(t, "employee", claims.Role)
	assert.Equal(t, "easattend", claims.Issuer)
	assert.False(t, claims.Identity.IsAdmin())
}

func TestIdentityIsAdmin(t *testing.T) {
	admin := &Identity{Role: "admin"}
	assert.True(t, admin.IsAdmin())

	employee := &Identity{Role: "employee"}
	assert.False(t, employee.IsAdmin())

	var missing *Identity
	assert.False(t, missing.IsAdmin())
}

func TestCreateIdentityTokenBadSecret(t *testing.T) {
	user := &model.User{ID: uuid.New(), Role: model.RoleAdmin}
	_, err := CreateIdentityToken(user, "not base64!!!", 3600)
	assert.Error(t, err)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("Rohit123", 0)
	assert.NoError(t, err)

	assert.True(t, VerifyPassword(hash, "Rohit123"))
	assert.False(t, VerifyPassword(hash, "rohit123"))
}
