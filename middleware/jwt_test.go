package middleware

import (
	"testing"

	"helpti/config"
	"helpti/models"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeRole(t *testing.T) {
	cases := map[string]string{
		"ADMIN":        models.RoleAdmin,
		"admin":        models.RoleAdmin,
		" tecnico ":    models.RoleTecnico,
		"ROLE_GESTOR":  models.RoleGestor,
		"role_cliente": models.RoleCliente,
		"PRESTADORA":   models.RolePrestadora,
		"SUPERVISOR":   models.RoleCliente,
		"":             models.RoleCliente,
		"ROLE_":        models.RoleCliente,
		"ROLE_UNKNOWN": models.RoleCliente,
	}

	for raw, want := range cases {
		assert.Equal(t, want, NormalizeRole(raw), "raw=%q", raw)
	}
}

func TestGenerateJWTRoundTrip(t *testing.T) {
	config.AppConfig = &config.Config{JWTKey: "test-secret"}

	tokenString, err := GenerateJWT(7, "Ana", models.RoleTecnico, "ana@example.com", 3)
	assert.NoError(t, err)
	assert.NotEmpty(t, tokenString)

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	assert.NoError(t, err)
	assert.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	assert.Equal(t, float64(7), claims["userId"])
	assert.Equal(t, "Ana", claims["name"])
	assert.Equal(t, models.RoleTecnico, claims["role"])
	assert.Equal(t, "ana@example.com", claims["email"])
	assert.Equal(t, float64(3), claims["companyId"])
	assert.NotNil(t, claims["exp"])
}
