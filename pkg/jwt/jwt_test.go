package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/stocktrack-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testUserID = "00000000-0000-0000-0000-000000000001"
	testUser   = "warehouse_admin"
	testIssuer = "stocktrack-test"
)

// TestGenerateParse_RoundTrip genera un token y verifica que Parse devuelve los mismos claims.
func TestGenerateParse_RoundTrip(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, testUser, testIssuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, username, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testUserID, userID)
	assert.Equal(t, testUser, username)
}

// TestParse_FirmaIncorrecta verifica que un token firmado con otro secret es rechazado.
func TestParse_FirmaIncorrecta(t *testing.T) {
	tok, err := pkgjwt.Generate("otro-secret", testUserID, testUser, testIssuer, 60)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "la firma con otro secret debe invalidar el token")
}

// TestParse_Expirado verifica que un token vencido es rechazado.
func TestParse_Expirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, testUser, testIssuer, -1)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "un token expirado debe ser rechazado")
}

// TestGenerate_SecretVacio verifica que no se emiten tokens sin secret configurado.
func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", testUserID, testUser, testIssuer, 60)
	assert.Error(t, err)
}
