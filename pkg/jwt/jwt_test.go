package jwt_test

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/stationery-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testEmail  = "admin@stationery.com"
	testIssuer = "stationery-api-test"
)

func TestGenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testEmail, testIssuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	email, err := pkgjwt.Parse(testSecret, testIssuer, tok)
	require.NoError(t, err)
	assert.Equal(t, testEmail, email)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", testEmail, testIssuer, 60)
	assert.Error(t, err)
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testEmail, testIssuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, testIssuer, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testEmail, testIssuer, 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", testIssuer, tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

func TestParse_SoloSubject(t *testing.T) {
	// Tokens emitidos solo con "sub" siguen siendo válidos.
	claims := gojwt.RegisteredClaims{
		Issuer:    testIssuer,
		Subject:   testEmail,
		ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	tok, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	email, err := pkgjwt.Parse(testSecret, testIssuer, tok)
	require.NoError(t, err)
	assert.Equal(t, testEmail, email)
}

func TestParse_AlgoritmoNone(t *testing.T) {
	claims := pkgjwt.Claims{Email: testEmail}
	tok, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, claims).SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, testIssuer, tok)
	assert.Error(t, err, "alg none nunca debe aceptarse")
}

func TestParse_IssuerAjeno(t *testing.T) {
	// Mismo secret, otro emisor.
	tok, err := pkgjwt.Generate(testSecret, testEmail, "otra-app", 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, testIssuer, tok)
	assert.ErrorIs(t, err, gojwt.ErrTokenInvalidIssuer)
}

func TestParse_SinIssuerConfiguradoNoValida(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testEmail, "otra-app", 60)
	require.NoError(t, err)

	email, err := pkgjwt.Parse(testSecret, "", tok)
	require.NoError(t, err)
	assert.Equal(t, testEmail, email)
}
