package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Antonio13050/im-backoffice-api/internal/config"
	"github.com/Antonio13050/im-backoffice-api/internal/models"
)

func cfgDeTeste() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{Secret: "segredo-de-teste", ExpirationHours: 1},
	}
}

func TestJWTRoundTrip(t *testing.T) {
	cfg := cfgDeTeste()

	token, err := GenerateJWT(7, models.PapelGerente, cfg)
	require.NoError(t, err)

	claims, err := ValidateJWT(token, cfg)
	require.NoError(t, err)
	assert.Equal(t, models.ID(7), claims.UserID)
	assert.Equal(t, models.PapelGerente, claims.Papel)
}

func TestValidateJWTSegredoErrado(t *testing.T) {
	token, err := GenerateJWT(7, models.PapelAdmin, cfgDeTeste())
	require.NoError(t, err)

	outro := &config.Config{JWT: config.JWTConfig{Secret: "outro-segredo"}}
	_, err = ValidateJWT(token, outro)
	assert.Error(t, err)
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ana@imob.com", NormalizeEmail("  Ana@Imob.com "))
}

func TestGenerateCodigoRef(t *testing.T) {
	codigo := GenerateCodigoRef()
	assert.Regexp(t, `^IM-[A-Z0-9]{6}$`, codigo)
	assert.NotEqual(t, codigo, GenerateCodigoRef())
}
