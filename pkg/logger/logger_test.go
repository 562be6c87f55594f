package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNew_EstampaElNombreDelServicio(t *testing.T) {
	l := New(Config{Env: "production", Level: "info", Service: "chicvault-admin"})

	var buf bytes.Buffer
	zl := l.Zerolog().Output(&buf)
	zl.Info().Msg("arrancando")

	assert.Contains(t, buf.String(), `"service":"chicvault-admin"`)
}

func TestNew_SinServicioNoAgregaElCampo(t *testing.T) {
	l := New(Config{Env: "production", Level: "info"})

	var buf bytes.Buffer
	zl := l.Zerolog().Output(&buf)
	zl.Info().Msg("arrancando")

	assert.NotContains(t, buf.String(), `"service"`)
}

func TestParseLevel_DesconocidoCaeEnInfo(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, parseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("verbose"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel("warn"))
}
