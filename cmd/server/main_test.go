package main

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestBootstrapLogger_UsesEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_LEVEL", "warn")

	l := bootstrapLogger()
	assert.Equal(t, zerolog.WarnLevel, l.GetLevel())

	t.Setenv("LOG_LEVEL", "")
	l = bootstrapLogger()
	assert.Equal(t, zerolog.InfoLevel, l.GetLevel())
}
