package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_InfoLevelDropsDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Out: &buf, NoColor: true})

	logger.Debug().Msg("hidden")
	logger.Info().Msg("visible")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "visible")
}

func TestNew_DebugLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Out: &buf, Debug: true, NoColor: true})

	logger.Debug().Msg("details")
	assert.Contains(t, buf.String(), "details")
}

func TestComponent_AddsField(t *testing.T) {
	var buf bytes.Buffer
	logger := Component(New(Options{Out: &buf, NoColor: true}), "clock")

	logger.Info().Msg("started")
	assert.Contains(t, buf.String(), "component=clock")
}
