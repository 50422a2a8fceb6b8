package logging_test

import (
	"bytes"
	"testing"

	"github.com/abdidvp/stockroom/internal/adapters/outbound/logging"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesStructuredFields(t *testing.T) {
	buf := new(bytes.Buffer)
	l, err := logging.New("info", buf)
	require.NoError(t, err)

	l.WithField("product_id", "1").Info("product created")

	assert.Contains(t, buf.String(), "product created")
	assert.Contains(t, buf.String(), "product_id=1")
}

func TestNew_RespectsLevel(t *testing.T) {
	buf := new(bytes.Buffer)
	l, err := logging.New("warn", buf)
	require.NoError(t, err)

	l.Info("hidden")
	l.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Equal(t, logrus.WarnLevel, l.GetLevel())
}

func TestNew_DefaultsToInfo(t *testing.T) {
	l, err := logging.New("", new(bytes.Buffer))
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, l.GetLevel())
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := logging.New("loud", new(bytes.Buffer))
	assert.Error(t, err)
}

func TestDiscard(t *testing.T) {
	l := logging.Discard()
	assert.NotPanics(t, func() { l.Info("nothing") })
}
