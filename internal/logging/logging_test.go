package logging

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewPrefixesAppName(t *testing.T) {
	var buf bytes.Buffer
	l := New("propmap", "debug", &buf)
	assert.Equal(t, logrus.DebugLevel, l.GetLevel())

	l.Debug("loaded source")
	assert.Contains(t, buf.String(), "[propmap] loaded source")
}

func TestNewInvalidLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New("propmap", "loud", &buf)
	assert.Equal(t, logrus.InfoLevel, l.GetLevel())
	assert.Contains(t, buf.String(), "Invalid log level 'loud'")

	buf.Reset()
	l.Debug("hidden")
	assert.Empty(t, buf.String())
}
