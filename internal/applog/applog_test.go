package applog

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTo_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewTo(&buf, "test", "warn")
	require.NoError(t, err)
	l.Info("hidden")
	l.Warn("shown", "k", 1)
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "k=1")
}

func TestNewTo_EmptyLevelIsInfo(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewTo(&buf, "", "")
	require.NoError(t, err)
	l.Debug("quiet")
	l.Info("loud")
	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "loud")
}

func TestNewTo_BadLevel(t *testing.T) {
	_, err := NewTo(&bytes.Buffer{}, "", "chatty")
	assert.Error(t, err)
}
