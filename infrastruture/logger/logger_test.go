package logger

import (
	"bytes"
	"testing"

	"github.com/huyndao/mazegen/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	t.Run("requires a prefix and a writer", func(t *testing.T) {
		_, err := New("", config.ColorGreen, &bytes.Buffer{})
		assert.Error(t, err)
		_, err = New("APP", config.ColorGreen, nil)
		assert.Error(t, err)
	})

	t.Run("tags lines with prefix and level", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New("MAZE-SERVICE", config.ColorCyan, &buf)
		require.NoError(t, err)

		l.Info("generated maze")
		l.Warning("loop target under-delivered")
		l.Error("store unreachable")

		out := buf.String()
		assert.Contains(t, out, "[MAZE-SERVICE] [INFO]")
		assert.Contains(t, out, "[MAZE-SERVICE] [WARNING]")
		assert.Contains(t, out, "[MAZE-SERVICE] [ERROR]")
		assert.Contains(t, out, "generated maze")
	})
}
