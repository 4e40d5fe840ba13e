package helpers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHelpers(t *testing.T) {
	t.Run(`FormatTime check`, func(t *testing.T) {
		require.Equal(t, "00:00", FormatTime(0))
		require.Equal(t, "00:05", FormatTime(5))
		require.Equal(t, "03:05", FormatTime(185))
		require.Equal(t, "00:00", FormatTime(-3))
	})
}
