package gpthandler

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseGenerated(t *testing.T) {
	t.Run("plain array", func(t *testing.T) {
		list, err := parseGenerated(`[{"text":"What is a goroutine?","difficulty":1,"duration_minutes":2,"duration_seconds":30}]`)
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Equal(t, "What is a goroutine?", list[0].Text)
		require.Equal(t, 1, list[0].Difficulty)
		require.Equal(t, 150, list[0].DurationMinutes*60+list[0].DurationSeconds)
	})

	t.Run("code fence is tolerated", func(t *testing.T) {
		answer := "```json\n[{\"text\":\"Describe a conflict you resolved.\",\"difficulty\":2}]\n```"
		list, err := parseGenerated(answer)
		require.NoError(t, err)
		require.Len(t, list, 1)
	})

	t.Run("prose answer is rejected", func(t *testing.T) {
		_, err := parseGenerated("Sure! Here are the questions you asked for.")
		require.Error(t, err)
	})

	t.Run("empty array is rejected", func(t *testing.T) {
		_, err := parseGenerated("[]")
		require.Error(t, err)
	})
}
