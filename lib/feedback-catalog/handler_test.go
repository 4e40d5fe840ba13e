package feedbackcatalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	NewHandler()

	t.Run(`FindVerbalByWord exact match check`, func(t *testing.T) {
		entry := Instance.FindVerbalByWord("team")
		require.Nil(t, entry) // "team" alone is not a trigger, "team player" is

		entry = Instance.FindVerbalByWord("basically")
		require.NotNil(t, entry)
		require.Equal(t, 2, entry.ID)
	})

	t.Run(`FindVerbalByWord is case-insensitive`, func(t *testing.T) {
		entry := Instance.FindVerbalByWord("Led")
		require.NotNil(t, entry)
		require.Equal(t, 17, entry.ID)
		require.Equal(t, 1, entry.IsPositive)

		entry = Instance.FindVerbalByWord(" ACHIEVED ")
		require.NotNil(t, entry)
		require.Equal(t, 16, entry.ID)
	})

	t.Run(`FindVerbalByWord rejects substrings`, func(t *testing.T) {
		require.Nil(t, Instance.FindVerbalByWord("teams"))
		require.Nil(t, Instance.FindVerbalByWord("lead"))
		require.Nil(t, Instance.FindVerbalByWord("achieve"))
	})

	t.Run(`catalog sizes check`, func(t *testing.T) {
		require.Len(t, Instance.GetVerbal(), 45)
		require.Len(t, Instance.GetNonVerbal(), 100)
		require.Len(t, Instance.GetNonVerbalByPolarity(true), 15)
		require.Len(t, Instance.GetNonVerbalByPolarity(false), 15)
	})

	t.Run(`polarity lists carry matching polarity`, func(t *testing.T) {
		for _, entry := range Instance.GetNonVerbalByPolarity(true) {
			require.Equal(t, 1, entry.IsPositive)
		}
		for _, entry := range Instance.GetNonVerbalByPolarity(false) {
			require.Equal(t, 0, entry.IsPositive)
		}
	})
}
