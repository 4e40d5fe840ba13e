package speechengine

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeRecognizer struct {
	mu     sync.Mutex
	starts int
	stops  int
}

func (f *fakeRecognizer) Start() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.starts++
	return nil
}

func (f *fakeRecognizer) Stop() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stops++
	return nil
}

func (f *fakeRecognizer) startCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.starts
}

func TestSpeechEngine(t *testing.T) {
	shortTimings := WithTimings(20*time.Millisecond, 20*time.Millisecond)

	t.Run("start is a no-op when already listening", func(t *testing.T) {
		rec := &fakeRecognizer{}
		e := NewEngine(rec, shortTimings)
		e.StartListening()
		e.StartListening()
		require.Equal(t, 1, rec.startCount())
		require.Equal(t, StateListening, e.State())
	})

	t.Run("final results grow the transcript and complete sentences", func(t *testing.T) {
		e := NewEngine(&fakeRecognizer{}, shortTimings)
		var sentences []string
		var mu sync.Mutex
		e.onSentence = func(s string) {
			mu.Lock()
			sentences = append(sentences, s)
			mu.Unlock()
		}
		e.StartListening()
		e.HandleResult("I basically led", false)
		require.Empty(t, e.Transcript())
		require.True(t, e.Speaking())

		e.HandleResult("I basically led the team. It went well", true)
		require.Contains(t, e.Transcript(), "led the team")
		mu.Lock()
		require.Equal(t, []string{"I basically led the team.", "It went well"}, sentences)
		mu.Unlock()
		require.Equal(t, "It went well", e.LastSentence())
	})

	t.Run("speaking clears after the debounce window", func(t *testing.T) {
		e := NewEngine(&fakeRecognizer{}, shortTimings)
		e.StartListening()
		e.HandleResult("Done.", true)
		require.True(t, e.Speaking())
		require.Eventually(t, func() bool { return !e.Speaking() },
			300*time.Millisecond, 5*time.Millisecond)
	})

	t.Run("unexpected end restarts after backoff", func(t *testing.T) {
		rec := &fakeRecognizer{}
		e := NewEngine(rec, shortTimings)
		e.StartListening()
		e.HandleEnd()
		require.Eventually(t, func() bool { return rec.startCount() == 2 },
			300*time.Millisecond, 5*time.Millisecond)
	})

	t.Run("no restart after stop", func(t *testing.T) {
		rec := &fakeRecognizer{}
		e := NewEngine(rec, shortTimings)
		e.StartListening()
		e.HandleEnd()
		e.StopListening()
		time.Sleep(60 * time.Millisecond)
		require.Equal(t, 1, rec.startCount())
		require.Equal(t, StateIdle, e.State())
	})

	t.Run("pause and resume clear the buffers", func(t *testing.T) {
		e := NewEngine(&fakeRecognizer{}, shortTimings)
		e.StartListening()
		e.HandleResult("First answer part.", true)
		require.NotEmpty(t, e.Transcript())

		e.PauseListening()
		require.Equal(t, StatePaused, e.State())
		require.Empty(t, e.Transcript())
		require.Empty(t, e.Sentences())

		// results that race past the pause boundary are dropped
		e.HandleResult("stale text.", true)
		require.Empty(t, e.Transcript())

		e.ResumeListening()
		require.Equal(t, StateListening, e.State())
		e.HandleResult("Fresh start.", true)
		require.Equal(t, "Fresh start.", e.LastSentence())
	})
}
