package voiceengine

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeSynthesizer struct {
	mu      sync.Mutex
	spoken  []string
	voices  []string
	cancels int
}

func (f *fakeSynthesizer) Speak(text, voice string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.spoken = append(f.spoken, text)
	f.voices = append(f.voices, voice)
	return nil
}

func (f *fakeSynthesizer) Cancel() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancels++
	return nil
}

func TestVoiceEngine(t *testing.T) {
	fastRetry := WithVoiceRetry(2, time.Millisecond)

	t.Run("preferred voice is picked per selector", func(t *testing.T) {
		dev := &fakeSynthesizer{}
		e := NewEngine(dev, fastRetry)
		e.SetVoices([]string{"Google UK English", maleVoiceName, femaleVoiceName})

		e.Speak("Tell me about yourself.", VoiceMale)
		require.Equal(t, []string{maleVoiceName}, dev.voices)

		e.Speak("Next question.", VoiceFemale)
		require.Equal(t, femaleVoiceName, dev.voices[1])
	})

	t.Run("missing named voice falls back to the first one", func(t *testing.T) {
		dev := &fakeSynthesizer{}
		e := NewEngine(dev, fastRetry)
		e.SetVoices([]string{"Google UK English"})

		e.Speak("Hello.", VoiceMale)
		require.Equal(t, []string{"Google UK English"}, dev.voices)
	})

	t.Run("empty voice list after retries skips the utterance", func(t *testing.T) {
		dev := &fakeSynthesizer{}
		e := NewEngine(dev, fastRetry)

		e.Speak("Hello.", VoiceFemale)
		require.Empty(t, dev.spoken)
		require.Equal(t, 1, dev.cancels) // cancel still fired before resolving
	})

	t.Run("late voice list is awaited", func(t *testing.T) {
		dev := &fakeSynthesizer{}
		e := NewEngine(dev, WithVoiceRetry(10, 5*time.Millisecond))
		go func() {
			time.Sleep(15 * time.Millisecond)
			e.SetVoices([]string{femaleVoiceName})
		}()
		e.Speak("Hello.", VoiceFemale)
		require.Equal(t, []string{"Hello."}, dev.spoken)
	})

	t.Run("a new utterance cancels the previous one", func(t *testing.T) {
		dev := &fakeSynthesizer{}
		e := NewEngine(dev, fastRetry)
		e.SetVoices([]string{femaleVoiceName})
		e.Speak("First.", VoiceFemale)
		e.Speak("Second.", VoiceFemale)
		require.Equal(t, 2, dev.cancels)
		require.Equal(t, []string{"First.", "Second."}, dev.spoken)
	})

	t.Run("device events drive the speaking flag", func(t *testing.T) {
		e := NewEngine(&fakeSynthesizer{}, fastRetry)
		require.False(t, e.Speaking())
		e.HandleStarted()
		require.True(t, e.Speaking())
		e.HandleEnded()
		require.False(t, e.Speaking())
	})
}
