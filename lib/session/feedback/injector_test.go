package feedbackinjector

import (
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	feedbackcatalog "interview-trainer-backend/lib/feedback-catalog"
)

type fakeFlags struct {
	mu            sync.Mutex
	hrSpeaking    bool
	userSpeaking  bool
	paused        bool
	streaming     bool
	elapsed       int
	questionIndex int
}

func (f *fakeFlags) HRSpeaking() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hrSpeaking
}
func (f *fakeFlags) UserSpeaking() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.userSpeaking
}
func (f *fakeFlags) Paused() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.paused
}
func (f *fakeFlags) Streaming() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.streaming
}
func (f *fakeFlags) QuestionElapsed() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.elapsed
}
func (f *fakeFlags) QuestionIndex() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.questionIndex
}

func (f *fakeFlags) set(fn func(*fakeFlags)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fn(f)
}

func catalog(t *testing.T) feedbackcatalog.Provider {
	t.Helper()
	feedbackcatalog.NewHandler()
	return feedbackcatalog.Instance
}

func TestKeywordMatching(t *testing.T) {
	flags := &fakeFlags{elapsed: 12}

	t.Run("mid-sentence triggers never fire", func(t *testing.T) {
		inj := NewInjector(catalog(t), flags, WithRand(rand.New(rand.NewSource(1))))
		// "basically" and "led" are triggers but not in last position,
		// and "team" alone is not a trigger ("team player" is)
		inj.OnSentence("I basically led the team.")
		require.Empty(t, inj.Verbal())
	})

	t.Run("only the last word counts and only exact matches fire", func(t *testing.T) {
		inj := NewInjector(catalog(t), flags)
		// "basically" appears mid-sentence, the last word "teams" is
		// not a trigger ("team player" is, "teams" is not)
		inj.OnSentence("I basically joined the teams.")
		require.Empty(t, inj.Verbal())

		inj.OnSentence("That is a process I optimized.")
		list := inj.Verbal()
		require.Len(t, list, 1)
		require.Equal(t, 1, list[0].IsPositive)
		require.Equal(t, 7, list[0].Seconds) // max(0, 12-5)
	})

	t.Run("offset clamps to zero early in the question", func(t *testing.T) {
		early := &fakeFlags{elapsed: 3}
		inj := NewInjector(catalog(t), early)
		inj.OnSentence("Something I achieved.")
		list := inj.Verbal()
		require.Len(t, list, 1)
		require.Zero(t, list[0].Seconds)
	})

	t.Run("case-insensitive", func(t *testing.T) {
		inj := NewInjector(catalog(t), flags)
		inj.OnSentence("The project was LED")
		require.Len(t, inj.Verbal(), 1)
	})
}

func TestTimerGenerators(t *testing.T) {
	short := WithIntervals(10*time.Millisecond, 10*time.Millisecond)

	t.Run("verbal fires only while the user speaks and HR is silent", func(t *testing.T) {
		flags := &fakeFlags{userSpeaking: false, streaming: false}
		inj := NewInjector(catalog(t), flags, short)
		inj.Start()
		defer inj.Stop()

		time.Sleep(50 * time.Millisecond)
		require.Empty(t, inj.Verbal())

		flags.set(func(f *fakeFlags) { f.userSpeaking = true })
		require.Eventually(t, func() bool { return len(inj.Verbal()) > 0 },
			time.Second, 5*time.Millisecond)

		flags.set(func(f *fakeFlags) { f.hrSpeaking = true })
		count := len(inj.Verbal())
		time.Sleep(50 * time.Millisecond)
		require.LessOrEqual(t, len(inj.Verbal()), count+1)
	})

	t.Run("non-verbal fires only while streaming and not paused", func(t *testing.T) {
		flags := &fakeFlags{streaming: true}
		inj := NewInjector(catalog(t), flags, short)
		inj.Start()
		defer inj.Stop()

		require.Eventually(t, func() bool { return len(inj.NonVerbal()) > 0 },
			time.Second, 5*time.Millisecond)

		flags.set(func(f *fakeFlags) { f.paused = true })
		count := len(inj.NonVerbal())
		time.Sleep(60 * time.Millisecond)
		require.LessOrEqual(t, len(inj.NonVerbal()), count+1)
	})

	t.Run("paused session injects nothing", func(t *testing.T) {
		flags := &fakeFlags{userSpeaking: true, streaming: true, paused: true}
		inj := NewInjector(catalog(t), flags, short)
		inj.Start()
		defer inj.Stop()
		time.Sleep(60 * time.Millisecond)
		require.Empty(t, inj.Verbal())
		require.Empty(t, inj.NonVerbal())
	})

	t.Run("special question uses the polarity list of the last verbal entry", func(t *testing.T) {
		specialIdx := 1
		flags := &fakeFlags{streaming: true, questionIndex: 1, elapsed: 20}
		inj := NewInjector(catalog(t), flags, short, WithSpecialQuestionIndex(&specialIdx))

		// seed a positive verbal entry through the keyword trigger
		inj.OnSentence("Sales I exceeded")
		require.Len(t, inj.Verbal(), 1)
		require.Equal(t, 1, inj.Verbal()[0].IsPositive)

		inj.Start()
		defer inj.Stop()
		require.Eventually(t, func() bool { return len(inj.NonVerbal()) > 0 },
			time.Second, 5*time.Millisecond)
		for _, item := range inj.NonVerbal() {
			require.Equal(t, 1, item.IsPositive)
		}
	})

	t.Run("clear resets both lists for the next question", func(t *testing.T) {
		flags := &fakeFlags{elapsed: 30}
		inj := NewInjector(catalog(t), flags)
		inj.OnSentence("Goals I achieved")
		require.NotEmpty(t, inj.Verbal())
		inj.Clear()
		require.Empty(t, inj.Verbal())
		require.Empty(t, inj.NonVerbal())
	})
}
