package mediaengine

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeRecorder struct {
	mu      sync.Mutex
	starts  int
	stops   int
	pauses  int
	resumes int
}

func (f *fakeRecorder) Start() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.starts++
	return nil
}
func (f *fakeRecorder) Stop() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stops++
	return nil
}
func (f *fakeRecorder) Pause() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pauses++
	return nil
}
func (f *fakeRecorder) Resume() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resumes++
	return nil
}

func (f *fakeRecorder) counts() (int, int, int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.starts, f.stops, f.pauses, f.resumes
}

func TestMediaEngine(t *testing.T) {
	grace := WithSegmentGrace(5 * time.Millisecond)

	t.Run("segment starts after the grace delay", func(t *testing.T) {
		rec := &fakeRecorder{}
		e := NewEngine(rec, grace)
		e.StartStream()
		e.StartSegment()
		require.Equal(t, StateStreaming, e.State())
		require.Eventually(t, func() bool { return e.State() == StateRecording },
			200*time.Millisecond, time.Millisecond)
		starts, _, _, _ := rec.counts()
		require.Equal(t, 1, starts)
	})

	t.Run("stop finalizes buffered chunks into one clip", func(t *testing.T) {
		rec := &fakeRecorder{}
		var clip []byte
		done := make(chan struct{})
		e := NewEngine(rec, grace, WithClipListener(func(c []byte) {
			clip = c
			close(done)
		}))
		e.StartStream()
		e.StartSegment()
		require.Eventually(t, func() bool { return e.State() == StateRecording },
			200*time.Millisecond, time.Millisecond)

		e.HandleChunk([]byte("abc"))
		e.HandleChunk([]byte("def"))
		e.StopSegment()
		e.HandleStopped()
		<-done
		require.Equal(t, []byte("abcdef"), clip)
		require.Equal(t, StateStreaming, e.State())
	})

	t.Run("pause uses native recorder pause", func(t *testing.T) {
		rec := &fakeRecorder{}
		e := NewEngine(rec, grace)
		e.StartStream()
		e.StartSegment()
		require.Eventually(t, func() bool { return e.State() == StateRecording },
			200*time.Millisecond, time.Millisecond)

		e.Pause()
		require.Equal(t, StatePaused, e.State())
		require.True(t, e.Streaming())
		_, stops, pauses, _ := rec.counts()
		require.Zero(t, stops)
		require.Equal(t, 1, pauses)

		e.Resume()
		require.Equal(t, StateRecording, e.State())
		_, _, _, resumes := rec.counts()
		require.Equal(t, 1, resumes)
	})

	t.Run("pause during the grace window does not touch the recorder", func(t *testing.T) {
		rec := &fakeRecorder{}
		e := NewEngine(rec, WithSegmentGrace(50*time.Millisecond))
		e.StartStream()
		e.Pause()
		require.Equal(t, StatePaused, e.State())
		_, _, pauses, _ := rec.counts()
		require.Zero(t, pauses)
		e.Resume()
		require.Equal(t, StateStreaming, e.State())
	})

	t.Run("stop all ends capture for good", func(t *testing.T) {
		rec := &fakeRecorder{}
		e := NewEngine(rec, grace)
		e.StartStream()
		e.StartSegment()
		require.Eventually(t, func() bool { return e.State() == StateRecording },
			200*time.Millisecond, time.Millisecond)
		e.StopAll()
		require.Equal(t, StateStopped, e.State())
		require.False(t, e.Streaming())

		// a new segment is never started afterwards
		e.StartSegment()
		time.Sleep(20 * time.Millisecond)
		starts, _, _, _ := rec.counts()
		require.Equal(t, 1, starts)
	})

	t.Run("permission denied blocks distinctly from pause", func(t *testing.T) {
		rec := &fakeRecorder{}
		blocked := false
		e := NewEngine(rec, grace, WithBlockedListener(func() { blocked = true }))
		e.HandlePermissionDenied()
		require.True(t, e.Blocked())
		require.True(t, blocked)
		require.False(t, e.Streaming())
		require.Equal(t, StateStopped, e.State())
	})
}
