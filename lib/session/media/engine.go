package mediaengine

import (
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// Recorder is the remote capture device. The stream itself lives on the
// client; the engine only sequences the recorder and owns the chunk
// buffer for the current segment.
type Recorder interface {
	Start() error
	Stop() error
	Pause() error
	Resume() error
}

type State int

const (
	StateUnstarted State = iota
	StateStreaming
	StateRecording
	StatePaused
	StateStopped
)

const defaultSegmentGrace = 500 * time.Millisecond

// Engine owns the single capture stream of an interview and cuts it into
// per-question segments. A finalized segment is handed to the orchestrator
// as one clip.
type Engine struct {
	mu sync.Mutex

	recorder Recorder
	state    State
	// recording resumes into this state after a pause
	resumeState State

	chunks  [][]byte
	blocked bool

	segmentGrace time.Duration
	graceTimer   *time.Timer

	onClipReady func(clip []byte)
	onBlocked   func()
}

type Option func(*Engine)

// WithSegmentGrace shortens the restart delay in tests.
func WithSegmentGrace(grace time.Duration) Option {
	return func(e *Engine) {
		e.segmentGrace = grace
	}
}

func WithClipListener(fn func(clip []byte)) Option {
	return func(e *Engine) {
		e.onClipReady = fn
	}
}

// WithBlockedListener observes the permission-denied hard stop.
func WithBlockedListener(fn func()) Option {
	return func(e *Engine) {
		e.onBlocked = fn
	}
}

func NewEngine(recorder Recorder, opts ...Option) *Engine {
	e := &Engine{
		recorder:     recorder,
		segmentGrace: defaultSegmentGrace,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Streaming reports whether the capture stream is live, regardless of the
// recorder being cut between segments.
func (e *Engine) Streaming() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state == StateStreaming || e.state == StateRecording || e.state == StatePaused
}

// Blocked reports the permission-denied condition; unlike a pause it
// never clears without outside action.
func (e *Engine) Blocked() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.blocked
}

// StartStream marks the client stream acquired; called once per interview.
func (e *Engine) StartStream() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != StateUnstarted {
		return
	}
	e.state = StateStreaming
}

// StartSegment begins recording a new question after the grace delay.
func (e *Engine) StartSegment() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != StateStreaming {
		return
	}
	e.chunks = nil
	if e.graceTimer != nil {
		e.graceTimer.Stop()
	}
	e.graceTimer = time.AfterFunc(e.segmentGrace, e.startRecorder)
}

func (e *Engine) startRecorder() {
	e.mu.Lock()
	if e.state != StateStreaming {
		e.mu.Unlock()
		return
	}
	e.state = StateRecording
	e.graceTimer = nil
	e.mu.Unlock()
	if err := e.recorder.Start(); err != nil {
		log.WithError(err).Warn("failed to start recorder segment")
	}
}

// StopSegment cuts the current segment; the clip lands via HandleStopped
// once the device flushes its chunks.
func (e *Engine) StopSegment() {
	e.mu.Lock()
	if e.graceTimer != nil {
		e.graceTimer.Stop()
		e.graceTimer = nil
	}
	if e.state != StateRecording && e.state != StatePaused {
		e.mu.Unlock()
		return
	}
	e.state = StateStreaming
	e.mu.Unlock()
	if err := e.recorder.Stop(); err != nil {
		log.WithError(err).Warn("failed to stop recorder segment")
	}
}

// Pause pauses the active recorder natively, keeping the segment open.
func (e *Engine) Pause() {
	e.mu.Lock()
	if e.state != StateRecording && e.state != StateStreaming {
		e.mu.Unlock()
		return
	}
	e.resumeState = e.state
	e.state = StatePaused
	pauseRecorder := e.resumeState == StateRecording
	e.mu.Unlock()
	if !pauseRecorder {
		return
	}
	if err := e.recorder.Pause(); err != nil {
		log.WithError(err).Warn("failed to pause recorder")
	}
}

func (e *Engine) Resume() {
	e.mu.Lock()
	if e.state != StatePaused {
		e.mu.Unlock()
		return
	}
	e.state = e.resumeState
	resumeRecorder := e.state == StateRecording
	e.mu.Unlock()
	if !resumeRecorder {
		return
	}
	if err := e.recorder.Resume(); err != nil {
		log.WithError(err).Warn("failed to resume recorder")
	}
}

// StopAll tears capture down for good; used past the last question.
func (e *Engine) StopAll() {
	e.mu.Lock()
	wasRecording := e.state == StateRecording || e.state == StatePaused
	e.state = StateStopped
	if e.graceTimer != nil {
		e.graceTimer.Stop()
		e.graceTimer = nil
	}
	e.mu.Unlock()
	if !wasRecording {
		return
	}
	if err := e.recorder.Stop(); err != nil {
		log.WithError(err).Warn("failed to stop recorder")
	}
}

// HandleChunk buffers one recorded chunk of the open segment.
func (e *Engine) HandleChunk(chunk []byte) {
	if len(chunk) == 0 {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == StateUnstarted || e.blocked {
		return
	}
	e.chunks = append(e.chunks, chunk)
}

// HandleStopped finalizes the segment: buffered chunks become one clip.
func (e *Engine) HandleStopped() {
	e.mu.Lock()
	size := 0
	for _, chunk := range e.chunks {
		size += len(chunk)
	}
	clip := make([]byte, 0, size)
	for _, chunk := range e.chunks {
		clip = append(clip, chunk...)
	}
	e.chunks = nil
	onClipReady := e.onClipReady
	e.mu.Unlock()
	if onClipReady != nil {
		onClipReady(clip)
	}
}

// HandlePermissionDenied is the hard stop: no stream, no retry loop.
func (e *Engine) HandlePermissionDenied() {
	e.mu.Lock()
	e.blocked = true
	e.state = StateStopped
	if e.graceTimer != nil {
		e.graceTimer.Stop()
		e.graceTimer = nil
	}
	onBlocked := e.onBlocked
	e.mu.Unlock()
	log.Warn("camera/microphone permission denied, session is blocked")
	if onBlocked != nil {
		onBlocked()
	}
}
