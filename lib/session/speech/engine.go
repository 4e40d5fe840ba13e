package speechengine

import (
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// Recognizer is the remote speech recognition device; the transport bridge
// forwards Start/Stop as commands and feeds results back through the
// Handle* methods.
type Recognizer interface {
	Start() error
	Stop() error
}

type State int

const (
	StateIdle State = iota
	StateListening
	StatePaused
)

const (
	defaultSpeakingDebounce = 300 * time.Millisecond
	defaultRestartBackoff   = 500 * time.Millisecond
)

// Engine accumulates a growing transcript and completed sentence fragments
// from a best-effort recognition channel. Recognition drops are recovered
// by restarting the recognizer, never surfaced.
type Engine struct {
	mu sync.Mutex

	recognizer Recognizer
	state      State

	transcript strings.Builder
	sentences  []string
	speaking   bool

	debounceTimer *time.Timer
	restartTimer  *time.Timer

	speakingDebounce time.Duration
	restartBackoff   time.Duration

	onSentence       func(sentence string)
	onSpeakingChange func(speaking bool)
}

type Option func(*Engine)

// WithTimings shortens the debounce and backoff windows in tests.
func WithTimings(speakingDebounce, restartBackoff time.Duration) Option {
	return func(e *Engine) {
		e.speakingDebounce = speakingDebounce
		e.restartBackoff = restartBackoff
	}
}

func WithSentenceListener(fn func(sentence string)) Option {
	return func(e *Engine) {
		e.onSentence = fn
	}
}

func WithSpeakingListener(fn func(speaking bool)) Option {
	return func(e *Engine) {
		e.onSpeakingChange = fn
	}
}

func NewEngine(recognizer Recognizer, opts ...Option) *Engine {
	e := &Engine{
		recognizer:       recognizer,
		speakingDebounce: defaultSpeakingDebounce,
		restartBackoff:   defaultRestartBackoff,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) StartListening() {
	e.mu.Lock()
	if e.state == StateListening {
		e.mu.Unlock()
		return
	}
	e.state = StateListening
	e.mu.Unlock()
	if err := e.recognizer.Start(); err != nil {
		log.WithError(err).Warn("failed to start recognition")
	}
}

// StopListening halts recognition and drops everything accumulated so far.
func (e *Engine) StopListening() {
	e.mu.Lock()
	e.state = StateIdle
	e.clearBuffersLocked()
	e.cancelTimersLocked()
	e.mu.Unlock()
	if err := e.recognizer.Stop(); err != nil {
		log.WithError(err).Warn("failed to stop recognition")
	}
}

func (e *Engine) PauseListening() {
	e.mu.Lock()
	if e.state != StateListening {
		e.mu.Unlock()
		return
	}
	e.state = StatePaused
	e.clearBuffersLocked()
	e.cancelTimersLocked()
	e.mu.Unlock()
	if err := e.recognizer.Stop(); err != nil {
		log.WithError(err).Warn("failed to pause recognition")
	}
}

// ResumeListening restarts recognition with clean buffers so no partial
// transcript leaks across the pause boundary.
func (e *Engine) ResumeListening() {
	e.mu.Lock()
	if e.state != StatePaused {
		e.mu.Unlock()
		return
	}
	e.state = StateListening
	e.clearBuffersLocked()
	e.mu.Unlock()
	if err := e.recognizer.Start(); err != nil {
		log.WithError(err).Warn("failed to resume recognition")
	}
}

func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

func (e *Engine) Transcript() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.transcript.String()
}

func (e *Engine) Sentences() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	result := make([]string, len(e.sentences))
	copy(result, e.sentences)
	return result
}

// LastSentence returns the most recent completed fragment, empty when none.
func (e *Engine) LastSentence() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.sentences) == 0 {
		return ""
	}
	return e.sentences[len(e.sentences)-1]
}

func (e *Engine) Speaking() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.speaking
}

// HandleResult consumes one recognition result. Interim results only grow
// the speaking window; a final result lands in the transcript, completes
// sentence fragments and arms the speaking debounce.
func (e *Engine) HandleResult(text string, final bool) {
	e.mu.Lock()
	if e.state != StateListening {
		e.mu.Unlock()
		return
	}
	e.setSpeakingLocked(true)
	if e.debounceTimer != nil {
		e.debounceTimer.Stop()
		e.debounceTimer = nil
	}
	var completed []string
	if final {
		e.transcript.WriteString(text)
		e.transcript.WriteString(" ")
		completed = splitSentences(text)
		e.sentences = append(e.sentences, completed...)
		e.debounceTimer = time.AfterFunc(e.speakingDebounce, e.speakingExpired)
	}
	onSentence := e.onSentence
	e.mu.Unlock()

	if onSentence != nil {
		for _, sentence := range completed {
			onSentence(sentence)
		}
	}
}

func (e *Engine) speakingExpired() {
	e.mu.Lock()
	e.debounceTimer = nil
	e.setSpeakingLocked(false)
	e.mu.Unlock()
}

// HandleEnd recovers an unexpected recognizer stop while still logically
// listening by restarting after the backoff window.
func (e *Engine) HandleEnd() {
	e.mu.Lock()
	if e.state != StateListening {
		e.mu.Unlock()
		return
	}
	if e.restartTimer != nil {
		e.restartTimer.Stop()
	}
	e.restartTimer = time.AfterFunc(e.restartBackoff, e.restart)
	e.mu.Unlock()
}

func (e *Engine) HandleError(message string) {
	log.WithField("recognition_error", message).Debug("recognition channel dropped")
	e.HandleEnd()
}

func (e *Engine) restart() {
	e.mu.Lock()
	e.restartTimer = nil
	if e.state != StateListening {
		e.mu.Unlock()
		return
	}
	e.mu.Unlock()
	if err := e.recognizer.Start(); err != nil {
		log.WithError(err).Debug("recognition restart failed")
	}
}

func (e *Engine) setSpeakingLocked(speaking bool) {
	if e.speaking == speaking {
		return
	}
	e.speaking = speaking
	if e.onSpeakingChange != nil {
		go e.onSpeakingChange(speaking)
	}
}

func (e *Engine) clearBuffersLocked() {
	e.transcript.Reset()
	e.sentences = nil
	e.speaking = false
}

func (e *Engine) cancelTimersLocked() {
	if e.debounceTimer != nil {
		e.debounceTimer.Stop()
		e.debounceTimer = nil
	}
	if e.restartTimer != nil {
		e.restartTimer.Stop()
		e.restartTimer = nil
	}
}

// splitSentences cuts the fragment on sentence-ending punctuation; a tail
// without terminal punctuation still counts as a completed fragment since
// it arrived with a final result.
func splitSentences(text string) []string {
	var result []string
	var current strings.Builder
	for _, r := range text {
		current.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			if s := strings.TrimSpace(current.String()); s != "" {
				result = append(result, s)
			}
			current.Reset()
		}
	}
	if s := strings.TrimSpace(current.String()); s != "" {
		result = append(result, s)
	}
	return result
}
