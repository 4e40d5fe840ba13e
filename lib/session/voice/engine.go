package voiceengine

import (
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// Synthesizer is the remote text-to-speech device driven over the
// transport bridge; start/end notifications come back through the
// Handle* methods.
type Synthesizer interface {
	Speak(text, voice string) error
	Cancel() error
}

// Preferred named voices per avatar selector; anything else falls back to
// the first voice the device reports.
const (
	maleVoiceName   = "Microsoft David - English (United States)"
	femaleVoiceName = "Microsoft Zira - English (United States)"
)

const (
	VoiceFemale = 0
	VoiceMale   = 1
)

const (
	defaultVoiceRetries  = 10
	defaultVoiceInterval = 200 * time.Millisecond
)

// Engine plays one utterance at a time and tracks the shared
// "HR is speaking" flag through device start/end events.
type Engine struct {
	mu sync.Mutex

	synthesizer Synthesizer
	voices      []string
	speaking    bool

	voiceRetries  int
	voiceInterval time.Duration

	onSpeakingChange func(speaking bool)
}

type Option func(*Engine)

// WithVoiceRetry tightens the voice-list wait in tests.
func WithVoiceRetry(retries int, interval time.Duration) Option {
	return func(e *Engine) {
		e.voiceRetries = retries
		e.voiceInterval = interval
	}
}

func WithSpeakingListener(fn func(speaking bool)) Option {
	return func(e *Engine) {
		e.onSpeakingChange = fn
	}
}

func NewEngine(synthesizer Synthesizer, opts ...Option) *Engine {
	e := &Engine{
		synthesizer:   synthesizer,
		voiceRetries:  defaultVoiceRetries,
		voiceInterval: defaultVoiceInterval,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SetVoices stores the voice list reported by the device.
func (e *Engine) SetVoices(voices []string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.voices = voices
}

// Speak cancels any in-flight utterance and plays the text with the voice
// resolved for the selector. An empty voice list is waited out with
// retries; on give-up the failure is logged and the text is skipped.
func (e *Engine) Speak(text string, voiceSelector int) {
	if err := e.synthesizer.Cancel(); err != nil {
		log.WithError(err).Debug("failed to cancel in-flight speech")
	}
	voice, ok := e.resolveVoice(voiceSelector)
	if !ok {
		log.Warn("no synthesis voices available, question will not be voiced")
		return
	}
	if err := e.synthesizer.Speak(text, voice); err != nil {
		log.WithError(err).Warn("failed to start speech synthesis")
	}
}

func (e *Engine) resolveVoice(voiceSelector int) (string, bool) {
	preferred := femaleVoiceName
	if voiceSelector == VoiceMale {
		preferred = maleVoiceName
	}
	for attempt := 0; ; attempt++ {
		e.mu.Lock()
		voices := e.voices
		e.mu.Unlock()
		if len(voices) != 0 {
			for _, v := range voices {
				if v == preferred {
					return v, true
				}
			}
			return voices[0], true
		}
		if attempt >= e.voiceRetries {
			return "", false
		}
		time.Sleep(e.voiceInterval)
	}
}

func (e *Engine) Cancel() {
	if err := e.synthesizer.Cancel(); err != nil {
		log.WithError(err).Debug("failed to cancel speech")
	}
	e.mu.Lock()
	e.setSpeakingLocked(false)
	e.mu.Unlock()
}

func (e *Engine) Speaking() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.speaking
}

func (e *Engine) HandleStarted() {
	e.mu.Lock()
	e.setSpeakingLocked(true)
	e.mu.Unlock()
}

func (e *Engine) HandleEnded() {
	e.mu.Lock()
	e.setSpeakingLocked(false)
	e.mu.Unlock()
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
