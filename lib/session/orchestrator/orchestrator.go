package orchestrator

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	feedbackcatalog "interview-trainer-backend/lib/feedback-catalog"
	feedbackinjector "interview-trainer-backend/lib/session/feedback"
	mediaengine "interview-trainer-backend/lib/session/media"
	speechengine "interview-trainer-backend/lib/session/speech"
	voiceengine "interview-trainer-backend/lib/session/voice"
	"interview-trainer-backend/models"
	interviewapimodels "interview-trainer-backend/models/api/interview"
	sessionapimodels "interview-trainer-backend/models/api/session"
)

// Submitter is the persistence boundary of a live session.
type Submitter interface {
	Submit(ctx context.Context, request interviewapimodels.SubmitAnswerRequest) error
	DeleteInterview(id int) error
}

type globalState int

const (
	stateRunning globalState = iota
	statePaused
	stateExiting
	stateClosed
)

const submitTimeout = 30 * time.Second

// Config carries per-session knobs; zero values fall back to production
// timings.
type Config struct {
	SpecialQuestionIndex *int
	VoiceSelector        int

	SpeakingDebounce   time.Duration
	RestartBackoff     time.Duration
	SegmentGrace       time.Duration
	VerbalInterval     time.Duration
	NonVerbalInterval  time.Duration
	TickInterval       time.Duration
	VoiceRetryInterval time.Duration
}

// Session drives one interview run: the per-question state machine, the
// elapsed-time ticker and the submission assembly. All client traffic
// reaches it through HandleEvent; all device control leaves through the
// command sender.
type Session struct {
	mu sync.Mutex

	interviewID int
	questions   []interviewapimodels.SessionQuestion
	idx         int

	sender    CommandSender
	submitter Submitter

	speech   *speechengine.Engine
	voice    *voiceengine.Engine
	media    *mediaengine.Engine
	injector *feedbackinjector.Injector

	state      globalState
	dialogOpen bool
	// what the pending clip finalization should do
	advancing bool
	exiting   bool

	totalElapsed    int
	questionElapsed int

	typedAnswer string

	tickInterval time.Duration
	tickStop     chan struct{}

	voiceSelector int
}

func NewSession(interviewID int, questions []interviewapimodels.SessionQuestion, sender CommandSender, submitter Submitter, cfg Config) *Session {
	s := &Session{
		interviewID:   interviewID,
		questions:     questions,
		sender:        sender,
		submitter:     submitter,
		voiceSelector: cfg.VoiceSelector,
		tickInterval:  cfg.TickInterval,
	}
	if s.tickInterval == 0 {
		s.tickInterval = time.Second
	}

	speechOpts := []speechengine.Option{
		speechengine.WithSentenceListener(s.onSentence),
	}
	if cfg.SpeakingDebounce != 0 {
		speechOpts = append(speechOpts, speechengine.WithTimings(cfg.SpeakingDebounce, cfg.RestartBackoff))
	}
	s.speech = speechengine.NewEngine(remoteRecognizer{sender}, speechOpts...)

	var voiceOpts []voiceengine.Option
	if cfg.VoiceRetryInterval != 0 {
		voiceOpts = append(voiceOpts, voiceengine.WithVoiceRetry(2, cfg.VoiceRetryInterval))
	}
	s.voice = voiceengine.NewEngine(remoteSynthesizer{sender}, voiceOpts...)

	mediaOpts := []mediaengine.Option{
		mediaengine.WithClipListener(s.onClipReady),
		mediaengine.WithBlockedListener(s.onBlocked),
	}
	if cfg.SegmentGrace != 0 {
		mediaOpts = append(mediaOpts, mediaengine.WithSegmentGrace(cfg.SegmentGrace))
	}
	s.media = mediaengine.NewEngine(remoteRecorder{sender}, mediaOpts...)

	injectorOpts := []feedbackinjector.Option{
		feedbackinjector.WithSpecialQuestionIndex(cfg.SpecialQuestionIndex),
		feedbackinjector.WithInjectListener(s.onInject),
	}
	if cfg.VerbalInterval != 0 {
		injectorOpts = append(injectorOpts, feedbackinjector.WithIntervals(cfg.VerbalInterval, cfg.NonVerbalInterval))
	}
	s.injector = feedbackinjector.NewInjector(feedbackcatalog.Instance, s, injectorOpts...)

	return s
}

// Flags for the feedback injector.

func (s *Session) HRSpeaking() bool   { return s.voice.Speaking() }
func (s *Session) UserSpeaking() bool { return s.speech.Speaking() }
func (s *Session) Streaming() bool    { return s.media.Streaming() }

func (s *Session) Paused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state != stateRunning || s.dialogOpen
}

func (s *Session) QuestionElapsed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.questionElapsed
}

func (s *Session) TotalElapsed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalElapsed
}

func (s *Session) QuestionIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.idx
}

// HandleEvent consumes one client event; unknown types are dropped with a
// debug log so protocol additions stay backward compatible.
func (s *Session) HandleEvent(ev sessionapimodels.ClientEvent) {
	switch ev.Type {
	case sessionapimodels.EventVoiceList:
		s.voice.SetVoices(ev.Voices)
	case sessionapimodels.EventRecognitionResult:
		s.speech.HandleResult(ev.Transcript, ev.Final)
	case sessionapimodels.EventRecognitionEnd:
		s.speech.HandleEnd()
	case sessionapimodels.EventRecognitionError:
		s.speech.HandleError(ev.Error)
	case sessionapimodels.EventSynthesisStarted:
		s.voice.HandleStarted()
	case sessionapimodels.EventSynthesisEnded:
		s.voice.HandleEnded()
	case sessionapimodels.EventMediaChunk:
		s.media.HandleChunk(ev.Chunk)
	case sessionapimodels.EventMediaStopped:
		s.media.HandleStopped()
	case sessionapimodels.EventPermissionDenied:
		s.media.HandlePermissionDenied()
	case sessionapimodels.EventTypedAnswer:
		s.setTypedAnswer(ev.Text)
	case sessionapimodels.EventNextQuestion:
		s.NextQuestion()
	case sessionapimodels.EventPause:
		s.Pause()
	case sessionapimodels.EventResume:
		s.Resume()
	case sessionapimodels.EventSaveAndExit:
		s.SaveAndExit()
	case sessionapimodels.EventDeleteInterview:
		s.DeleteInterview()
	case sessionapimodels.EventDiscard:
		s.Discard()
	default:
		log.WithField("event_type", ev.Type).Debug("unknown session event")
	}
}

// Start opens the session: capture goes live, the first question is
// pushed and voiced, generators and the ticker spin up.
func (s *Session) Start() {
	s.media.StartStream()
	s.injector.Start()
	s.speech.StartListening()
	s.pushQuestion()
	s.media.StartSegment()
	s.ensureTicker()
}

func (s *Session) pushQuestion() {
	s.mu.Lock()
	if s.idx >= len(s.questions) {
		s.mu.Unlock()
		return
	}
	question := s.questions[s.idx]
	idx := s.idx
	s.mu.Unlock()
	s.send(sessionapimodels.ServerCommand{
		Type:     sessionapimodels.CommandQuestion,
		Question: &question,
		Index:    idx,
	})
	s.voice.Speak(question.QuestionText, s.voiceSelector)
}

// NextQuestion cuts the current segment; the actual submission and
// advancement happen when the finalized clip lands.
func (s *Session) NextQuestion() {
	s.mu.Lock()
	if s.state != stateRunning || s.dialogOpen {
		s.mu.Unlock()
		return
	}
	s.advancing = true
	s.mu.Unlock()
	s.media.StopSegment()
}

// Pause opens the confirmation dialog: recognition pauses, the recorder
// pauses natively, timers freeze.
func (s *Session) Pause() {
	s.mu.Lock()
	if s.state != stateRunning || s.dialogOpen {
		s.mu.Unlock()
		return
	}
	s.state = statePaused
	s.dialogOpen = true
	s.mu.Unlock()
	s.speech.PauseListening()
	s.voice.Cancel()
	s.media.Pause()
	s.ensureTicker()
}

func (s *Session) Resume() {
	s.mu.Lock()
	if s.state != statePaused {
		s.mu.Unlock()
		return
	}
	s.state = stateRunning
	s.dialogOpen = false
	s.mu.Unlock()
	s.media.Resume()
	s.speech.ResumeListening()
	s.ensureTicker()
}

// SaveAndExit submits the current answer from inside the dialog; the
// session ends without advancing.
func (s *Session) SaveAndExit() {
	s.mu.Lock()
	if s.state == stateClosed {
		s.mu.Unlock()
		return
	}
	s.state = stateExiting
	s.dialogOpen = true
	s.exiting = true
	wasPaused := s.media.State() == mediaengine.StatePaused
	s.mu.Unlock()
	if wasPaused {
		s.media.Resume()
	}
	s.ensureTicker()
	s.media.StopSegment()
}

// DeleteInterview drops the whole interview with its questions and
// feedback; nothing is submitted.
func (s *Session) DeleteInterview() {
	s.mu.Lock()
	interviewID := s.interviewID
	s.mu.Unlock()
	if err := s.submitter.DeleteInterview(interviewID); err != nil {
		log.
			WithField("interview_id", interviewID).
			WithError(err).
			Error("failed to delete interview")
		s.send(sessionapimodels.ServerCommand{
			Type:    sessionapimodels.CommandError,
			Message: "failed to delete interview",
		})
		return
	}
	s.send(sessionapimodels.ServerCommand{Type: sessionapimodels.CommandDeleted})
	s.Close()
}

// Discard ends the session without submitting or deleting anything.
func (s *Session) Discard() {
	s.Close()
}

func (s *Session) setTypedAnswer(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.typedAnswer = text
}

func (s *Session) onSentence(sentence string) {
	s.injector.OnSentence(sentence)
}

func (s *Session) onInject(item interviewapimodels.FeedbackItem, channel string) {
	s.send(sessionapimodels.ServerCommand{
		Type:     sessionapimodels.CommandFeedback,
		Feedback: &item,
		Channel:  channel,
	})
}

func (s *Session) onBlocked() {
	s.ensureTicker()
	s.send(sessionapimodels.ServerCommand{
		Type:    sessionapimodels.CommandError,
		Message: "camera or microphone permission denied",
	})
}

// onClipReady is the submission trigger of the state machine.
func (s *Session) onClipReady(clip []byte) {
	s.mu.Lock()
	if s.state == stateClosed {
		s.mu.Unlock()
		return
	}
	exiting := s.exiting
	advancing := s.advancing
	s.advancing = false
	s.exiting = false

	// the last question completes the interview whether it was reached by
	// advancing or from inside a pause/exit dialog
	lastQuestion := s.idx >= len(s.questions)-1
	status := models.InterviewStatusPending
	if lastQuestion {
		status = models.InterviewStatusComplete
	}
	request := s.buildSubmissionLocked(clip, status)
	s.mu.Unlock()

	s.submit(request)

	switch {
	case exiting:
		s.finish()
	case advancing && !lastQuestion:
		s.advance()
	case advancing && lastQuestion:
		s.finish()
	}
}

// buildSubmissionLocked composes the answer payload: the typed text wins
// when recognition produced nothing.
func (s *Session) buildSubmissionLocked(clip []byte, status models.InterviewStatus) interviewapimodels.SubmitAnswerRequest {
	lastSentence := s.speech.LastSentence()
	answer := s.typedAnswer
	if lastSentence != "" {
		if answer == "" {
			answer = lastSentence
		} else {
			answer = answer + " " + lastSentence
		}
	}
	request := interviewapimodels.SubmitAnswerRequest{
		InterviewID:       s.interviewID,
		QuestionID:        s.questions[min(s.idx, len(s.questions)-1)].ID,
		Answer:            answer,
		Clip:              clip,
		ClipContentType:   "video/webm",
		VerbalFeedback:    s.injector.Verbal(),
		NonVerbalFeedback: s.injector.NonVerbal(),
		Status:            status,
		QuestionDuration:  s.questionElapsed,
	}
	if status == models.InterviewStatusComplete {
		total := s.totalElapsed
		request.InterviewDuration = &total
	}
	return request
}

func (s *Session) submit(request interviewapimodels.SubmitAnswerRequest) {
	ctx, cancel := context.WithTimeout(context.Background(), submitTimeout)
	defer cancel()
	if err := s.submitter.Submit(ctx, request); err != nil {
		log.
			WithField("interview_id", request.InterviewID).
			WithField("question_id", request.QuestionID).
			WithError(err).
			Error("failed to submit answer")
		s.send(sessionapimodels.ServerCommand{
			Type:    sessionapimodels.CommandError,
			Message: "failed to submit answer",
		})
	}
}

// advance moves to the next question: feedback and the question timer
// reset, the total timer keeps running.
func (s *Session) advance() {
	s.mu.Lock()
	s.idx++
	s.questionElapsed = 0
	s.typedAnswer = ""
	s.mu.Unlock()
	s.injector.Clear()
	s.speech.StopListening()
	s.speech.StartListening()
	s.pushQuestion()
	s.media.StartSegment()
}

func (s *Session) finish() {
	s.send(sessionapimodels.ServerCommand{Type: sessionapimodels.CommandCompleted})
	s.Close()
}

// Close tears the session down; every timer and generator stops here.
func (s *Session) Close() {
	s.mu.Lock()
	if s.state == stateClosed {
		s.mu.Unlock()
		return
	}
	s.state = stateClosed
	s.mu.Unlock()
	s.injector.Stop()
	s.speech.StopListening()
	s.voice.Cancel()
	s.media.StopAll()
	s.ensureTicker()
}

// ensureTicker rebuilds the 1s ticker after every streaming/dialog/state
// change; it never double-runs.
func (s *Session) ensureTicker() {
	s.mu.Lock()
	defer s.mu.Unlock()
	shouldRun := s.state == stateRunning && !s.dialogOpen && s.media.Streaming()
	if shouldRun == (s.tickStop != nil) {
		return
	}
	if !shouldRun {
		close(s.tickStop)
		s.tickStop = nil
		return
	}
	stopCh := make(chan struct{})
	s.tickStop = stopCh
	go s.runTicker(stopCh)
}

func (s *Session) runTicker(stopCh chan struct{}) {
	ticker := time.NewTicker(s.tickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			s.mu.Lock()
			if s.state == stateRunning && !s.dialogOpen && s.media.Streaming() {
				s.totalElapsed++
				s.questionElapsed++
			}
			s.mu.Unlock()
		}
	}
}

func (s *Session) send(cmd sessionapimodels.ServerCommand) {
	if err := s.sender.Send(cmd); err != nil {
		log.WithError(err).Debug("failed to push session command")
	}
}
