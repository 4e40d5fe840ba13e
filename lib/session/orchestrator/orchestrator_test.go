package orchestrator

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	feedbackcatalog "interview-trainer-backend/lib/feedback-catalog"
	"interview-trainer-backend/models"
	interviewapimodels "interview-trainer-backend/models/api/interview"
	sessionapimodels "interview-trainer-backend/models/api/session"
)

type fakeSender struct {
	mu   sync.Mutex
	cmds []sessionapimodels.ServerCommand
}

func (f *fakeSender) Send(cmd sessionapimodels.ServerCommand) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cmds = append(f.cmds, cmd)
	return nil
}

func (f *fakeSender) ofType(cmdType string) []sessionapimodels.ServerCommand {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []sessionapimodels.ServerCommand
	for _, cmd := range f.cmds {
		if cmd.Type == cmdType {
			result = append(result, cmd)
		}
	}
	return result
}

type fakeSubmitter struct {
	mu       sync.Mutex
	requests []interviewapimodels.SubmitAnswerRequest
	deleted  []int
}

func (f *fakeSubmitter) Submit(_ context.Context, request interviewapimodels.SubmitAnswerRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, request)
	return nil
}

func (f *fakeSubmitter) DeleteInterview(id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeSubmitter) submissions() []interviewapimodels.SubmitAnswerRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := make([]interviewapimodels.SubmitAnswerRequest, len(f.requests))
	copy(result, f.requests)
	return result
}

func testQuestions() []interviewapimodels.SessionQuestion {
	return []interviewapimodels.SessionQuestion{
		{ID: 11, QuestionText: "Tell me about yourself.", Difficulty: models.DifficultyEasy, Duration: 120},
		{ID: 12, QuestionText: "Describe a hard bug you fixed.", Difficulty: models.DifficultyMedium, Duration: 180},
	}
}

func newTestSession(t *testing.T, sender *fakeSender, submitter *fakeSubmitter) *Session {
	t.Helper()
	feedbackcatalog.NewHandler()
	s := NewSession(5, testQuestions(), sender, submitter, Config{
		SegmentGrace:       time.Millisecond,
		SpeakingDebounce:   10 * time.Millisecond,
		RestartBackoff:     10 * time.Millisecond,
		VerbalInterval:     time.Hour, // keyword-only in tests
		NonVerbalInterval:  time.Hour,
		TickInterval:       5 * time.Millisecond,
		VoiceRetryInterval: time.Millisecond,
	})
	t.Cleanup(s.Close)
	return s
}

// finalizeSegment plays the client's part of a recorder stop.
func finalizeSegment(s *Session, chunk string) {
	s.HandleEvent(sessionapimodels.ClientEvent{Type: sessionapimodels.EventMediaChunk, Chunk: []byte(chunk)})
	s.HandleEvent(sessionapimodels.ClientEvent{Type: sessionapimodels.EventMediaStopped})
}

func TestSessionLifecycle(t *testing.T) {
	sender := &fakeSender{}
	submitter := &fakeSubmitter{}
	s := newTestSession(t, sender, submitter)

	s.HandleEvent(sessionapimodels.ClientEvent{Type: sessionapimodels.EventVoiceList, Voices: []string{"Test Voice"}})
	s.Start()

	questions := sender.ofType(sessionapimodels.CommandQuestion)
	require.Len(t, questions, 1)
	require.Equal(t, 0, questions[0].Index)
	require.Equal(t, 11, questions[0].Question.ID)
	require.Len(t, sender.ofType(sessionapimodels.CommandSpeak), 1)
	require.Len(t, sender.ofType(sessionapimodels.CommandStartRecognition), 1)

	// the recorder segment starts after the grace delay
	require.Eventually(t, func() bool {
		return len(sender.ofType(sessionapimodels.CommandStartRecorder)) == 1
	}, time.Second, time.Millisecond)

	// a keyword at sentence end injects verbal feedback immediately
	s.HandleEvent(sessionapimodels.ClientEvent{
		Type:       sessionapimodels.EventRecognitionResult,
		Transcript: "Here is what I achieved.",
		Final:      true,
	})
	require.Eventually(t, func() bool {
		return len(sender.ofType(sessionapimodels.CommandFeedback)) == 1
	}, time.Second, time.Millisecond)

	s.HandleEvent(sessionapimodels.ClientEvent{Type: sessionapimodels.EventTypedAnswer, Text: "Typed summary"})

	// advance: stop segment, flush the clip, expect submission + question 2
	s.HandleEvent(sessionapimodels.ClientEvent{Type: sessionapimodels.EventNextQuestion})
	finalizeSegment(s, "clip-1")

	require.Eventually(t, func() bool { return len(submitter.submissions()) == 1 },
		time.Second, time.Millisecond)
	first := submitter.submissions()[0]
	require.Equal(t, 5, first.InterviewID)
	require.Equal(t, 11, first.QuestionID)
	require.Equal(t, models.InterviewStatusPending, first.Status)
	require.Nil(t, first.InterviewDuration)
	require.Equal(t, []byte("clip-1"), first.Clip)
	require.Contains(t, first.Answer, "Typed summary")
	require.Contains(t, first.Answer, "achieved")
	require.Len(t, first.VerbalFeedback, 1)

	require.Eventually(t, func() bool {
		return len(sender.ofType(sessionapimodels.CommandQuestion)) == 2
	}, time.Second, time.Millisecond)
	require.Equal(t, 1, s.QuestionIndex())
	require.Zero(t, s.QuestionElapsed())

	// last question: completion carries the total duration
	require.Eventually(t, func() bool {
		return len(sender.ofType(sessionapimodels.CommandStartRecorder)) == 2
	}, time.Second, time.Millisecond)
	s.HandleEvent(sessionapimodels.ClientEvent{Type: sessionapimodels.EventNextQuestion})
	finalizeSegment(s, "clip-2")

	require.Eventually(t, func() bool { return len(submitter.submissions()) == 2 },
		time.Second, time.Millisecond)
	second := submitter.submissions()[1]
	require.Equal(t, 12, second.QuestionID)
	require.Equal(t, models.InterviewStatusComplete, second.Status)
	require.NotNil(t, second.InterviewDuration)
	// feedback lists were cleared on advancement
	require.Empty(t, second.VerbalFeedback)

	require.Len(t, sender.ofType(sessionapimodels.CommandCompleted), 1)
}

func TestSessionPauseFlow(t *testing.T) {
	sender := &fakeSender{}
	submitter := &fakeSubmitter{}
	s := newTestSession(t, sender, submitter)
	s.HandleEvent(sessionapimodels.ClientEvent{Type: sessionapimodels.EventVoiceList, Voices: []string{"Test Voice"}})
	s.Start()
	require.Eventually(t, func() bool {
		return len(sender.ofType(sessionapimodels.CommandStartRecorder)) == 1
	}, time.Second, time.Millisecond)

	t.Run("pause freezes the timers", func(t *testing.T) {
		require.Eventually(t, func() bool { return s.TotalElapsed() > 0 },
			time.Second, time.Millisecond)
		s.HandleEvent(sessionapimodels.ClientEvent{Type: sessionapimodels.EventPause})
		require.True(t, s.Paused())
		require.Len(t, sender.ofType(sessionapimodels.CommandPauseRecorder), 1)
		frozen := s.TotalElapsed()
		time.Sleep(30 * time.Millisecond)
		require.Equal(t, frozen, s.TotalElapsed())
	})

	t.Run("resume restarts recognition and the timers", func(t *testing.T) {
		s.HandleEvent(sessionapimodels.ClientEvent{Type: sessionapimodels.EventResume})
		require.False(t, s.Paused())
		require.Len(t, sender.ofType(sessionapimodels.CommandResumeRecorder), 1)
		before := s.TotalElapsed()
		require.Eventually(t, func() bool { return s.TotalElapsed() > before },
			time.Second, time.Millisecond)
	})

	t.Run("save and exit submits the current answer without advancing", func(t *testing.T) {
		s.HandleEvent(sessionapimodels.ClientEvent{Type: sessionapimodels.EventPause})
		s.HandleEvent(sessionapimodels.ClientEvent{Type: sessionapimodels.EventSaveAndExit})
		finalizeSegment(s, "partial")

		require.Eventually(t, func() bool { return len(submitter.submissions()) == 1 },
			time.Second, time.Millisecond)
		submission := submitter.submissions()[0]
		require.Equal(t, 11, submission.QuestionID)
		// more questions remained, so the interview stays incomplete
		require.Equal(t, models.InterviewStatusPending, submission.Status)
		require.Len(t, sender.ofType(sessionapimodels.CommandQuestion), 1)
		require.Len(t, sender.ofType(sessionapimodels.CommandCompleted), 1)
	})
}

func TestSessionDelete(t *testing.T) {
	sender := &fakeSender{}
	submitter := &fakeSubmitter{}
	s := newTestSession(t, sender, submitter)
	s.Start()

	s.HandleEvent(sessionapimodels.ClientEvent{Type: sessionapimodels.EventPause})
	s.HandleEvent(sessionapimodels.ClientEvent{Type: sessionapimodels.EventDeleteInterview})

	require.Equal(t, []int{5}, submitter.deleted)
	require.Len(t, sender.ofType(sessionapimodels.CommandDeleted), 1)
	require.Empty(t, submitter.submissions())
}

func TestPermissionDenied(t *testing.T) {
	sender := &fakeSender{}
	s := newTestSession(t, sender, &fakeSubmitter{})
	s.HandleEvent(sessionapimodels.ClientEvent{Type: sessionapimodels.EventPermissionDenied})
	require.False(t, s.Streaming())
	errs := sender.ofType(sessionapimodels.CommandError)
	require.Len(t, errs, 1)
}
