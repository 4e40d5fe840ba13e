package sessionapimodels

import (
	interviewapimodels "interview-trainer-backend/models/api/interview"
)

// ClientEvent types: everything the browser reports into the session.
const (
	EventRecognitionResult = "recognition_result" // payload: transcript + final flag
	EventRecognitionEnd    = "recognition_end"
	EventRecognitionError  = "recognition_error"
	EventSynthesisStarted  = "synthesis_started"
	EventSynthesisEnded    = "synthesis_ended"
	EventVoiceList         = "voice_list" // payload: available synthesis voice names
	EventMediaChunk        = "media_chunk"
	EventMediaStopped      = "media_stopped"
	EventPermissionDenied  = "permission_denied"
	EventTypedAnswer       = "typed_answer"
	EventNextQuestion      = "next_question"
	EventPause             = "pause"
	EventResume            = "resume"
	EventSaveAndExit       = "save_and_exit"
	EventDeleteInterview   = "delete_interview"
	EventDiscard           = "discard"
)

// ServerCommand types: everything the session asks the browser to do,
// plus pushes of injected feedback and question transitions.
const (
	CommandStartRecognition = "start_recognition"
	CommandStopRecognition  = "stop_recognition"
	CommandSpeak            = "speak"
	CommandCancelSpeech     = "cancel_speech"
	CommandStartRecorder    = "start_recorder"
	CommandStopRecorder     = "stop_recorder"
	CommandPauseRecorder    = "pause_recorder"
	CommandResumeRecorder   = "resume_recorder"
	CommandFeedback         = "feedback"
	CommandQuestion         = "question"
	CommandCompleted        = "completed"
	CommandDeleted          = "deleted"
	CommandError            = "error"
)

type ClientEvent struct {
	Type       string   `json:"type"`
	Transcript string   `json:"transcript,omitempty"`
	Final      bool     `json:"final,omitempty"`
	Error      string   `json:"error,omitempty"`
	Voices     []string `json:"voices,omitempty"`
	Chunk      []byte   `json:"chunk,omitempty"` // base64 in JSON
	Text       string   `json:"text,omitempty"`
}

type ServerCommand struct {
	Type     string                              `json:"type"`
	Text     string                              `json:"text,omitempty"`  // question text for speak
	Voice    string                              `json:"voice,omitempty"` // resolved synthesis voice name
	Feedback *interviewapimodels.FeedbackItem    `json:"feedback,omitempty"`
	Channel  string                              `json:"channel,omitempty"` // verbal / non_verbal
	Question *interviewapimodels.SessionQuestion `json:"question,omitempty"`
	Index    int                                 `json:"index,omitempty"` // 0-based question index
	Message  string                              `json:"message,omitempty"`
}
