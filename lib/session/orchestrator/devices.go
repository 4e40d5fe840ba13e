package orchestrator

import (
	sessionapimodels "interview-trainer-backend/models/api/session"
)

// CommandSender pushes engine commands to the connected client; the hub
// owns the actual socket.
type CommandSender interface {
	Send(cmd sessionapimodels.ServerCommand) error
}

// The capture devices live on the client; these adapters turn engine
// calls into transport commands.

type remoteRecognizer struct {
	sender CommandSender
}

func (r remoteRecognizer) Start() error {
	return r.sender.Send(sessionapimodels.ServerCommand{Type: sessionapimodels.CommandStartRecognition})
}

func (r remoteRecognizer) Stop() error {
	return r.sender.Send(sessionapimodels.ServerCommand{Type: sessionapimodels.CommandStopRecognition})
}

type remoteSynthesizer struct {
	sender CommandSender
}

func (r remoteSynthesizer) Speak(text, voice string) error {
	return r.sender.Send(sessionapimodels.ServerCommand{
		Type:  sessionapimodels.CommandSpeak,
		Text:  text,
		Voice: voice,
	})
}

func (r remoteSynthesizer) Cancel() error {
	return r.sender.Send(sessionapimodels.ServerCommand{Type: sessionapimodels.CommandCancelSpeech})
}

type remoteRecorder struct {
	sender CommandSender
}

func (r remoteRecorder) Start() error {
	return r.sender.Send(sessionapimodels.ServerCommand{Type: sessionapimodels.CommandStartRecorder})
}

func (r remoteRecorder) Stop() error {
	return r.sender.Send(sessionapimodels.ServerCommand{Type: sessionapimodels.CommandStopRecorder})
}

func (r remoteRecorder) Pause() error {
	return r.sender.Send(sessionapimodels.ServerCommand{Type: sessionapimodels.CommandPauseRecorder})
}

func (r remoteRecorder) Resume() error {
	return r.sender.Send(sessionapimodels.ServerCommand{Type: sessionapimodels.CommandResumeRecorder})
}
