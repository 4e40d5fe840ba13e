package answerprovider

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"interview-trainer-backend/config"
	"interview-trainer-backend/db"
	filestorage "interview-trainer-backend/lib/file-storage"
	interviewfeedbackstore "interview-trainer-backend/lib/interview/feedback-store"
	interviewquestionstore "interview-trainer-backend/lib/interview/question-store"
	interviewstore "interview-trainer-backend/lib/interview/store"
	smtpclient "interview-trainer-backend/lib/smtp"
	"interview-trainer-backend/lib/utils/helpers"
	"interview-trainer-backend/models"
	interviewapimodels "interview-trainer-backend/models/api/interview"
	dbmodels "interview-trainer-backend/models/db"
)

type Provider interface {
	// Submit persists one answered question: the transcript, the injected
	// feedback entries and the recorded clip. When the submission carries
	// the complete status the whole interview is finalized.
	Submit(ctx context.Context, request interviewapimodels.SubmitAnswerRequest) error
	GetWithFeedback(interviewID, questionID int) (interviewapimodels.AnswerWithFeedback, error)
	GetClip(ctx context.Context, interviewID, questionID int) (clip []byte, contentType string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		interviewStore: interviewstore.NewInstance(db.DB),
		ivQuestStore:   interviewquestionstore.NewInstance(db.DB),
		feedbackStore:  interviewfeedbackstore.NewInstance(db.DB),
	}
}

type impl struct {
	interviewStore interviewstore.Provider
	ivQuestStore   interviewquestionstore.Provider
	feedbackStore  interviewfeedbackstore.Provider
}

func (i impl) Submit(ctx context.Context, request interviewapimodels.SubmitAnswerRequest) error {
	logger := log.
		WithField("interview_id", request.InterviewID).
		WithField("question_id", request.QuestionID)
	rec, err := i.ivQuestStore.Get(request.InterviewID, request.QuestionID)
	if err != nil {
		logger.WithError(err).Error("failed to get interview question")
		return err
	}
	if rec == nil {
		return errors.New("interview question not found")
	}
	clipKey := ""
	if len(request.Clip) != 0 {
		clipKey, err = filestorage.Instance.UploadClip(ctx, request.InterviewID, request.QuestionID, request.Clip, request.ClipContentType)
		if err != nil {
			// the transcript and the feedback are still worth keeping
			logger.WithError(err).Error("failed to store answer clip")
			clipKey = ""
		}
	}
	err = i.ivQuestStore.MarkAnswered(request.InterviewID, request.QuestionID, request.Answer, request.QuestionDuration, clipKey)
	if err != nil {
		logger.WithError(err).Error("failed to mark question answered")
		return err
	}
	feedbacks := make([]dbmodels.InterviewFeedback, 0, len(request.VerbalFeedback)+len(request.NonVerbalFeedback))
	for _, item := range request.VerbalFeedback {
		feedbacks = append(feedbacks, toFeedbackRec(rec.ID, item, models.FeedbackTypeVerbal))
	}
	for _, item := range request.NonVerbalFeedback {
		feedbacks = append(feedbacks, toFeedbackRec(rec.ID, item, models.FeedbackTypeNonVerbal))
	}
	if err = i.feedbackStore.CreateBatch(feedbacks); err != nil {
		logger.WithError(err).Error("failed to save feedback entries")
		return err
	}
	logger.
		WithField("feedbacks", len(feedbacks)).
		Info("answer submitted")
	if request.Status == models.InterviewStatusComplete {
		return i.complete(request.InterviewID, *request.InterviewDuration)
	}
	return nil
}

func (i impl) complete(interviewID, duration int) error {
	logger := log.WithField("interview_id", interviewID)
	err := i.interviewStore.Complete(interviewID, duration)
	if err != nil {
		logger.WithError(err).Error("failed to complete interview")
		return err
	}
	logger.
		WithField("duration", duration).
		Info("interview completed")
	i.sendSummary(interviewID, duration)
	return nil
}

// sendSummary is best effort, a dead mail server never fails a submission.
func (i impl) sendSummary(interviewID, duration int) {
	to := config.Conf.Smtp.SummaryEmail
	if to == "" {
		return
	}
	logger := log.WithField("interview_id", interviewID)
	rec, err := i.interviewStore.GetByID(interviewID)
	if err != nil || rec == nil {
		logger.WithError(err).Warn("failed to load interview for the summary email")
		return
	}
	answered := 0
	for _, q := range rec.Questions {
		if q.IsAnswered {
			answered++
		}
	}
	subject := fmt.Sprintf("Practice interview #%v completed", interviewID)
	message := fmt.Sprintf("Role: %v\r\nQuestions answered: %v of %v\r\nTotal time: %v",
		rec.JobRole.Name, answered, rec.NQuestions, helpers.FormatTime(duration))
	if err = smtpclient.Instance.SendEMail(to, message, subject); err != nil {
		logger.WithError(err).Warn("failed to send the summary email")
	}
}

func (i impl) GetWithFeedback(interviewID, questionID int) (interviewapimodels.AnswerWithFeedback, error) {
	logger := log.
		WithField("interview_id", interviewID).
		WithField("question_id", questionID)
	rec, err := i.ivQuestStore.Get(interviewID, questionID)
	if err != nil {
		logger.WithError(err).Error("failed to get interview question")
		return interviewapimodels.AnswerWithFeedback{}, err
	}
	if rec == nil {
		return interviewapimodels.AnswerWithFeedback{}, errors.New("interview question not found")
	}
	feedbacks, err := i.feedbackStore.ListByInterviewQuestion(rec.ID)
	if err != nil {
		logger.WithError(err).Error("failed to list feedback entries")
		return interviewapimodels.AnswerWithFeedback{}, err
	}
	result := interviewapimodels.AnswerWithFeedback{
		Answer: interviewapimodels.AnswerView{
			ID:         rec.ID,
			IsAnswered: rec.IsAnswered,
			Answer:     rec.Answer,
			Duration:   rec.Duration,
		},
		VerbalFeedbacks:    []interviewapimodels.FeedbackView{},
		NonVerbalFeedbacks: []interviewapimodels.FeedbackView{},
	}
	for _, fb := range feedbacks {
		view := interviewapimodels.FeedbackView{
			Text:       fb.Text,
			Seconds:    fb.Seconds,
			IsPositive: fb.IsPositive,
		}
		if fb.Type == models.FeedbackTypeVerbal {
			result.VerbalFeedbacks = append(result.VerbalFeedbacks, view)
		} else {
			result.NonVerbalFeedbacks = append(result.NonVerbalFeedbacks, view)
		}
	}
	return result, nil
}

func (i impl) GetClip(ctx context.Context, interviewID, questionID int) ([]byte, string, error) {
	logger := log.
		WithField("interview_id", interviewID).
		WithField("question_id", questionID)
	rec, err := i.ivQuestStore.Get(interviewID, questionID)
	if err != nil {
		logger.WithError(err).Error("failed to get interview question")
		return nil, "", err
	}
	if rec == nil || rec.ClipKey == "" {
		return nil, "", errors.New("answer clip not found")
	}
	return filestorage.Instance.GetClip(ctx, rec.ClipKey)
}

func toFeedbackRec(interviewQuestionID int, item interviewapimodels.FeedbackItem, fbType models.FeedbackType) dbmodels.InterviewFeedback {
	return dbmodels.InterviewFeedback{
		InterviewQuestionID: interviewQuestionID,
		Text:                item.Text,
		Type:                fbType,
		IsPositive:          item.IsPositive,
		Seconds:             item.Seconds,
	}
}
