package sessionhub

import (
	"context"
	"strconv"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"interview-trainer-backend/config"
	answerprovider "interview-trainer-backend/lib/answer"
	interviewprovider "interview-trainer-backend/lib/interview"
	"interview-trainer-backend/lib/session/orchestrator"
	voiceengine "interview-trainer-backend/lib/session/voice"
	interviewapimodels "interview-trainer-backend/models/api/interview"
	sessionapimodels "interview-trainer-backend/models/api/session"
)

// InitWs mounts the live-session socket. The client opens it after
// creating an interview and drives the whole run over it.
func InitWs(app *fiber.App) {
	app.Use("/ws", func(ctx *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(ctx) {
			return ctx.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/session/:interview_id", websocket.New(sessionHandler))
}

// @Summary Live interview session
// @Tags Websocket
// @Description Device events in, engine commands and injected feedback out
// @Param   interview_id	path	int	true	"interview id"
// @Param   voice			query	int	false	"avatar voice: 0 female, 1 male"
// @Success 200 {object} sessionapimodels.ServerCommand
// @Failure 400
// @Failure 500
// @router /ws/session/{interview_id} [get]
func sessionHandler(c *websocket.Conn) {
	logger := log.WithField("interview_id", c.Params("interview_id"))
	interviewID, err := strconv.Atoi(c.Params("interview_id"))
	if err != nil || interviewID <= 0 {
		logger.Warn("invalid interview id on session socket")
		c.Close()
		return
	}
	questions, err := interviewprovider.Instance.Questions(interviewID)
	if err != nil || len(questions) == 0 {
		logger.WithError(err).Error("failed to load session questions")
		c.Close()
		return
	}
	pending := make([]interviewapimodels.SessionQuestion, 0, len(questions))
	for _, q := range questions {
		if !q.IsAnswered {
			pending = append(pending, q)
		}
	}
	if len(pending) == 0 {
		logger.Warn("interview has no unanswered questions")
		c.Close()
		return
	}
	voiceSelector := voiceengine.VoiceFemale
	if c.Query("voice") == "1" {
		voiceSelector = voiceengine.VoiceMale
	}

	// the conn is registered first so the session's commands always have
	// a live sink
	sessionID := uuid.NewString()
	Instance.AddConn(sessionID, c)
	session := orchestrator.NewSession(interviewID, pending, Sender{SessionID: sessionID}, storeSubmitter{}, orchestrator.Config{
		SpecialQuestionIndex: config.Conf.Session.SpecialQuestionIndex,
		VoiceSelector:        voiceSelector,
	})
	defer func() {
		session.Close()
		Instance.DeleteConn(sessionID)
	}()
	logger = logger.WithField("session_id", sessionID)
	logger.Info("session connected")

	// started concurrently: the first Speak may wait for the voice list,
	// which arrives through the dispatch loop
	go session.Start()
	dispatch(c, session, logger)
	logger.Info("session disconnected")
}

func dispatch(c *websocket.Conn, session *orchestrator.Session, logger *log.Entry) {
	for {
		var ev sessionapimodels.ClientEvent
		if err := c.ReadJSON(&ev); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.WithError(err).Error("failed to read session event")
			}
			return
		}
		session.HandleEvent(ev)
	}
}

// storeSubmitter is the persistence boundary of live sessions.
type storeSubmitter struct{}

func (storeSubmitter) Submit(ctx context.Context, request interviewapimodels.SubmitAnswerRequest) error {
	return answerprovider.Instance.Submit(ctx, request)
}

func (storeSubmitter) DeleteInterview(id int) error {
	return interviewprovider.Instance.Delete(id)
}
