package apiv1

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"interview-trainer-backend/controllers"
	answerprovider "interview-trainer-backend/lib/answer"
	pdfexport "interview-trainer-backend/lib/export/pdf"
	xlsexport "interview-trainer-backend/lib/export/xls"
	interviewprovider "interview-trainer-backend/lib/interview"
	"interview-trainer-backend/models"
	apimodels "interview-trainer-backend/models/api"
	interviewapimodels "interview-trainer-backend/models/api/interview"
)

type interviewApiController struct {
	controllers.BaseAPIController
}

func InitInterviewApiRouters(app *fiber.App) {
	controller := interviewApiController{}
	app.Route("interviews", func(router fiber.Router) {
		router.Post("", controller.create)
		router.Get("", controller.list)
		router.Get("export", controller.exportHistory)
		router.Get(":id", controller.get)
		router.Delete(":id", controller.delete)
		router.Get(":id/questions", controller.questions)
		router.Get(":id/report", controller.report)
		router.Post(":id/questions/:question_id/answer", controller.submitAnswer)
		router.Get(":id/questions/:question_id/answer", controller.getAnswer)
		router.Get(":id/questions/:question_id/clip", controller.getClip)
	})
}

// @Summary Create interview
// @Tags Interviews
// @Description Materializes the question set: the common warm-up pool plus a random role pick
// @Param	body body	 interviewapimodels.CreateRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=interviewapimodels.CreateResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interviews [post]
func (c *interviewApiController) create(ctx *fiber.Ctx) error {
	var payload interviewapimodels.CreateRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := interviewprovider.Instance.Create(models.DefaultUserID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to create interview")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Interview history
// @Tags Interviews
// @Description Denormalized list with role names and per-question answered flags
// @Success 200 {object} apimodels.Response{data=[]interviewapimodels.ListItem}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interviews [get]
func (c *interviewApiController) list(ctx *fiber.Ctx) error {
	list, err := interviewprovider.Instance.List(models.DefaultUserID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to get interview list")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Interview by id
// @Tags Interviews
// @Param   id	path	int	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=interviewapimodels.InterviewView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interviews/{id} [get]
func (c *interviewApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := interviewprovider.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to get interview")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Delete interview
// @Tags Interviews
// @Description Removes the interview with its question links, feedback and clips
// @Param   id	path	int	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interviews/{id} [delete]
func (c *interviewApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = interviewprovider.Instance.Delete(id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to delete interview")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Questions of an interview
// @Tags Interviews
// @Param   id	path	int	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=[]interviewapimodels.SessionQuestion}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interviews/{id}/questions [get]
func (c *interviewApiController) questions(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := interviewprovider.Instance.Questions(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to get interview questions")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Export interview history
// @Tags Interviews
// @Description Interview history as an xlsx file
// @Success 200 {file} file
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interviews/export [get]
func (c *interviewApiController) exportHistory(ctx *fiber.Ctx) error {
	list, err := interviewprovider.Instance.List(models.DefaultUserID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to get interview list")
	}
	buf, err := xlsexport.Instance.ExportInterviewHistory(list)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to export interview history")
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="interview_history.xlsx"`)
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}

// @Summary Feedback report
// @Tags Interviews
// @Description Per-question transcripts and feedback as a pdf file
// @Param   id	path	int	true	"rec ID"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interviews/{id}/report [get]
func (c *interviewApiController) report(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data, err := c.collectReportData(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to collect report data")
	}
	file, err := pdfexport.GenerateFeedbackReport(data)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to render feedback report")
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="interview_%v_report.pdf"`, id))
	return ctx.Status(fiber.StatusOK).Send(file)
}

func (c *interviewApiController) collectReportData(interviewID int) (pdfexport.ReportData, error) {
	list, err := interviewprovider.Instance.List(models.DefaultUserID)
	if err != nil {
		return pdfexport.ReportData{}, err
	}
	var item *interviewapimodels.ListItem
	for idx := range list {
		if list[idx].InterviewID == interviewID {
			item = &list[idx]
			break
		}
	}
	if item == nil {
		return pdfexport.ReportData{}, errors.New("interview not found")
	}
	data := pdfexport.ReportData{Interview: *item}
	for _, q := range item.Questions {
		if !q.IsAnswered {
			continue
		}
		answer, err := answerprovider.Instance.GetWithFeedback(interviewID, q.ID)
		if err != nil {
			return pdfexport.ReportData{}, err
		}
		data.Answers = append(data.Answers, pdfexport.QuestionReport{
			QuestionText: q.QuestionText,
			Answer:       answer,
			Duration:     answer.Answer.Duration,
		})
	}
	return data, nil
}

// @Summary Submit answer
// @Tags Interviews
// @Description Multipart submission: transcript, clip, feedback lists, status and durations
// @Accept mpfd
// @Param   id				path	int	true	"interview ID"
// @Param   question_id		path	int	true	"question ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interviews/{id}/questions/{question_id}/answer [post]
func (c *interviewApiController) submitAnswer(ctx *fiber.Ctx) error {
	interviewID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	questionID, err := c.GetID(ctx, "question_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	request, err := parseSubmission(ctx, interviewID, questionID)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = request.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = answerprovider.Instance.Submit(ctx.Context(), request); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to submit answer")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

func parseSubmission(ctx *fiber.Ctx, interviewID, questionID int) (interviewapimodels.SubmitAnswerRequest, error) {
	request := interviewapimodels.SubmitAnswerRequest{
		InterviewID: interviewID,
		QuestionID:  questionID,
		Answer:      ctx.FormValue("answer"),
	}
	status, err := strconv.Atoi(ctx.FormValue("status", "0"))
	if err != nil {
		return request, errors.New("invalid status value")
	}
	request.Status = models.InterviewStatus(status)
	request.QuestionDuration, err = strconv.Atoi(ctx.FormValue("questionDuration", "0"))
	if err != nil {
		return request, errors.New("invalid question duration value")
	}
	if raw := ctx.FormValue("interviewDuration"); raw != "" {
		total, err := strconv.Atoi(raw)
		if err != nil {
			return request, errors.New("invalid interview duration value")
		}
		request.InterviewDuration = &total
	}
	if raw := ctx.FormValue("verbalFeedback"); raw != "" {
		if err = json.Unmarshal([]byte(raw), &request.VerbalFeedback); err != nil {
			return request, errors.New("invalid verbal feedback payload")
		}
	}
	if raw := ctx.FormValue("nonVerbalFeedback"); raw != "" {
		if err = json.Unmarshal([]byte(raw), &request.NonVerbalFeedback); err != nil {
			return request, errors.New("invalid non-verbal feedback payload")
		}
	}
	fileHeader, err := ctx.FormFile("video")
	if err == nil && fileHeader != nil {
		request.Clip, request.ClipContentType, err = readClip(fileHeader)
		if err != nil {
			return request, err
		}
	}
	return request, nil
}

func readClip(fileHeader *multipart.FileHeader) ([]byte, string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, "", errors.New("failed to read the uploaded clip")
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", errors.New("failed to read the uploaded clip")
	}
	return data, fileHeader.Header.Get(fiber.HeaderContentType), nil
}

// @Summary Answer with feedback
// @Tags Interviews
// @Param   id				path	int	true	"interview ID"
// @Param   question_id		path	int	true	"question ID"
// @Success 200 {object} apimodels.Response{data=interviewapimodels.AnswerWithFeedback}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interviews/{id}/questions/{question_id}/answer [get]
func (c *interviewApiController) getAnswer(ctx *fiber.Ctx) error {
	interviewID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	questionID, err := c.GetID(ctx, "question_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := answerprovider.Instance.GetWithFeedback(interviewID, questionID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to get answer")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Answer clip
// @Tags Interviews
// @Description The recorded answer video, binary with its content type
// @Param   id				path	int	true	"interview ID"
// @Param   question_id		path	int	true	"question ID"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interviews/{id}/questions/{question_id}/clip [get]
func (c *interviewApiController) getClip(ctx *fiber.Ctx) error {
	interviewID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	questionID, err := c.GetID(ctx, "question_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	clip, contentType, err := answerprovider.Instance.GetClip(ctx.Context(), interviewID, questionID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to get answer clip")
	}
	if contentType == "" {
		contentType = "video/webm"
	}
	ctx.Set(fiber.HeaderContentType, contentType)
	return ctx.Status(fiber.StatusOK).Send(clip)
}
