package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"interview-trainer-backend/controllers"
	feedbackcatalog "interview-trainer-backend/lib/feedback-catalog"
	apimodels "interview-trainer-backend/models/api"
)

type feedbackApiController struct {
	controllers.BaseAPIController
}

func InitFeedbackApiRouters(app *fiber.App) {
	controller := feedbackApiController{}
	app.Route("feedback", func(router fiber.Router) {
		router.Get("verbal", controller.verbal)
		router.Get("non-verbal", controller.nonVerbal)
	})
}

// @Summary Verbal feedback catalog
// @Tags Feedback catalog
// @Description Static keyword-triggered feedback entries
// @Success 200 {object} apimodels.Response{data=[]feedbackapimodels.VerbalEntry}
// @router /api/v1/feedback/verbal [get]
func (c *feedbackApiController) verbal(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(feedbackcatalog.Instance.GetVerbal()))
}

// @Summary Non-verbal feedback catalog
// @Tags Feedback catalog
// @Description Static body-language feedback entries
// @Success 200 {object} apimodels.Response{data=[]feedbackapimodels.NonVerbalEntry}
// @router /api/v1/feedback/non-verbal [get]
func (c *feedbackApiController) nonVerbal(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(feedbackcatalog.Instance.GetNonVerbal()))
}
