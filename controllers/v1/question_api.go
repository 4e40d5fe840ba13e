package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"interview-trainer-backend/controllers"
	gpthandler "interview-trainer-backend/lib/gpt"
	questionprovider "interview-trainer-backend/lib/question"
	"interview-trainer-backend/models"
	apimodels "interview-trainer-backend/models/api"
	questionapimodels "interview-trainer-backend/models/api/question"
)

type questionApiController struct {
	controllers.BaseAPIController
}

func InitQuestionApiRouters(app *fiber.App) {
	controller := questionApiController{}
	app.Route("questions", func(router fiber.Router) {
		router.Get("my", controller.listMy)
		router.Get("role/:id", controller.listByRole)
		router.Post("", controller.create)
		router.Post("generate", controller.generate)
		router.Get(":id", controller.get)
		router.Put(":id", controller.update)
		router.Delete(":id", controller.delete)
	})
}

// @Summary Contributed questions of the current user
// @Tags Question pool
// @Success 200 {object} apimodels.Response{data=[]questionapimodels.QuestionView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/questions/my [get]
func (c *questionApiController) listMy(ctx *fiber.Ctx) error {
	list, err := questionprovider.Instance.ListByUser(models.DefaultUserID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to get contributed questions")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Questions of a job role
// @Tags Question pool
// @Param   id	path	int	true	"job role ID"
// @Success 200 {object} apimodels.Response{data=[]questionapimodels.QuestionView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/questions/role/{id} [get]
func (c *questionApiController) listByRole(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := questionprovider.Instance.ListByRole(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to get question list")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Question by id
// @Tags Question pool
// @Param   id	path	int	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=questionapimodels.QuestionView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/questions/{id} [get]
func (c *questionApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := questionprovider.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to get question")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Contribute a question
// @Tags Question pool
// @Param	body body	 questionapimodels.QuestionData	true	"request body"
// @Success 200 {object} apimodels.Response{data=int}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/questions [post]
func (c *questionApiController) create(ctx *fiber.Ctx) error {
	var payload questionapimodels.QuestionData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := questionprovider.Instance.Create(models.DefaultUserID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to create question")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Update a question
// @Tags Question pool
// @Param   id	path	int	true	"rec ID"
// @Param	body body	 questionapimodels.QuestionData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/questions/{id} [put]
func (c *questionApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload questionapimodels.QuestionData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = questionprovider.Instance.Update(id, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to update question")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete a question
// @Tags Question pool
// @Param   id	path	int	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/questions/{id} [delete]
func (c *questionApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = questionprovider.Instance.Delete(id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to delete question")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Generate pool questions
// @Tags Question pool
// @Description Generates role questions into the pool via YandexGPT
// @Param	body body	 questionapimodels.GenerateRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=[]questionapimodels.QuestionView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/questions/generate [post]
func (c *questionApiController) generate(ctx *fiber.Ctx) error {
	var payload questionapimodels.GenerateRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := gpthandler.Instance.GeneratePoolQuestions(ctx.Context(), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to generate questions")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
