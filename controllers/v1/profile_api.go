package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"interview-trainer-backend/controllers"
	profileprovider "interview-trainer-backend/lib/profile"
	"interview-trainer-backend/models"
	apimodels "interview-trainer-backend/models/api"
	profileapimodels "interview-trainer-backend/models/api/profile"
)

type profileApiController struct {
	controllers.BaseAPIController
}

func InitProfileApiRouters(app *fiber.App) {
	controller := profileApiController{}
	app.Route("profile", func(router fiber.Router) {
		router.Get("", controller.get)
		router.Put("", controller.update)
	})
}

// @Summary Profile
// @Tags Profile
// @Description The single demo user's profile
// @Success 200 {object} apimodels.Response{data=profileapimodels.ProfileView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/profile [get]
func (c *profileApiController) get(ctx *fiber.Ctx) error {
	resp, err := profileprovider.Instance.Get(models.DefaultUserID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to get profile")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Update profile
// @Tags Profile
// @Description Picks the interviewer avatar voice
// @Param	body body	 profileapimodels.UpdateRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/profile [put]
func (c *profileApiController) update(ctx *fiber.Ctx) error {
	var payload profileapimodels.UpdateRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := profileprovider.Instance.SetVoice(models.DefaultUserID, payload.Voice); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to update profile")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
