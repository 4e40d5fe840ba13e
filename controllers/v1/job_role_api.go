package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"interview-trainer-backend/controllers"
	jobroleprovider "interview-trainer-backend/lib/dicts/job-role"
	apimodels "interview-trainer-backend/models/api"
)

type jobRoleApiController struct {
	controllers.BaseAPIController
}

func InitJobRoleApiRouters(app *fiber.App) {
	controller := jobRoleApiController{}
	app.Route("roles", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Get(":id", controller.get)
	})
}

// @Summary Job role list
// @Tags Job roles
// @Description Selectable job roles; the common pool role is internal and excluded
// @Success 200 {object} apimodels.Response{data=[]jobroleapimodels.JobRoleView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/roles [get]
func (c *jobRoleApiController) list(ctx *fiber.Ctx) error {
	list, err := jobroleprovider.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to get job role list")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Job role by id
// @Tags Job roles
// @Param   id	path	int	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=jobroleapimodels.JobRoleView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/roles/{id} [get]
func (c *jobRoleApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := jobroleprovider.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to get job role")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
