package controller

import (
	"smartbyte-be/internal/dto"
	"smartbyte-be/internal/pkg/serverutils"
	"smartbyte-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISalesController interface {
	RegisterRoutes(r fiber.Router)
	SendMessage(ctx *fiber.Ctx) error
}

type salesController struct {
	salesService service.ISalesService
}

func NewSalesController(salesService service.ISalesService) ISalesController {
	return &salesController{
		salesService: salesService,
	}
}

// Chat is anonymous; the session key in the body is the only identity.
func (c *salesController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/sales/v1")
	h.Post("message", c.SendMessage)
}

func (c *salesController) SendMessage(ctx *fiber.Ctx) error {
	var req dto.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.salesService.ProcessMessage(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success process message", res))
}
