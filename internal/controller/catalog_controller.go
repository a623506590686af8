package controller

import (
	"bytes"

	"smartbyte-be/internal/dto"
	"smartbyte-be/internal/pkg/serverutils"
	"smartbyte-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ICatalogController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	UpdateStock(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	ImportCSV(ctx *fiber.Ctx) error
}

type catalogController struct {
	catalogService service.ICatalogService
}

func NewCatalogController(catalogService service.ICatalogService) ICatalogController {
	return &catalogController{
		catalogService: catalogService,
	}
}

// Reads are public so the storefront can browse; writes are back-office only.
func (c *catalogController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/catalog/v1")
	h.Get("products", c.List)
	h.Get("products/:id", c.Show)

	admin := h.Group("", serverutils.JwtMiddleware, serverutils.RequireAdmin)
	admin.Post("products", c.Create)
	admin.Post("products/import", c.ImportCSV)
	admin.Put("products/:id", c.Update)
	admin.Put("products/:id/stock", c.UpdateStock)
	admin.Delete("products/:id", c.Delete)
}

func (c *catalogController) List(ctx *fiber.Ctx) error {
	var query dto.ListProductsQuery
	if err := ctx.QueryParser(&query); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid query parameters")
	}

	res, err := c.catalogService.List(ctx.Context(), &query)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list products", res))
}

func (c *catalogController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid product id")
	}

	res, err := c.catalogService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show product", res))
}

func (c *catalogController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateProductRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.catalogService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create product", res))
}

func (c *catalogController) Update(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid product id")
	}

	var req dto.UpdateProductRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.catalogService.Update(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update product", res))
}

func (c *catalogController) UpdateStock(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid product id")
	}

	var req dto.UpdateStockRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.catalogService.UpdateStock(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update stock", res))
}

func (c *catalogController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid product id")
	}

	if err := c.catalogService.Delete(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success delete product", struct{}{}))
}

// ImportCSV accepts either a multipart upload under the "file" field or a raw
// CSV body.
func (c *catalogController) ImportCSV(ctx *fiber.Ctx) error {
	if fileHeader, err := ctx.FormFile("file"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "cannot open uploaded file")
		}
		defer file.Close()

		res, err := c.catalogService.ImportCSV(ctx.Context(), file)
		if err != nil {
			return err
		}
		return ctx.JSON(serverutils.SuccessResponse("Success import catalog", res))
	}

	body := ctx.Body()
	if len(body) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "missing csv content")
	}

	res, err := c.catalogService.ImportCSV(ctx.Context(), bytes.NewReader(body))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success import catalog", res))
}
