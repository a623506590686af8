package service

import (
	"context"
	"fmt"
	"io"

	"smartbyte-be/internal/constant"
	"smartbyte-be/internal/dto"
	"smartbyte-be/internal/entity"
	"smartbyte-be/internal/pkg/logger"
	"smartbyte-be/internal/repository/specification"
	"smartbyte-be/internal/repository/unitofwork"
	"smartbyte-be/pkg/catalog/csvloader"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ICatalogService interface {
	List(ctx context.Context, query *dto.ListProductsQuery) ([]dto.ProductDTO, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.ProductDTO, error)
	Create(ctx context.Context, req *dto.CreateProductRequest) (*dto.ProductDTO, error)
	Update(ctx context.Context, req *dto.UpdateProductRequest) (*dto.ProductDTO, error)
	UpdateStock(ctx context.Context, req *dto.UpdateStockRequest) (*dto.ProductDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ImportCSV(ctx context.Context, r io.Reader) (*dto.ImportCSVResponse, error)
}

type catalogService struct {
	uowFactory unitofwork.RepositoryFactory
	loader     *csvloader.Loader
	publisher  IPublisherService
	log        logger.ILogger
}

func NewCatalogService(
	uowFactory unitofwork.RepositoryFactory,
	loader *csvloader.Loader,
	publisher IPublisherService,
	log logger.ILogger,
) ICatalogService {
	return &catalogService{
		uowFactory: uowFactory,
		loader:     loader,
		publisher:  publisher,
		log:        log,
	}
}

func (c *catalogService) List(ctx context.Context, query *dto.ListProductsQuery) ([]dto.ProductDTO, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{specification.PriceAscending{}}
	if query.ProductType != "" {
		specs = append(specs, specification.ByProductType{ProductType: query.ProductType})
	}
	if query.Category != "" {
		specs = append(specs, specification.ByCategory{Category: query.Category})
	}
	if query.Brand != "" {
		specs = append(specs, specification.ByBrand{Brand: query.Brand})
	}
	if query.InStockOnly {
		specs = append(specs, specification.InStock{Min: 1})
	}

	products, err := uow.ProductRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return dto.ProductsToDTOs(products), nil
}

func (c *catalogService) Show(ctx context.Context, id uuid.UUID) (*dto.ProductDTO, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	product, err := uow.ProductRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, fmt.Errorf("find product: %w", err)
	}
	if product == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Product not found")
	}

	result := dto.ProductToDTO(product)
	return &result, nil
}

func (c *catalogService) Create(ctx context.Context, req *dto.CreateProductRequest) (*dto.ProductDTO, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.ProductRepository().FindOne(ctx, specification.BySKU{SKU: req.SKU})
	if err != nil {
		return nil, fmt.Errorf("check sku: %w", err)
	}
	if existing != nil {
		return nil, fiber.NewError(fiber.StatusConflict, "SKU already exists")
	}

	product := &entity.Product{
		SKU:         req.SKU,
		Name:        req.Name,
		Brand:       req.Brand,
		ProductType: req.ProductType,
		Category:    req.Category,
		Price:       req.Price,
		Stock:       req.Stock,
		Specs:       req.Specs,
		Description: req.Description,
	}
	if err := uow.ProductRepository().Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	result := dto.ProductToDTO(product)
	return &result, nil
}

func (c *catalogService) Update(ctx context.Context, req *dto.UpdateProductRequest) (*dto.ProductDTO, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	product, err := uow.ProductRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, fmt.Errorf("find product: %w", err)
	}
	if product == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Product not found")
	}

	product.Name = req.Name
	product.Brand = req.Brand
	product.ProductType = req.ProductType
	product.Category = req.Category
	product.Price = req.Price
	product.Stock = req.Stock
	product.Specs = req.Specs
	product.Description = req.Description

	if err := uow.ProductRepository().Update(ctx, product); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	result := dto.ProductToDTO(product)
	return &result, nil
}

func (c *catalogService) UpdateStock(ctx context.Context, req *dto.UpdateStockRequest) (*dto.ProductDTO, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	product, err := uow.ProductRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, fmt.Errorf("find product: %w", err)
	}
	if product == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Product not found")
	}

	product.Stock = req.Stock
	if err := uow.ProductRepository().Update(ctx, product); err != nil {
		return nil, fmt.Errorf("update stock: %w", err)
	}

	result := dto.ProductToDTO(product)
	return &result, nil
}

func (c *catalogService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	product, err := uow.ProductRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return fmt.Errorf("find product: %w", err)
	}
	if product == nil {
		return fiber.NewError(fiber.StatusNotFound, "Product not found")
	}

	return uow.ProductRepository().Delete(ctx, id)
}

// ImportCSV parses a product feed and upserts each row by SKU. Parse errors
// skip the row; a database error aborts the import.
func (c *catalogService) ImportCSV(ctx context.Context, r io.Reader) (*dto.ImportCSVResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	products, stats, err := c.loader.Load(r)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	resp := &dto.ImportCSVResponse{
		TotalRows: stats.TotalRows,
		Skipped:   stats.Skipped,
		Errors:    stats.Errors,
	}
	if resp.Errors == nil {
		resp.Errors = []string{}
	}

	for _, product := range products {
		existed, err := uow.ProductRepository().UpsertBySKU(ctx, product)
		if err != nil {
			return nil, fmt.Errorf("upsert product %s: %w", product.SKU, err)
		}
		if existed {
			resp.Updated++
		} else {
			resp.Loaded++
		}
	}

	c.log.Info("CatalogService", "catalog import finished", map[string]interface{}{
		"total_rows": resp.TotalRows,
		"loaded":     resp.Loaded,
		"updated":    resp.Updated,
		"skipped":    resp.Skipped,
	})

	if err := c.publisher.PublishSalesEvent(ctx, constant.EventCatalogImported, map[string]interface{}{
		"total_rows": resp.TotalRows,
		"loaded":     resp.Loaded,
		"updated":    resp.Updated,
		"skipped":    resp.Skipped,
	}); err != nil {
		c.log.Warn("CatalogService", "failed to publish import event", map[string]interface{}{"error": err.Error()})
	}

	return resp, nil
}
