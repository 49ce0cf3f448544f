package handler

import (
	"log/slog"
	"net/http"

	"catalog/internal/delivery/api/middleware"
	"catalog/internal/delivery/api/response"
	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	VendorUC  usecase.VendorUsecase
	Logger    *slog.Logger
}

// ProductHandler holds dependencies for product-related handlers
type ProductHandler struct {
	productUC usecase.ProductUsecase
	vendorUC  usecase.VendorUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		vendorUC:  params.VendorUC,
		logger:    params.Logger,
	}
}

// CreateProductRequest represents the request body for creating a product
type CreateProductRequest struct {
	Name        string           `json:"name" validate:"required,max=200"`
	Slug        string           `json:"slug" validate:"required,slug,max=200"`
	Description string           `json:"description" validate:"max=5000"`
	CategoryID  uuid.UUID        `json:"category_id" validate:"required"`
	Status      string           `json:"status" validate:"omitempty,oneof=DRAFT PUBLISHED ARCHIVED"`
	Variants    []VariantRequest `json:"variants" validate:"required,min=1,dive"`
	Images      []ImageRequest   `json:"images" validate:"omitempty,dive"`
}

// VariantRequest describes one variant of a new product
type VariantRequest struct {
	SKU        string            `json:"sku" validate:"required,max=100"`
	Price      float64           `json:"price" validate:"gte=0"`
	Stock      int               `json:"stock"`
	Attributes map[string]string `json:"attributes"`
}

// ImageRequest describes one image of a new product
type ImageRequest struct {
	URL    string  `json:"url" validate:"required,url"`
	Alt    *string `json:"alt" validate:"omitempty,max=200"`
	IsMain bool    `json:"is_main"`
	Order  *int    `json:"order" validate:"omitempty,gte=0"`
}

// UpdateStockRequest represents the request body for a stock adjustment
type UpdateStockRequest struct {
	Delta *int `json:"delta" validate:"required"`
}

// ListProducts returns one page of published products
func (h *ProductHandler) ListProducts(c echo.Context) error {
	var (
		filter     usecase.ProductFilter
		categoryID uuid.UUID
		minPrice   float64
		maxPrice   float64
	)

	err := echo.QueryParamsBinder(c).
		Int("page", &filter.Page).
		Int("limit", &filter.Limit).
		String("search", &filter.Search).
		TextUnmarshaler("category_id", &categoryID).
		Float64("min_price", &minPrice).
		Float64("max_price", &maxPrice).
		BindError()
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "Invalid listing query")
	}

	if c.QueryParam("category_id") != "" {
		filter.CategoryID = &categoryID
	}
	if c.QueryParam("min_price") != "" {
		if minPrice < 0 {
			return response.BadRequest(c, "VALIDATION_ERROR", "min_price must not be negative")
		}
		filter.MinPrice = &minPrice
	}
	if c.QueryParam("max_price") != "" {
		if maxPrice < 0 {
			return response.BadRequest(c, "VALIDATION_ERROR", "max_price must not be negative")
		}
		filter.MaxPrice = &maxPrice
	}

	page, err := h.productUC.ListProducts(c.Request().Context(), &filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Paginated(c, page.Data, page.Meta)
}

// GetProduct returns the full product detail by slug
func (h *ProductHandler) GetProduct(c echo.Context) error {
	product, err := h.productUC.GetProduct(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// CreateProduct creates a product owned by the caller's approved vendor profile
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	ctx := c.Request().Context()

	vendor, err := h.vendorUC.RequireApproved(ctx, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.CreateProduct(ctx, vendor.ID, toCreateProductInput(&req))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, product)
}

// UpdateStock applies a stock delta to a variant. Vendors may only adjust their own variants.
func (h *ProductHandler) UpdateStock(c echo.Context) error {
	variantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid variant ID")
	}

	var req UpdateStockRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid stock input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	ctx := c.Request().Context()

	if err := h.authorizeStockChange(c, variantID); err != nil {
		return response.HandleAppError(c, err)
	}

	variant, err := h.productUC.UpdateStock(ctx, variantID, *req.Delta)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, variant)
}

// authorizeStockChange lets admins through and requires other callers to own the variant's product.
func (h *ProductHandler) authorizeStockChange(c echo.Context, variantID uuid.UUID) error {
	if caller, ok := deliverycontext.GetCaller(c); ok && caller.HasRole(entity.RoleAdmin) {
		return nil
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	ctx := c.Request().Context()

	vendor, err := h.vendorUC.RequireApproved(ctx, userID)
	if err != nil {
		return err
	}

	ownerID, err := h.productUC.VariantVendorID(ctx, variantID)
	if err != nil {
		return err
	}

	if ownerID != vendor.ID {
		return domainerrors.ErrForbidden.WithDetails("variant belongs to another vendor")
	}

	return nil
}

func toCreateProductInput(req *CreateProductRequest) *usecase.CreateProductInput {
	variants := make([]usecase.VariantInput, 0, len(req.Variants))
	for _, v := range req.Variants {
		variants = append(variants, usecase.VariantInput{
			SKU:        v.SKU,
			Price:      v.Price,
			Stock:      v.Stock,
			Attributes: v.Attributes,
		})
	}

	images := make([]usecase.ImageInput, 0, len(req.Images))
	for _, img := range req.Images {
		images = append(images, usecase.ImageInput{
			URL:    img.URL,
			Alt:    img.Alt,
			IsMain: img.IsMain,
			Order:  img.Order,
		})
	}

	return &usecase.CreateProductInput{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Status:      entity.ProductStatus(req.Status),
		Variants:    variants,
		Images:      images,
	}
}
