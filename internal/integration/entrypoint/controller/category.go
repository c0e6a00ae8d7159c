package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/ledger/internal/application/usecase/category"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
)

// CategoryController handles the category and relationship catalogs.
type CategoryController struct {
	listUseCase               *category.ListCategoriesUseCase
	createUseCase             *category.CreateCategoryUseCase
	updateUseCase             *category.UpdateCategoryUseCase
	deleteUseCase             *category.DeleteCategoryUseCase
	listRelationshipsUseCase  *category.ListRelationshipsUseCase
	createRelationshipUseCase *category.CreateRelationshipUseCase
}

// NewCategoryController creates a new category controller instance.
func NewCategoryController(
	listUseCase *category.ListCategoriesUseCase,
	createUseCase *category.CreateCategoryUseCase,
	updateUseCase *category.UpdateCategoryUseCase,
	deleteUseCase *category.DeleteCategoryUseCase,
	listRelationshipsUseCase *category.ListRelationshipsUseCase,
	createRelationshipUseCase *category.CreateRelationshipUseCase,
) *CategoryController {
	return &CategoryController{
		listUseCase:               listUseCase,
		createUseCase:             createUseCase,
		updateUseCase:             updateUseCase,
		deleteUseCase:             deleteUseCase,
		listRelationshipsUseCase:  listRelationshipsUseCase,
		createRelationshipUseCase: createRelationshipUseCase,
	}
}

// List handles GET /config/categories requests.
func (c *CategoryController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryListResponse(output.Categories))
}

// Create handles POST /config/categories requests.
func (c *CategoryController) Create(ctx *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeMissingCategoryFields))
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), category.CreateCategoryInput{
		ID:    req.ID,
		Name:  req.Name,
		Icon:  req.Icon,
		Color: req.Color,
	})
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCategoryResponse(output.Category))
}

// Update handles PUT /config/categories/:id requests.
func (c *CategoryController) Update(ctx *gin.Context) {
	var req dto.UpdateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeMissingCategoryFields))
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), category.UpdateCategoryInput{
		CategoryID: ctx.Param("id"),
		Name:       req.Name,
		Icon:       req.Icon,
		Color:      req.Color,
	})
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryResponse(output.Category))
}

// Delete handles DELETE /config/categories/:id requests.
func (c *CategoryController) Delete(ctx *gin.Context) {
	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), category.DeleteCategoryInput{
		CategoryID: ctx.Param("id"),
	}); err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ListRelationships handles GET /config/relationships requests.
func (c *CategoryController) ListRelationships(ctx *gin.Context) {
	output, err := c.listRelationshipsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRelationshipListResponse(output.Relationships))
}

// CreateRelationship handles POST /config/relationships requests.
func (c *CategoryController) CreateRelationship(ctx *gin.Context) {
	var req dto.CreateRelationshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeMissingRelationshipFields))
		return
	}

	output, err := c.createRelationshipUseCase.Execute(ctx.Request.Context(), category.CreateRelationshipInput{
		ID:   req.ID,
		Name: req.Name,
		Icon: req.Icon,
	})
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToRelationshipResponse(output.Relationship))
}

// handleCategoryError handles category errors and returns appropriate HTTP responses.
func (c *CategoryController) handleCategoryError(ctx *gin.Context, err error) {
	var catErr *domainerror.CategoryError
	if errors.As(err, &catErr) {
		ctx.JSON(c.getStatusCodeForCategoryError(catErr.Code), dto.ErrorResponse{
			Error: catErr.Message,
			Code:  string(catErr.Code),
		})
		return
	}

	internalError(ctx, err)
}

// getStatusCodeForCategoryError maps category error codes to HTTP status codes.
func (c *CategoryController) getStatusCodeForCategoryError(code domainerror.CategoryErrorCode) int {
	switch code {
	case domainerror.ErrCodeCategoryNotFound,
		domainerror.ErrCodeRelationshipNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeCategoryAlreadyExists,
		domainerror.ErrCodeRelationshipAlreadyExists,
		domainerror.ErrCodeCategoryInUse:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidCategoryID,
		domainerror.ErrCodeMissingCategoryFields,
		domainerror.ErrCodeMissingRelationshipFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
