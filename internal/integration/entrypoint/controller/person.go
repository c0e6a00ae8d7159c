package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/usecase/person"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/middleware"
)

// PersonController handles the people a user has debts with.
type PersonController struct {
	listUseCase   *person.ListPeopleUseCase
	createUseCase *person.CreatePersonUseCase
	getUseCase    *person.GetPersonUseCase
	updateUseCase *person.UpdatePersonUseCase
	deleteUseCase *person.DeletePersonUseCase
}

// NewPersonController creates a new person controller instance.
func NewPersonController(
	listUseCase *person.ListPeopleUseCase,
	createUseCase *person.CreatePersonUseCase,
	getUseCase *person.GetPersonUseCase,
	updateUseCase *person.UpdatePersonUseCase,
	deleteUseCase *person.DeletePersonUseCase,
) *PersonController {
	return &PersonController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /debts/people requests.
func (c *PersonController) List(ctx *gin.Context) {
	userID, ok := middleware.MustUserID(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), person.ListPeopleInput{UserID: userID})
	if err != nil {
		c.handlePersonError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPersonListResponse(output.People))
}

// Create handles POST /debts/people requests.
func (c *PersonController) Create(ctx *gin.Context) {
	userID, ok := middleware.MustUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreatePersonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), string(domainerror.ErrCodePersonNameRequired))
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), person.CreatePersonInput{
		UserID:         userID,
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		RelationshipID: req.RelationshipID,
		Color:          req.Color,
		Notes:          req.Notes,
	})
	if err != nil {
		c.handlePersonError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToPersonResponse(output.Person))
}

// Get handles GET /debts/people/:id requests.
func (c *PersonController) Get(ctx *gin.Context) {
	userID, ok := middleware.MustUserID(ctx)
	if !ok {
		return
	}
	id, ok := c.personID(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), person.GetPersonInput{
		PersonID: id,
		UserID:   userID,
	})
	if err != nil {
		c.handlePersonError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPersonResponse(output.Person))
}

// Update handles PUT /debts/people/:id requests.
func (c *PersonController) Update(ctx *gin.Context) {
	userID, ok := middleware.MustUserID(ctx)
	if !ok {
		return
	}
	id, ok := c.personID(ctx)
	if !ok {
		return
	}

	var req dto.UpdatePersonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), string(domainerror.ErrCodePersonNameRequired))
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), person.UpdatePersonInput{
		PersonID:       id,
		UserID:         userID,
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		RelationshipID: req.RelationshipID,
		Color:          req.Color,
		Notes:          req.Notes,
	})
	if err != nil {
		c.handlePersonError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPersonResponse(output.Person))
}

// Delete handles DELETE /debts/people/:id requests. The person's debts go with them.
func (c *PersonController) Delete(ctx *gin.Context) {
	userID, ok := middleware.MustUserID(ctx)
	if !ok {
		return
	}
	id, ok := c.personID(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), person.DeletePersonInput{
		PersonID: id,
		UserID:   userID,
	}); err != nil {
		c.handlePersonError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *PersonController) personID(ctx *gin.Context) (uuid.UUID, bool) {
	return pathUUID(ctx, "id", "Person not found", string(domainerror.ErrCodePersonNotFound))
}

// handlePersonError handles person errors and returns appropriate HTTP responses.
func (c *PersonController) handlePersonError(ctx *gin.Context, err error) {
	var personErr *domainerror.PersonError
	if errors.As(err, &personErr) {
		statusCode := http.StatusBadRequest
		if personErr.Code == domainerror.ErrCodePersonNotFound {
			statusCode = http.StatusNotFound
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: personErr.Message,
			Code:  string(personErr.Code),
		})
		return
	}

	internalError(ctx, err)
}
