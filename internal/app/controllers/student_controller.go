package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oyelaran/studentbase/internal/app/models/dto"
	"github.com/oyelaran/studentbase/internal/app/services"
	"github.com/oyelaran/studentbase/internal/middleware"
	"github.com/oyelaran/studentbase/internal/pkg/apperrors"
	"github.com/oyelaran/studentbase/internal/pkg/helpers"
)

// StudentController handles student endpoints
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// List godoc
// @Summary List students
// @Description Returns a paginated list of students ordered by registration time.
// @Tags students
// @Produce json
// @Param page query int false "Page number (1-based)" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.StudentListResponse}
// @Router /students [get]
func (c *StudentController) List(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	students, err := c.studentService.List(ctx.Request.Context(), page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(students))
}

// GetByUsername godoc
// @Summary Get a student by username
// @Tags students
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/username/{username} [get]
func (c *StudentController) GetByUsername(ctx *gin.Context) {
	username := ctx.Param("username")
	if username == "" {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("username is required"))
		return
	}

	student, err := c.studentService.GetByUsername(ctx.Request.Context(), username)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student))
}

// GetByMatricNumber godoc
// @Summary Get a student by matric number
// @Tags students
// @Produce json
// @Param matricNumber path string true "Matric number" example(MAT00042)
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid matric number format"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/matric/{matricNumber} [get]
func (c *StudentController) GetByMatricNumber(ctx *gin.Context) {
	matricNumber := ctx.Param("matricNumber")

	student, err := c.studentService.GetByMatricNumber(ctx.Request.Context(), matricNumber)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student))
}

// GetProfile godoc
// @Summary Get own profile
// @Description Returns the profile of the authenticated student.
// @Tags students
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /students/me [get]
func (c *StudentController) GetProfile(ctx *gin.Context) {
	studentID := ctx.GetString(middleware.ContextStudentID)

	student, err := c.studentService.GetProfile(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student))
}

// UpdateProfile godoc
// @Summary Update own profile
// @Description Updates the display name of the authenticated student.
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.UpdateNameRequest true "Profile changes"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Security BearerAuth
// @Router /students/me [put]
func (c *StudentController) UpdateProfile(ctx *gin.Context) {
	var req dto.UpdateNameRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		dto.HandleValidationError(ctx, err)
		return
	}

	studentID := ctx.GetString(middleware.ContextStudentID)

	student, err := c.studentService.UpdateName(ctx.Request.Context(), studentID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student))
}

// AssignMatricNumber godoc
// @Summary Assign a matric number
// @Description Assigns the next sequential matric number to a student who does not have one yet.
// @Tags students
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} dto.APIResponse{data=dto.MatricNumberResponse}
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 409 {object} dto.ErrorResponse "Matric number already assigned"
// @Security BearerAuth
// @Router /students/username/{username}/matric [post]
func (c *StudentController) AssignMatricNumber(ctx *gin.Context) {
	username := ctx.Param("username")
	if username == "" {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("username is required"))
		return
	}

	result, err := c.studentService.AssignMatricNumber(ctx.Request.Context(), username)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(result))
}
