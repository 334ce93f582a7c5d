package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"pms-project-backend/internal/models"
	"pms-project-backend/internal/services"
)

type ProjectsHandler struct {
	service *services.ProjectService
}

func NewProjectsHandler(service *services.ProjectService) *ProjectsHandler {
	return &ProjectsHandler{service: service}
}

// Register mounts the project routes on rg.
func (h *ProjectsHandler) Register(rg gin.IRouter) {
	rg.GET("/", h.ListProjects)
	rg.GET("/:id", h.GetProject)
	rg.POST("/", h.CreateProject)
	rg.PUT("/:id", h.UpdateProject)
	rg.DELETE("/:id", h.DeleteProject)
	rg.DELETE("/:id/hard", h.HardDeleteProject)
}

// ListProjects godoc
// @Summary     List projects
// @Description Returns every project that is not soft-deleted, newest first, with lead number and customer name.
// @Tags        projects
// @Produce     json
// @Success     200 {object} models.Result[[]models.Project]
// @Failure     500 {object} models.Result[[]models.Project]
// @Router      / [get]
func (h *ProjectsHandler) ListProjects(c *gin.Context) {
	result := h.service.ListProjects(c.Request.Context())
	c.JSON(result.StatusCode, result)
}

// GetProject godoc
// @Summary     Get a project
// @Tags        projects
// @Produce     json
// @Param       id  path     int true "Project ID"
// @Success     200 {object} models.Result[models.Project]
// @Failure     404 {object} models.Result[models.Project]
// @Failure     500 {object} models.Result[models.Project]
// @Router      /{id} [get]
func (h *ProjectsHandler) GetProject(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		respondNotFound[*models.Project](c)
		return
	}
	result := h.service.GetProject(c.Request.Context(), id)
	c.JSON(result.StatusCode, result)
}

// CreateProject godoc
// @Summary     Create a project
// @Description Fields that are not supplied are stored as NULL, except is_insured (false), approval_status (PENDING) and completion (0).
// @Tags        projects
// @Accept      json
// @Produce     json
// @Param       request body     models.ProjectInput false "Project fields"
// @Success     201     {object} models.Result[models.Project]
// @Failure     400     {object} models.Result[models.Project]
// @Failure     500     {object} models.Result[models.Project]
// @Router      / [post]
func (h *ProjectsHandler) CreateProject(c *gin.Context) {
	in, ok := bindInput(c)
	if !ok {
		return
	}
	result := h.service.CreateProject(c.Request.Context(), in)
	c.JSON(result.StatusCode, result)
}

// UpdateProject godoc
// @Summary     Update a project
// @Description Fields that are not supplied keep their stored value. updated_by is always overwritten.
// @Tags        projects
// @Accept      json
// @Produce     json
// @Param       id      path     int                 true  "Project ID"
// @Param       request body     models.ProjectInput false "Project fields"
// @Success     200     {object} models.Result[models.Project]
// @Failure     400     {object} models.Result[models.Project]
// @Failure     404     {object} models.Result[models.Project]
// @Failure     500     {object} models.Result[models.Project]
// @Router      /{id} [put]
func (h *ProjectsHandler) UpdateProject(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		respondNotFound[*models.Project](c)
		return
	}
	in, ok := bindInput(c)
	if !ok {
		return
	}
	result := h.service.UpdateProject(c.Request.Context(), id, in)
	c.JSON(result.StatusCode, result)
}

// DeleteProject godoc
// @Summary     Soft delete a project
// @Tags        projects
// @Produce     json
// @Param       id  path     int true "Project ID"
// @Success     200 {object} models.Result[models.DeletedProject]
// @Failure     404 {object} models.Result[models.DeletedProject]
// @Failure     500 {object} models.Result[models.DeletedProject]
// @Router      /{id} [delete]
func (h *ProjectsHandler) DeleteProject(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		respondNotFound[*models.DeletedProject](c)
		return
	}
	result := h.service.DeleteProject(c.Request.Context(), id)
	c.JSON(result.StatusCode, result)
}

// HardDeleteProject godoc
// @Summary     Permanently delete a project
// @Description Removes the row whether or not it was soft-deleted.
// @Tags        projects
// @Produce     json
// @Param       id  path     int true "Project ID"
// @Success     200 {object} models.Result[models.DeletedProject]
// @Failure     404 {object} models.Result[models.DeletedProject]
// @Failure     500 {object} models.Result[models.DeletedProject]
// @Router      /{id}/hard [delete]
func (h *ProjectsHandler) HardDeleteProject(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		respondNotFound[*models.DeletedProject](c)
		return
	}
	result := h.service.HardDeleteProject(c.Request.Context(), id)
	c.JSON(result.StatusCode, result)
}

// projectID parses the :id path parameter. Ids are positive integers, so
// anything else cannot match a row.
func projectID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func respondNotFound[T any](c *gin.Context) {
	result := services.NotFound[T]()
	c.JSON(result.StatusCode, result)
}

// bindInput decodes the JSON body. An empty body is an empty input.
func bindInput(c *gin.Context) (models.ProjectInput, bool) {
	var in models.ProjectInput
	if err := c.ShouldBindJSON(&in); err != nil && !errors.Is(err, io.EOF) {
		result := models.Fail[*models.Project](http.StatusBadRequest, "Invalid request body", err.Error())
		c.JSON(result.StatusCode, result)
		return in, false
	}
	return in, true
}
