package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"pms-project-backend/internal/database"
	"pms-project-backend/internal/logger"
	"pms-project-backend/internal/models"
)

// ProjectStore is the data access the service needs. database.ProjectRepository
// satisfies it.
type ProjectStore interface {
	List(ctx context.Context) ([]models.Project, error)
	GetByID(ctx context.Context, id int64) (*models.Project, error)
	Create(ctx context.Context, in models.ProjectInput) (*models.Project, error)
	Update(ctx context.Context, id int64, in models.ProjectInput) (*models.Project, error)
	SoftDelete(ctx context.Context, id int64) (int64, error)
	HardDelete(ctx context.Context, id int64) (int64, error)
}

const (
	msgNotFound    = "Project not found"
	devMsgNotFound = "No project found with the given ID"
)

// ProjectService turns store outcomes into response envelopes. Database
// errors are logged in full and only reach the client as DevMessage.
type ProjectService struct {
	store ProjectStore
}

func NewProjectService(store ProjectStore) *ProjectService {
	return &ProjectService{store: store}
}

func (s *ProjectService) ListProjects(ctx context.Context) models.Result[[]models.Project] {
	projects, err := s.store.List(ctx)
	if err != nil {
		logFailure(ctx, "Error fetching all projects", err, nil)
		return models.Fail[[]models.Project](http.StatusInternalServerError, "Failed to fetch projects", err.Error())
	}
	if projects == nil {
		projects = []models.Project{}
	}
	return models.OK(http.StatusOK, projects, "Projects fetched successfully", "Query executed successfully")
}

func (s *ProjectService) GetProject(ctx context.Context, id int64) models.Result[*models.Project] {
	project, err := s.store.GetByID(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
		return NotFound[*models.Project]()
	}
	if err != nil {
		logFailure(ctx, "Error fetching project by ID", err, logrus.Fields{"project_id": id})
		return models.Fail[*models.Project](http.StatusInternalServerError, "Failed to fetch project", err.Error())
	}
	return models.OK(http.StatusOK, project, "Project fetched successfully", "Query executed successfully")
}

func (s *ProjectService) CreateProject(ctx context.Context, in models.ProjectInput) models.Result[*models.Project] {
	project, err := s.store.Create(ctx, in)
	if err != nil {
		logFailure(ctx, "Error creating project", err, nil)
		return models.Fail[*models.Project](http.StatusInternalServerError, "Failed to create project", err.Error())
	}
	return models.OK(http.StatusCreated, project, "Project created successfully", "Insert query executed successfully")
}

func (s *ProjectService) UpdateProject(ctx context.Context, id int64, in models.ProjectInput) models.Result[*models.Project] {
	project, err := s.store.Update(ctx, id, in)
	if errors.Is(err, database.ErrNotFound) {
		return NotFound[*models.Project]()
	}
	if err != nil {
		logFailure(ctx, "Error updating project", err, logrus.Fields{"project_id": id})
		return models.Fail[*models.Project](http.StatusInternalServerError, "Failed to update project", err.Error())
	}
	return models.OK(http.StatusOK, project, "Project updated successfully", "Update query executed successfully")
}

func (s *ProjectService) DeleteProject(ctx context.Context, id int64) models.Result[*models.DeletedProject] {
	deletedID, err := s.store.SoftDelete(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
		return NotFound[*models.DeletedProject]()
	}
	if err != nil {
		logFailure(ctx, "Error deleting project", err, logrus.Fields{"project_id": id})
		return models.Fail[*models.DeletedProject](http.StatusInternalServerError, "Failed to delete project", err.Error())
	}
	return models.OK(http.StatusOK, &models.DeletedProject{ID: deletedID}, "Project deleted successfully", "Soft delete query executed successfully")
}

func (s *ProjectService) HardDeleteProject(ctx context.Context, id int64) models.Result[*models.DeletedProject] {
	deletedID, err := s.store.HardDelete(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
		return NotFound[*models.DeletedProject]()
	}
	if err != nil {
		logFailure(ctx, "Error hard deleting project", err, logrus.Fields{"project_id": id})
		return models.Fail[*models.DeletedProject](http.StatusInternalServerError, "Failed to permanently delete project", err.Error())
	}
	return models.OK(http.StatusOK, &models.DeletedProject{ID: deletedID}, "Project permanently deleted", "Hard delete query executed successfully")
}

// NotFound is the envelope for an id that matches no live project.
func NotFound[T any]() models.Result[T] {
	return models.Fail[T](http.StatusNotFound, msgNotFound, devMsgNotFound)
}

func logFailure(ctx context.Context, msg string, err error, fields logrus.Fields) {
	entry := logger.FromContext(ctx).WithError(err).WithFields(fields)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		entry = entry.WithFields(logrus.Fields{
			"sqlstate":   string(pqErr.Code),
			"constraint": pqErr.Constraint,
		})
	}
	entry.Error(msg)
}
