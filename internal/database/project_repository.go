package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"pms-project-backend/internal/models"
)

// ErrNotFound is returned when no live row matches the requested id.
var ErrNotFound = errors.New("project not found")

// ProjectRepository issues exactly one SQL statement per call against pms.t_project.
type ProjectRepository struct {
	db *sqlx.DB
}

func NewProjectRepository(db *sqlx.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) List(ctx context.Context) ([]models.Project, error) {
	projects := []models.Project{}
	if err := r.db.SelectContext(ctx, &projects, listProjectsQuery); err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	var project models.Project
	err := r.db.GetContext(ctx, &project, getProjectQuery, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return &project, nil
}

// Create inserts a project. Empty strings, zero numbers and false are stored
// as NULL or the column default.
func (r *ProjectRepository) Create(ctx context.Context, in models.ProjectInput) (*models.Project, error) {
	query, args, err := r.db.BindNamed(createProjectQuery, in.ForInsert())
	if err != nil {
		return nil, fmt.Errorf("failed to bind create arguments: %w", err)
	}

	var project models.Project
	if err := r.db.GetContext(ctx, &project, query, args...); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return &project, nil
}

type updateArgs struct {
	models.ProjectInput
	ID int64 `db:"id"`
}

func (r *ProjectRepository) Update(ctx context.Context, id int64, in models.ProjectInput) (*models.Project, error) {
	query, args, err := r.db.BindNamed(updateProjectQuery, updateArgs{ProjectInput: in, ID: id})
	if err != nil {
		return nil, fmt.Errorf("failed to bind update arguments: %w", err)
	}

	var project models.Project
	err = r.db.GetContext(ctx, &project, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return &project, nil
}

// SoftDelete flags a live row as deleted and returns its id.
func (r *ProjectRepository) SoftDelete(ctx context.Context, id int64) (int64, error) {
	return r.deleteBy(ctx, softDeleteQuery, id, "soft delete")
}

// HardDelete removes the row whatever its deleted flag and returns its id.
func (r *ProjectRepository) HardDelete(ctx context.Context, id int64) (int64, error) {
	return r.deleteBy(ctx, hardDeleteQuery, id, "hard delete")
}

func (r *ProjectRepository) deleteBy(ctx context.Context, query string, id int64, op string) (int64, error) {
	var deletedID int64
	err := r.db.GetContext(ctx, &deletedID, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to %s project: %w", op, err)
	}
	return deletedID, nil
}

// Ping reports whether the pool can reach the database.
func (r *ProjectRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
