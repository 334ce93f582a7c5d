package database_test

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pms-project-backend/internal/database"
	"pms-project-backend/internal/models"
)

var projectRowColumns = []string{
	"id", "project_number", "name", "lead_id", "project_type", "customer_id", "warehouse_id",
	"project_species", "project_status", "estimated_start", "estimated_end", "actual_start",
	"actual_end", "price_customer", "estimated_price", "actual_price", "kick_off",
	"comment_baseline", "comment_other", "project_template_id", "location", "project_address",
	"is_insured", "insurance_no", "insurance_from_date", "insurance_to_date", "approval_status",
	"approval_comment", "approved_by", "approved_on", "completion", "created_by", "updated_by",
	"created_at", "updated_at", "is_active", "is_deleted", "lead_number", "customer_name",
}

// projectRow returns a row with every column set; overrides replace values by column name.
func projectRow(id int64, overrides map[string]driver.Value) []driver.Value {
	created := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)
	values := map[string]driver.Value{
		"id":               id,
		"project_number":   "P-100",
		"name":             "Roof Replacement",
		"lead_id":          int64(4),
		"customer_id":      int64(9),
		"price_customer":   "1500.00",
		"estimated_start":  time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		"is_insured":       false,
		"approval_status":  models.ApprovalStatusPending,
		"completion":       float64(0),
		"created_by":       int64(1),
		"created_at":       created,
		"is_active":        true,
		"is_deleted":       false,
		"lead_number":      "L-0004",
		"customer_name":    "Acme Roofing",
		"comment_baseline": nil,
	}
	for k, v := range overrides {
		values[k] = v
	}
	row := make([]driver.Value, len(projectRowColumns))
	for i, col := range projectRowColumns {
		row[i] = values[col]
	}
	return row
}

func setupProjectRepo(t *testing.T) (*database.ProjectRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return database.NewProjectRepository(sqlx.NewDb(db, "postgres")), mock
}

func TestProjectRepository_List(t *testing.T) {
	t.Run("returns enriched rows", func(t *testing.T) {
		repo, mock := setupProjectRepo(t)

		mock.ExpectQuery(`LEFT JOIN pms.t_lead l ON p.lead_id = l.id\s+LEFT JOIN pms.t_customer c ON p.customer_id = c.id\s+WHERE p.is_deleted = false\s+ORDER BY p.created_at DESC`).
			WillReturnRows(sqlmock.NewRows(projectRowColumns).
				AddRow(projectRow(2, nil)...).
				AddRow(projectRow(1, map[string]driver.Value{"lead_id": nil, "lead_number": nil})...))

		projects, err := repo.List(context.Background())
		require.NoError(t, err)
		require.Len(t, projects, 2)

		assert.Equal(t, int64(2), projects[0].ID)
		require.NotNil(t, projects[0].LeadNumber)
		assert.Equal(t, "L-0004", *projects[0].LeadNumber)
		assert.Equal(t, "Acme Roofing", *projects[0].CustomerName)
		assert.True(t, projects[0].PriceCustomer.Valid)
		assert.Equal(t, "1500", projects[0].PriceCustomer.Decimal.String())

		assert.Nil(t, projects[1].LeadID)
		assert.Nil(t, projects[1].LeadNumber)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty table is an empty list", func(t *testing.T) {
		repo, mock := setupProjectRepo(t)

		mock.ExpectQuery(`FROM pms.t_project p`).
			WillReturnRows(sqlmock.NewRows(projectRowColumns))

		projects, err := repo.List(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, projects)
		assert.Empty(t, projects)
	})

	t.Run("wraps database errors", func(t *testing.T) {
		repo, mock := setupProjectRepo(t)

		mock.ExpectQuery(`FROM pms.t_project p`).WillReturnError(errors.New("connection refused"))

		_, err := repo.List(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to list projects")
		assert.Contains(t, err.Error(), "connection refused")
	})
}

func TestProjectRepository_GetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := setupProjectRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta(`WHERE p.id = $1 AND p.is_deleted = false`)).
			WithArgs(int64(5)).
			WillReturnRows(sqlmock.NewRows(projectRowColumns).AddRow(projectRow(5, nil)...))

		project, err := repo.GetByID(context.Background(), 5)
		require.NoError(t, err)
		assert.Equal(t, int64(5), project.ID)
		assert.Equal(t, "Roof Replacement", *project.Name)
		require.NotNil(t, project.EstimatedStart)
		assert.Equal(t, 2025, project.EstimatedStart.Year())
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := setupProjectRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta(`WHERE p.id = $1 AND p.is_deleted = false`)).
			WithArgs(int64(404)).
			WillReturnRows(sqlmock.NewRows(projectRowColumns))

		_, err := repo.GetByID(context.Background(), 404)
		assert.ErrorIs(t, err, database.ErrNotFound)
	})
}

func TestProjectRepository_Create(t *testing.T) {
	repo, mock := setupProjectRepo(t)

	// insert column order: lead_id .. created_by
	args := make([]driver.Value, 31)
	args[3] = "Roof Replacement" // name
	args[20] = "P-100"           // project_number
	args[30] = int64(1)          // created_by

	mock.ExpectQuery(`WITH saved AS \(\s+INSERT INTO pms.t_project`).
		WithArgs(args...).
		WillReturnRows(sqlmock.NewRows(projectRowColumns).AddRow(projectRow(11, nil)...))

	in := models.ProjectInput{
		Name:          models.Some("Roof Replacement"),
		ProjectNumber: models.Some("P-100"),
		CreatedBy:     models.Some(int64(1)),
	}
	project, err := repo.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, int64(11), project.ID)
	assert.Equal(t, models.ApprovalStatusPending, project.ApprovalStatus)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_CreateAppliesDefaultsInSQL(t *testing.T) {
	repo, mock := setupProjectRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`COALESCE($22, false)`) + `.*` +
		regexp.QuoteMeta(`COALESCE($26, 'PENDING')`) + `.*` +
		regexp.QuoteMeta(`COALESCE($30, 0.0)`)).
		WillReturnRows(sqlmock.NewRows(projectRowColumns).AddRow(projectRow(1, nil)...))

	_, err := repo.Create(context.Background(), models.ProjectInput{})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_CreateBindsZeroValuesAsNull(t *testing.T) {
	repo, mock := setupProjectRepo(t)

	// every argument is NULL, so SQL defaults apply to is_insured, approval_status and completion
	args := make([]driver.Value, 31)
	mock.ExpectQuery(`INSERT INTO pms.t_project`).
		WithArgs(args...).
		WillReturnRows(sqlmock.NewRows(projectRowColumns).AddRow(projectRow(12, nil)...))

	var in models.ProjectInput
	require.NoError(t, json.Unmarshal([]byte(`{
		"actual_start": "",
		"lead_id": 0,
		"name": "",
		"price_customer": 0,
		"is_insured": false,
		"approval_status": "",
		"completion": 0,
		"created_by": 0
	}`), &in))

	_, err := repo.Create(context.Background(), in)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_UpdateBindsZeroValuesAsGiven(t *testing.T) {
	repo, mock := setupProjectRepo(t)

	args := make([]driver.Value, 33)
	args[0] = int64(0)    // lead_id
	args[3] = ""          // name
	args[21] = false      // is_insured
	args[29] = float64(0) // completion
	args[32] = int64(7)   // id

	mock.ExpectQuery(`UPDATE pms.t_project`).
		WithArgs(args...).
		WillReturnRows(sqlmock.NewRows(projectRowColumns).AddRow(projectRow(7, nil)...))

	in := models.ProjectInput{
		LeadID:     models.Some(int64(0)),
		Name:       models.Some(""),
		IsInsured:  models.Some(false),
		Completion: models.Some(0.0),
	}
	_, err := repo.Update(context.Background(), 7, in)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_Update(t *testing.T) {
	t.Run("coalesces every column but updated_by", func(t *testing.T) {
		repo, mock := setupProjectRepo(t)

		args := make([]driver.Value, 33)
		args[5] = "IN_PROGRESS" // project_status
		args[31] = int64(3)     // updated_by
		args[32] = int64(7)     // id

		mock.ExpectQuery(regexp.QuoteMeta(`project_status = COALESCE($6, project_status)`) + `(?s).*` +
			regexp.QuoteMeta(`updated_by = $32`) + `(?s).*` +
			regexp.QuoteMeta(`updated_at = NOW()`) + `(?s).*` +
			regexp.QuoteMeta(`WHERE id = $33 AND is_deleted = false`)).
			WithArgs(args...).
			WillReturnRows(sqlmock.NewRows(projectRowColumns).
				AddRow(projectRow(7, map[string]driver.Value{"project_status": "IN_PROGRESS", "updated_by": int64(3)})...))

		in := models.ProjectInput{
			ProjectStatus: models.Some("IN_PROGRESS"),
			UpdatedBy:     models.Some(int64(3)),
		}
		project, err := repo.Update(context.Background(), 7, in)
		require.NoError(t, err)
		assert.Equal(t, "IN_PROGRESS", *project.ProjectStatus)
		assert.Equal(t, "Roof Replacement", *project.Name)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := setupProjectRepo(t)

		mock.ExpectQuery(`UPDATE pms.t_project`).
			WillReturnRows(sqlmock.NewRows(projectRowColumns))

		_, err := repo.Update(context.Background(), 99, models.ProjectInput{})
		assert.ErrorIs(t, err, database.ErrNotFound)
	})
}

func TestProjectRepository_SoftDelete(t *testing.T) {
	t.Run("flags the row", func(t *testing.T) {
		repo, mock := setupProjectRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta(`SET is_deleted = true, updated_at = NOW()`) + `\s+` +
			regexp.QuoteMeta(`WHERE id = $1 AND is_deleted = false`)).
			WithArgs(int64(8)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(8)))

		id, err := repo.SoftDelete(context.Background(), 8)
		require.NoError(t, err)
		assert.Equal(t, int64(8), id)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already deleted is not found", func(t *testing.T) {
		repo, mock := setupProjectRepo(t)

		mock.ExpectQuery(`SET is_deleted = true`).
			WithArgs(int64(8)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.SoftDelete(context.Background(), 8)
		assert.ErrorIs(t, err, database.ErrNotFound)
	})
}

func TestProjectRepository_HardDelete(t *testing.T) {
	t.Run("removes the row regardless of flag", func(t *testing.T) {
		repo, mock := setupProjectRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta(`DELETE FROM pms.t_project`) + `\s+` + regexp.QuoteMeta(`WHERE id = $1`) + `\s+RETURNING id$`).
			WithArgs(int64(8)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(8)))

		id, err := repo.HardDelete(context.Background(), 8)
		require.NoError(t, err)
		assert.Equal(t, int64(8), id)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row is not found", func(t *testing.T) {
		repo, mock := setupProjectRepo(t)

		mock.ExpectQuery(`DELETE FROM pms.t_project`).
			WithArgs(int64(8)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.HardDelete(context.Background(), 8)
		assert.ErrorIs(t, err, database.ErrNotFound)
	})

	t.Run("database failure is wrapped", func(t *testing.T) {
		repo, mock := setupProjectRepo(t)

		mock.ExpectQuery(`DELETE FROM pms.t_project`).
			WithArgs(int64(8)).
			WillReturnError(errors.New("violates foreign key constraint"))

		_, err := repo.HardDelete(context.Background(), 8)
		require.Error(t, err)
		assert.NotErrorIs(t, err, database.ErrNotFound)
		assert.Contains(t, err.Error(), "failed to hard delete project")
	})
}
