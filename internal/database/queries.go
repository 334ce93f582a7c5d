package database

import (
	"fmt"
	"strings"
)

// projectColumns are the pms.t_project columns in the order the API exposes them.
var projectColumns = []string{
	"id",
	"project_number",
	"name",
	"lead_id",
	"project_type",
	"customer_id",
	"warehouse_id",
	"project_species",
	"project_status",
	"estimated_start",
	"estimated_end",
	"actual_start",
	"actual_end",
	"price_customer",
	"estimated_price",
	"actual_price",
	"kick_off",
	"comment_baseline",
	"comment_other",
	"project_template_id",
	"location",
	"project_address",
	"is_insured",
	"insurance_no",
	"insurance_from_date",
	"insurance_to_date",
	"approval_status",
	"approval_comment",
	"approved_by",
	"approved_on",
	"completion",
	"created_by",
	"updated_by",
	"created_at",
	"updated_at",
	"is_active",
	"is_deleted",
}

// insertableColumns are written by Create. Defaults for is_insured,
// approval_status and completion are applied in SQL.
var insertableColumns = []string{
	"lead_id",
	"warehouse_id",
	"project_species",
	"name",
	"project_type",
	"project_status",
	"estimated_start",
	"estimated_end",
	"actual_start",
	"actual_end",
	"price_customer",
	"estimated_price",
	"actual_price",
	"kick_off",
	"comment_baseline",
	"comment_other",
	"project_template_id",
	"customer_id",
	"location",
	"project_address",
	"project_number",
	"is_insured",
	"insurance_no",
	"insurance_from_date",
	"insurance_to_date",
	"approval_status",
	"approval_comment",
	"approved_by",
	"approved_on",
	"completion",
	"created_by",
}

var insertDefaults = map[string]string{
	"is_insured":      "false",
	"approval_status": "'PENDING'",
	"completion":      "0.0",
}

// coalescedColumns keep their stored value when the update omits them.
// updated_by is not among them: an update always overwrites it.
var coalescedColumns = append(without(insertableColumns, "created_by"), "is_active")

const (
	projectTable  = "pms.t_project"
	leadTable     = "pms.t_lead"
	customerTable = "pms.t_customer"
)

var (
	listProjectsQuery  = enrichedSelect(projectTable) + "\nWHERE p.is_deleted = false\nORDER BY p.created_at DESC"
	getProjectQuery    = enrichedSelect(projectTable) + "\nWHERE p.id = $1 AND p.is_deleted = false"
	createProjectQuery = buildCreateQuery()
	updateProjectQuery = buildUpdateQuery()
	softDeleteQuery    = "UPDATE " + projectTable + "\nSET is_deleted = true, updated_at = NOW()\nWHERE id = $1 AND is_deleted = false\nRETURNING id"
	hardDeleteQuery    = "DELETE FROM " + projectTable + "\nWHERE id = $1\nRETURNING id"
)

// enrichedSelect selects every project column from source (aliased p) and
// left-joins the lead and customer display fields.
func enrichedSelect(source string) string {
	cols := make([]string, len(projectColumns))
	for i, c := range projectColumns {
		cols[i] = "p." + c
	}
	return fmt.Sprintf(`SELECT %s,
	l.lead_number,
	c.customer_name
FROM %s p
LEFT JOIN %s l ON p.lead_id = l.id
LEFT JOIN %s c ON p.customer_id = c.id`,
		strings.Join(cols, ", "), source, leadTable, customerTable)
}

// Mutations run inside a CTE so the returned row carries the same enrichment
// as a read, in a single statement.
func buildCreateQuery() string {
	values := make([]string, len(insertableColumns))
	for i, c := range insertableColumns {
		if def, ok := insertDefaults[c]; ok {
			values[i] = fmt.Sprintf("COALESCE(:%s, %s)", c, def)
		} else {
			values[i] = ":" + c
		}
	}
	return fmt.Sprintf(`WITH saved AS (
	INSERT INTO %s (%s, created_at)
	VALUES (%s, NOW())
	RETURNING *
)
%s`,
		projectTable,
		strings.Join(insertableColumns, ", "),
		strings.Join(values, ", "),
		enrichedSelect("saved"))
}

func buildUpdateQuery() string {
	sets := make([]string, 0, len(coalescedColumns)+2)
	for _, c := range coalescedColumns {
		sets = append(sets, fmt.Sprintf("%s = COALESCE(:%s, %s)", c, c, c))
	}
	sets = append(sets, "updated_by = :updated_by", "updated_at = NOW()")
	return fmt.Sprintf(`WITH saved AS (
	UPDATE %s
	SET %s
	WHERE id = :id AND is_deleted = false
	RETURNING *
)
%s`,
		projectTable,
		strings.Join(sets, ",\n\t\t"),
		enrichedSelect("saved"))
}

func without(cols []string, drop string) []string {
	out := make([]string, 0, len(cols))
	for _, c := range cols {
		if c != drop {
			out = append(out, c)
		}
	}
	return out
}
