package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ApprovalStatusPending is the approval status of a new project.
const ApprovalStatusPending = "PENDING"

// Project is a pms.t_project row plus the lead/customer display fields.
type Project struct {
	ID                int64               `db:"id" json:"id"`
	ProjectNumber     *string             `db:"project_number" json:"project_number"`
	Name              *string             `db:"name" json:"name"`
	LeadID            *int64              `db:"lead_id" json:"lead_id"`
	ProjectType       *string             `db:"project_type" json:"project_type"`
	CustomerID        *int64              `db:"customer_id" json:"customer_id"`
	WarehouseID       *int64              `db:"warehouse_id" json:"warehouse_id"`
	ProjectSpecies    *string             `db:"project_species" json:"project_species"`
	ProjectStatus     *string             `db:"project_status" json:"project_status"`
	EstimatedStart    *time.Time          `db:"estimated_start" json:"estimated_start"`
	EstimatedEnd      *time.Time          `db:"estimated_end" json:"estimated_end"`
	ActualStart       *time.Time          `db:"actual_start" json:"actual_start"`
	ActualEnd         *time.Time          `db:"actual_end" json:"actual_end"`
	PriceCustomer     decimal.NullDecimal `db:"price_customer" json:"price_customer" swaggertype:"string"`
	EstimatedPrice    decimal.NullDecimal `db:"estimated_price" json:"estimated_price" swaggertype:"string"`
	ActualPrice       decimal.NullDecimal `db:"actual_price" json:"actual_price" swaggertype:"string"`
	KickOff           *time.Time          `db:"kick_off" json:"kick_off"`
	CommentBaseline   *string             `db:"comment_baseline" json:"comment_baseline"`
	CommentOther      *string             `db:"comment_other" json:"comment_other"`
	ProjectTemplateID *int64              `db:"project_template_id" json:"project_template_id"`
	Location          *string             `db:"location" json:"location"`
	ProjectAddress    *string             `db:"project_address" json:"project_address"`
	IsInsured         bool                `db:"is_insured" json:"is_insured"`
	InsuranceNo       *string             `db:"insurance_no" json:"insurance_no"`
	InsuranceFromDate *time.Time          `db:"insurance_from_date" json:"insurance_from_date"`
	InsuranceToDate   *time.Time          `db:"insurance_to_date" json:"insurance_to_date"`
	ApprovalStatus    string              `db:"approval_status" json:"approval_status"`
	ApprovalComment   *string             `db:"approval_comment" json:"approval_comment"`
	ApprovedBy        *int64              `db:"approved_by" json:"approved_by"`
	ApprovedOn        *time.Time          `db:"approved_on" json:"approved_on"`
	Completion        float64             `db:"completion" json:"completion"`
	CreatedBy         *int64              `db:"created_by" json:"created_by"`
	UpdatedBy         *int64              `db:"updated_by" json:"updated_by"`
	CreatedAt         time.Time           `db:"created_at" json:"created_at"`
	UpdatedAt         *time.Time          `db:"updated_at" json:"updated_at"`
	IsActive          bool                `db:"is_active" json:"is_active"`
	IsDeleted         bool                `db:"is_deleted" json:"is_deleted"`

	// Enrichment, NULL when the referenced row is missing
	LeadNumber   *string `db:"lead_number" json:"lead_number"`
	CustomerName *string `db:"customer_name" json:"customer_name"`
}

// DeletedProject is the payload of both delete operations.
type DeletedProject struct {
	ID int64 `json:"id"`
}
