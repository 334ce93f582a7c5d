package models

import "github.com/shopspring/decimal"

// ProjectInput is the body of create and update requests. Every field is
// optional; dates are passed to Postgres as text (YYYY-MM-DD).
type ProjectInput struct {
	ProjectNumber     Optional[string]          `db:"project_number" json:"project_number" swaggertype:"string"`
	Name              Optional[string]          `db:"name" json:"name" swaggertype:"string"`
	LeadID            Optional[int64]           `db:"lead_id" json:"lead_id" swaggertype:"integer"`
	ProjectType       Optional[string]          `db:"project_type" json:"project_type" swaggertype:"string"`
	CustomerID        Optional[int64]           `db:"customer_id" json:"customer_id" swaggertype:"integer"`
	WarehouseID       Optional[int64]           `db:"warehouse_id" json:"warehouse_id" swaggertype:"integer"`
	ProjectSpecies    Optional[string]          `db:"project_species" json:"project_species" swaggertype:"string"`
	ProjectStatus     Optional[string]          `db:"project_status" json:"project_status" swaggertype:"string"`
	EstimatedStart    Optional[string]          `db:"estimated_start" json:"estimated_start" swaggertype:"string" example:"2025-03-01"`
	EstimatedEnd      Optional[string]          `db:"estimated_end" json:"estimated_end" swaggertype:"string"`
	ActualStart       Optional[string]          `db:"actual_start" json:"actual_start" swaggertype:"string"`
	ActualEnd         Optional[string]          `db:"actual_end" json:"actual_end" swaggertype:"string"`
	PriceCustomer     Optional[decimal.Decimal] `db:"price_customer" json:"price_customer" swaggertype:"string"`
	EstimatedPrice    Optional[decimal.Decimal] `db:"estimated_price" json:"estimated_price" swaggertype:"string"`
	ActualPrice       Optional[decimal.Decimal] `db:"actual_price" json:"actual_price" swaggertype:"string"`
	KickOff           Optional[string]          `db:"kick_off" json:"kick_off" swaggertype:"string"`
	CommentBaseline   Optional[string]          `db:"comment_baseline" json:"comment_baseline" swaggertype:"string"`
	CommentOther      Optional[string]          `db:"comment_other" json:"comment_other" swaggertype:"string"`
	ProjectTemplateID Optional[int64]           `db:"project_template_id" json:"project_template_id" swaggertype:"integer"`
	Location          Optional[string]          `db:"location" json:"location" swaggertype:"string"`
	ProjectAddress    Optional[string]          `db:"project_address" json:"project_address" swaggertype:"string"`
	IsInsured         Optional[bool]            `db:"is_insured" json:"is_insured" swaggertype:"boolean"`
	InsuranceNo       Optional[string]          `db:"insurance_no" json:"insurance_no" swaggertype:"string"`
	InsuranceFromDate Optional[string]          `db:"insurance_from_date" json:"insurance_from_date" swaggertype:"string"`
	InsuranceToDate   Optional[string]          `db:"insurance_to_date" json:"insurance_to_date" swaggertype:"string"`
	ApprovalStatus    Optional[string]          `db:"approval_status" json:"approval_status" swaggertype:"string" example:"PENDING"`
	ApprovalComment   Optional[string]          `db:"approval_comment" json:"approval_comment" swaggertype:"string"`
	ApprovedBy        Optional[int64]           `db:"approved_by" json:"approved_by" swaggertype:"integer"`
	ApprovedOn        Optional[string]          `db:"approved_on" json:"approved_on" swaggertype:"string"`
	Completion        Optional[float64]         `db:"completion" json:"completion" swaggertype:"number"`
	CreatedBy         Optional[int64]           `db:"created_by" json:"created_by" swaggertype:"integer"`
	UpdatedBy         Optional[int64]           `db:"updated_by" json:"updated_by" swaggertype:"integer"`
	// Only honoured on update; new rows take the column default.
	IsActive Optional[bool] `db:"is_active" json:"is_active" swaggertype:"boolean"`
}

// ForInsert drops zero values so create stores NULL (or the column default)
// for "", 0 and false. Update binds values as given.
func (in ProjectInput) ForInsert() ProjectInput {
	return ProjectInput{
		ProjectNumber:     in.ProjectNumber.NonZero(),
		Name:              in.Name.NonZero(),
		LeadID:            in.LeadID.NonZero(),
		ProjectType:       in.ProjectType.NonZero(),
		CustomerID:        in.CustomerID.NonZero(),
		WarehouseID:       in.WarehouseID.NonZero(),
		ProjectSpecies:    in.ProjectSpecies.NonZero(),
		ProjectStatus:     in.ProjectStatus.NonZero(),
		EstimatedStart:    in.EstimatedStart.NonZero(),
		EstimatedEnd:      in.EstimatedEnd.NonZero(),
		ActualStart:       in.ActualStart.NonZero(),
		ActualEnd:         in.ActualEnd.NonZero(),
		PriceCustomer:     in.PriceCustomer.NonZero(),
		EstimatedPrice:    in.EstimatedPrice.NonZero(),
		ActualPrice:       in.ActualPrice.NonZero(),
		KickOff:           in.KickOff.NonZero(),
		CommentBaseline:   in.CommentBaseline.NonZero(),
		CommentOther:      in.CommentOther.NonZero(),
		ProjectTemplateID: in.ProjectTemplateID.NonZero(),
		Location:          in.Location.NonZero(),
		ProjectAddress:    in.ProjectAddress.NonZero(),
		IsInsured:         in.IsInsured.NonZero(),
		InsuranceNo:       in.InsuranceNo.NonZero(),
		InsuranceFromDate: in.InsuranceFromDate.NonZero(),
		InsuranceToDate:   in.InsuranceToDate.NonZero(),
		ApprovalStatus:    in.ApprovalStatus.NonZero(),
		ApprovalComment:   in.ApprovalComment.NonZero(),
		ApprovedBy:        in.ApprovedBy.NonZero(),
		ApprovedOn:        in.ApprovedOn.NonZero(),
		Completion:        in.Completion.NonZero(),
		CreatedBy:         in.CreatedBy.NonZero(),
		UpdatedBy:         in.UpdatedBy.NonZero(),
		IsActive:          in.IsActive.NonZero(),
	}
}
