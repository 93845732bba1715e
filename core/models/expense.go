package models

import "time"

type ExpenseCategory string

const (
	CategoryFuel            ExpenseCategory = "fuel"
	CategoryMaintenance     ExpenseCategory = "maintenance"
	CategoryLabor           ExpenseCategory = "labor"
	CategoryMaterials       ExpenseCategory = "materials"
	CategoryEquipmentRental ExpenseCategory = "equipment_rental"
	CategoryOther           ExpenseCategory = "other"
)

var ExpenseCategories = []ExpenseCategory{
	CategoryFuel, CategoryMaintenance, CategoryLabor, CategoryMaterials, CategoryEquipmentRental, CategoryOther,
}

type Expense struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	Description   string          `gorm:"type:varchar(255);not null" json:"description" validate:"required,max=255"`
	Amount        float64         `gorm:"type:decimal(12,2);not null" json:"amount" validate:"min=0"`
	Category      ExpenseCategory `gorm:"type:varchar(30);not null;default:fuel" json:"category" validate:"required,oneof=fuel maintenance labor materials equipment_rental other"`
	Date          string          `gorm:"type:varchar(10);not null;index" json:"date" validate:"required,datetime=2006-01-02"`
	ProjectID     *uint           `gorm:"index" json:"project_id"`
	Project       *Project        `gorm:"foreignKey:ProjectID;constraint:OnDelete:SET NULL" json:"project,omitempty" validate:"-"`
	ReceiptNumber string          `gorm:"type:varchar(100)" json:"receipt_number"`
	ReceiptImage  *string         `gorm:"type:varchar(1024)" json:"receipt_image"`
	UserID        string          `gorm:"type:varchar(64);index" json:"user_id"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Expense) TableName() string {
	return "expenses"
}

func (e Expense) GetID() uint {
	return e.ID
}

func (e Expense) ProjectName() string {
	if e.Project == nil {
		return ""
	}
	return e.Project.Name
}

func (e *Expense) SetID(id uint) {
	e.ID = id
}
