package models

import "time"

type EquipmentStatus string

const (
	EquipmentAvailable    EquipmentStatus = "available"
	EquipmentInUse        EquipmentStatus = "in_use"
	EquipmentMaintenance  EquipmentStatus = "maintenance"
	EquipmentOutOfService EquipmentStatus = "out_of_service"
)

var EquipmentStatuses = []EquipmentStatus{EquipmentAvailable, EquipmentInUse, EquipmentMaintenance, EquipmentOutOfService}

type Equipment struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	Name            string          `gorm:"type:varchar(255);not null" json:"name" validate:"required,max=255"`
	Type            string          `gorm:"type:varchar(100)" json:"type"`
	Model           string          `gorm:"type:varchar(100)" json:"model"`
	SerialNumber    string          `gorm:"type:varchar(100)" json:"serial_number"`
	PurchaseDate    string          `gorm:"type:varchar(10)" json:"purchase_date" validate:"omitempty,datetime=2006-01-02"`
	Status          EquipmentStatus `gorm:"type:varchar(20);not null;default:available" json:"status" validate:"required,oneof=available in_use maintenance out_of_service"`
	LastMaintenance string          `gorm:"type:varchar(10)" json:"last_maintenance" validate:"omitempty,datetime=2006-01-02"`
	NextMaintenance string          `gorm:"type:varchar(10)" json:"next_maintenance" validate:"omitempty,datetime=2006-01-02"`
	Notes           string          `gorm:"type:text" json:"notes"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Equipment) TableName() string {
	return "equipment"
}

func (e Equipment) GetID() uint {
	return e.ID
}

func (e *Equipment) SetID(id uint) {
	e.ID = id
}
