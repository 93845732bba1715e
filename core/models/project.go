package models

import "time"

type ProjectStatus string

const (
	ProjectPlanning  ProjectStatus = "planning"
	ProjectActive    ProjectStatus = "active"
	ProjectCompleted ProjectStatus = "completed"
	ProjectOnHold    ProjectStatus = "on_hold"
)

// ProjectStatuses lists the statuses in display order.
var ProjectStatuses = []ProjectStatus{ProjectPlanning, ProjectActive, ProjectCompleted, ProjectOnHold}

type Project struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	Name        string        `gorm:"type:varchar(255);not null" json:"name" validate:"required,max=255"`
	ClientID    uint          `gorm:"not null;index" json:"client_id" validate:"required"`
	Client      *Client       `gorm:"foreignKey:ClientID;constraint:OnDelete:RESTRICT" json:"client,omitempty" validate:"-"`
	Description string        `gorm:"type:text" json:"description"`
	StartDate   string        `gorm:"type:varchar(10)" json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate     string        `gorm:"type:varchar(10)" json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Status      ProjectStatus `gorm:"type:varchar(20);not null;default:planning" json:"status" validate:"required,oneof=planning active completed on_hold"`
	Budget      float64       `gorm:"type:decimal(12,2)" json:"budget" validate:"min=0"`
	Location    string        `gorm:"type:varchar(255)" json:"location"`
	CreatedAt   time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Project) TableName() string {
	return "projects"
}

func (p Project) GetID() uint {
	return p.ID
}

// ClientName is empty when the client was not preloaded.
func (p Project) ClientName() string {
	if p.Client == nil {
		return ""
	}
	return p.Client.Name
}

func (p *Project) SetID(id uint) {
	p.ID = id
}
