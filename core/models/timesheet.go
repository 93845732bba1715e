package models

import "time"

type Timesheet struct {
	ID              uint     `gorm:"primaryKey" json:"id"`
	EmployeeName    string   `gorm:"type:varchar(255);not null" json:"employee_name" validate:"required,max=255"`
	Date            string   `gorm:"type:varchar(10);not null;index" json:"date" validate:"required,datetime=2006-01-02"`
	Hours           float64  `gorm:"type:decimal(10,2);not null" json:"hours" validate:"min=0"`
	HourlyRate      float64  `gorm:"type:decimal(12,2)" json:"hourly_rate" validate:"min=0"`
	ProjectID       *uint    `gorm:"index" json:"project_id"`
	Project         *Project `gorm:"foreignKey:ProjectID;constraint:OnDelete:SET NULL" json:"project,omitempty" validate:"-"`
	TaskDescription string   `gorm:"type:text" json:"task_description"`

	// draft only, hours are derived from them when both are set
	StartTime string `gorm:"-" json:"start_time,omitempty" validate:"omitempty,datetime=15:04"`
	EndTime   string `gorm:"-" json:"end_time,omitempty" validate:"omitempty,datetime=15:04"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Timesheet) TableName() string {
	return "timesheets"
}

func (t Timesheet) GetID() uint {
	return t.ID
}

func (t Timesheet) ProjectName() string {
	if t.Project == nil {
		return ""
	}
	return t.Project.Name
}

func (t *Timesheet) SetID(id uint) {
	t.ID = id
}
