package models

import "time"

// The four portfolio resource kinds. Each row belongs to exactly one user
// via OwnerID; list/update/delete are always scoped to that owner.

type Project struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Title       string    `gorm:"size:120;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	OwnerID     uint      `gorm:"index;not null" json:"-"`
}

type Skill struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Name        string    `gorm:"size:80;not null" json:"name"`
	Proficiency string    `gorm:"size:80" json:"proficiency,omitempty"`
	OwnerID     uint      `gorm:"index;not null" json:"-"`
}

type Experience struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Company   string    `gorm:"size:120;not null" json:"company"`
	Position  string    `gorm:"size:120;not null" json:"position"`
	StartDate string    `gorm:"size:80;not null" json:"start_date"`
	EndDate   string    `gorm:"size:80" json:"end_date,omitempty"`
	OwnerID   uint      `gorm:"index;not null" json:"-"`
}

type Education struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Institution  string    `gorm:"size:120;not null" json:"institution"`
	Degree       string    `gorm:"size:120;not null" json:"degree"`
	FieldOfStudy string    `gorm:"size:120" json:"field_of_study,omitempty"`
	StartDate    string    `gorm:"size:80;not null" json:"start_date"`
	EndDate      string    `gorm:"size:80" json:"end_date,omitempty"`
	OwnerID      uint      `gorm:"index;not null" json:"-"`
}
