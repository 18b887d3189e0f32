package models

import "time"

type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Username     string    `gorm:"size:80;uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"size:256;not null" json:"-"`

	Projects    []Project    `gorm:"foreignKey:OwnerID" json:"-"`
	Skills      []Skill      `gorm:"foreignKey:OwnerID" json:"-"`
	Experiences []Experience `gorm:"foreignKey:OwnerID" json:"-"`
	Educations  []Education  `gorm:"foreignKey:OwnerID" json:"-"`
}
