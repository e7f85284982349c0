package models

import "time"

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Profile holds the extended personal data attached one-to-one to a User.
// Created atomically with the account at registration, deleted with it.
type Profile struct {
	BaseModel
	UserID         string     `gorm:"type:uuid;uniqueIndex;not null" json:"-"`
	DateOfBirth    *time.Time `json:"date_of_birth"`
	Gender         Gender     `gorm:"type:varchar(10)" json:"gender"`
	AddressLine1   string     `gorm:"size:100" json:"address_line_1"`
	AddressLine2   string     `gorm:"size:100" json:"address_line_2"`
	City           string     `gorm:"size:20" json:"city"`
	State          string     `gorm:"size:20" json:"state"`
	Country        string     `gorm:"size:20" json:"country"`
	PhoneNumber    string     `gorm:"size:15" json:"phone_number"`
	ProfilePicture string     `json:"profile_picture"`
}
