package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role is the closed set of account roles.
type Role string

const (
	RoleUser   Role = "user"
	RoleFarmer Role = "farmer"
	RoleAdmin  Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleFarmer, RoleAdmin:
		return true
	}
	return false
}

// User represents a registered account in the advisory system.
type User struct {
	ID             uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name           string    `json:"name" gorm:"size:255;not null"`
	Email          string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash   string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Phone          string    `json:"phone,omitempty" gorm:"size:32"`
	Role           Role      `json:"role" gorm:"size:16;default:'farmer';index"`
	ProfilePicture *string   `json:"profilePicture" gorm:"size:512"`
	Location       *Location `json:"location,omitempty" gorm:"embedded;embeddedPrefix:location_"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// Location is an optional address with geographic coordinates.
// The wire shape is {"address": ..., "coordinates": [longitude, latitude]}.
type Location struct {
	Address   string  `json:"-"`
	Longitude float64 `json:"-"`
	Latitude  float64 `json:"-"`
}

type locationJSON struct {
	Address     string     `json:"address"`
	Coordinates [2]float64 `json:"coordinates"`
}

// MarshalJSON renders the coordinates pair in [longitude, latitude] order.
func (l Location) MarshalJSON() ([]byte, error) {
	return json.Marshal(locationJSON{
		Address:     l.Address,
		Coordinates: [2]float64{l.Longitude, l.Latitude},
	})
}

// UnmarshalJSON accepts the [longitude, latitude] pair form.
func (l *Location) UnmarshalJSON(data []byte) error {
	var raw locationJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	l.Address = raw.Address
	l.Longitude = raw.Coordinates[0]
	l.Latitude = raw.Coordinates[1]
	return nil
}
