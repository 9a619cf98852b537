package entity

import "time"

// Country groups branches by country of operation.
type Country struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Code      string    `gorm:"size:10;uniqueIndex;not null" json:"code"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for the Country model
func (Country) TableName() string {
	return "countries"
}

// Branch is a physical location; it scopes stock and sales.
type Branch struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CountryID uint      `gorm:"index" json:"country_id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Location  string    `gorm:"size:255" json:"location"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Country Country `gorm:"foreignKey:CountryID" json:"-"`
}

// TableName returns the table name for the Branch model
func (Branch) TableName() string {
	return "branches"
}

// BranchWithCountry is the list projection of a branch joined with its
// country name.
type BranchWithCountry struct {
	ID          uint   `json:"id"`
	CountryID   uint   `json:"country_id"`
	Name        string `json:"name"`
	Location    string `json:"location"`
	CountryName string `json:"country_name"`
}
