package internships

import (
	"time"

	"gorm.io/datatypes"
)

type Internship struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Company     string         `gorm:"not null;index" json:"company"`
	Title       string         `gorm:"not null" json:"title"`
	Location    string         `gorm:"index" json:"location"`
	Remote      bool           `json:"remote"`
	StipendEUR  *float64       `gorm:"column:stipend_eur" json:"stipend_eur,omitempty"`
	Tags        datatypes.JSON `gorm:"type:jsonb" json:"tags"` // ["go","backend",...]
	Description string         `json:"description"`
	ApplyBy     *time.Time     `gorm:"column:apply_by;index" json:"apply_by,omitempty"`
	Active      bool           `gorm:"not null;default:true;index" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
