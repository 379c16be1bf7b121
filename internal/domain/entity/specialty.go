package entity

// Specialty is a medical specialty lookup row, referenced by doctors
// (many-to-many) and optionally by secretaries.
type Specialty struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
}

func (Specialty) TableName() string {
	return "specialties"
}

// SpecialtyFilter is the typed filter for listing specialties.
type SpecialtyFilter struct {
	Name  string
	Page  int
	Limit int
}
