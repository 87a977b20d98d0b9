package domain

import "time"

type PetSpecies string

const (
	SpeciesDog   PetSpecies = "DOG"
	SpeciesCat   PetSpecies = "CAT"
	SpeciesOther PetSpecies = "OTHER"
)

// Pet is owned by a customer and is removed with it.
type Pet struct {
	ID         int64      `json:"id" gorm:"primaryKey"`
	TenantID   int64      `json:"tenant_id" gorm:"index"`
	CustomerID int64      `json:"customer_id" gorm:"index"`
	Name       string     `json:"name" gorm:"size:200"`
	Species    PetSpecies `json:"species" gorm:"size:10"`
	Breed      string     `json:"breed" gorm:"size:100"`
	BirthDate  *time.Time `json:"birth_date,omitempty"`

	Customer *Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
}

func ValidSpecies(s PetSpecies) bool {
	switch s {
	case SpeciesDog, SpeciesCat, SpeciesOther:
		return true
	}
	return false
}
