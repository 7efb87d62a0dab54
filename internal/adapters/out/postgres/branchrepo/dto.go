// Package branchrepo persists branches in the "branches" table.
package branchrepo

import (
	"time"

	"entregas/internal/core/domain/model/branch"
)

type BranchDTO struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	Name       string `gorm:"size:120;not null"`
	Address    string
	Locality   string
	PostalCode string `gorm:"size:16"`
	Phone      string `gorm:"size:32"`
	Email      string
	Active     bool `gorm:"not null"`
	CreatedAt  time.Time
}

func (BranchDTO) TableName() string {
	return "branches"
}

func fromDomain(b *branch.Branch) BranchDTO {
	s := b.Snapshot()
	return BranchDTO{
		ID:         s.ID,
		Name:       s.Name,
		Address:    s.Contact.Address,
		Locality:   s.Contact.Locality,
		PostalCode: s.Contact.PostalCode,
		Phone:      s.Contact.Phone,
		Email:      s.Contact.Email,
		Active:     s.Active,
	}
}

func toDomain(dto BranchDTO) (*branch.Branch, error) {
	return branch.RestoreBranch(branch.Snapshot{
		ID:   dto.ID,
		Name: dto.Name,
		Contact: branch.Contact{
			Address:    dto.Address,
			Locality:   dto.Locality,
			PostalCode: dto.PostalCode,
			Phone:      dto.Phone,
			Email:      dto.Email,
		},
		Active: dto.Active,
	})
}
