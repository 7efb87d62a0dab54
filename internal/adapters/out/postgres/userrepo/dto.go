// Package userrepo persists user accounts in the "users" table.
package userrepo

import (
	"time"

	"entregas/internal/core/domain/model/user"
)

type UserDTO struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Name         string `gorm:"size:120;not null"`
	Email        string `gorm:"size:255;not null;uniqueIndex"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"size:16;not null"`
	BranchID     *int64 `gorm:"index"`
	Active       bool   `gorm:"not null"`
	CreatedAt    time.Time
}

func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *user.User) UserDTO {
	s := u.Snapshot()
	return UserDTO{
		ID:           s.ID,
		Name:         s.Name,
		Email:        s.Email,
		PasswordHash: s.PasswordHash,
		Role:         s.Role.String(),
		BranchID:     s.BranchID,
		Active:       s.Active,
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	role, err := user.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(user.Snapshot{
		ID:           dto.ID,
		Name:         dto.Name,
		Email:        dto.Email,
		PasswordHash: dto.PasswordHash,
		Role:         role,
		BranchID:     dto.BranchID,
		Active:       dto.Active,
	})
}
