package model

import (
	"strconv"
	"strings"

	"github.com/muhammadheryan/wms/constant"
)

// UserEntity represents the users table entity
type UserEntity struct {
	ID           uint64        `db:"id" json:"id"`
	Username     string        `db:"username" json:"username"`
	PasswordHash string        `db:"password_hash" json:"-"`
	Role         constant.Role `db:"role" json:"role"`
	WarehouseIDs string        `db:"warehouse_ids" json:"warehouse_ids"`
}

// UserFilter for querying users
type UserFilter struct {
	ID       uint64
	Username string
}

// LoginRequest for user login
type LoginRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        UserResponse `json:"user"`
}

type UserResponse struct {
	ID           uint64        `json:"id"`
	Username     string        `json:"username"`
	Role         constant.Role `json:"role"`
	WarehouseIDs []uint64      `json:"warehouse_ids"`
}

// Principal is the authenticated caller attached to every request context.
type Principal struct {
	UserID       uint64
	SessionID    string
	Role         constant.Role
	WarehouseIDs []uint64
}

func (p *Principal) IsAdmin() bool {
	return p.Role == constant.RoleAdmin
}

// CanAccess reports whether the principal may read or mutate the warehouse.
func (p *Principal) CanAccess(warehouseID uint64) bool {
	if p.IsAdmin() {
		return true
	}
	for _, id := range p.WarehouseIDs {
		if id == warehouseID {
			return true
		}
	}
	return false
}

// ScopedWarehouses returns nil for admins (no restriction) and the authorized ids otherwise.
func (p *Principal) ScopedWarehouses() []uint64 {
	if p.IsAdmin() {
		return nil
	}
	if p.WarehouseIDs == nil {
		return []uint64{}
	}
	return p.WarehouseIDs
}

// ParseWarehouseIDs parses the comma separated warehouse list stored on a user, skipping junk.
func ParseWarehouseIDs(raw string) []uint64 {
	out := make([]uint64, 0)
	for _, part := range strings.Split(raw, ",") {
		id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64)
		if err != nil {
			continue
		}
		out = append(out, id)
	}
	return out
}

func (u *UserEntity) ToResponse() UserResponse {
	return UserResponse{
		ID:           u.ID,
		Username:     u.Username,
		Role:         u.Role,
		WarehouseIDs: ParseWarehouseIDs(u.WarehouseIDs),
	}
}
