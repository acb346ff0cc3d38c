package models

import (
	"time"

	"github.com/uptrace/bun"
)

type UserAccount struct {
	bun.BaseModel  `bun:"table:user_account"`
	ID             string    `bun:"id,pk" json:"id"`
	DisplayName    string    `bun:"display_name" json:"display_name"`
	Tokens         int       `bun:"tokens" json:"tokens"`
	TotalReferrals int       `bun:"total_referrals" json:"total_referrals"`
	IsVIP          bool      `bun:"is_vip" json:"is_vip"`
	CreatedAt      time.Time `bun:"created_at,default:current_timestamp" json:"created_at"`
	UpdatedAt      time.Time `bun:"updated_at" json:"updated_at"`
}

// UserFromAuth only use in middleware
type UserFromAuth struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}
