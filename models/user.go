package models

import "time"

type AccountType string

const (
	AccountTypeRetail    AccountType = "retail"
	AccountTypeWholesale AccountType = "wholesale"
	AccountTypeAdmin     AccountType = "admin"
)

// Profile is the buyer record keyed by the auth provider's subject id.
// WholesaleApproved is toggled only by an admin.
type Profile struct {
	ID                string      `gorm:"primaryKey" json:"id"`
	Email             string      `gorm:"unique;not null" json:"email"`
	Name              string      `json:"name"`
	Phone             string      `json:"phone"`
	CompanyName       string      `json:"company_name"`
	AccountType       AccountType `gorm:"type:VARCHAR(20);default:'retail'" json:"account_type"`
	WholesaleApproved bool        `json:"wholesale_approved"`
	Address           Address     `gorm:"embedded" json:"address"`
	CreatedAt         time.Time   `json:"created_at"`
}

// IsWholesaleApproved reports whether the buyer may receive tiered pricing:
// wholesale account type AND admin approval, never one without the other.
func (p *Profile) IsWholesaleApproved() bool {
	return p.AccountType == AccountTypeWholesale && p.WholesaleApproved
}

// Address model embedded in Profile and Order
type Address struct {
	Country    string `json:"country"`
	State      string `json:"state"`
	City       string `json:"city"`
	Street     string `json:"street"`
	PostalCode string `json:"postal_code"`
}
