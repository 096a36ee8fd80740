package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// EmployeeCountBuckets are the allowed company-size ranges for a supplier.
var EmployeeCountBuckets = []string{"1-50", "51-200", "201-500", "501-1000", "1000+"}

// StringList is a []string persisted as a JSON text column so that the
// same LIKE-based search works on both PostgreSQL and SQLite.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("failed to encode string list: %w", err)
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for string list", value)
	}
	if len(raw) == 0 {
		*l = nil
		return nil
	}
	return json.Unmarshal(raw, l)
}

// Address is the structured location of a supplier. All four fields are
// required together; a partially filled address is rejected at validation.
type Address struct {
	Country  string `json:"country" gorm:"type:varchar(100)"`
	Province string `json:"province" gorm:"type:varchar(100)"`
	City     string `json:"city" gorm:"type:varchar(100)"`
	Detail   string `json:"detail" gorm:"type:varchar(255)"`
}

// Supplier represents a manufacturer/vendor record in the directory.
// PasswordHash is never serialized; timestamps are maintained by GORM.
// No soft-delete column: deleting a supplier is a hard delete.
type Supplier struct {
	ID                 string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	CompanyName        string     `json:"companyName" gorm:"type:varchar(255)"`
	MainProducts       StringList `json:"mainProducts" gorm:"type:text"`
	ContactPerson      string     `json:"contactPerson" gorm:"type:varchar(255)"`
	Email              string     `json:"email" gorm:"uniqueIndex;type:varchar(255)"`
	PasswordHash       string     `json:"-" gorm:"column:password;type:varchar(255)"`
	Phone              string     `json:"phone" gorm:"type:varchar(50)"`
	Address            Address    `json:"address" gorm:"embedded;embeddedPrefix:address_"`
	Description        string     `json:"description" gorm:"type:text"`
	Website            string     `json:"website,omitempty" gorm:"type:varchar(255)"`
	EstablishedYear    int        `json:"establishedYear,omitempty"`
	EmployeeCount      string     `json:"employeeCount,omitempty" gorm:"type:varchar(20)"`
	Certifications     StringList `json:"certifications,omitempty" gorm:"type:text"`
	Images             StringList `json:"images,omitempty" gorm:"type:text"`
	ProductDescription string     `json:"productDescription,omitempty" gorm:"type:text"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

// HasPassword reports whether the supplier can authenticate by password.
func (s *Supplier) HasPassword() bool {
	return s.PasswordHash != ""
}

// SupplierInput is the untrusted candidate shape accepted at the API
// boundary. It is promoted to a Supplier only after Validate passes.
type SupplierInput struct {
	CompanyName        string       `json:"companyName" validate:"required"`
	MainProducts       []string     `json:"mainProducts" validate:"required,min=1,dive,required"`
	ContactPerson      string       `json:"contactPerson" validate:"required"`
	Email              string       `json:"email" validate:"required,email"`
	Password           string       `json:"password" validate:"omitempty,min=6"`
	Phone              string       `json:"phone" validate:"required"`
	Address            AddressInput `json:"address"`
	Description        string       `json:"description" validate:"required"`
	Website            string       `json:"website"`
	EstablishedYear    int          `json:"establishedYear" validate:"omitempty,min=1800"`
	EmployeeCount      string       `json:"employeeCount" validate:"omitempty,oneof=1-50 51-200 201-500 501-1000 1000+"`
	Certifications     []string     `json:"certifications"`
	Images             []string     `json:"images"`
	ProductDescription string       `json:"productDescription"`
}

// AddressInput mirrors Address for incoming payloads.
type AddressInput struct {
	Country  string `json:"country" validate:"required"`
	Province string `json:"province" validate:"required"`
	City     string `json:"city" validate:"required"`
	Detail   string `json:"detail" validate:"required"`
}

// Normalize trims whitespace from all string fields and lowercases the
// email, matching what the storage layer expects. Call before Validate.
func (in *SupplierInput) Normalize() {
	in.CompanyName = strings.TrimSpace(in.CompanyName)
	in.ContactPerson = strings.TrimSpace(in.ContactPerson)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)
	in.Description = strings.TrimSpace(in.Description)
	in.Website = strings.TrimSpace(in.Website)
	in.ProductDescription = strings.TrimSpace(in.ProductDescription)
	in.Address.Country = strings.TrimSpace(in.Address.Country)
	in.Address.Province = strings.TrimSpace(in.Address.Province)
	in.Address.City = strings.TrimSpace(in.Address.City)
	in.Address.Detail = strings.TrimSpace(in.Address.Detail)
	in.MainProducts = trimList(in.MainProducts)
	in.Certifications = trimList(in.Certifications)
	in.Images = trimList(in.Images)
}

func trimList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// ToSupplier promotes a validated input to a trusted Supplier record.
// The password is intentionally not carried over; hashing is a separate
// step owned by the service layer.
func (in *SupplierInput) ToSupplier() *Supplier {
	return &Supplier{
		CompanyName:   in.CompanyName,
		MainProducts:  StringList(in.MainProducts),
		ContactPerson: in.ContactPerson,
		Email:         in.Email,
		Phone:         in.Phone,
		Address: Address{
			Country:  in.Address.Country,
			Province: in.Address.Province,
			City:     in.Address.City,
			Detail:   in.Address.Detail,
		},
		Description:        in.Description,
		Website:            in.Website,
		EstablishedYear:    in.EstablishedYear,
		EmployeeCount:      in.EmployeeCount,
		Certifications:     StringList(in.Certifications),
		Images:             StringList(in.Images),
		ProductDescription: in.ProductDescription,
	}
}

// SupplierUpdate carries a partial update; nil fields are left untouched.
// Password follows the sentinel rule: nil or empty means "unchanged", and
// a value equal to the currently stored hash is also treated as unchanged
// so that echoing a record back through the form never re-hashes.
type SupplierUpdate struct {
	CompanyName        *string   `json:"companyName"`
	MainProducts       *[]string `json:"mainProducts"`
	ContactPerson      *string   `json:"contactPerson"`
	Email              *string   `json:"email"`
	Password           *string   `json:"password"`
	Phone              *string   `json:"phone"`
	Address            *AddressInput `json:"address"`
	Description        *string   `json:"description"`
	Website            *string   `json:"website"`
	EstablishedYear    *int      `json:"establishedYear"`
	EmployeeCount      *string   `json:"employeeCount"`
	Certifications     *[]string `json:"certifications"`
	Images             *[]string `json:"images"`
	ProductDescription *string   `json:"productDescription"`
}
