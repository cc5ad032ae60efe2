// Package pgtypes holds the column groups and error mapping shared by the
// per-aggregate repository packages.
package pgtypes

import (
	"errors"
	"fmt"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AddressDTO is embedded with a column prefix wherever an address is stored.
type AddressDTO struct {
	Street  string `gorm:"type:varchar(255);not null"`
	City    string `gorm:"type:varchar(100);not null"`
	State   string `gorm:"type:varchar(100);not null"`
	Pincode string `gorm:"type:char(6);not null"`
}

func AddressFromDomain(a kernel.Address) AddressDTO {
	return AddressDTO{
		Street:  a.Street(),
		City:    a.City(),
		State:   a.State(),
		Pincode: a.Pincode(),
	}
}

func (dto AddressDTO) ToDomain(label string) (kernel.Address, error) {
	return kernel.NewAddress(label, dto.Street, dto.City, dto.State, dto.Pincode)
}

// ProfileDTO is the business profile shared by carriers and shippers. Each
// table keeps its own unique indexes on email, number and GST.
type ProfileDTO struct {
	OwnerName     string     `gorm:"type:varchar(255);not null"`
	CompanyName   string     `gorm:"type:varchar(255);not null"`
	ContactEmail  string     `gorm:"type:varchar(255);not null;uniqueIndex"`
	ContactNumber string     `gorm:"type:char(10);not null;uniqueIndex"`
	GSTNumber     string     `gorm:"column:gst_number;type:char(15);not null;uniqueIndex"`
	Address       AddressDTO `gorm:"embedded"`
}

func ProfileFromDomain(p kernel.Profile) ProfileDTO {
	return ProfileDTO{
		OwnerName:     p.OwnerName(),
		CompanyName:   p.CompanyName(),
		ContactEmail:  p.Email(),
		ContactNumber: p.ContactNumber(),
		GSTNumber:     p.GSTNumber(),
		Address:       AddressFromDomain(p.Address()),
	}
}

func (dto ProfileDTO) ToDomain() (kernel.Profile, error) {
	address, err := dto.Address.ToDomain("address")
	if err != nil {
		return kernel.Profile{}, err
	}
	return kernel.NewProfile(dto.OwnerName, dto.CompanyName, dto.ContactEmail, dto.ContactNumber, dto.GSTNumber, address)
}

// ProfileConflict names the first unique profile field p shares with the
// existing row, or returns nil when none match.
func ProfileConflict(existing ProfileDTO, p kernel.Profile) error {
	switch {
	case existing.ContactEmail == p.Email():
		return errs.NewConflictError("contactEmail", p.Email())
	case existing.ContactNumber == p.ContactNumber():
		return errs.NewConflictError("contactNumber", p.ContactNumber())
	case existing.GSTNumber == p.GSTNumber():
		return errs.NewConflictError("gstNumber", p.GSTNumber())
	default:
		return nil
	}
}

// CapacityDTO is embedded with a column prefix for load requirements and
// vehicle ratings.
type CapacityDTO struct {
	Unit  string          `gorm:"type:varchar(10);not null"`
	Value decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

func CapacityFromDomain(c kernel.Capacity) CapacityDTO {
	return CapacityDTO{Unit: c.Unit().String(), Value: c.Value()}
}

func (dto CapacityDTO) ToDomain() (kernel.Capacity, error) {
	for _, unit := range []kernel.CapacityUnit{kernel.Tons, kernel.Litres} {
		if unit.String() == dto.Unit {
			return kernel.NewCapacity(unit, dto.Value)
		}
	}
	return kernel.Capacity{}, errs.NewValueIsInvalidErrorWithCause("capacity_unit", fmt.Errorf("%q is not a unit", dto.Unit))
}

func UUIDPtr(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func UUIDFromPtr(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil //nolint:nilnil // NULL column
	}
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// NotFound turns gorm.ErrRecordNotFound into an ObjectNotFoundError for param.
func NotFound(err error, param string, id kernel.UUID) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError(param, id.String())
	}
	return err
}

// Conflict turns a unique violation into a ConflictError. It relies on the
// connection being opened with gorm.Config{TranslateError: true}.
func Conflict(err error, param string, value any) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.NewConflictErrorWithCause(param, value, err)
	}
	return err
}
