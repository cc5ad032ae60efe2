package pgtypes_test

import (
	"errors"
	"testing"

	"freight/internal/adapters/out/postgres/pgtypes"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestProfileRoundTrip(t *testing.T) {
	address, err := kernel.NewAddress("address", "4 Park Street", "Kolkata", "WB", "700016")
	require.NoError(t, err)
	profile, err := kernel.NewProfile("Ravi Sen", "Eastern Hauls", "Ops@Eastern.in", "9123456780", "19aaacd1234e1z5", address)
	require.NoError(t, err)

	dto := pgtypes.ProfileFromDomain(profile)
	assert.Equal(t, "ops@eastern.in", dto.ContactEmail)
	assert.Equal(t, "19AAACD1234E1Z5", dto.GSTNumber)

	restored, err := dto.ToDomain()
	require.NoError(t, err)
	assert.Equal(t, profile.Email(), restored.Email())
	assert.True(t, profile.Address().IsEqual(restored.Address()))
}

func TestProfileConflict(t *testing.T) {
	address, err := kernel.NewAddress("address", "4 Park Street", "Kolkata", "WB", "700016")
	require.NoError(t, err)
	profile, err := kernel.NewProfile("Ravi Sen", "Eastern Hauls", "ops@eastern.in", "9123456780", "19AAACD1234E1Z5", address)
	require.NoError(t, err)

	existing := pgtypes.ProfileDTO{ContactEmail: "other@eastern.in", ContactNumber: "9123456780"}
	err = pgtypes.ProfileConflict(existing, profile)
	require.ErrorIs(t, err, errs.ErrConflict)
	assert.Contains(t, err.Error(), "contactNumber")

	require.NoError(t, pgtypes.ProfileConflict(pgtypes.ProfileDTO{}, profile))
}

func TestErrorMapping(t *testing.T) {
	id := kernel.NewUUID()

	require.ErrorIs(t, pgtypes.NotFound(gorm.ErrRecordNotFound, "load", id), errs.ErrObjectNotFound)
	require.ErrorIs(t, pgtypes.Conflict(gorm.ErrDuplicatedKey, "vehicleNumber", "MH12AB1234"), errs.ErrConflict)

	other := errors.New("connection reset")
	assert.Equal(t, other, pgtypes.NotFound(other, "load", id))
	assert.Equal(t, other, pgtypes.Conflict(other, "load", id))
}

func TestUUIDPointers(t *testing.T) {
	assert.Nil(t, pgtypes.UUIDPtr(nil))

	id := kernel.NewUUID()
	back, err := pgtypes.UUIDFromPtr(pgtypes.UUIDPtr(&id))
	require.NoError(t, err)
	require.NotNil(t, back)
	assert.Equal(t, id, *back)

	none, err := pgtypes.UUIDFromPtr(nil)
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestCapacityDTO(t *testing.T) {
	c, err := pgtypes.CapacityDTO{Unit: "LITRES", Value: decimal.NewFromInt(12000)}.ToDomain()
	require.NoError(t, err)
	assert.Equal(t, kernel.Litres, c.Unit())
	assert.Equal(t, "LITRES", pgtypes.CapacityFromDomain(c).Unit)

	_, err = pgtypes.CapacityDTO{Unit: "GALLONS", Value: decimal.NewFromInt(1)}.ToDomain()
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
