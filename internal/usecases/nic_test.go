package usecases_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "customer-hub.backend/internal/domain/errors"
	"customer-hub.backend/internal/usecases"
)

func TestDeriveDOB(t *testing.T) {
	tests := []struct {
		name string
		nic  string
		want string
	}{
		{name: "legacy form day 123", nic: "9912312345", want: "1999-05-03"},
		{name: "legacy form day 1", nic: "9900112345", want: "1999-01-01"},
		{name: "legacy form female offset", nic: "8562345678", want: "1985-05-03"},
		{name: "modern form", nic: "200018812345", want: "2000-07-06"},
		{name: "modern form female offset", nic: "200268812345", want: "2002-07-07"},
		{name: "leap year day 60", nic: "200006012345", want: "2000-02-29"},
		{name: "non-leap year day 60", nic: "200106012345", want: "2001-03-01"},
		{name: "day 366 in non-leap year rolls over", nic: "9936612345", want: "2000-01-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := usecases.DeriveDOB(tt.nic)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDeriveDOB_Deterministic(t *testing.T) {
	first, err := usecases.DeriveDOB("9912312345")
	require.NoError(t, err)
	second, err := usecases.DeriveDOB("9912312345")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDeriveDOB_InvalidNIC(t *testing.T) {
	tests := []struct {
		name string
		nic  string
	}{
		{name: "empty", nic: ""},
		{name: "too short", nic: "991231234"},
		{name: "length 11", nic: "99123123456"},
		{name: "too long", nic: "1999123123456"},
		{name: "non-numeric ordinal legacy", nic: "99abc12345"},
		{name: "non-numeric year modern", nic: "2ooo18812345"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := usecases.DeriveDOB(tt.nic)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidNIC)
		})
	}
}
