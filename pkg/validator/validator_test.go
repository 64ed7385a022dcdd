package validator

import (
	"testing"

	"go-pos-ledger/internal/apperrors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Ref    uuid.UUID       `validate:"uuid_required"`
	Reason string          `validate:"notblank"`
	Price  decimal.Decimal `validate:"gte=0,money"`
	Qty    int             `validate:"gt=0"`
}

func valid() sample {
	return sample{Ref: uuid.New(), Reason: "recount", Price: decimal.RequireFromString("1.50"), Qty: 1}
}

func TestValidateStruct_OK(t *testing.T) {
	assert.Empty(t, ValidateStruct(valid()))
	assert.NoError(t, Check(valid()))

	zero := valid()
	zero.Price = decimal.Zero
	assert.NoError(t, Check(zero))
}

func TestValidateStruct_Failures(t *testing.T) {
	cases := map[string]func(s *sample){
		"Ref":    func(s *sample) { s.Ref = uuid.Nil },
		"Reason": func(s *sample) { s.Reason = "  \t" },
		"Price":  func(s *sample) { s.Price = decimal.RequireFromString("-0.01") },
		"Qty":    func(s *sample) { s.Qty = 0 },
	}
	for field, mutate := range cases {
		s := valid()
		mutate(&s)

		errs := ValidateStruct(s)
		require.Len(t, errs, 1, field)
		assert.Equal(t, "sample."+field, errs[0].FailedField)

		err := Check(s)
		assert.ErrorIs(t, err, apperrors.ErrDomainConstraint, field)
	}
}

func TestMoneyTag(t *testing.T) {
	cases := []struct {
		price string
		ok    bool
	}{
		{"9.99", true},
		{"9.990", true},
		{"99999999.99", true},
		{"9.999", false},
		{"0.001", false},
		{"100000000", false},
		{"123456789012.34", false},
	}
	for _, tc := range cases {
		s := valid()
		s.Price = decimal.RequireFromString(tc.price)

		err := Check(s)
		if tc.ok {
			assert.NoError(t, err, tc.price)
			continue
		}
		assert.ErrorIs(t, err, apperrors.ErrDomainConstraint, tc.price)
		require.Len(t, ValidateStruct(s), 1, tc.price)
		assert.Equal(t, "money", ValidateStruct(s)[0].Tag, tc.price)
	}
}

func TestMoneyTag_Pointer(t *testing.T) {
	s := valid()
	s.Price = decimal.RequireFromString("1.234")
	assert.ErrorIs(t, Check(&s), apperrors.ErrDomainConstraint)
}
