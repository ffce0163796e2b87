package mortgage

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoTierLoan(t *testing.T) TieredRate {
	t.Helper()
	loan, err := NewTieredRate(d("1000000"), []Tier{
		{AnnualRate: d("0.05"), Tenure: 12},
		{AnnualRate: d("0.07"), Tenure: 48},
	})
	require.NoError(t, err)
	return loan
}

func TestTieredRateDecomposition(t *testing.T) {
	loan := twoTierLoan(t)
	loans := loan.Loans()
	require.Len(t, loans, 2)

	assert.Equal(t, 60, loan.Term())
	assert.Equal(t, 60, loans[0].Term())
	assert.True(t, loans[0].Principal().Equal(d("1000000")))

	carried, err := loans[0].Balance(12)
	require.NoError(t, err)
	assert.Equal(t, 48, loans[1].Term())
	assert.True(t, loans[1].Principal().Equal(carried))
	assertClose(t, "819444.747018", loans[1].Principal())
}

func TestTieredRateInstallments(t *testing.T) {
	loan := twoTierLoan(t)
	installments := loan.Installments()
	require.Len(t, installments, 2)
	assertClose(t, "18871.233644", installments[0])
	assertClose(t, "19622.624399", installments[1])

	p1, err := loan.InstallmentAt(12)
	require.NoError(t, err)
	assert.True(t, p1.Equal(installments[0]))

	p2, err := loan.InstallmentAt(13)
	require.NoError(t, err)
	assert.True(t, p2.Equal(installments[1]))
}

func TestTieredRateBalance(t *testing.T) {
	loan := twoTierLoan(t)
	loans := loan.Loans()

	tests := []struct {
		name string
		paid int
		want string
	}{
		{name: "start", paid: 0, want: "1000000"},
		{name: "tier boundary", paid: 12, want: loans[1].Principal().String()},
		{name: "inside second tier", paid: 36, want: "438273.264407"},
		{name: "end", paid: 60, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := loan.Balance(tt.paid)
			require.NoError(t, err)
			assertClose(t, tt.want, got)
		})
	}
}

func TestTieredRateBalanceOutOfRange(t *testing.T) {
	loan := twoTierLoan(t)

	got, err := loan.Balance(61)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOutOfRange))
	assert.True(t, got.IsZero())

	_, err = loan.Balance(-1)
	assert.True(t, errors.Is(err, ErrOutOfRange))
}

func TestTieredRateInterestToDate(t *testing.T) {
	loan := twoTierLoan(t)

	i0, err := loan.InterestToDate(0)
	require.NoError(t, err)
	assert.True(t, i0.IsZero())

	i12, err := loan.InterestToDate(12)
	require.NoError(t, err)
	assertClose(t, "45899.550747", i12)

	i36, err := loan.InterestToDate(36)
	require.NoError(t, err)
	assertClose(t, "135671.053722", i36)

	i60, err := loan.InterestToDate(60)
	require.NoError(t, err)
	assertClose(t, "168340.774902", i60)
}

func TestTieredRateInterestOverrun(t *testing.T) {
	loan := twoTierLoan(t)

	full, err := loan.InterestToDate(60)
	require.NoError(t, err)

	got, err := loan.InterestToDate(75)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOutOfRange))
	// обход прошел все ступени целиком
	assert.True(t, got.Equal(full), "want %s, got %s", full, got)
}

func TestTieredRateInterestNegative(t *testing.T) {
	loan := twoTierLoan(t)

	got, err := loan.InterestToDate(-1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOutOfRange))
	assert.True(t, got.IsZero())
}

func TestTieredRateScheduleTierBoundary(t *testing.T) {
	loan := twoTierLoan(t)

	schedule, err := BuildSchedule(loan)
	require.NoError(t, err)

	i12, err := loan.InterestToDate(12)
	require.NoError(t, err)
	i13, err := loan.InterestToDate(13)
	require.NoError(t, err)

	assert.True(t, schedule[11].CumulativeInterest.Equal(i12))
	assert.True(t, schedule[12].CumulativeInterest.Equal(i13))
	assert.True(t, schedule[12].Interest.Equal(i13.Sub(i12)))
	// первый месяц второй ступени: 7% / 12 от перенесенного долга
	assertClose(t, "4780.094358", schedule[12].Interest)
}

func TestTieredRateSingleTierMatchesFixed(t *testing.T) {
	fixed := mustFixed(t, "750000", "0.0825", 180)
	tiered, err := NewTieredRate(d("750000"), []Tier{{AnnualRate: d("0.0825"), Tenure: 180}})
	require.NoError(t, err)

	require.Len(t, tiered.Installments(), 1)
	assert.True(t, tiered.Installments()[0].Equal(fixed.Installment()))

	for _, k := range []int{0, 1, 90, 179, 180} {
		fb, err := fixed.Balance(k)
		require.NoError(t, err)
		tb, err := tiered.Balance(k)
		require.NoError(t, err)
		assert.True(t, fb.Equal(tb), "balance(%d): %s != %s", k, fb, tb)

		fi, err := fixed.InterestToDate(k)
		require.NoError(t, err)
		ti, err := tiered.InterestToDate(k)
		require.NoError(t, err)
		assert.True(t, fi.Equal(ti), "interest(%d): %s != %s", k, fi, ti)
	}
}

func TestNewTieredRateMalformed(t *testing.T) {
	tests := []struct {
		name    string
		rates   []decimal.Decimal
		tenures []int
	}{
		{name: "empty", rates: nil, tenures: nil},
		{name: "length mismatch", rates: []decimal.Decimal{d("0.05"), d("0.07")}, tenures: []int{12}},
		{name: "zero tenure", rates: []decimal.Decimal{d("0.05")}, tenures: []int{0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTieredRateFromSlices(d("1000000"), tt.rates, tt.tenures)
			assert.True(t, errors.Is(err, ErrMalformedTiers), "got %v", err)
		})
	}
}

func TestNewTieredRateNegativeRate(t *testing.T) {
	_, err := NewTieredRate(d("1000"), []Tier{{AnnualRate: d("-0.05"), Tenure: 12}})
	assert.True(t, errors.Is(err, ErrInvalidRate))
}

func TestTieredRateZeroRateTier(t *testing.T) {
	loan, err := NewTieredRate(d("1200"), []Tier{
		{AnnualRate: d("0"), Tenure: 6},
		{AnnualRate: d("0.12"), Tenure: 6},
	})
	require.NoError(t, err)

	b6, err := loan.Balance(6)
	require.NoError(t, err)
	assert.True(t, b6.Equal(d("600")), "balance(6) = %s", b6)

	i6, err := loan.InterestToDate(6)
	require.NoError(t, err)
	assertClose(t, "0", i6)
}
