package trip

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func TestCalculateFinancials(t *testing.T) {
	t.Run("derives amounts from tonnage and rates", func(t *testing.T) {
		rates := RateTable{
			CompanyRatePerTon: d("1000"),
			VehicleRatePerTon: d("800"),
		}

		fin, err := CalculateFinancials(d("10"), rates, ExpenseTable{})
		require.NoError(t, err)

		assert.True(t, fin.AmountForCompany.Equal(d("10000")), "got %s", fin.AmountForCompany)
		assert.True(t, fin.AmountForVehicle.Equal(d("8000")), "got %s", fin.AmountForVehicle)
		assert.True(t, fin.AmountForSupplier.IsZero())
		assert.True(t, fin.Profit.Equal(d("2000")), "got %s", fin.Profit)
	})

	t.Run("subtracts expenses from profit", func(t *testing.T) {
		rates := RateTable{
			CompanyRatePerTon: d("1000"),
			VehicleRatePerTon: d("800"),
		}
		expenses := ExpenseTable{
			Company: PayerExpenses{Diesel: d("500")},
		}

		fin, err := CalculateFinancials(d("10"), rates, expenses)
		require.NoError(t, err)

		assert.True(t, fin.Profit.Equal(d("1500")), "got %s", fin.Profit)
	})

	t.Run("sums expenses across both payers", func(t *testing.T) {
		rates := RateTable{
			CompanyRatePerTon: d("1000"),
			VehicleRatePerTon: d("800"),
		}
		expenses := ExpenseTable{
			Company:  PayerExpenses{Advance: d("100"), Diesel: d("200"), Toll: d("50"), Driver: d("75"), Other: d("25")},
			Supplier: PayerExpenses{Advance: d("300"), Diesel: d("100"), Toll: d("30"), Driver: d("60"), Other: d("10")},
		}

		fin, err := CalculateFinancials(d("10"), rates, expenses)
		require.NoError(t, err)

		// 10000 - 8000 - 950
		assert.True(t, fin.Profit.Equal(d("1050")), "got %s", fin.Profit)
	})

	t.Run("zero tonnage yields zero amounts and negative profit from expenses", func(t *testing.T) {
		rates := RateTable{
			CompanyRatePerTon:  d("1000"),
			VehicleRatePerTon:  d("800"),
			SupplierRatePerTon: d("50"),
		}
		expenses := ExpenseTable{
			Company:  PayerExpenses{Diesel: d("400")},
			Supplier: PayerExpenses{Toll: d("100")},
		}

		fin, err := CalculateFinancials(decimal.Zero, rates, expenses)
		require.NoError(t, err)

		assert.True(t, fin.AmountForCompany.IsZero())
		assert.True(t, fin.AmountForVehicle.IsZero())
		assert.True(t, fin.AmountForSupplier.IsZero())
		assert.True(t, fin.Profit.Equal(d("-500")), "got %s", fin.Profit)
	})

	t.Run("supplier amount scales with supplier rate", func(t *testing.T) {
		rates := RateTable{SupplierRatePerTon: d("120.50")}

		fin, err := CalculateFinancials(d("8"), rates, ExpenseTable{})
		require.NoError(t, err)

		assert.True(t, fin.AmountForSupplier.Equal(d("964")), "got %s", fin.AmountForSupplier)
	})

	t.Run("is deterministic", func(t *testing.T) {
		rates := RateTable{
			CompanyRatePerTon:  d("923.17"),
			VehicleRatePerTon:  d("811.93"),
			SupplierRatePerTon: d("44.01"),
		}
		expenses := ExpenseTable{
			Company:  PayerExpenses{Diesel: d("123.45"), Other: d("0.01")},
			Supplier: PayerExpenses{Driver: d("67.89")},
		}

		first, err := CalculateFinancials(d("13.37"), rates, expenses)
		require.NoError(t, err)
		second, err := CalculateFinancials(d("13.37"), rates, expenses)
		require.NoError(t, err)

		assert.True(t, first.AmountForCompany.Equal(second.AmountForCompany))
		assert.True(t, first.AmountForVehicle.Equal(second.AmountForVehicle))
		assert.True(t, first.AmountForSupplier.Equal(second.AmountForSupplier))
		assert.True(t, first.Profit.Equal(second.Profit))
	})

	t.Run("company amount is linear in tonnage", func(t *testing.T) {
		rates := RateTable{CompanyRatePerTon: d("333.33")}

		single, err := CalculateFinancials(d("7"), rates, ExpenseTable{})
		require.NoError(t, err)
		double, err := CalculateFinancials(d("14"), rates, ExpenseTable{})
		require.NoError(t, err)

		assert.True(t, double.AmountForCompany.Equal(single.AmountForCompany.Mul(d("2"))))
	})

	t.Run("rejects negative tonnage", func(t *testing.T) {
		_, err := CalculateFinancials(d("-1"), RateTable{}, ExpenseTable{})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Tonnage")
	})

	t.Run("rejects negative rate", func(t *testing.T) {
		rates := RateTable{VehicleRatePerTon: d("-10")}
		_, err := CalculateFinancials(d("1"), rates, ExpenseTable{})
		assert.Error(t, err)
	})

	t.Run("rejects negative expense", func(t *testing.T) {
		expenses := ExpenseTable{Supplier: PayerExpenses{Other: d("-0.01")}}
		_, err := CalculateFinancials(d("1"), RateTable{}, expenses)
		assert.Error(t, err)
	})
}

func TestExpenseTable_Total(t *testing.T) {
	expenses := ExpenseTable{
		Company:  PayerExpenses{Advance: d("1"), Diesel: d("2"), Toll: d("3"), Driver: d("4"), Other: d("5")},
		Supplier: PayerExpenses{Advance: d("10"), Diesel: d("20"), Toll: d("30"), Driver: d("40"), Other: d("50")},
	}

	assert.True(t, expenses.Total().Equal(d("165")))
	assert.True(t, ExpenseTable{}.Total().IsZero())
}
