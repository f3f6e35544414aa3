package sellbook

// usd is a shorthand Money constructor for tests.
func usd(v float64) Money { return M(v, Currency) }

// testCatalog returns a catalog with one open-ended record per given
// item and cost.
func testCatalog(items map[string]float64) *Catalog {
	c := NewCatalog()
	for item, cost := range items {
		c.Append(CostRecord{Item: item, Cost: usd(cost), From: NewDate(2000, 1, 1)})
	}
	return c
}

// saleRow builds a row with the usual fee shape: fees non-positive.
func saleRow(on Date, item string, subtotal, shipping, fixed, variable float64) Row {
	return Row{
		Date:        on,
		Item:        item,
		Subtotal:    usd(subtotal),
		Shipping:    usd(shipping),
		FixedFee:    usd(fixed),
		VariableFee: usd(variable),
	}
}
