package montecarlo

// CallPriceStats prices a European call and returns the convergence table of
// the running mean estimate. Seed 0 selects ambient entropy, any other value
// makes the run reproducible.
func CallPriceStats(strike, expiry, spot, vol, rate float64, numberOfPaths int, seed uint64) (*ConvergenceTable, error) {
	return europeanPriceStats(CallPayoff{Strike: strike}, expiry, spot, vol, rate, numberOfPaths, seed)
}

// PutPriceStats prices a European put and returns the convergence table of
// the running mean estimate.
func PutPriceStats(strike, expiry, spot, vol, rate float64, numberOfPaths int, seed uint64) (*ConvergenceTable, error) {
	return europeanPriceStats(PutPayoff{Strike: strike}, expiry, spot, vol, rate, numberOfPaths, seed)
}

// CallPrice prices a European call and returns the estimate after all paths.
func CallPrice(strike, expiry, spot, vol, rate float64, numberOfPaths int, seed uint64) (float64, error) {
	table, err := CallPriceStats(strike, expiry, spot, vol, rate, numberOfPaths, seed)
	if err != nil {
		return 0, err
	}
	return finalEstimate(table)
}

// PutPrice prices a European put and returns the estimate after all paths.
func PutPrice(strike, expiry, spot, vol, rate float64, numberOfPaths int, seed uint64) (float64, error) {
	table, err := PutPriceStats(strike, expiry, spot, vol, rate, numberOfPaths, seed)
	if err != nil {
		return 0, err
	}
	return finalEstimate(table)
}

func europeanPriceStats(payoff Payoff, expiry, spot, vol, rate float64, numberOfPaths int, seed uint64) (*ConvergenceTable, error) {
	table := NewConvergenceTable(NewMeanGatherer())
	engine := NewEngine(seed)

	err := engine.OptionPrice(
		NewVanillaOption(expiry, payoff),
		spot,
		NewConstantParameter(vol),
		NewConstantParameter(rate),
		numberOfPaths,
		table,
	)
	if err != nil {
		return nil, err
	}
	return table, nil
}

// finalEstimate extracts the first value of the highest path-count row.
func finalEstimate(table *ConvergenceTable) (float64, error) {
	rows, err := table.ResultsSoFar()
	if err != nil {
		return 0, err
	}
	return rows[len(rows)-1][0], nil
}
