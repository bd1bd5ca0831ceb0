package foodsource

// Trial returns the number of consecutive unsuccessful exploitations.
func (f *FoodSource) Trial() int { return f.trial }

// SetTrial overwrites the trial counter; negative values are clamped to 0.
func (f *FoodSource) SetTrial(n int) {
	if n < 0 {
		n = 0
	}
	f.trial = n
}

// IncTrial adds n to the trial counter; the result is clamped at 0.
func (f *FoodSource) IncTrial(n int) { f.SetTrial(f.trial + n) }

// TrialLimit returns the configured exhaustion threshold.
func (f *FoodSource) TrialLimit() int { return f.cfg.trialLimit }

// IsExhausted reports trial > TrialLimit(). It is false at trial == TrialLimit().
// The colony decides what to do with an exhausted source; nothing here resets it.
func (f *FoodSource) IsExhausted() bool { return f.trial > f.cfg.trialLimit }
