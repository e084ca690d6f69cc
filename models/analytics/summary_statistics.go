package analytics

// SummaryStatistics is the final artifact of a run: the reduction of all
// session results plus the closed-form cross-checks.
type SummaryStatistics struct {
	Sessions            int     `json:"sessions"`
	RoundsPlayed        int     `json:"roundsPlayed"`
	RuinProbability     float64 `json:"ruinProbability"`
	MeanFinalBankroll   float64 `json:"meanFinalBankroll"`
	MedianFinalBankroll float64 `json:"medianFinalBankroll"`
	BankrollVariance    float64 `json:"bankrollVariance"`
	BankrollStdDev      float64 `json:"bankrollStdDev"`
	WinRate             float64 `json:"winRate"`
	MeanROI             float64 `json:"meanROI"`
	MeanMaxDrawdown     float64 `json:"meanMaxDrawdown"`

	// Simulated against theoretical, converging for large runs
	MeanProfitPerRound    float64 `json:"meanProfitPerRound"`
	ExpectedValuePerRound float64 `json:"expectedValuePerRound"`

	ProbabilityOfSuccess float64 `json:"probabilityOfSuccess"`
	KellyFraction        float64 `json:"kellyFraction"`
}

// ProbabilityRow is one line of the closed-form probability table
type ProbabilityRow struct {
	Multiplier         float64 `json:"multiplier"`
	SuccessProbability float64 `json:"successProbability"`
	CrashProbability   float64 `json:"crashProbability"`
	DecimalOdds        float64 `json:"decimalOdds"`
}
