package models

// RoundOutcome is the immutable record of one resolved round
type RoundOutcome struct {
	Round      int     `json:"round" yaml:"round"`
	Bet        float64 `json:"bet" yaml:"bet"`
	Target     float64 `json:"target" yaml:"target"`
	CrashPoint float64 `json:"crashPoint" yaml:"crashPoint"`
	Won        bool    `json:"won" yaml:"won"`
	Profit     float64 `json:"profit" yaml:"profit"`
	Bankroll   float64 `json:"bankroll" yaml:"bankroll"`
}
