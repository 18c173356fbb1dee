package models

// draftCapitalBase is the constant a pick's overall number is subtracted
// from to get its draft capital. Picks at or beyond this number carry no
// value signal.
const draftCapitalBase = 193

// DraftPick is a single draft selection enriched with the picked
// player's full-season statistics
type DraftPick struct {
	Year         int      `json:"year"`
	Round        int      `json:"round"`
	PickNumber   int      `json:"pick_number"`
	OverallPick  int      `json:"overall_pick"`
	TeamID       int      `json:"team_id"`
	TeamName     string   `json:"team_name"`
	OwnerName    string   `json:"owner_name"`
	PlayerID     int      `json:"player_id"`
	Keeper       bool     `json:"keeper"`
	BidAmount    int      `json:"bid_amount"`
	PlayerName   string   `json:"player_name"`
	Position     Position `json:"position"`
	ProTeam      int      `json:"pro_team"`
	InjuryStatus string   `json:"injury_status"`
	SeasonStats
}

// DraftCapital returns the positional value proxy for the pick, higher
// for earlier picks. Zero or negative means the pick carries no value
// signal.
func (p *DraftPick) DraftCapital() int {
	return draftCapitalBase - p.OverallPick
}

// Value returns season points produced per unit of draft capital spent,
// or 0 when the pick has no capital to measure against.
func (p *DraftPick) Value() float64 {
	capital := p.DraftCapital()
	if capital <= 0 {
		return 0
	}
	return p.SeasonPoints / float64(capital)
}
