package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"ffl-history-go/config"
	"ffl-history-go/logging"

	"github.com/sony/gobreaker"
)

// ModernSeasonThreshold is the first season served by the current API
// generation. Earlier seasons come from the leagueHistory endpoint,
// which wraps the season document in a single-element array and nests
// rosters under the schedule instead of the team list.
const ModernSeasonThreshold = 2019

const defaultBaseURL = "https://lm-api-reads.fantasy.espn.com"

// seasonViews are the views requested with every season and week fetch
var seasonViews = []string{
	"view=mDraftDetail",
	"view=mMatchup",
	"view=mMatchupScore",
	"view=mTeam",
	"view=mRoster",
	"view=mSettings",
	"view=mStandings",
	"view=mStatus",
	"view=mLiveScoring",
	"view=modular",
	"view=mNav",
	"view=kona_player_info",
}

// ESPN fantasy API response structures

// ESPNSeason is one season's league document. Both API generations
// decode into it; fields the generation does not populate stay zero.
type ESPNSeason struct {
	SeasonID    int              `json:"seasonId"`
	Teams       []ESPNTeam       `json:"teams"`
	Members     []ESPNMember     `json:"members"`
	Schedule    []ESPNGame       `json:"schedule"`
	DraftDetail *ESPNDraftDetail `json:"draftDetail,omitempty"`
	Settings    *ESPNSettings    `json:"settings,omitempty"`

	// Raw is the undecoded season document, retained for the raw JSON
	// export artifact
	Raw json.RawMessage `json:"-"`
}

// ESPNTeam is a fantasy team within a season document
type ESPNTeam struct {
	ID                    int         `json:"id"`
	Name                  string      `json:"name"`
	Abbrev                string      `json:"abbrev"`
	PrimaryOwner          string      `json:"primaryOwner"`
	PlayoffSeed           int         `json:"playoffSeed"`
	RankCalculatedFinal   int         `json:"rankCalculatedFinal"`
	DraftDayProjectedRank int         `json:"draftDayProjectedRank"`
	Record                *ESPNRecord `json:"record,omitempty"`
	Roster                *ESPNRoster `json:"roster,omitempty"`
}

// ESPNRecord holds a team's win/loss records
type ESPNRecord struct {
	Overall ESPNOverallRecord `json:"overall"`
}

// ESPNOverallRecord is a team's overall season record
type ESPNOverallRecord struct {
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	Ties          int     `json:"ties"`
	PointsFor     float64 `json:"pointsFor"`
	PointsAgainst float64 `json:"pointsAgainst"`
}

// ESPNMember is a league member (owner)
type ESPNMember struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// ESPNGame is one scheduled matchup
type ESPNGame struct {
	ID              int           `json:"id"`
	MatchupPeriodID int           `json:"matchupPeriodId"`
	PlayoffTierType string        `json:"playoffTierType"`
	Winner          string        `json:"winner,omitempty"`
	Home            *ESPNGameSide `json:"home,omitempty"`
	Away            *ESPNGameSide `json:"away,omitempty"`
}

// ESPNGameSide is one side of a matchup
type ESPNGameSide struct {
	TeamID                 int                `json:"teamId"`
	TotalPoints            float64            `json:"totalPoints"`
	PointsByScoringPeriod  map[string]float64 `json:"pointsByScoringPeriod,omitempty"`
	RosterForMatchupPeriod *ESPNRoster        `json:"rosterForMatchupPeriod,omitempty"`
}

// ESPNRoster is a roster snapshot
type ESPNRoster struct {
	Entries []ESPNRosterEntry `json:"entries"`
}

// ESPNRosterEntry is one rostered player slot. The score fields vary by
// API generation; absent fields decode as nil.
type ESPNRosterEntry struct {
	PlayerID         int            `json:"playerId"`
	LineupSlotID     int            `json:"lineupSlotId"`
	AppliedStatTotal *float64       `json:"appliedStatTotal,omitempty"`
	TotalPoints      *float64       `json:"totalPoints,omitempty"`
	PlayerPoolEntry  *ESPNPoolEntry `json:"playerPoolEntry,omitempty"`
}

// ESPNPoolEntry is the player-pool wrapper carrying player metadata and
// applied scoring totals
type ESPNPoolEntry struct {
	AppliedStatTotal *float64    `json:"appliedStatTotal,omitempty"`
	Player           *ESPNPlayer `json:"player,omitempty"`
}

// ESPNPlayer is player metadata with per-period stat lines
type ESPNPlayer struct {
	ID                int              `json:"id"`
	FullName          string           `json:"fullName"`
	DefaultPositionID int              `json:"defaultPositionId"`
	ProTeamID         int              `json:"proTeamId"`
	InjuryStatus      string           `json:"injuryStatus"`
	Stats             []ESPNPlayerStat `json:"stats,omitempty"`
}

// ESPNPlayerStat is one stat line. statSourceId 0 is real scoring;
// other sources are projections.
type ESPNPlayerStat struct {
	ScoringPeriodID int     `json:"scoringPeriodId"`
	StatSourceID    int     `json:"statSourceId"`
	AppliedTotal    float64 `json:"appliedTotal"`
}

// ESPNDraftDetail is the season's draft results
type ESPNDraftDetail struct {
	Drafted bool            `json:"drafted"`
	Picks   []ESPNDraftPick `json:"picks"`
}

// ESPNDraftPick is one draft selection
type ESPNDraftPick struct {
	PlayerID          int            `json:"playerId"`
	RoundID           int            `json:"roundId"`
	RoundPickNumber   int            `json:"roundPickNumber"`
	OverallPickNumber int            `json:"overallPickNumber"`
	TeamID            int            `json:"teamId"`
	Keeper            bool           `json:"keeper"`
	BidAmount         int            `json:"bidAmount"`
	PlayerPoolEntry   *ESPNPoolEntry `json:"playerPoolEntry,omitempty"`
}

// ESPNSettings is the subset of league settings the pipeline reads
type ESPNSettings struct {
	ScheduleSettings *ESPNScheduleSettings `json:"scheduleSettings,omitempty"`
}

// ESPNScheduleSettings holds schedule shape settings
type ESPNScheduleSettings struct {
	MatchupPeriodCount int `json:"matchupPeriodCount"`
}

// ESPNClient fetches season and weekly snapshots from the ESPN fantasy
// API. Failed fetches are reported to the caller, which skips the unit
// and continues; the circuit breaker stops hammering the API once it is
// clearly down.
type ESPNClient struct {
	client   *http.Client
	breaker  *gobreaker.CircuitBreaker
	baseURL  string
	leagueID string
	espnS2   string
	swid     string
	logger   *logging.Logger
}

// NewESPNClient creates a new ESPN fantasy API client
func NewESPNClient(cfg config.ESPNConfig) *ESPNClient {
	logger := logging.WithPrefix("ESPNClient")

	settings := gobreaker.Settings{
		Name:        "espn",
		MaxRequests: 3,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warnf("Circuit breaker %s changed state: %s -> %s", name, from, to)
		},
	}

	return &ESPNClient{
		client:   &http.Client{Timeout: cfg.Timeout},
		breaker:  gobreaker.NewCircuitBreaker(settings),
		baseURL:  defaultBaseURL,
		leagueID: cfg.LeagueID,
		espnS2:   cfg.ESPNS2,
		swid:     cfg.SWID,
		logger:   logger,
	}
}

// NewESPNClientForTest creates a client pointed at a fake server
func NewESPNClientForTest(baseURL, leagueID string) *ESPNClient {
	c := NewESPNClient(config.ESPNConfig{LeagueID: leagueID, Timeout: 10 * time.Second})
	c.baseURL = baseURL
	return c
}

// SeasonURL returns the season endpoint for a year, including views.
// Seasons before the modern threshold come from leagueHistory.
func (c *ESPNClient) SeasonURL(year int) string {
	views := strings.Join(seasonViews, "&")
	if year >= ModernSeasonThreshold {
		return fmt.Sprintf("%s/apis/v3/games/ffl/seasons/%d/segments/0/leagues/%s?%s",
			c.baseURL, year, c.leagueID, views)
	}
	return fmt.Sprintf("%s/apis/v3/games/ffl/leagueHistory/%s?seasonId=%d&%s",
		c.baseURL, c.leagueID, year, views)
}

// FetchSeason fetches a season snapshot without forcing a specific week
func (c *ESPNClient) FetchSeason(year int) (*ESPNSeason, error) {
	return c.fetch(year, c.SeasonURL(year))
}

// FetchWeek fetches the season document scoped to one scoring period,
// so rosters and player stat lines reflect that week
func (c *ESPNClient) FetchWeek(year, week int) (*ESPNSeason, error) {
	url := fmt.Sprintf("%s&scoringPeriodId=%d", c.SeasonURL(year), week)
	return c.fetch(year, url)
}

func (c *ESPNClient) fetch(year int, url string) (*ESPNSeason, error) {
	body, err := c.get(url)
	if err != nil {
		return nil, err
	}

	raw := body
	// leagueHistory wraps the season document in an array where index 0
	// is the league that year
	if year < ModernSeasonThreshold {
		var wrapped []json.RawMessage
		if err := json.Unmarshal(body, &wrapped); err == nil {
			if len(wrapped) == 0 {
				return nil, fmt.Errorf("empty leagueHistory response for season %d", year)
			}
			raw = wrapped[0]
		}
	}

	var season ESPNSeason
	if err := json.Unmarshal(raw, &season); err != nil {
		return nil, fmt.Errorf("failed to decode season %d response: %w", year, err)
	}
	if season.SeasonID == 0 {
		season.SeasonID = year
	}
	season.Raw = raw

	return &season, nil
}

func (c *ESPNClient) get(url string) ([]byte, error) {
	body, err := c.breaker.Execute(func() (interface{}, error) {
		req, err := http.NewRequest(http.MethodGet, url, nil)
		if err != nil {
			return nil, fmt.Errorf("error creating http request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36")
		if c.espnS2 != "" && c.swid != "" {
			req.Header.Set("Cookie", fmt.Sprintf("espn_s2=%s; SWID=%s", c.espnS2, c.swid))
		}

		resp, err := c.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch ESPN data: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("ESPN API returned status %d", resp.StatusCode)
		}

		return io.ReadAll(resp.Body)
	})
	if err != nil {
		return nil, err
	}
	return body.([]byte), nil
}

// HealthCheck verifies the ESPN API is accessible
func (c *ESPNClient) HealthCheck() bool {
	req, err := http.NewRequest(http.MethodHead, c.baseURL, nil)
	if err != nil {
		return false
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}
