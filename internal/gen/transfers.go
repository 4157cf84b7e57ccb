package gen

import (
	"fmt"
	"math/rand"
)

// Transfer windows and deal types.
const (
	WindowSummer = "summer"
	WindowWinter = "winter"

	TransferPermanent = "permanent"
	TransferLoan      = "loan"
	TransferFree      = "free"
)

const (
	freeTransferRatio = 0.20
	loanRatio         = 0.15
	// Share of the player pool that gets one historical move.
	historicalTransferShare = 0.10
)

// Transfer is one historical move between clubs, denormalized for the
// transfer_history artifact.
type Transfer struct {
	TransferID          string  `json:"transfer_id"`
	Season              string  `json:"season"`
	Window              string  `json:"transfer_window"`
	Date                string  `json:"date"`
	PlayerID            string  `json:"player_id"`
	PlayerName          string  `json:"player_name"`
	FromClub            string  `json:"from_club"`
	ToClub              string  `json:"to_club"`
	Type                string  `json:"transfer_type"`
	Fee                 int     `json:"transfer_fee"`
	ContractLengthYears int     `json:"contract_length_years"`
	WeeklyWage          int     `json:"weekly_wage"`
	PlayerAge           int     `json:"player_age"`
	PlayerAbility       float64 `json:"player_ability"`
	Reason              string  `json:"reason"`
}

// GenerateTransferHistory invents past moves for roughly 10% of the player
// pool, spread over the seasons before the current one.
func GenerateTransferHistory(rng *rand.Rand, players []Player, clubs []Club, seasons []string) []Transfer {
	if len(players) == 0 || len(clubs) < 2 || len(seasons) == 0 {
		return nil
	}

	pastSeasons := seasons
	if len(seasons) > 1 {
		pastSeasons = seasons[:len(seasons)-1]
	}

	count := int(float64(len(players)) * historicalTransferShare)
	if count < 1 {
		count = 1
	}

	picks := rng.Perm(len(players))[:count]
	transfers := make([]Transfer, 0, count)

	for i, idx := range picks {
		p := players[idx]
		season := pastSeasons[rng.Intn(len(pastSeasons))]

		window := WindowSummer
		if rng.Float64() < 0.35 {
			window = WindowWinter
		}

		from := clubs[rng.Intn(len(clubs))].FullName
		to := clubName(clubs, p.ClubID)
		for from == to {
			from = clubs[rng.Intn(len(clubs))].FullName
		}

		transferType := TransferPermanent
		fee := 0
		switch r := rng.Float64(); {
		case r < freeTransferRatio:
			transferType = TransferFree
		case r < freeTransferRatio+loanRatio:
			transferType = TransferLoan
		default:
			fee = int(float64(p.MarketValue) * (0.7 + rng.Float64()*0.6))
		}

		transfers = append(transfers, newTransferRecord(rng, i+1, p, from, to, season, window, transferType, fee))
	}

	return transfers
}

func newTransferRecord(rng *rand.Rand, num int, p Player, from, to, season, window, transferType string, fee int) Transfer {
	startYear := 0
	fmt.Sscanf(season, "%d/", &startYear)

	month := 1
	if window == WindowSummer {
		month = randRange(rng, 6, 8)
	}
	date := fmt.Sprintf("%04d-%02d-%02d", startYear, month, randRange(rng, 1, 28))

	contractLength := 1
	if transferType != TransferLoan {
		contractLength = randRange(rng, 1, 5)
	}

	var wage int
	if fee > 0 {
		wage = int(float64(fee) * 0.01 / 52)
	} else {
		wage = int(p.OverallRating * (500 + rng.Float64()*1000))
	}

	return Transfer{
		TransferID:          ID("TRF", num),
		Season:              season,
		Window:              window,
		Date:                date,
		PlayerID:            p.PlayerID,
		PlayerName:          p.FullName,
		FromClub:            from,
		ToClub:              to,
		Type:                transferType,
		Fee:                 fee,
		ContractLengthYears: contractLength,
		WeeklyWage:          wage,
		PlayerAge:           p.Age,
		PlayerAbility:       p.OverallRating,
		Reason:              transferReasons[rng.Intn(len(transferReasons))],
	}
}

func clubName(clubs []Club, clubID string) string {
	for _, c := range clubs {
		if c.ClubID == clubID {
			return c.FullName
		}
	}
	return clubID
}
