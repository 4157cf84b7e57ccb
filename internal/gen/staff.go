package gen

import "math/rand"

// Staff roles.
const (
	RoleManager = "Manager"
)

var coachRoles = []string{
	"Assistant Coach",
	"Goalkeeping Coach",
	"Fitness Coach",
	"Set Piece Coach",
}

// StaffMember is a club's manager or coach. Rating fields are on the 1-20
// scouting scale; TacticalRating and ManManagementRating apply to managers,
// SpecializationRating to coaches.
type StaffMember struct {
	StaffID              string `json:"staff_id"`
	ClubID               string `json:"club_id"`
	Role                 string `json:"role"`
	FirstName            string `json:"first_name"`
	LastName             string `json:"last_name"`
	FullName             string `json:"full_name"`
	Nationality          string `json:"nationality"`
	Age                  int    `json:"age"`
	TacticalRating       int    `json:"tactical_rating"`
	ManManagementRating  int    `json:"man_management_rating"`
	SpecializationRating int    `json:"specialization_rating"`
	ContractYears        int    `json:"contract_years"`
}

// GenerateStaff produces a manager and four specialist coaches for every
// club, with quality tracking the club's tier. Staff ids are sequential
// across the whole league.
func GenerateStaff(rng *rand.Rand, clubs []Club) []StaffMember {
	var staff []StaffMember
	num := 1

	for _, club := range clubs {
		quality := facilityByTier[club.Tier]

		nat := selectNationality(rng)
		first, last := personName(rng, nat)
		staff = append(staff, StaffMember{
			StaffID:             ID("STF", num),
			ClubID:              club.ClubID,
			Role:                RoleManager,
			FirstName:           first,
			LastName:            last,
			FullName:            first + " " + last,
			Nationality:         nat.Name,
			Age:                 randRange(rng, 35, 70),
			TacticalRating:      randRange(rng, quality.min, quality.max),
			ManManagementRating: randRange(rng, quality.min, quality.max),
			ContractYears:       randRange(rng, 2, 4),
		})
		num++

		for _, role := range coachRoles {
			nat := selectNationality(rng)
			first, last := personName(rng, nat)
			staff = append(staff, StaffMember{
				StaffID:              ID("STF", num),
				ClubID:               club.ClubID,
				Role:                 role,
				FirstName:            first,
				LastName:             last,
				FullName:             first + " " + last,
				Nationality:          nat.Name,
				Age:                  randRange(rng, 30, 65),
				SpecializationRating: randRange(rng, quality.min, quality.max),
				ContractYears:        randRange(rng, 1, 3),
			})
			num++
		}
	}

	return staff
}
