package gen

import (
	"math"
	"math/rand"
	"strings"
)

// Position groups.
const (
	GroupGK  = "GK"
	GroupDEF = "DEF"
	GroupMID = "MID"
	GroupFWD = "FWD"
)

var positionsByGroup = map[string][]string{
	GroupGK:  {"GK"},
	GroupDEF: {"CB", "LB", "RB"},
	GroupMID: {"CDM", "CM", "CAM", "LM", "RM"},
	GroupFWD: {"LW", "RW", "ST"},
}

var secondaryPositionsFor = map[string][]string{
	"GK":  {},
	"CB":  {"RB", "LB", "CDM"},
	"LB":  {"CB", "LWB", "LM"},
	"RB":  {"CB", "RWB", "RM"},
	"CDM": {"CM", "CB"},
	"CM":  {"CDM", "CAM", "RM", "LM"},
	"CAM": {"CM", "LW", "RW"},
	"LM":  {"LW", "CM", "LB"},
	"RM":  {"RW", "CM", "RB"},
	"LW":  {"LM", "ST", "CAM"},
	"RW":  {"RM", "ST", "CAM"},
	"ST":  {"CF", "LW", "RW", "CAM"},
}

// Squad composition bounds per position group: min and the optimal count a
// club aims for.
var squadComposition = map[string]struct{ min, optimal int }{
	GroupGK:  {2, 3},
	GroupDEF: {7, 9},
	GroupMID: {7, 9},
	GroupFWD: {5, 6},
}

// Age bands and their share of a generated squad.
var ageDistribution = []struct {
	lo, hi int
	weight float64
}{
	{16, 20, 0.20},
	{21, 24, 0.25},
	{25, 29, 0.40},
	{30, 33, 0.12},
	{34, 38, 0.03},
}

// PhysicalAttributes are shared across all position groups.
type PhysicalAttributes struct {
	Pace     int `json:"pace"`
	Strength int `json:"strength"`
	Stamina  int `json:"stamina"`
}

// TechnicalAttributes is the union of position-specific technical skills;
// fields irrelevant to a player's group are left zero.
type TechnicalAttributes struct {
	Diving      int `json:"diving"`
	Handling    int `json:"handling"`
	Kicking     int `json:"kicking"`
	Reflexes    int `json:"reflexes"`
	Positioning int `json:"positioning"`
	Tackling    int `json:"tackling"`
	Marking     int `json:"marking"`
	Heading     int `json:"heading"`
	Passing     int `json:"passing"`
	BallControl int `json:"ball_control"`
	Dribbling   int `json:"dribbling"`
	Shooting    int `json:"shooting"`
	Finishing   int `json:"finishing"`
}

// MentalAttributes is the union of position-specific mental traits.
type MentalAttributes struct {
	Positioning    int `json:"positioning"`
	Concentration  int `json:"concentration"`
	DecisionMaking int `json:"decision_making"`
	Leadership     int `json:"leadership"`
	Vision         int `json:"vision"`
	WorkRate       int `json:"work_rate"`
	Composure      int `json:"composure"`
}

// Player is a fully generated squad member. The simulation consumes only
// identity, club affiliation and OverallRating; everything else is dataset
// flavor for the dashboard.
type Player struct {
	PlayerID           string  `json:"player_id"`
	ClubID             string  `json:"club_id"`
	FirstName          string  `json:"first_name"`
	LastName           string  `json:"last_name"`
	FullName           string  `json:"full_name"`
	Nationality        string  `json:"nationality"`
	DateOfBirth        string  `json:"date_of_birth"`
	Age                int     `json:"age"`
	HeightCM           int     `json:"height_cm"`
	WeightKG           int     `json:"weight_kg"`
	PreferredFoot      string  `json:"preferred_foot"`
	PositionGroup      string  `json:"position_group"`
	PrimaryPosition    string  `json:"primary_position"`
	SecondaryPositions string  `json:"secondary_positions"`
	OverallRating      float64 `json:"overall_rating"`
	Potential          float64 `json:"potential"`

	Physical  PhysicalAttributes  `json:"physical"`
	Technical TechnicalAttributes `json:"technical"`
	Mental    MentalAttributes    `json:"mental"`

	ContractYearsRemaining int     `json:"contract_years_remaining"`
	MarketValue            int     `json:"market_value"`
	WeeklyWage             int     `json:"weekly_wage"`
	JerseyNumber           int     `json:"jersey_number"`
	CurrentForm            float64 `json:"current_form"`
	FitnessLevel           int     `json:"fitness_level"`
	Morale                 int     `json:"morale"`
	InjuryStatus           string  `json:"injury_status"`
	Leadership             int     `json:"leadership"`
	Professionalism        int     `json:"professionalism"`
	Temperament            string  `json:"temperament"`
	Consistency            int     `json:"consistency"`
	InjuryProneness        int     `json:"injury_proneness"`

	CareerAppearances int `json:"career_appearances"`
	CareerGoals       int `json:"career_goals"`
	CareerAssists     int `json:"career_assists"`
	CareerYellowCards int `json:"career_yellow_cards"`
	CareerRedCards    int `json:"career_red_cards"`
	CareerCleanSheets int `json:"career_clean_sheets"`

	IsYouth        bool `json:"is_youth"`
	YouthEntryYear int  `json:"youth_entry_year"`
}

func drawAge(rng *rand.Rand) int {
	weights := make([]float64, len(ageDistribution))
	for i, band := range ageDistribution {
		weights[i] = band.weight
	}
	band := ageDistribution[weightedChoice(rng, weights)]
	return randRange(rng, band.lo, band.hi)
}

// physicalAgeAdjust models physical development and decline. Pace and
// stamina fall off faster than strength after 30.
func physicalAgeAdjust(rng *rand.Rand, attr string, age int) int {
	switch {
	case age < 21:
		return randRange(rng, -5, 0)
	case age <= 27:
		return randRange(rng, 0, 3)
	case age <= 30:
		return 0
	case age <= 33:
		if attr == "pace" || attr == "stamina" {
			return randRange(rng, -5, -2)
		}
		return randRange(rng, -2, 0)
	default:
		if attr == "pace" || attr == "stamina" {
			return randRange(rng, -10, -5)
		}
		return randRange(rng, -5, -2)
	}
}

func technicalAgeAdjust(rng *rand.Rand, age int) int {
	switch {
	case age < 21:
		return randRange(rng, -3, 0)
	case age <= 30:
		return randRange(rng, 0, 2)
	case age <= 33:
		return 0
	default:
		return randRange(rng, -2, 0)
	}
}

func mentalAgeAdjust(rng *rand.Rand, age int) int {
	switch {
	case age < 21:
		return randRange(rng, -5, 0)
	case age <= 25:
		return randRange(rng, 0, 2)
	case age <= 32:
		return randRange(rng, 2, 5)
	default:
		return randRange(rng, 0, 3)
	}
}

func attrValue(rng *rand.Rand, lo, hi, adjust int) int {
	return int(clampRating(float64(randRange(rng, lo, hi) + adjust)))
}

func generatePhysical(rng *rand.Rand, group string, age int) PhysicalAttributes {
	ranges := map[string][3][2]int{ // pace, strength, stamina
		GroupGK:  {{30, 60}, {50, 85}, {60, 90}},
		GroupDEF: {{40, 85}, {60, 95}, {60, 90}},
		GroupMID: {{50, 90}, {45, 80}, {65, 95}},
		GroupFWD: {{60, 95}, {45, 90}, {55, 90}},
	}[group]

	return PhysicalAttributes{
		Pace:     attrValue(rng, ranges[0][0], ranges[0][1], physicalAgeAdjust(rng, "pace", age)),
		Strength: attrValue(rng, ranges[1][0], ranges[1][1], physicalAgeAdjust(rng, "strength", age)),
		Stamina:  attrValue(rng, ranges[2][0], ranges[2][1], physicalAgeAdjust(rng, "stamina", age)),
	}
}

func generateTechnical(rng *rand.Rand, group string, age int) TechnicalAttributes {
	v := func(lo, hi int) int { return attrValue(rng, lo, hi, technicalAgeAdjust(rng, age)) }

	switch group {
	case GroupGK:
		return TechnicalAttributes{
			Diving:      v(40, 95),
			Handling:    v(40, 95),
			Kicking:     v(30, 85),
			Reflexes:    v(40, 95),
			Positioning: v(40, 90),
		}
	case GroupDEF:
		return TechnicalAttributes{
			Tackling:    v(50, 95),
			Marking:     v(50, 95),
			Heading:     v(50, 95),
			Passing:     v(40, 85),
			BallControl: v(35, 80),
		}
	case GroupMID:
		return TechnicalAttributes{
			Passing:     v(50, 95),
			BallControl: v(50, 95),
			Dribbling:   v(45, 90),
			Shooting:    v(35, 85),
			Tackling:    v(35, 85),
		}
	default: // FWD
		return TechnicalAttributes{
			Shooting:    v(50, 95),
			Finishing:   v(50, 95),
			Dribbling:   v(50, 95),
			BallControl: v(50, 90),
			Heading:     v(40, 85),
		}
	}
}

func generateMental(rng *rand.Rand, group string, age int) MentalAttributes {
	v := func(lo, hi int) int { return attrValue(rng, lo, hi, mentalAgeAdjust(rng, age)) }

	switch group {
	case GroupGK:
		return MentalAttributes{
			Concentration:  v(40, 90),
			DecisionMaking: v(40, 85),
			Leadership:     v(30, 90),
		}
	case GroupDEF:
		return MentalAttributes{
			Positioning:    v(50, 95),
			Concentration:  v(50, 90),
			DecisionMaking: v(40, 85),
		}
	case GroupMID:
		return MentalAttributes{
			Vision:         v(45, 95),
			DecisionMaking: v(50, 90),
			WorkRate:       v(50, 95),
		}
	default: // FWD
		return MentalAttributes{
			Positioning:    v(50, 95),
			Composure:      v(45, 90),
			DecisionMaking: v(40, 85),
		}
	}
}

// overallRating weights each group's defining attributes into a 0-100
// rating, rounded to one decimal.
func overallRating(group string, phys PhysicalAttributes, tech TechnicalAttributes, mental MentalAttributes) float64 {
	type weighted struct {
		value  int
		weight float64
	}

	var parts []weighted
	switch group {
	case GroupGK:
		parts = []weighted{
			{tech.Diving, 0.20}, {tech.Handling, 0.20}, {tech.Reflexes, 0.20},
			{tech.Positioning, 0.15}, {tech.Kicking, 0.10},
			{mental.Concentration, 0.10}, {mental.DecisionMaking, 0.05},
		}
	case GroupDEF:
		parts = []weighted{
			{tech.Tackling, 0.20}, {tech.Marking, 0.20}, {mental.Positioning, 0.15},
			{tech.Heading, 0.15}, {phys.Strength, 0.10}, {phys.Pace, 0.10}, {tech.Passing, 0.10},
		}
	case GroupMID:
		parts = []weighted{
			{tech.Passing, 0.20}, {tech.BallControl, 0.18}, {mental.Vision, 0.15},
			{phys.Stamina, 0.12}, {tech.Dribbling, 0.12}, {mental.DecisionMaking, 0.12}, {tech.Tackling, 0.11},
		}
	default: // FWD
		parts = []weighted{
			{tech.Shooting, 0.22}, {tech.Finishing, 0.22}, {mental.Positioning, 0.15},
			{phys.Pace, 0.15}, {tech.Dribbling, 0.12}, {tech.BallControl, 0.10}, {mental.Composure, 0.04},
		}
	}

	var total, weightSum float64
	for _, p := range parts {
		total += float64(p.value) * p.weight
		weightSum += p.weight
	}
	if weightSum == 0 {
		return 50
	}
	return math.Round(total/weightSum*10) / 10
}

// generatePotential projects growth headroom by age band.
func generatePotential(rng *rand.Rand, currentAbility float64, age int) float64 {
	var delta float64
	switch {
	case age < 21:
		delta = 10 + rng.Float64()*15
	case age <= 24:
		delta = 5 + rng.Float64()*10
	case age <= 27:
		delta = 2 + rng.Float64()*6
	case age <= 29:
		delta = rng.Float64() * 3
	default:
		delta = -5 + rng.Float64()*7
	}
	return clampRating(currentAbility + delta)
}

// MarketValue estimates a transfer value from rating, age, potential and
// position. Monotonic in rating; young high-potential players carry a
// premium, veterans a discount.
func MarketValue(overall float64, age int, potential float64, group string) int {
	base := overall * 100000

	var ageMult float64
	switch {
	case age < 23:
		ageMult = 1.5 + (potential-overall)/50
	case age <= 27:
		ageMult = 1.3
	case age <= 30:
		ageMult = 1.0
	case age <= 32:
		ageMult = 0.6
	default:
		ageMult = 0.3
	}

	posMult := map[string]float64{
		GroupGK:  0.8,
		GroupDEF: 0.9,
		GroupMID: 1.0,
		GroupFWD: 1.2,
	}[group]
	if posMult == 0 {
		posMult = 1.0
	}

	value := int(base * ageMult * posMult)
	if value < 50000 {
		value = 50000
	}
	return value
}

// WeeklyWage derives pay from market value, with a rating-based floor.
func WeeklyWage(rng *rand.Rand, marketValue int, overall float64) int {
	annual := float64(marketValue) * (0.005 + rng.Float64()*0.005)
	weekly := int(annual / 52)
	if floor := int(overall * 100); weekly < floor {
		weekly = floor
	}
	return weekly
}

// GeneratePlayer creates one player. Age may be forced (>0) for youth
// generation; otherwise it is drawn from the league's age distribution.
func GeneratePlayer(rng *rand.Rand, playerNum int, clubID, group string, age int, seasonStartYear int) Player {
	if age <= 0 {
		age = drawAge(rng)
	}

	nat := selectNationality(rng)
	first, last := personName(rng, nat)

	primary := positionsByGroup[group][rng.Intn(len(positionsByGroup[group]))]
	secondary := drawSecondaryPositions(rng, primary)

	phys := generatePhysical(rng, group, age)
	tech := generateTechnical(rng, group, age)
	mental := generateMental(rng, group, age)

	overall := overallRating(group, phys, tech, mental)
	potential := generatePotential(rng, overall, age)

	heightRange := map[string][2]int{
		GroupGK:  {185, 200},
		GroupDEF: {178, 195},
		GroupMID: {170, 185},
		GroupFWD: {170, 190},
	}[group]
	height := randRange(rng, heightRange[0], heightRange[1])

	feet := []string{"Right", "Left", "Both"}
	foot := feet[weightedChoice(rng, []float64{0.70, 0.25, 0.05})]

	marketValue := MarketValue(overall, age, potential, group)

	return Player{
		PlayerID:           ID("PLY", playerNum),
		ClubID:             clubID,
		FirstName:          first,
		LastName:           last,
		FullName:           first + " " + last,
		Nationality:        nat.Name,
		DateOfBirth:        dateOfBirth(rng, age, seasonStartYear),
		Age:                age,
		HeightCM:           height,
		WeightKG:           int(float64(height) * (0.38 + rng.Float64()*0.06)),
		PreferredFoot:      foot,
		PositionGroup:      group,
		PrimaryPosition:    primary,
		SecondaryPositions: strings.Join(secondary, ","),
		OverallRating:      overall,
		Potential:          potential,
		Physical:           phys,
		Technical:          tech,
		Mental:             mental,

		ContractYearsRemaining: randRange(rng, 1, 5),
		MarketValue:            marketValue,
		WeeklyWage:             WeeklyWage(rng, marketValue, overall),
		CurrentForm:            math.Round((5.0+rng.Float64()*3.5)*10) / 10,
		FitnessLevel:           randRange(rng, 85, 100),
		Morale:                 randRange(rng, 12, 18),
		InjuryStatus:           "Healthy",
		Leadership:             randRange(rng, 1, 20),
		Professionalism:        randRange(rng, 1, 20),
		Temperament:            []string{"Calm", "Balanced", "Aggressive"}[rng.Intn(3)],
		Consistency:            randRange(rng, 1, 20),
		InjuryProneness:        randRange(rng, 1, 20),
	}
}

func drawSecondaryPositions(rng *rand.Rand, primary string) []string {
	compatible := secondaryPositionsFor[primary]
	if len(compatible) == 0 {
		return nil
	}

	count := weightedChoice(rng, []float64{0.2, 0.6, 0.2}) // 0, 1 or 2
	if count == 0 {
		return nil
	}
	if count > len(compatible) {
		count = len(compatible)
	}

	picks := append([]string(nil), compatible...)
	rng.Shuffle(len(picks), func(i, j int) { picks[i], picks[j] = picks[j], picks[i] })
	return picks[:count]
}

// GenerateSquad fills a club's roster: composition per position group, tier
// quality adjustment, jersey numbers with goalkeeper conventions.
// nextPlayerNum is the first free global player number; it advances by one
// per generated player.
func GenerateSquad(rng *rand.Rand, club Club, nextPlayerNum int, seasonStartYear int) []Player {
	tierAdjust := map[string]float64{
		TierTop:   8,
		TierMid:   0,
		TierLower: -8,
	}[club.Tier]

	var squad []Player
	for _, group := range []string{GroupGK, GroupDEF, GroupMID, GroupFWD} {
		bounds := squadComposition[group]
		count := randRange(rng, bounds.min, bounds.optimal)

		for i := 0; i < count; i++ {
			p := GeneratePlayer(rng, nextPlayerNum, club.ClubID, group, 0, seasonStartYear)
			nextPlayerNum++

			p.OverallRating = clampRating(p.OverallRating + tierAdjust)
			p.Potential = clampRating(p.Potential + tierAdjust)
			p.MarketValue = MarketValue(p.OverallRating, p.Age, p.Potential, group)
			p.WeeklyWage = WeeklyWage(rng, p.MarketValue, p.OverallRating)

			squad = append(squad, p)
		}
	}

	assignJerseyNumbers(rng, squad)
	return squad
}

// assignJerseyNumbers hands out unique 1-99 numbers, steering goalkeepers
// toward the traditional ones.
func assignJerseyNumbers(rng *rand.Rand, squad []Player) {
	numbers := make([]int, 99)
	for i := range numbers {
		numbers[i] = i + 1
	}
	rng.Shuffle(len(numbers), func(i, j int) { numbers[i], numbers[j] = numbers[j], numbers[i] })

	for i := range squad {
		squad[i].JerseyNumber = numbers[i]
	}

	gkNumbers := []int{1, 12, 13, 22, 25}
	gkSeen := 0
	for i := range squad {
		if squad[i].PositionGroup != GroupGK || gkSeen >= len(gkNumbers) {
			continue
		}
		want := gkNumbers[gkSeen]
		gkSeen++
		for j := range squad {
			if squad[j].JerseyNumber == want {
				squad[j].JerseyNumber = squad[i].JerseyNumber
				break
			}
		}
		squad[i].JerseyNumber = want
	}
}
