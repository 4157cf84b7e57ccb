// Package repository provides read-side data access for the dashboard API.
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ironforge/footylab/internal/gen"
	"github.com/ironforge/footylab/internal/store"
)

const clubColumns = `club_id, full_name, short_name, city, tier, founded_year,
	stadium_name, stadium_capacity, primary_color, secondary_color,
	annual_budget_millions, reputation, training_facility_rating,
	youth_academy_rating, preferred_formation, playing_style`

// ClubRepository handles club and staff data access
type ClubRepository struct {
	db *store.Database
}

// NewClubRepository creates a new club repository
func NewClubRepository(db *store.Database) *ClubRepository {
	return &ClubRepository{db: db}
}

func scanClub(scan func(dest ...any) error) (*gen.Club, error) {
	club := &gen.Club{}
	err := scan(
		&club.ClubID, &club.FullName, &club.ShortName, &club.City, &club.Tier,
		&club.FoundedYear, &club.StadiumName, &club.StadiumCapacity,
		&club.PrimaryColor, &club.SecondaryColor, &club.AnnualBudgetMillions,
		&club.Reputation, &club.TrainingFacilityRating, &club.YouthAcademyRating,
		&club.PreferredFormation, &club.PlayingStyle,
	)
	return club, err
}

// GetAll returns every club, strongest reputation first.
func (r *ClubRepository) GetAll(ctx context.Context) ([]*gen.Club, error) {
	query := `
		SELECT ` + clubColumns + `
		FROM clubs
		ORDER BY reputation DESC, club_id
	`

	rows, err := r.db.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying clubs: %w", err)
	}
	defer rows.Close()

	var clubs []*gen.Club
	for rows.Next() {
		club, err := scanClub(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning club: %w", err)
		}
		clubs = append(clubs, club)
	}

	return clubs, rows.Err()
}

// GetByID finds a club by ID
func (r *ClubRepository) GetByID(ctx context.Context, clubID string) (*gen.Club, error) {
	query := `
		SELECT ` + clubColumns + `
		FROM clubs
		WHERE club_id = $1
	`

	club, err := scanClub(r.db.DB().QueryRowContext(ctx, query, clubID).Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("club not found: %s", clubID)
	}
	if err != nil {
		return nil, fmt.Errorf("querying club: %w", err)
	}

	return club, nil
}

// GetStaff returns a club's manager and coaching staff.
func (r *ClubRepository) GetStaff(ctx context.Context, clubID string) ([]*gen.StaffMember, error) {
	query := `
		SELECT staff_id, club_id, role, first_name, last_name, full_name,
			nationality, age, tactical_rating, man_management_rating,
			specialization_rating, contract_years
		FROM staff
		WHERE club_id = $1
		ORDER BY staff_id
	`

	rows, err := r.db.DB().QueryContext(ctx, query, clubID)
	if err != nil {
		return nil, fmt.Errorf("querying staff: %w", err)
	}
	defer rows.Close()

	var staff []*gen.StaffMember
	for rows.Next() {
		s := &gen.StaffMember{}
		err := rows.Scan(
			&s.StaffID, &s.ClubID, &s.Role, &s.FirstName, &s.LastName, &s.FullName,
			&s.Nationality, &s.Age, &s.TacticalRating, &s.ManManagementRating,
			&s.SpecializationRating, &s.ContractYears,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning staff member: %w", err)
		}
		staff = append(staff, s)
	}

	return staff, rows.Err()
}
