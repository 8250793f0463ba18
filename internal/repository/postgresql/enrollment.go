package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/medibridge/enroll-backend-go/internal/domain/enrollment"
	"github.com/medibridge/enroll-backend-go/internal/pkg/database"
)

type familyMemberRepositoryImpl struct {
	db *database.DB
}

func NewFamilyMemberRepository(db *database.DB) enrollment.FamilyMemberRepository {
	return &familyMemberRepositoryImpl{db: db}
}

// Create implements enrollment.FamilyMemberRepository.
func (f *familyMemberRepositoryImpl) Create(ctx context.Context, member enrollment.FamilyMember) (enrollment.FamilyMember, error) {
	q := GetQuerier(ctx, f.db)

	if member.ID == "" {
		member.ID = uuid.New().String()
	}

	query := `
		INSERT INTO family_members (id, employee_id, name, relationship, dob, gender)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, employee_id, name, relationship, dob, gender, created_at
	`

	var created enrollment.FamilyMember
	err := q.QueryRow(ctx, query,
		member.ID, member.EmployeeID, member.Name, member.Relation, member.DOB, member.Gender,
	).Scan(
		&created.ID, &created.EmployeeID, &created.Name, &created.Relation,
		&created.DOB, &created.Gender, &created.CreatedAt,
	)
	if err != nil {
		return enrollment.FamilyMember{}, err
	}
	return created, nil
}

// GetByEmployeeID implements enrollment.FamilyMemberRepository.
func (f *familyMemberRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) ([]enrollment.FamilyMember, error) {
	q := GetQuerier(ctx, f.db)

	query := `
		SELECT id, employee_id, name, relationship, dob, gender, created_at
		FROM family_members
		WHERE employee_id = $1
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []enrollment.FamilyMember
	for rows.Next() {
		var m enrollment.FamilyMember
		err := rows.Scan(&m.ID, &m.EmployeeID, &m.Name, &m.Relation, &m.DOB, &m.Gender, &m.CreatedAt)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return members, nil
}

// Delete implements enrollment.FamilyMemberRepository. The employee ID guard
// keeps one employee from removing another's dependent.
func (f *familyMemberRepositoryImpl) Delete(ctx context.Context, employeeID string, id string) error {
	q := GetQuerier(ctx, f.db)

	query := `DELETE FROM family_members WHERE id = $1 AND employee_id = $2 RETURNING id`

	var deletedID string
	if err := q.QueryRow(ctx, query, id, employeeID).Scan(&deletedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return enrollment.ErrDependentNotFound
		}
		return err
	}
	return nil
}

type parentRepositoryImpl struct {
	db *database.DB
}

func NewParentRepository(db *database.DB) enrollment.ParentRepository {
	return &parentRepositoryImpl{db: db}
}

// Create implements enrollment.ParentRepository.
func (p *parentRepositoryImpl) Create(ctx context.Context, parent enrollment.Parent) (enrollment.Parent, error) {
	q := GetQuerier(ctx, p.db)

	if parent.ID == "" {
		parent.ID = uuid.New().String()
	}

	query := `
		INSERT INTO parents (id, employee_id, name, relationship, dob, gender)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, employee_id, name, relationship, dob, gender, created_at
	`

	var created enrollment.Parent
	err := q.QueryRow(ctx, query,
		parent.ID, parent.EmployeeID, parent.Name, parent.Relation, parent.DOB, parent.Gender,
	).Scan(
		&created.ID, &created.EmployeeID, &created.Name, &created.Relation,
		&created.DOB, &created.Gender, &created.CreatedAt,
	)
	if err != nil {
		return enrollment.Parent{}, err
	}
	return created, nil
}

// GetByEmployeeID implements enrollment.ParentRepository.
func (p *parentRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) ([]enrollment.Parent, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT id, employee_id, name, relationship, dob, gender, created_at
		FROM parents
		WHERE employee_id = $1
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var parents []enrollment.Parent
	for rows.Next() {
		var pr enrollment.Parent
		err := rows.Scan(&pr.ID, &pr.EmployeeID, &pr.Name, &pr.Relation, &pr.DOB, &pr.Gender, &pr.CreatedAt)
		if err != nil {
			return nil, err
		}
		parents = append(parents, pr)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return parents, nil
}

// Delete implements enrollment.ParentRepository.
func (p *parentRepositoryImpl) Delete(ctx context.Context, employeeID string, id string) error {
	q := GetQuerier(ctx, p.db)

	query := `DELETE FROM parents WHERE id = $1 AND employee_id = $2 RETURNING id`

	var deletedID string
	if err := q.QueryRow(ctx, query, id, employeeID).Scan(&deletedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return enrollment.ErrDependentNotFound
		}
		return err
	}
	return nil
}

// DeleteByEmployeeID implements enrollment.ParentRepository. Used when the
// employee switches parent sets or turns parental coverage off.
func (p *parentRepositoryImpl) DeleteByEmployeeID(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, p.db)

	query := `DELETE FROM parents WHERE employee_id = $1`

	_, err := q.Exec(ctx, query, employeeID)
	return err
}

type enrollmentRepositoryImpl struct {
	db *database.DB
}

func NewEnrollmentRepository(db *database.DB) enrollment.EnrollmentRepository {
	return &enrollmentRepositoryImpl{db: db}
}

// Create implements enrollment.EnrollmentRepository.
func (e *enrollmentRepositoryImpl) Create(ctx context.Context, record enrollment.Enrollment) (enrollment.Enrollment, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO enrollments (
			employee_id, parental_coverage_selected, parental_coverage_type,
			main_policy_premium, parental_policy_premium, gst_amount, total_premium,
			pro_rata_factor, policy_remaining_days, enrollment_date, status, submitted_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, employee_id, parental_coverage_selected, parental_coverage_type,
			main_policy_premium, parental_policy_premium, gst_amount, total_premium,
			pro_rata_factor, policy_remaining_days, enrollment_date, status, submitted_at, created_at
	`

	var created enrollment.Enrollment
	err := q.QueryRow(ctx, query,
		record.EmployeeID, record.ParentalCoverageSelected, record.ParentalCoverageType,
		record.MainPolicyPremium, record.ParentalPolicyPremium, record.GSTAmount,
		record.TotalPremium, record.ProRataFactor, record.PolicyRemainingDays,
		record.EnrollmentDate, record.Status, record.SubmittedAt,
	).Scan(
		&created.ID, &created.EmployeeID, &created.ParentalCoverageSelected,
		&created.ParentalCoverageType, &created.MainPolicyPremium,
		&created.ParentalPolicyPremium, &created.GSTAmount, &created.TotalPremium,
		&created.ProRataFactor, &created.PolicyRemainingDays, &created.EnrollmentDate,
		&created.Status, &created.SubmittedAt, &created.CreatedAt,
	)
	if err != nil {
		return enrollment.Enrollment{}, err
	}
	return created, nil
}

// GetByEmployeeID implements enrollment.EnrollmentRepository.
func (e *enrollmentRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) (enrollment.Enrollment, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, employee_id, parental_coverage_selected, parental_coverage_type,
			main_policy_premium, parental_policy_premium, gst_amount, total_premium,
			pro_rata_factor, policy_remaining_days, enrollment_date, status, submitted_at, created_at
		FROM enrollments
		WHERE employee_id = $1
	`

	var rec enrollment.Enrollment
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&rec.ID, &rec.EmployeeID, &rec.ParentalCoverageSelected,
		&rec.ParentalCoverageType, &rec.MainPolicyPremium, &rec.ParentalPolicyPremium,
		&rec.GSTAmount, &rec.TotalPremium, &rec.ProRataFactor, &rec.PolicyRemainingDays,
		&rec.EnrollmentDate, &rec.Status, &rec.SubmittedAt, &rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return enrollment.Enrollment{}, enrollment.ErrEnrollmentNotFound
		}
		return enrollment.Enrollment{}, err
	}
	return rec, nil
}

// GetCoverage implements enrollment.EnrollmentRepository. A missing row means
// the employee has not touched the parental coverage toggle yet.
func (e *enrollmentRepositoryImpl) GetCoverage(ctx context.Context, employeeID string) (enrollment.ParentalCoverage, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT selected, parent_set
		FROM coverage_selections
		WHERE employee_id = $1
	`

	var coverage enrollment.ParentalCoverage
	err := q.QueryRow(ctx, query, employeeID).Scan(&coverage.Selected, &coverage.ParentSet)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return enrollment.ParentalCoverage{}, nil
		}
		return enrollment.ParentalCoverage{}, err
	}
	return coverage, nil
}

// SaveCoverage implements enrollment.EnrollmentRepository.
func (e *enrollmentRepositoryImpl) SaveCoverage(ctx context.Context, employeeID string, coverage enrollment.ParentalCoverage) error {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO coverage_selections (employee_id, selected, parent_set)
		VALUES ($1, $2, $3)
		ON CONFLICT (employee_id)
		DO UPDATE SET selected = EXCLUDED.selected, parent_set = EXCLUDED.parent_set, updated_at = NOW()
	`

	_, err := q.Exec(ctx, query, employeeID, coverage.Selected, coverage.ParentSet)
	return err
}
