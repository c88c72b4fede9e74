package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/stafflane/hrms-backend-go/internal/domain/performance"
	"github.com/stafflane/hrms-backend-go/internal/domain/scope"
	"github.com/stafflane/hrms-backend-go/internal/pkg/database"
)

const reviewColumns = `r.id, r.employee_id, r.reviewer_id, r.review_date, r.rating,
	r.comments, r.goals, r.achievements, r.areas_for_improvement, r.status,
	r.created_at, r.updated_at`

type performanceRepository struct {
	db *database.DB
}

func NewPerformanceRepository(db *database.DB) performance.PerformanceRepository {
	return &performanceRepository{db: db}
}

func scanReview(row pgx.Row, withNames bool) (performance.PerformanceReview, error) {
	var rev performance.PerformanceReview
	dest := []interface{}{
		&rev.ID, &rev.EmployeeID, &rev.ReviewerID, &rev.ReviewDate, &rev.Rating,
		&rev.Comments, &rev.Goals, &rev.Achievements, &rev.AreasForImprovement, &rev.Status,
		&rev.CreatedAt, &rev.UpdatedAt,
	}
	if withNames {
		dest = append(dest, &rev.EmployeeName, &rev.ReviewerName, &rev.Department)
	}
	if err := row.Scan(dest...); err != nil {
		return performance.PerformanceReview{}, err
	}
	return rev, nil
}

// Create implements performance.PerformanceRepository.
func (r *performanceRepository) Create(ctx context.Context, review performance.PerformanceReview) (performance.PerformanceReview, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO performance_reviews (employee_id, reviewer_id, review_date, rating,
			comments, goals, achievements, areas_for_improvement, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		review.EmployeeID,
		review.ReviewerID,
		review.ReviewDate,
		review.Rating,
		review.Comments,
		review.Goals,
		review.Achievements,
		review.AreasForImprovement,
		review.Status,
	).Scan(&review.ID, &review.CreatedAt, &review.UpdatedAt)

	if err != nil {
		return performance.PerformanceReview{}, fmt.Errorf("failed to create performance review: %w", err)
	}

	return review, nil
}

// GetByID implements performance.PerformanceRepository.
func (r *performanceRepository) GetByID(ctx context.Context, id string) (performance.PerformanceReview, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + reviewColumns + `,
		       e.first_name || ' ' || e.last_name AS employee_name,
		       rv.first_name || ' ' || rv.last_name AS reviewer_name,
		       e.department
		FROM performance_reviews r
		JOIN employees e ON e.id = r.employee_id
		LEFT JOIN employees rv ON rv.id = r.reviewer_id
		WHERE r.id = $1
	`

	rev, err := scanReview(q.QueryRow(ctx, query, id), true)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return performance.PerformanceReview{}, performance.ErrReviewNotFound
		}
		return performance.PerformanceReview{}, fmt.Errorf("failed to get performance review: %w", err)
	}

	return rev, nil
}

// List implements performance.PerformanceRepository.
func (r *performanceRepository) List(ctx context.Context, sc scope.Scope, filter performance.ListFilter) ([]performance.PerformanceReview, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if clause, scopeArgs := sc.SQLFilter("r.employee_id", argIdx); clause != "" {
		baseWhere += " AND " + clause
		args = append(args, scopeArgs...)
		argIdx += len(scopeArgs)
	}

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND r.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM performance_reviews r WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count performance reviews: %w", err)
	}

	listQuery := `
		SELECT ` + reviewColumns + `,
		       e.first_name || ' ' || e.last_name AS employee_name,
		       rv.first_name || ' ' || rv.last_name AS reviewer_name,
		       e.department
		FROM performance_reviews r
		JOIN employees e ON e.id = r.employee_id
		LEFT JOIN employees rv ON rv.id = r.reviewer_id
		WHERE ` + baseWhere + fmt.Sprintf(`
		ORDER BY r.review_date DESC, r.created_at DESC
		LIMIT $%d OFFSET $%d
	`, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list performance reviews: %w", err)
	}
	defer rows.Close()

	var reviews []performance.PerformanceReview
	for rows.Next() {
		rev, err := scanReview(rows, true)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan performance review: %w", err)
		}
		reviews = append(reviews, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return reviews, total, nil
}

// Update implements performance.PerformanceRepository. COALESCE keeps fields
// the request omits.
func (r *performanceRepository) Update(ctx context.Context, req performance.UpdateRequest) (performance.PerformanceReview, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE performance_reviews
		SET rating                = COALESCE($1, rating),
		    comments              = COALESCE($2, comments),
		    goals                 = COALESCE($3, goals),
		    achievements          = COALESCE($4, achievements),
		    areas_for_improvement = COALESCE($5, areas_for_improvement),
		    status                = COALESCE($6, status),
		    updated_at            = NOW()
		WHERE id = $7
		RETURNING id, employee_id, reviewer_id, review_date, rating,
		          comments, goals, achievements, areas_for_improvement, status,
		          created_at, updated_at
	`

	rev, err := scanReview(q.QueryRow(ctx, query,
		req.Rating,
		req.Comments,
		req.Goals,
		req.Achievements,
		req.AreasForImprovement,
		req.Status,
		req.ID,
	), false)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return performance.PerformanceReview{}, performance.ErrReviewNotFound
		}
		return performance.PerformanceReview{}, fmt.Errorf("failed to update performance review: %w", err)
	}

	return rev, nil
}
