package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/asadk/maktab/internal/app/models"
	"github.com/asadk/maktab/internal/app/models/dto"
	"github.com/asadk/maktab/internal/pkg/apperrors"
)

// AnnouncementRepository handles database operations for announcements.
type AnnouncementRepository struct {
	db *pgxpool.Pool
}

// NewAnnouncementRepository creates a new announcement repository.
func NewAnnouncementRepository(db *pgxpool.Pool) *AnnouncementRepository {
	return &AnnouncementRepository{db: db}
}

const announcementColumns = `id, title, content, user_id, target_role, program_id, is_pinned, created_at`

func scanAnnouncement(row pgx.Row) (*models.Announcement, error) {
	var a models.Announcement
	err := row.Scan(&a.ID, &a.Title, &a.Content, &a.UserID, &a.TargetRole, &a.ProgramID, &a.IsPinned, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// GetAll retrieves announcements matching the filter, most recent first.
func (r *AnnouncementRepository) GetAll(ctx context.Context, filter *dto.AnnouncementFilter) ([]*models.Announcement, error) {
	var b filterBuilder
	if filter != nil {
		if filter.TargetRole != "" {
			b.add("target_role = $%d", filter.TargetRole)
		}
		if filter.ProgramID != nil {
			b.add("program_id = $%d", *filter.ProgramID)
		}
		if filter.IsPinned != nil {
			b.add("is_pinned = $%d", *filter.IsPinned)
		}
	}

	query := `SELECT ` + announcementColumns + ` FROM announcements` + b.where() + ` ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, b.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var announcements []*models.Announcement
	for rows.Next() {
		announcement, err := scanAnnouncement(rows)
		if err != nil {
			return nil, err
		}
		announcements = append(announcements, announcement)
	}

	return announcements, rows.Err()
}

// GetByID retrieves an announcement by ID.
func (r *AnnouncementRepository) GetByID(ctx context.Context, id int64) (*models.Announcement, error) {
	announcement, err := scanAnnouncement(r.db.QueryRow(ctx,
		`SELECT `+announcementColumns+` FROM announcements WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("Announcement")
		}
		return nil, fmt.Errorf("error retrieving announcement: %w", err)
	}
	return announcement, nil
}

// Create publishes a new announcement.
func (r *AnnouncementRepository) Create(ctx context.Context, announcement *models.Announcement) error {
	query := `
		INSERT INTO announcements (title, content, user_id, target_role, program_id, is_pinned)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		announcement.Title, announcement.Content, announcement.UserID,
		announcement.TargetRole, announcement.ProgramID, announcement.IsPinned,
	).Scan(&announcement.ID, &announcement.CreatedAt)
	if err != nil {
		return translateWriteError(err, "announcement")
	}

	return nil
}

// Update applies a partial patch to an announcement.
func (r *AnnouncementRepository) Update(ctx context.Context, id int64, patch *dto.UpdateAnnouncementRequest) (*models.Announcement, error) {
	var b setBuilder
	if patch.Title != nil {
		b.set("title", *patch.Title)
	}
	if patch.Content != nil {
		b.set("content", *patch.Content)
	}
	if patch.TargetRole != nil {
		b.set("target_role", *patch.TargetRole)
	}
	if patch.ProgramID != nil {
		b.set("program_id", *patch.ProgramID)
	}
	if patch.IsPinned != nil {
		b.set("is_pinned", *patch.IsPinned)
	}
	if b.empty() {
		return r.GetByID(ctx, id)
	}

	query := fmt.Sprintf(`UPDATE announcements SET %s WHERE id = $%d RETURNING `+announcementColumns, b.clause(), b.next())
	args := append(b.args, id)

	announcement, err := scanAnnouncement(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("Announcement")
		}
		return nil, translateWriteError(err, "announcement")
	}

	return announcement, nil
}

// Delete removes an announcement.
func (r *AnnouncementRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM announcements WHERE id = $1`, id)
	if err != nil {
		return translateDeleteError(err, "announcement")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NotFound("Announcement")
	}
	return nil
}
