package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"social-events-api/core/database"
	"social-events-api/core/logger"
	"social-events-api/modules/comment/entity"
)

type CommentRepository struct {
	DB database.Database
}

func NewCommentRepository(db database.Database) *CommentRepository {
	return &CommentRepository{DB: db}
}

// CommentRepositoryInterface defines the repository contract.
type CommentRepositoryInterface interface {
	Create(ctx context.Context, comment *entity.Comment) (*entity.Comment, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error)
	UpdateContent(ctx context.Context, id uuid.UUID, content string) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	ListByPost(ctx context.Context, postID uuid.UUID) ([]entity.CommentWithAuthor, error)
}

func (r *CommentRepository) Create(ctx context.Context, comment *entity.Comment) (*entity.Comment, error) {
	query := `
		INSERT INTO comments (content, post_id, author_id, parent_comment_id, type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, lifecycle, created_at, updated_at
	`

	err := r.DB.QueryRowContext(ctx, query,
		comment.Content, comment.PostID, comment.AuthorID, comment.ParentCommentID, comment.Type,
	).Scan(&comment.ID, &comment.Lifecycle, &comment.CreatedAt, &comment.UpdatedAt)
	if err != nil {
		logger.Error("CommentRepository:Create", err)
		return nil, err
	}
	return comment, nil
}

func (r *CommentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error) {
	query := `
		SELECT id, content, post_id, author_id, parent_comment_id, type, lifecycle, created_at, updated_at
		FROM comments
		WHERE id = $1 AND lifecycle = 'active'
	`

	var comment entity.Comment
	err := r.DB.GetContext(ctx, &comment, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logger.Error("CommentRepository:GetByID", err)
		return nil, err
	}
	return &comment, nil
}

func (r *CommentRepository) UpdateContent(ctx context.Context, id uuid.UUID, content string) error {
	query := `UPDATE comments SET content = $1, updated_at = NOW() WHERE id = $2 AND lifecycle = 'active'`

	if err := r.DB.ExecContext(ctx, query, content, id); err != nil {
		logger.Error("CommentRepository:UpdateContent", err)
		return err
	}
	return nil
}

func (r *CommentRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE comments SET lifecycle = 'deleted', updated_at = NOW() WHERE id = $1`

	if err := r.DB.ExecContext(ctx, query, id); err != nil {
		logger.Error("CommentRepository:SoftDelete", err)
		return err
	}
	return nil
}

// ListByPost returns a post's active comments, oldest first, with author
// identity joined.
func (r *CommentRepository) ListByPost(ctx context.Context, postID uuid.UUID) ([]entity.CommentWithAuthor, error) {
	query := `
		SELECT c.id, c.content, c.post_id, c.author_id, c.parent_comment_id, c.type,
		       c.lifecycle, c.created_at, c.updated_at,
		       cl.name AS author_name, cl.nick AS author_nick, cl.photo AS author_photo
		FROM comments c
		JOIN clients cl ON cl.id = c.author_id
		WHERE c.post_id = $1 AND c.lifecycle = 'active'
		ORDER BY c.created_at ASC
	`

	comments := []entity.CommentWithAuthor{}
	if err := r.DB.SelectContext(ctx, &comments, query, postID); err != nil {
		logger.Error("CommentRepository:ListByPost", err)
		return nil, err
	}
	return comments, nil
}
