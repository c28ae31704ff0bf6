package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"social-events-api/core/database"
	"social-events-api/core/logger"
	"social-events-api/core/params"
	"social-events-api/modules/post/entity"
)

type PostRepository struct {
	DB database.Database
}

func NewPostRepository(db database.Database) *PostRepository {
	return &PostRepository{DB: db}
}

// PostRepositoryInterface defines the repository contract.
type PostRepositoryInterface interface {
	Create(ctx context.Context, post *entity.Post) (*entity.Post, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Post, error)
	Update(ctx context.Context, post *entity.Post) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	Feed(ctx context.Context, p params.QueryParams) (*entity.PaginatedFeedEntity, error)
	ListByAuthor(ctx context.Context, authorID uuid.UUID, p params.QueryParams) (*entity.PaginatedFeedEntity, error)
}

const postColumns = `id, title, description, image, type, author_id, company_id, lifecycle, created_at, updated_at`

func (r *PostRepository) Create(ctx context.Context, post *entity.Post) (*entity.Post, error) {
	query := `
		INSERT INTO posts (title, description, image, type, author_id, company_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, lifecycle, created_at, updated_at
	`

	err := r.DB.QueryRowContext(ctx, query,
		post.Title, post.Description, post.Image, post.Type, post.AuthorID, post.CompanyID,
	).Scan(&post.ID, &post.Lifecycle, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		logger.Error("PostRepository:Create", err)
		return nil, err
	}
	return post, nil
}

func (r *PostRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1 AND lifecycle = 'active'`

	var post entity.Post
	err := r.DB.GetContext(ctx, &post, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logger.Error("PostRepository:GetByID", err)
		return nil, err
	}
	return &post, nil
}

func (r *PostRepository) Update(ctx context.Context, post *entity.Post) error {
	query := `
		UPDATE posts
		SET title = $1, description = $2, image = $3, type = $4, updated_at = NOW()
		WHERE id = $5 AND lifecycle = 'active'
	`

	if err := r.DB.ExecContext(ctx, query,
		post.Title, post.Description, post.Image, post.Type, post.ID,
	); err != nil {
		logger.Error("PostRepository:Update", err)
		return err
	}
	return nil
}

func (r *PostRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE posts SET lifecycle = 'deleted', updated_at = NOW() WHERE id = $1`

	if err := r.DB.ExecContext(ctx, query, id); err != nil {
		logger.Error("PostRepository:SoftDelete", err)
		return err
	}
	return nil
}

// feedColumns joins author and company identity plus the active comment
// count per post.
const feedColumns = `
	p.id, p.title, p.description, p.image, p.type, p.author_id, p.company_id,
	p.lifecycle, p.created_at, p.updated_at,
	c.name AS author_name, c.nick AS author_nick, c.photo AS author_photo,
	co.name AS company_name,
	(SELECT COUNT(*) FROM comments cm WHERE cm.post_id = p.id AND cm.lifecycle = 'active') AS comment_count
`

// Feed returns public posts from active authors. Company posts outrank
// client posts, clients rank by user type, and posts from the last twelve
// hours come before everything else.
func (r *PostRepository) Feed(ctx context.Context, p params.QueryParams) (*entity.PaginatedFeedEntity, error) {
	baseQuery := `
		FROM posts p
		LEFT JOIN clients c ON c.id = p.author_id AND c.lifecycle = 'active'
		LEFT JOIN companies co ON co.id = p.company_id AND co.lifecycle = 'active'
		WHERE p.lifecycle = 'active' AND p.type = 1
		  AND (c.id IS NOT NULL OR co.id IS NOT NULL)
	`

	orderBy := `
		ORDER BY
			(p.created_at > NOW() - INTERVAL '12 hours') DESC,
			CASE
				WHEN p.company_id IS NOT NULL THEN 5
				ELSE CASE c.user_type
					WHEN 1 THEN 5
					WHEN 5 THEN 4
					WHEN 4 THEN 3
					WHEN 3 THEN 2
					WHEN 2 THEN 1
					ELSE 0
				END
			END DESC,
			p.created_at DESC
	`

	return r.paginated(ctx, baseQuery, orderBy, nil, p)
}

func (r *PostRepository) ListByAuthor(ctx context.Context, authorID uuid.UUID, p params.QueryParams) (*entity.PaginatedFeedEntity, error) {
	baseQuery := `
		FROM posts p
		LEFT JOIN clients c ON c.id = p.author_id
		LEFT JOIN companies co ON co.id = p.company_id
		WHERE p.lifecycle = 'active' AND p.author_id = $1
	`
	orderBy := `ORDER BY p.created_at DESC`

	return r.paginated(ctx, baseQuery, orderBy, []any{authorID}, p)
}

func (r *PostRepository) paginated(ctx context.Context, baseQuery, orderBy string, args []any, p params.QueryParams) (*entity.PaginatedFeedEntity, error) {
	var totalItems int
	if err := r.DB.GetContext(ctx, &totalItems, "SELECT COUNT(*) "+baseQuery, args...); err != nil {
		logger.Error("PostRepository:Paginated:Count", err)
		return nil, err
	}

	query := fmt.Sprintf(`SELECT %s %s %s LIMIT $%d OFFSET $%d`,
		feedColumns, baseQuery, orderBy, len(args)+1, len(args)+2)
	args = append(args, p.PageSize, p.Offset())

	var posts []entity.FeedPost
	if err := r.DB.SelectContext(ctx, &posts, query, args...); err != nil {
		logger.Error("PostRepository:Paginated:Select", err)
		return nil, err
	}

	return &entity.PaginatedFeedEntity{
		Items:      posts,
		TotalItems: totalItems,
		PageNumber: p.PageNumber,
		PageSize:   p.PageSize,
	}, nil
}
