package service

import (
	"context"

	"github.com/google/uuid"

	"social-events-api/core/authz"
	"social-events-api/core/errors"
	"social-events-api/modules/comment/dto"
	"social-events-api/modules/comment/entity"
	"social-events-api/modules/comment/repository"
	companyRepository "social-events-api/modules/company/repository"
	moderationEntity "social-events-api/modules/moderation/entity"
	"social-events-api/modules/moderation/filter"
	moderationService "social-events-api/modules/moderation/service"
	postRepository "social-events-api/modules/post/repository"
	userRepository "social-events-api/modules/user/repository"
)

type CommentService struct {
	repo       repository.CommentRepositoryInterface
	posts      postRepository.PostRepositoryInterface
	users      userRepository.UserRepositoryInterface
	companies  companyRepository.CompanyRepositoryInterface
	moderation moderationService.ModerationServiceInterface
	filter     *filter.Filter
}

// CommentServiceInterface defines the service contract.
type CommentServiceInterface interface {
	Create(ctx context.Context, actorID uuid.UUID, req *dto.CreateCommentRequest) (*dto.CommentResponse, *errors.AppError)
	Update(ctx context.Context, actorID uuid.UUID, req *dto.UpdateCommentRequest) (*dto.CommentResponse, *errors.AppError)
	Delete(ctx context.Context, actorID uuid.UUID, commentID uuid.UUID) *errors.AppError
	ListByPost(ctx context.Context, postID uuid.UUID) ([]entity.ThreadedComment, *errors.AppError)
}

func NewCommentService(
	repo repository.CommentRepositoryInterface,
	posts postRepository.PostRepositoryInterface,
	users userRepository.UserRepositoryInterface,
	companies companyRepository.CompanyRepositoryInterface,
	moderation moderationService.ModerationServiceInterface,
	contentFilter *filter.Filter,
) CommentServiceInterface {
	return &CommentService{
		repo:       repo,
		posts:      posts,
		users:      users,
		companies:  companies,
		moderation: moderation,
		filter:     contentFilter,
	}
}

func (s *CommentService) Create(ctx context.Context, actorID uuid.UUID, req *dto.CreateCommentRequest) (*dto.CommentResponse, *errors.AppError) {
	client, err := s.users.GetClientByUserID(ctx, actorID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get client", err)
	}
	if client == nil {
		return nil, errors.NewAppError(errors.ErrForbidden, "A client profile is required to comment", nil)
	}

	if req.Content == "" || req.PostID == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Content and post ID are required", nil)
	}

	postID, parseErr := uuid.Parse(req.PostID)
	if parseErr != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid post ID", parseErr)
	}

	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get post", err)
	}
	if post == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Post not found", nil)
	}

	comment := &entity.Comment{
		PostID:   postID,
		AuthorID: client.ID,
		Type:     entity.TypeComment,
	}

	if req.ParentCommentID != "" {
		parentID, parseErr := uuid.Parse(req.ParentCommentID)
		if parseErr != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid parent comment ID", parseErr)
		}
		parent, err := s.repo.GetByID(ctx, parentID)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get parent comment", err)
		}
		if parent == nil {
			return nil, errors.NewAppError(errors.ErrNotFound, "Parent comment not found", nil)
		}
		comment.ParentCommentID = &parentID
		comment.Type = entity.TypeReply
	}

	result := s.filter.Check(req.Content)
	comment.Content = result.Text
	censored := !result.OK

	created, err := s.repo.Create(ctx, comment)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create comment", err)
	}

	if censored {
		s.moderation.RecordViolation(ctx, moderationEntity.CommentRef(created.ID), client.ID, req.Content)
	}

	return &dto.CommentResponse{Comment: *created, Censored: censored}, nil
}

// Update edits the caller's own comment. Previously flagged comments get
// their latest alert amended with the edited raw text; a violating edit
// also records a fresh alert.
func (s *CommentService) Update(ctx context.Context, actorID uuid.UUID, req *dto.UpdateCommentRequest) (*dto.CommentResponse, *errors.AppError) {
	client, err := s.users.GetClientByUserID(ctx, actorID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get client", err)
	}
	if client == nil {
		return nil, errors.NewAppError(errors.ErrForbidden, "A client profile is required", nil)
	}

	if req.CommentID == "" || req.Content == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Comment ID and content are required", nil)
	}

	commentID, parseErr := uuid.Parse(req.CommentID)
	if parseErr != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid comment ID", parseErr)
	}

	comment, err := s.repo.GetByID(ctx, commentID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get comment", err)
	}
	if comment == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Comment not found", nil)
	}

	if !authz.IsContentAuthor(client.ID, comment.AuthorID).Allowed {
		return nil, errors.NewAppError(errors.ErrForbidden, "You can only edit your own comments", nil)
	}

	result := s.filter.Check(req.Content)
	censored := !result.OK

	if err := s.repo.UpdateContent(ctx, commentID, result.Text); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to update comment", err)
	}
	comment.Content = result.Text

	ref := moderationEntity.CommentRef(commentID)
	s.moderation.AmendOnEdit(ctx, ref, req.Content)
	if censored {
		s.moderation.RecordViolation(ctx, ref, client.ID, req.Content)
	}

	return &dto.CommentResponse{Comment: *comment, Censored: censored}, nil
}

// Delete soft-deletes a comment. Allowed for the comment author, the post
// owner, or the responsible party of the company that owns the post.
func (s *CommentService) Delete(ctx context.Context, actorID uuid.UUID, commentID uuid.UUID) *errors.AppError {
	comment, err := s.repo.GetByID(ctx, commentID)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to get comment", err)
	}
	if comment == nil {
		return errors.NewAppError(errors.ErrNotFound, "Comment not found", nil)
	}

	post, err := s.posts.GetByID(ctx, comment.PostID)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to get post", err)
	}
	if post == nil {
		return errors.NewAppError(errors.ErrNotFound, "Post not found", nil)
	}

	allowed := false

	client, err := s.users.GetClientByUserID(ctx, actorID)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to get client", err)
	}
	if client != nil {
		if authz.IsContentAuthor(client.ID, comment.AuthorID).Allowed {
			allowed = true
		}
		if post.AuthorID != nil && authz.IsContentAuthor(client.ID, *post.AuthorID).Allowed {
			allowed = true
		}
	}

	if !allowed && post.CompanyID != nil {
		company, err := s.companies.GetByID(ctx, *post.CompanyID)
		if err != nil {
			return errors.NewAppError(errors.ErrInternalServer, "Failed to get company", err)
		}
		if company != nil && authz.IsCompanyResponsible(actorID, company.ResponsibleID).Allowed {
			allowed = true
		}
	}

	if !allowed {
		return errors.NewAppError(errors.ErrForbidden, "You are not allowed to delete this comment", nil)
	}

	if err := s.repo.SoftDelete(ctx, commentID); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to delete comment", err)
	}
	return nil
}

// ListByPost returns a post's comments threaded as roots with replies.
func (s *CommentService) ListByPost(ctx context.Context, postID uuid.UUID) ([]entity.ThreadedComment, *errors.AppError) {
	comments, err := s.repo.ListByPost(ctx, postID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list comments", err)
	}

	roots := []entity.ThreadedComment{}
	index := map[uuid.UUID]int{}

	for _, c := range comments {
		if c.ParentCommentID == nil {
			roots = append(roots, entity.ThreadedComment{CommentWithAuthor: c, Replies: []entity.CommentWithAuthor{}})
			index[c.ID] = len(roots) - 1
		}
	}
	for _, c := range comments {
		if c.ParentCommentID == nil {
			continue
		}
		if i, ok := index[*c.ParentCommentID]; ok {
			roots[i].Replies = append(roots[i].Replies, c)
		}
	}

	return roots, nil
}
