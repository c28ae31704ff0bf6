package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"social-events-api/core/authz"
	"social-events-api/core/errors"
	"social-events-api/core/params"
	companyRepository "social-events-api/modules/company/repository"
	moderationEntity "social-events-api/modules/moderation/entity"
	"social-events-api/modules/moderation/filter"
	moderationService "social-events-api/modules/moderation/service"
	"social-events-api/modules/post/dto"
	"social-events-api/modules/post/entity"
	"social-events-api/modules/post/repository"
	userRepository "social-events-api/modules/user/repository"
)

type PostService struct {
	repo       repository.PostRepositoryInterface
	users      userRepository.UserRepositoryInterface
	companies  companyRepository.CompanyRepositoryInterface
	moderation moderationService.ModerationServiceInterface
	filter     *filter.Filter
}

// PostServiceInterface defines the service contract.
type PostServiceInterface interface {
	Create(ctx context.Context, actorID uuid.UUID, req *dto.CreatePostRequest) (*dto.PostResponse, *errors.AppError)
	Update(ctx context.Context, actorID uuid.UUID, req *dto.UpdatePostRequest) (*dto.PostResponse, *errors.AppError)
	Delete(ctx context.Context, actorID uuid.UUID, postID uuid.UUID) *errors.AppError
	Feed(ctx context.Context, p params.QueryParams) (*entity.PaginatedFeedEntity, *errors.AppError)
	MyPosts(ctx context.Context, actorID uuid.UUID, p params.QueryParams) (*entity.PaginatedFeedEntity, *errors.AppError)
	UserPosts(ctx context.Context, clientID uuid.UUID, p params.QueryParams) (*entity.PaginatedFeedEntity, *errors.AppError)
}

func NewPostService(
	repo repository.PostRepositoryInterface,
	users userRepository.UserRepositoryInterface,
	companies companyRepository.CompanyRepositoryInterface,
	moderation moderationService.ModerationServiceInterface,
	contentFilter *filter.Filter,
) PostServiceInterface {
	return &PostService{
		repo:       repo,
		users:      users,
		companies:  companies,
		moderation: moderation,
		filter:     contentFilter,
	}
}

// screen runs the filter over title and description. Both must be present
// for the filter to apply; partial submissions pass through untouched.
func (s *PostService) screen(title, description string) (checkedTitle, checkedDescription string, censored bool) {
	checkedTitle, checkedDescription = title, description
	if title == "" || description == "" {
		return checkedTitle, checkedDescription, false
	}

	titleResult := s.filter.Check(title)
	descriptionResult := s.filter.Check(description)
	return titleResult.Text, descriptionResult.Text, !titleResult.OK || !descriptionResult.OK
}

// alertText preserves the submitted title and description in the format
// the review tooling expects.
func alertText(title, description string) string {
	return fmt.Sprintf("%s |-| %s", title, description)
}

func (s *PostService) Create(ctx context.Context, actorID uuid.UUID, req *dto.CreatePostRequest) (*dto.PostResponse, *errors.AppError) {
	client, err := s.users.GetClientByUserID(ctx, actorID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get client", err)
	}
	if client == nil {
		return nil, errors.NewAppError(errors.ErrForbidden, "A client profile is required to post", nil)
	}

	if req.Title == "" && req.Description == "" && req.Image == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Title, description or image is required", nil)
	}

	checkedTitle, checkedDescription, censored := s.screen(req.Title, req.Description)

	post := &entity.Post{
		Title:       optional(checkedTitle),
		Description: optional(checkedDescription),
		Image:       optional(req.Image),
		Type:        postType(req.Type),
	}

	if req.AsCompany {
		company, err := s.companies.GetByResponsibleID(ctx, actorID)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get company", err)
		}
		if company == nil {
			return nil, errors.NewAppError(errors.ErrForbidden, "You are not responsible for any company", nil)
		}
		post.CompanyID = &company.ID
	} else {
		post.AuthorID = &client.ID
	}

	created, err := s.repo.Create(ctx, post)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create post", err)
	}

	if censored {
		s.moderation.RecordViolation(ctx, moderationEntity.PostRef(created.ID), client.ID,
			alertText(req.Title, req.Description))
	}

	return &dto.PostResponse{Post: *created, Censored: censored}, nil
}

func (s *PostService) Update(ctx context.Context, actorID uuid.UUID, req *dto.UpdatePostRequest) (*dto.PostResponse, *errors.AppError) {
	postID, parseErr := uuid.Parse(req.ID)
	if parseErr != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid post ID", parseErr)
	}

	post, appErr := s.requireEditablePost(ctx, actorID, postID)
	if appErr != nil {
		return nil, appErr
	}

	checkedTitle, checkedDescription, censored := s.screen(req.Title, req.Description)

	if checkedTitle != "" {
		post.Title = optional(checkedTitle)
	}
	if checkedDescription != "" {
		post.Description = optional(checkedDescription)
	}
	if req.Image != "" {
		post.Image = optional(req.Image)
	}
	if req.Type != 0 {
		post.Type = req.Type
	}

	if err := s.repo.Update(ctx, post); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to update post", err)
	}

	raw := alertText(req.Title, req.Description)
	ref := moderationEntity.PostRef(post.ID)

	// Amendment and fresh-violation recording are independent: an edit to
	// previously flagged content is always captured, and a violating edit
	// also produces its own alert.
	s.moderation.AmendOnEdit(ctx, ref, raw)
	if censored {
		clientID := uuid.Nil
		if post.AuthorID != nil {
			clientID = *post.AuthorID
		} else if client, err := s.users.GetClientByUserID(ctx, actorID); err == nil && client != nil {
			clientID = client.ID
		}
		s.moderation.RecordViolation(ctx, ref, clientID, raw)
	}

	return &dto.PostResponse{Post: *post, Censored: censored}, nil
}

func (s *PostService) Delete(ctx context.Context, actorID uuid.UUID, postID uuid.UUID) *errors.AppError {
	if _, appErr := s.requireEditablePost(ctx, actorID, postID); appErr != nil {
		return appErr
	}

	if err := s.repo.SoftDelete(ctx, postID); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to delete post", err)
	}
	return nil
}

func (s *PostService) Feed(ctx context.Context, p params.QueryParams) (*entity.PaginatedFeedEntity, *errors.AppError) {
	feed, err := s.repo.Feed(ctx, p)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load feed", err)
	}
	return feed, nil
}

func (s *PostService) MyPosts(ctx context.Context, actorID uuid.UUID, p params.QueryParams) (*entity.PaginatedFeedEntity, *errors.AppError) {
	client, err := s.users.GetClientByUserID(ctx, actorID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get client", err)
	}
	if client == nil {
		return nil, errors.NewAppError(errors.ErrForbidden, "A client profile is required", nil)
	}

	return s.UserPosts(ctx, client.ID, p)
}

func (s *PostService) UserPosts(ctx context.Context, clientID uuid.UUID, p params.QueryParams) (*entity.PaginatedFeedEntity, *errors.AppError) {
	posts, err := s.repo.ListByAuthor(ctx, clientID, p)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list posts", err)
	}
	return posts, nil
}

// requireEditablePost loads the post and checks the actor is its client
// author or, for company posts, the company's responsible party.
func (s *PostService) requireEditablePost(ctx context.Context, actorID uuid.UUID, postID uuid.UUID) (*entity.Post, *errors.AppError) {
	post, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get post", err)
	}
	if post == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Post not found", nil)
	}

	if post.CompanyID != nil {
		company, err := s.companies.GetByID(ctx, *post.CompanyID)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get company", err)
		}
		if company == nil || !authz.IsCompanyResponsible(actorID, company.ResponsibleID).Allowed {
			return nil, errors.NewAppError(errors.ErrForbidden, "You are not allowed to manage this post", nil)
		}
		return post, nil
	}

	client, err := s.users.GetClientByUserID(ctx, actorID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get client", err)
	}
	if client == nil || post.AuthorID == nil || !authz.IsContentAuthor(client.ID, *post.AuthorID).Allowed {
		return nil, errors.NewAppError(errors.ErrForbidden, "You are not allowed to manage this post", nil)
	}

	return post, nil
}

func postType(t int) int {
	if t == 0 {
		return entity.PostTypePublic
	}
	return t
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
