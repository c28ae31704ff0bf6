package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	coreEntity "social-events-api/core/entity"
	"social-events-api/core/errors"
	"social-events-api/core/params"
	"social-events-api/modules/comment/dto"
	"social-events-api/modules/comment/entity"
	companyEntity "social-events-api/modules/company/entity"
	moderationEntity "social-events-api/modules/moderation/entity"
	"social-events-api/modules/moderation/filter"
	postEntity "social-events-api/modules/post/entity"
	userEntity "social-events-api/modules/user/entity"
)

type fakeCommentStore struct {
	comments map[uuid.UUID]*entity.Comment
}

func newFakeCommentStore() *fakeCommentStore {
	return &fakeCommentStore{comments: make(map[uuid.UUID]*entity.Comment)}
}

func (f *fakeCommentStore) Create(_ context.Context, comment *entity.Comment) (*entity.Comment, error) {
	comment.ID = uuid.New()
	comment.CreatedAt = time.Now()
	comment.Lifecycle = coreEntity.LifecycleActive
	f.comments[comment.ID] = comment
	return comment, nil
}

func (f *fakeCommentStore) GetByID(_ context.Context, id uuid.UUID) (*entity.Comment, error) {
	comment, ok := f.comments[id]
	if !ok || comment.Lifecycle != coreEntity.LifecycleActive {
		return nil, nil
	}
	clone := *comment
	return &clone, nil
}

func (f *fakeCommentStore) UpdateContent(_ context.Context, id uuid.UUID, content string) error {
	if comment, ok := f.comments[id]; ok {
		comment.Content = content
	}
	return nil
}

func (f *fakeCommentStore) SoftDelete(_ context.Context, id uuid.UUID) error {
	if comment, ok := f.comments[id]; ok {
		comment.Lifecycle = coreEntity.LifecycleDeleted
	}
	return nil
}

func (f *fakeCommentStore) ListByPost(_ context.Context, postID uuid.UUID) ([]entity.CommentWithAuthor, error) {
	out := make([]entity.CommentWithAuthor, 0)
	for _, comment := range f.comments {
		if comment.PostID == postID && comment.Lifecycle == coreEntity.LifecycleActive {
			out = append(out, entity.CommentWithAuthor{Comment: *comment})
		}
	}
	return out, nil
}

type fakePostStore struct {
	posts map[uuid.UUID]*postEntity.Post
}

func (f *fakePostStore) Create(_ context.Context, post *postEntity.Post) (*postEntity.Post, error) {
	return post, nil
}

func (f *fakePostStore) GetByID(_ context.Context, id uuid.UUID) (*postEntity.Post, error) {
	return f.posts[id], nil
}

func (f *fakePostStore) Update(_ context.Context, _ *postEntity.Post) error { return nil }

func (f *fakePostStore) SoftDelete(_ context.Context, _ uuid.UUID) error { return nil }

func (f *fakePostStore) Feed(_ context.Context, _ params.QueryParams) (*postEntity.PaginatedFeedEntity, error) {
	return nil, nil
}

func (f *fakePostStore) ListByAuthor(_ context.Context, _ uuid.UUID, _ params.QueryParams) (*postEntity.PaginatedFeedEntity, error) {
	return nil, nil
}

type fakeUserStore struct {
	clients map[uuid.UUID]*userEntity.Client
}

func (f *fakeUserStore) GetByID(_ context.Context, _ uuid.UUID) (*userEntity.User, error) {
	return nil, nil
}

func (f *fakeUserStore) GetClientByUserID(_ context.Context, userID uuid.UUID) (*userEntity.Client, error) {
	for _, client := range f.clients {
		if client.UserID == userID {
			return client, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) GetClientByID(_ context.Context, id uuid.UUID) (*userEntity.Client, error) {
	return f.clients[id], nil
}

func (f *fakeUserStore) GetActor(_ context.Context, _ uuid.UUID) (*userEntity.Actor, error) {
	return nil, nil
}

type fakeCompanyStore struct {
	company *companyEntity.Company
}

func (f *fakeCompanyStore) GetByID(_ context.Context, id uuid.UUID) (*companyEntity.Company, error) {
	if f.company != nil && f.company.ID == id {
		return f.company, nil
	}
	return nil, nil
}

func (f *fakeCompanyStore) GetByResponsibleID(_ context.Context, responsibleID uuid.UUID) (*companyEntity.Company, error) {
	if f.company != nil && f.company.ResponsibleID == responsibleID {
		return f.company, nil
	}
	return nil, nil
}

func (f *fakeCompanyStore) List(_ context.Context, _ string, _ params.QueryParams) (*companyEntity.PaginatedCompanyEntity, error) {
	return nil, nil
}

type fakeModeration struct {
	violations int
	amendments int
	lastText   string
	lastRef    moderationEntity.SubjectRef
}

func (f *fakeModeration) RecordViolation(_ context.Context, ref moderationEntity.SubjectRef, _ uuid.UUID, originalText string) {
	f.violations++
	f.lastRef = ref
	f.lastText = originalText
}

func (f *fakeModeration) AmendOnEdit(_ context.Context, ref moderationEntity.SubjectRef, newRawText string) {
	f.amendments++
	f.lastRef = ref
	f.lastText = newRawText
}

func (f *fakeModeration) ListByClient(_ context.Context, _ uuid.UUID) ([]moderationEntity.ModerationAlert, error) {
	return nil, nil
}

// commentFixture wires a comment service over a post owned by a client,
// on behalf of a company whose responsible party is a third user.
type commentFixture struct {
	service        CommentServiceInterface
	store          *fakeCommentStore
	moderation     *fakeModeration
	postID         uuid.UUID
	companyPostID  uuid.UUID
	authorUserID   uuid.UUID
	authorClientID uuid.UUID
	ownerUserID    uuid.UUID
	ownerClientID  uuid.UUID
	responsibleID  uuid.UUID
}

func newCommentFixture() commentFixture {
	authorUserID := uuid.New()
	authorClientID := uuid.New()
	ownerUserID := uuid.New()
	ownerClientID := uuid.New()
	responsibleID := uuid.New()
	postID := uuid.New()
	companyPostID := uuid.New()

	company := &companyEntity.Company{
		Name:          "Acme Events",
		ResponsibleID: responsibleID,
		BaseEntity:    coreEntity.BaseEntity{ID: uuid.New()},
	}

	ownerRef := ownerClientID
	clientPost := &postEntity.Post{
		AuthorID:   &ownerRef,
		Lifecycle:  coreEntity.LifecycleActive,
		BaseEntity: coreEntity.BaseEntity{ID: postID},
	}
	companyRef := company.ID
	companyPost := &postEntity.Post{
		CompanyID:  &companyRef,
		Lifecycle:  coreEntity.LifecycleActive,
		BaseEntity: coreEntity.BaseEntity{ID: companyPostID},
	}

	store := newFakeCommentStore()
	moderation := &fakeModeration{}
	svc := NewCommentService(
		store,
		&fakePostStore{posts: map[uuid.UUID]*postEntity.Post{postID: clientPost, companyPostID: companyPost}},
		&fakeUserStore{clients: map[uuid.UUID]*userEntity.Client{
			authorClientID: {UserID: authorUserID, BaseEntity: coreEntity.BaseEntity{ID: authorClientID}},
			ownerClientID:  {UserID: ownerUserID, BaseEntity: coreEntity.BaseEntity{ID: ownerClientID}},
		}},
		&fakeCompanyStore{company: company},
		moderation,
		filter.Default(),
	)
	return commentFixture{
		service:        svc,
		store:          store,
		moderation:     moderation,
		postID:         postID,
		companyPostID:  companyPostID,
		authorUserID:   authorUserID,
		authorClientID: authorClientID,
		ownerUserID:    ownerUserID,
		ownerClientID:  ownerClientID,
		responsibleID:  responsibleID,
	}
}

func (fx commentFixture) comment(t *testing.T, content string) *dto.CommentResponse {
	t.Helper()
	res, appErr := fx.service.Create(context.Background(), fx.authorUserID, &dto.CreateCommentRequest{
		Content: content,
		PostID:  fx.postID.String(),
	})
	if appErr != nil {
		t.Fatalf("create comment: %v", appErr)
	}
	return res
}

func TestCreateCommentCensored(t *testing.T) {
	fx := newCommentFixture()

	res := fx.comment(t, "what a scam")
	if !res.Censored {
		t.Fatal("expected the filter to trip")
	}
	if res.Comment.Content != "what a ****" {
		t.Errorf("stored content must be redacted, got %q", res.Comment.Content)
	}
	if fx.moderation.violations != 1 {
		t.Fatalf("expected 1 alert, got %d", fx.moderation.violations)
	}
	if fx.moderation.lastText != "what a scam" {
		t.Errorf("alert must keep the raw content, got %q", fx.moderation.lastText)
	}
	if fx.moderation.lastRef.Kind != moderationEntity.SubjectComment || fx.moderation.lastRef.ID != res.Comment.ID {
		t.Errorf("alert must anchor to the comment, got %+v", fx.moderation.lastRef)
	}
}

func TestCreateReply(t *testing.T) {
	fx := newCommentFixture()
	root := fx.comment(t, "first")

	res, appErr := fx.service.Create(context.Background(), fx.authorUserID, &dto.CreateCommentRequest{
		Content:         "a reply",
		PostID:          fx.postID.String(),
		ParentCommentID: root.Comment.ID.String(),
	})
	if appErr != nil {
		t.Fatalf("create reply: %v", appErr)
	}
	if res.Comment.Type != entity.TypeReply {
		t.Errorf("expected reply type %d, got %d", entity.TypeReply, res.Comment.Type)
	}
	if res.Comment.ParentCommentID == nil || *res.Comment.ParentCommentID != root.Comment.ID {
		t.Error("reply must reference its parent")
	}

	_, appErr = fx.service.Create(context.Background(), fx.authorUserID, &dto.CreateCommentRequest{
		Content:         "orphan",
		PostID:          fx.postID.String(),
		ParentCommentID: uuid.New().String(),
	})
	if appErr == nil || appErr.Code != errors.ErrNotFound {
		t.Errorf("expected NOT_FOUND for a missing parent, got %v", appErr)
	}
}

func TestUpdateCommentOwnOnly(t *testing.T) {
	fx := newCommentFixture()
	created := fx.comment(t, "original")

	res, appErr := fx.service.Update(context.Background(), fx.authorUserID, &dto.UpdateCommentRequest{
		CommentID: created.Comment.ID.String(),
		Content:   "edited",
	})
	if appErr != nil {
		t.Fatalf("update: %v", appErr)
	}
	if res.Comment.Content != "edited" {
		t.Errorf("expected updated content, got %q", res.Comment.Content)
	}
	if fx.moderation.amendments != 1 {
		t.Errorf("every edit must amend, got %d", fx.moderation.amendments)
	}

	// Even the post owner cannot edit somebody else's comment.
	_, appErr = fx.service.Update(context.Background(), fx.ownerUserID, &dto.UpdateCommentRequest{
		CommentID: created.Comment.ID.String(),
		Content:   "hijacked",
	})
	if appErr == nil || appErr.Code != errors.ErrForbidden {
		t.Errorf("expected FORBIDDEN, got %v", appErr)
	}
}

func TestDeleteCommentGate(t *testing.T) {
	ctx := context.Background()

	// Comment author may delete their own comment.
	fx := newCommentFixture()
	created := fx.comment(t, "mine")
	if appErr := fx.service.Delete(ctx, fx.authorUserID, created.Comment.ID); appErr != nil {
		t.Errorf("author delete: %v", appErr)
	}

	// Post owner may delete comments under their post.
	fx = newCommentFixture()
	created = fx.comment(t, "on your post")
	if appErr := fx.service.Delete(ctx, fx.ownerUserID, created.Comment.ID); appErr != nil {
		t.Errorf("post owner delete: %v", appErr)
	}

	// Company responsible may delete comments under a company post.
	fx = newCommentFixture()
	res, appErr := fx.service.Create(ctx, fx.authorUserID, &dto.CreateCommentRequest{
		Content: "on the company post",
		PostID:  fx.companyPostID.String(),
	})
	if appErr != nil {
		t.Fatalf("create: %v", appErr)
	}
	if appErr := fx.service.Delete(ctx, fx.responsibleID, res.Comment.ID); appErr != nil {
		t.Errorf("company responsible delete: %v", appErr)
	}

	// Anyone else is refused.
	fx = newCommentFixture()
	created = fx.comment(t, "protected")
	if appErr := fx.service.Delete(ctx, uuid.New(), created.Comment.ID); appErr == nil || appErr.Code != errors.ErrForbidden {
		t.Errorf("expected FORBIDDEN for a stranger, got %v", appErr)
	}
}

func TestListByPostThreads(t *testing.T) {
	ctx := context.Background()
	fx := newCommentFixture()

	root1 := fx.comment(t, "first root")
	root2 := fx.comment(t, "second root")
	if _, appErr := fx.service.Create(ctx, fx.authorUserID, &dto.CreateCommentRequest{
		Content:         "reply to first",
		PostID:          fx.postID.String(),
		ParentCommentID: root1.Comment.ID.String(),
	}); appErr != nil {
		t.Fatalf("reply: %v", appErr)
	}

	threads, appErr := fx.service.ListByPost(ctx, fx.postID)
	if appErr != nil {
		t.Fatalf("list: %v", appErr)
	}
	if len(threads) != 2 {
		t.Fatalf("expected 2 roots, got %d", len(threads))
	}
	for _, thread := range threads {
		switch thread.ID {
		case root1.Comment.ID:
			if len(thread.Replies) != 1 {
				t.Errorf("first root must hold 1 reply, got %d", len(thread.Replies))
			}
		case root2.Comment.ID:
			if len(thread.Replies) != 0 {
				t.Errorf("second root must hold no replies, got %d", len(thread.Replies))
			}
		}
	}
}
