package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	coreEntity "social-events-api/core/entity"
	"social-events-api/core/errors"
	"social-events-api/core/params"
	companyEntity "social-events-api/modules/company/entity"
	moderationEntity "social-events-api/modules/moderation/entity"
	"social-events-api/modules/moderation/filter"
	"social-events-api/modules/post/dto"
	"social-events-api/modules/post/entity"
	userEntity "social-events-api/modules/user/entity"
)

type fakePostStore struct {
	posts map[uuid.UUID]*entity.Post
}

func newFakePostStore() *fakePostStore {
	return &fakePostStore{posts: make(map[uuid.UUID]*entity.Post)}
}

func (f *fakePostStore) Create(_ context.Context, post *entity.Post) (*entity.Post, error) {
	post.ID = uuid.New()
	post.CreatedAt = time.Now()
	post.Lifecycle = coreEntity.LifecycleActive
	f.posts[post.ID] = post
	return post, nil
}

func (f *fakePostStore) GetByID(_ context.Context, id uuid.UUID) (*entity.Post, error) {
	post, ok := f.posts[id]
	if !ok || post.Lifecycle != coreEntity.LifecycleActive {
		return nil, nil
	}
	clone := *post
	return &clone, nil
}

func (f *fakePostStore) Update(_ context.Context, post *entity.Post) error {
	f.posts[post.ID] = post
	return nil
}

func (f *fakePostStore) SoftDelete(_ context.Context, id uuid.UUID) error {
	if post, ok := f.posts[id]; ok {
		post.Lifecycle = coreEntity.LifecycleDeleted
	}
	return nil
}

func (f *fakePostStore) Feed(_ context.Context, p params.QueryParams) (*entity.PaginatedFeedEntity, error) {
	items := make([]entity.FeedPost, 0)
	for _, post := range f.posts {
		if post.Lifecycle == coreEntity.LifecycleActive {
			items = append(items, entity.FeedPost{Post: *post})
		}
	}
	return &entity.PaginatedFeedEntity{Items: items, TotalItems: len(items), PageNumber: p.PageNumber, PageSize: p.PageSize}, nil
}

func (f *fakePostStore) ListByAuthor(_ context.Context, authorID uuid.UUID, p params.QueryParams) (*entity.PaginatedFeedEntity, error) {
	items := make([]entity.FeedPost, 0)
	for _, post := range f.posts {
		if post.Lifecycle == coreEntity.LifecycleActive && post.AuthorID != nil && *post.AuthorID == authorID {
			items = append(items, entity.FeedPost{Post: *post})
		}
	}
	return &entity.PaginatedFeedEntity{Items: items, TotalItems: len(items), PageNumber: p.PageNumber, PageSize: p.PageSize}, nil
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

type violation struct {
	ref      moderationEntity.SubjectRef
	clientID uuid.UUID
	text     string
}

type amendment struct {
	ref  moderationEntity.SubjectRef
	text string
}

type fakeModeration struct {
	violations []violation
	amendments []amendment
}

func (f *fakeModeration) RecordViolation(_ context.Context, ref moderationEntity.SubjectRef, clientID uuid.UUID, originalText string) {
	f.violations = append(f.violations, violation{ref: ref, clientID: clientID, text: originalText})
}

func (f *fakeModeration) AmendOnEdit(_ context.Context, ref moderationEntity.SubjectRef, newRawText string) {
	f.amendments = append(f.amendments, amendment{ref: ref, text: newRawText})
}

func (f *fakeModeration) ListByClient(_ context.Context, _ uuid.UUID) ([]moderationEntity.ModerationAlert, error) {
	return nil, nil
}

type postFixture struct {
	service       PostServiceInterface
	store         *fakePostStore
	moderation    *fakeModeration
	userID        uuid.UUID
	clientID      uuid.UUID
	responsibleID uuid.UUID
}

func newPostFixture() postFixture {
	userID := uuid.New()
	clientID := uuid.New()
	responsibleID := uuid.New()

	client := &userEntity.Client{
		UserID:     userID,
		Name:       "Jordan",
		Nick:       "jordan",
		BaseEntity: coreEntity.BaseEntity{ID: clientID},
	}
	company := &companyEntity.Company{
		Name:          "Acme Events",
		ResponsibleID: responsibleID,
		BaseEntity:    coreEntity.BaseEntity{ID: uuid.New()},
	}

	store := newFakePostStore()
	moderation := &fakeModeration{}
	svc := NewPostService(
		store,
		&fakeUserStore{clients: map[uuid.UUID]*userEntity.Client{clientID: client}},
		&fakeCompanyStore{company: company},
		moderation,
		filter.Default(),
	)
	return postFixture{
		service:       svc,
		store:         store,
		moderation:    moderation,
		userID:        userID,
		clientID:      clientID,
		responsibleID: responsibleID,
	}
}

func TestCreatePostClean(t *testing.T) {
	ctx := context.Background()
	fx := newPostFixture()

	res, appErr := fx.service.Create(ctx, fx.userID, &dto.CreatePostRequest{
		Title:       "Big announcement",
		Description: "Doors open at eight",
	})
	if appErr != nil {
		t.Fatalf("create: %v", appErr)
	}
	if res.Censored {
		t.Error("clean text must not be censored")
	}
	if res.Post.AuthorID == nil || *res.Post.AuthorID != fx.clientID {
		t.Error("post must be attributed to the caller's client")
	}
	if len(fx.moderation.violations) != 0 {
		t.Errorf("clean post must not raise alerts, got %d", len(fx.moderation.violations))
	}
}

func TestCreatePostCensored(t *testing.T) {
	ctx := context.Background()
	fx := newPostFixture()

	res, appErr := fx.service.Create(ctx, fx.userID, &dto.CreatePostRequest{
		Title:       "Great scam here",
		Description: "Pure spam inside",
	})
	if appErr != nil {
		t.Fatalf("create: %v", appErr)
	}
	if !res.Censored {
		t.Fatal("expected the filter to trip")
	}
	if res.Post.Title == nil || *res.Post.Title != "Great **** here" {
		t.Errorf("stored title must be redacted, got %v", res.Post.Title)
	}
	if res.Post.Description == nil || *res.Post.Description != "Pure **** inside" {
		t.Errorf("stored description must be redacted, got %v", res.Post.Description)
	}

	if len(fx.moderation.violations) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(fx.moderation.violations))
	}
	v := fx.moderation.violations[0]
	if v.text != "Great scam here |-| Pure spam inside" {
		t.Errorf("alert must join the raw title and description, got %q", v.text)
	}
	if v.ref.Kind != moderationEntity.SubjectPost || v.ref.ID != res.Post.ID {
		t.Errorf("alert must anchor to the new post, got %+v", v.ref)
	}
	if v.clientID != fx.clientID {
		t.Error("alert must carry the authoring client")
	}
}

func TestCreatePostFilterNeedsBothFields(t *testing.T) {
	ctx := context.Background()
	fx := newPostFixture()

	// A title-only post skips the filter even when the text would match.
	res, appErr := fx.service.Create(ctx, fx.userID, &dto.CreatePostRequest{
		Title: "total scam",
	})
	if appErr != nil {
		t.Fatalf("create: %v", appErr)
	}
	if res.Censored {
		t.Error("filter must not run without both title and description")
	}
	if res.Post.Title == nil || *res.Post.Title != "total scam" {
		t.Errorf("title must be stored as submitted, got %v", res.Post.Title)
	}
	if len(fx.moderation.violations) != 0 {
		t.Error("no alert expected")
	}
}

func TestCreatePostRequiresContent(t *testing.T) {
	ctx := context.Background()
	fx := newPostFixture()

	_, appErr := fx.service.Create(ctx, fx.userID, &dto.CreatePostRequest{})
	if appErr == nil || appErr.Code != errors.ErrInvalidInput {
		t.Errorf("expected INVALID_INPUT for an empty post, got %v", appErr)
	}
}

func TestCreatePostRequiresClient(t *testing.T) {
	ctx := context.Background()
	fx := newPostFixture()

	_, appErr := fx.service.Create(ctx, uuid.New(), &dto.CreatePostRequest{Title: "hello"})
	if appErr == nil || appErr.Code != errors.ErrForbidden {
		t.Errorf("expected FORBIDDEN without a client profile, got %v", appErr)
	}
}

func TestCreatePostAsCompany(t *testing.T) {
	ctx := context.Background()
	fx := newPostFixture()

	// The company responsible needs their own client profile to post.
	respClientID := uuid.New()
	fx.store.posts = map[uuid.UUID]*entity.Post{}
	userStore := &fakeUserStore{clients: map[uuid.UUID]*userEntity.Client{
		respClientID: {UserID: fx.responsibleID, BaseEntity: coreEntity.BaseEntity{ID: respClientID}},
	}}
	company := &companyEntity.Company{
		Name:          "Acme Events",
		ResponsibleID: fx.responsibleID,
		BaseEntity:    coreEntity.BaseEntity{ID: uuid.New()},
	}
	svc := NewPostService(fx.store, userStore, &fakeCompanyStore{company: company}, fx.moderation, filter.Default())

	res, appErr := svc.Create(ctx, fx.responsibleID, &dto.CreatePostRequest{
		Title:     "Official notice",
		AsCompany: true,
	})
	if appErr != nil {
		t.Fatalf("create: %v", appErr)
	}
	if res.Post.CompanyID == nil || *res.Post.CompanyID != company.ID {
		t.Error("company post must carry the company ID")
	}
	if res.Post.AuthorID != nil {
		t.Error("company post must not carry a client author")
	}

	// Not being responsible for any company refuses the flag.
	_, appErr = fx.service.Create(ctx, fx.userID, &dto.CreatePostRequest{
		Title:     "Official notice",
		AsCompany: true,
	})
	if appErr == nil || appErr.Code != errors.ErrForbidden {
		t.Errorf("expected FORBIDDEN, got %v", appErr)
	}
}

func TestUpdatePostAmendsAndRecords(t *testing.T) {
	ctx := context.Background()
	fx := newPostFixture()

	created, appErr := fx.service.Create(ctx, fx.userID, &dto.CreatePostRequest{
		Title:       "First title",
		Description: "First description",
	})
	if appErr != nil {
		t.Fatalf("create: %v", appErr)
	}

	// A clean edit still amends whatever alert history the post has.
	res, appErr := fx.service.Update(ctx, fx.userID, &dto.UpdatePostRequest{
		ID:          created.Post.ID.String(),
		Title:       "Second title",
		Description: "Second description",
	})
	if appErr != nil {
		t.Fatalf("update: %v", appErr)
	}
	if res.Censored {
		t.Error("clean edit must not be censored")
	}
	if len(fx.moderation.amendments) != 1 {
		t.Fatalf("expected 1 amendment, got %d", len(fx.moderation.amendments))
	}
	if fx.moderation.amendments[0].text != "Second title |-| Second description" {
		t.Errorf("unexpected amendment text %q", fx.moderation.amendments[0].text)
	}
	if len(fx.moderation.violations) != 0 {
		t.Errorf("clean edit must not raise alerts, got %d", len(fx.moderation.violations))
	}

	// A violating edit amends and raises a fresh alert.
	res, appErr = fx.service.Update(ctx, fx.userID, &dto.UpdatePostRequest{
		ID:          created.Post.ID.String(),
		Title:       "Huge scam",
		Description: "Avoid this fraud",
	})
	if appErr != nil {
		t.Fatalf("update: %v", appErr)
	}
	if !res.Censored {
		t.Fatal("expected the filter to trip")
	}
	if len(fx.moderation.amendments) != 2 {
		t.Errorf("expected 2 amendments, got %d", len(fx.moderation.amendments))
	}
	if len(fx.moderation.violations) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(fx.moderation.violations))
	}
	if fx.moderation.violations[0].text != "Huge scam |-| Avoid this fraud" {
		t.Errorf("unexpected alert text %q", fx.moderation.violations[0].text)
	}
}

func TestUpdatePostAuthorOnly(t *testing.T) {
	ctx := context.Background()
	fx := newPostFixture()

	created, appErr := fx.service.Create(ctx, fx.userID, &dto.CreatePostRequest{Title: "Mine"})
	if appErr != nil {
		t.Fatalf("create: %v", appErr)
	}

	_, appErr = fx.service.Update(ctx, uuid.New(), &dto.UpdatePostRequest{
		ID:    created.Post.ID.String(),
		Title: "Hijacked",
	})
	if appErr == nil || appErr.Code != errors.ErrForbidden {
		t.Errorf("expected FORBIDDEN for a non-author, got %v", appErr)
	}
}

func TestDeletePostSoft(t *testing.T) {
	ctx := context.Background()
	fx := newPostFixture()

	created, appErr := fx.service.Create(ctx, fx.userID, &dto.CreatePostRequest{Title: "Mine"})
	if appErr != nil {
		t.Fatalf("create: %v", appErr)
	}

	if appErr := fx.service.Delete(ctx, fx.userID, created.Post.ID); appErr != nil {
		t.Fatalf("delete: %v", appErr)
	}

	feed, appErr := fx.service.Feed(ctx, params.QueryParams{PageNumber: 1, PageSize: 10})
	if appErr != nil {
		t.Fatalf("feed: %v", appErr)
	}
	if feed.TotalItems != 0 {
		t.Errorf("deleted post must leave the feed, got %d items", feed.TotalItems)
	}
}
