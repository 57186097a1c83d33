package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/serene/internal/error_values"
	"github.com/limbo/serene/internal/repository"
	"github.com/limbo/serene/internal/wellness"
	"github.com/limbo/serene/pkg/entity"
)

const (
	defaultPostsLimit = 20
	maxPostsLimit     = 100
)

type CommunityService struct {
	repo repository.CommunityRepositoryI
}

func NewCommunityService(communityRepo repository.CommunityRepositoryI) *CommunityService {
	if communityRepo == nil {
		log.Fatal("provided nil communityRepo")
	}
	return &CommunityService{
		repo: communityRepo,
	}
}

// CreatePost stores flagged posts too, the caller only gets ShowResources set
func (cs *CommunityService) CreatePost(ctx context.Context, ownerID uuid.UUID, req *CreatePostRequest) (*PostView, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	post, err := cs.repo.CreatePost(ctx, &entity.CommunityPost{
		OwnerID:  ownerID,
		Text:     req.Text,
		Category: req.Category,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	return &PostView{
		Post:          *post,
		ShowResources: wellness.DetectCrisis(req.Text),
	}, nil
}

func (cs *CommunityService) ListPosts(ctx context.Context, category string, pagination PaginationOpts) ([]entity.CommunityPost, error) {
	if category != "" && !IsPostCategory(category) {
		return nil, errors.Join(errorvalues.ErrValidation, errors.New("unknown category: "+category))
	}
	limit := pagination.Limit
	if limit <= 0 {
		limit = defaultPostsLimit
	}
	posts, err := cs.repo.ListPosts(ctx, category, min(limit, maxPostsLimit), max(pagination.Offset, 0))
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return posts, nil
}

func (cs *CommunityService) LikePost(ctx context.Context, id uuid.UUID) (int, error) {
	likes, err := cs.repo.IncrementLikes(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrPostNotFound) {
			return 0, err
		}
		return 0, errors.New("repository error: " + err.Error())
	}
	return likes, nil
}

func (cs *CommunityService) AddReply(ctx context.Context, postID, ownerID uuid.UUID, req *ReplyRequest) (*ReplyView, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	reply, err := cs.repo.AddReply(ctx, &entity.Reply{
		PostID:  postID,
		OwnerID: ownerID,
		Text:    req.Text,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrPostNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	return &ReplyView{
		Reply:         *reply,
		ShowResources: wellness.DetectCrisis(req.Text),
	}, nil
}

func (cs *CommunityService) ListReplies(ctx context.Context, postID uuid.UUID) ([]entity.Reply, error) {
	if _, err := cs.repo.GetPostByID(ctx, postID); err != nil {
		if errors.Is(err, errorvalues.ErrPostNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	replies, err := cs.repo.ListReplies(ctx, postID)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return replies, nil
}

func (cs *CommunityService) DeletePost(ctx context.Context, id, ownerID uuid.UUID) error {
	post, err := cs.repo.GetPostByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrPostNotFound) {
			return err
		}
		return errors.New("repository error: " + err.Error())
	}
	if post.OwnerID != ownerID {
		return errorvalues.ErrWrongOwner
	}
	if err = cs.repo.DeletePost(ctx, id); err != nil {
		if errors.Is(err, errorvalues.ErrPostNotFound) {
			return err
		}
		return errors.New("repository error: " + err.Error())
	}
	return nil
}
