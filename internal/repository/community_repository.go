package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/serene/internal/error_values"
	"github.com/limbo/serene/pkg/entity"
)

type CommunityRepository struct {
	conn PgConnection
}

func NewCommunityRepo(cfg DBConfig) *CommunityRepository {
	return NewCommunityRepoWithConn(Connect(cfg))
}

func NewCommunityRepoWithConn(conn PgConnection) *CommunityRepository {
	mustPing(conn, "communityRepo")
	return &CommunityRepository{
		conn: conn,
	}
}

func (cr *CommunityRepository) CreatePost(ctx context.Context, post *entity.CommunityPost) (*entity.CommunityPost, error) {
	created := *post
	row := cr.conn.QueryRow(ctx, `INSERT INTO community_posts (owner_id, text, category) VALUES ($1, $2, $3) RETURNING id, likes, reply_count, created_at;`,
		post.OwnerID, post.Text, post.Category)
	if err := row.Scan(&created.ID, &created.Likes, &created.ReplyCount, &created.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return nil, errorvalues.ErrUserNotFound
			}
		}
		return nil, errors.New("creating post error: " + err.Error())
	}
	return &created, nil
}

func (cr *CommunityRepository) GetPostByID(ctx context.Context, id uuid.UUID) (*entity.CommunityPost, error) {
	post := entity.CommunityPost{ID: id}
	row := cr.conn.QueryRow(ctx, `SELECT owner_id, text, category, likes, reply_count, created_at FROM community_posts WHERE id = $1;`, id)
	if err := row.Scan(&post.OwnerID, &post.Text, &post.Category, &post.Likes, &post.ReplyCount, &post.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrPostNotFound
		}
		return nil, errors.New("getting post by id error: " + err.Error())
	}
	return &post, nil
}

// ListPosts returns newest posts first. Empty category lists all of them.
func (cr *CommunityRepository) ListPosts(ctx context.Context, category string, limit, offset int) ([]entity.CommunityPost, error) {
	rows, err := cr.conn.Query(ctx, `SELECT id, owner_id, text, category, likes, reply_count, created_at FROM community_posts
		WHERE ($1 = '' OR category = $1) ORDER BY created_at DESC LIMIT $2 OFFSET $3;`, category, limit, offset)
	if err != nil {
		return nil, errors.New("listing posts error: " + err.Error())
	}
	defer rows.Close()
	posts := make([]entity.CommunityPost, 0, limit)
	for rows.Next() {
		p := entity.CommunityPost{}
		if err = rows.Scan(&p.ID, &p.OwnerID, &p.Text, &p.Category, &p.Likes, &p.ReplyCount, &p.CreatedAt); err != nil {
			return nil, errors.New("post row parsing error: " + err.Error())
		}
		posts = append(posts, p)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected post rows error: " + err.Error())
	}
	return posts, nil
}

// IncrementLikes relies on the atomic in-place increment, safe for concurrent likes
func (cr *CommunityRepository) IncrementLikes(ctx context.Context, id uuid.UUID) (int, error) {
	var likes int
	row := cr.conn.QueryRow(ctx, `UPDATE community_posts SET likes = likes + 1 WHERE id = $1 RETURNING likes;`, id)
	if err := row.Scan(&likes); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, errorvalues.ErrPostNotFound
		}
		return 0, errors.New("liking post error: " + err.Error())
	}
	return likes, nil
}

func (cr *CommunityRepository) AddReply(ctx context.Context, reply *entity.Reply) (*entity.Reply, error) {
	tx, err := cr.conn.Begin(ctx)
	if err != nil {
		return nil, errors.New("beginning reply transaction error: " + err.Error())
	}
	defer tx.Rollback(ctx)
	created := *reply
	row := tx.QueryRow(ctx, `INSERT INTO community_replies (post_id, owner_id, text) VALUES ($1, $2, $3) RETURNING id, created_at;`,
		reply.PostID, reply.OwnerID, reply.Text)
	if err = row.Scan(&created.ID, &created.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return nil, errorvalues.ErrPostNotFound
			}
		}
		return nil, errors.New("creating reply error: " + err.Error())
	}
	_, err = tx.Exec(ctx, `UPDATE community_posts SET reply_count = reply_count + 1 WHERE id = $1;`, reply.PostID)
	if err != nil {
		return nil, errors.New("incrementing reply count error: " + err.Error())
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, errors.New("committing reply error: " + err.Error())
	}
	return &created, nil
}

func (cr *CommunityRepository) ListReplies(ctx context.Context, postID uuid.UUID) ([]entity.Reply, error) {
	rows, err := cr.conn.Query(ctx, `SELECT id, post_id, owner_id, text, created_at FROM community_replies
		WHERE post_id = $1 ORDER BY created_at ASC;`, postID)
	if err != nil {
		return nil, errors.New("listing replies error: " + err.Error())
	}
	defer rows.Close()
	replies := make([]entity.Reply, 0)
	for rows.Next() {
		r := entity.Reply{}
		if err = rows.Scan(&r.ID, &r.PostID, &r.OwnerID, &r.Text, &r.CreatedAt); err != nil {
			return nil, errors.New("reply row parsing error: " + err.Error())
		}
		replies = append(replies, r)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected reply rows error: " + err.Error())
	}
	return replies, nil
}

func (cr *CommunityRepository) DeletePost(ctx context.Context, id uuid.UUID) error {
	ct, err := cr.conn.Exec(ctx, `DELETE FROM community_posts WHERE id = $1;`, id)
	if err != nil {
		return errors.New("deleting post error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrPostNotFound
	}
	return nil
}
