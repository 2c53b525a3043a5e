package groups

import (
	"context"
	"errors"
	"fmt"

	"github.com/ggrinberger/grindlog-sub000/internal/api"
	"github.com/ggrinberger/grindlog-sub000/internal/db"
	"github.com/ggrinberger/grindlog-sub000/internal/telemetry/tracing"
	"github.com/ggrinberger/grindlog-sub000/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrGroupNotFound  = errors.New("group not found")
	ErrGroupNameTaken = errors.New("group name already taken")
	ErrNotMember      = errors.New("not a member of this group")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

const groupSelect = `SELECT g.id, g.name, g.description, g.is_public, g.owner_id, g.created_at,
		(SELECT COUNT(*) FROM group_member m WHERE m.group_id = g.id)::INT AS member_count
	FROM fitness_group g`

// Create inserts the group and its owner membership atomically.
func (r *Repo) Create(ctx context.Context, ownerID int64, req CreateGroupRequest) (_ *Group, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.groups.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	var created Group
	err = db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		txErr := tx.QueryRow(
			ctx,
			`INSERT INTO fitness_group (name, description, is_public, owner_id)
				VALUES ($1, $2, $3, $4)
				RETURNING id, name, description, is_public, owner_id, created_at`,
			req.Name, req.Description, isPublic, ownerID,
		).Scan(&created.ID, &created.Name, &created.Description, &created.IsPublic, &created.OwnerID, &created.CreatedAt)
		if txErr != nil {
			return txErr
		}
		_, txErr = tx.Exec(
			ctx,
			`INSERT INTO group_member (group_id, user_id, role) VALUES ($1, $2, $3)`,
			created.ID, ownerID, RoleOwner,
		)
		return txErr
	})
	if pkg.IsUniqueViolationError(err) {
		return nil, ErrGroupNameTaken
	}
	if err != nil {
		return nil, err
	}
	created.MemberCount = 1
	return &created, nil
}

func (r *Repo) ListPublic(ctx context.Context, page api.Page) (_ []Group, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.groups.listPublic")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		groupSelect+` WHERE g.is_public ORDER BY g.created_at DESC, g.id DESC LIMIT $1 OFFSET $2`,
		page.Limit, page.Offset,
	)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[Group])
}

func (r *Repo) ListMine(ctx context.Context, userID int64) (_ []Group, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.groups.listMine")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		groupSelect+` JOIN group_member gm ON gm.group_id = g.id AND gm.user_id = $1 ORDER BY g.name, g.id`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[Group])
}

func (r *Repo) Get(ctx context.Context, groupID int64) (_ *Group, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.groups.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, groupSelect+` WHERE g.id = $1`, groupID)
	if err != nil {
		return nil, err
	}
	g, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[Group])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrGroupNotFound
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// MemberRole returns the user's role in the group, or ErrNotMember.
func (r *Repo) MemberRole(ctx context.Context, groupID, userID int64) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.groups.memberRole")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var role string
	err = r.db.QueryRow(
		ctx,
		`SELECT role FROM group_member WHERE group_id = $1 AND user_id = $2`,
		groupID, userID,
	).Scan(&role)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrNotMember
	}
	return role, err
}

// Join is idempotent.
func (r *Repo) Join(ctx context.Context, groupID, userID int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.groups.join")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO group_member (group_id, user_id, role) VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`,
		groupID, userID, RoleMember,
	)
	if pkg.IsForeignKeyViolationError(err) {
		return fmt.Errorf("%w: %d", ErrGroupNotFound, groupID)
	}
	return err
}

func (r *Repo) Leave(ctx context.Context, groupID, userID int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.groups.leave")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM group_member WHERE group_id = $1 AND user_id = $2 AND role <> $3`,
		groupID, userID, RoleOwner,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotMember
	}
	return nil
}

func (r *Repo) Members(ctx context.Context, groupID int64) (_ []Member, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.groups.members")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT m.user_id, u.username, u.name, m.role, m.joined_at
			FROM group_member m
			JOIN app_user u ON u.id = m.user_id
			WHERE m.group_id = $1
			ORDER BY m.joined_at, m.user_id`,
		groupID,
	)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[Member])
}

func (r *Repo) Posts(ctx context.Context, groupID int64, page api.Page) (_ []Post, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.groups.posts")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT p.id, p.group_id, p.user_id, u.username, p.kind, p.ref_id, p.content, p.created_at
			FROM group_post p
			JOIN app_user u ON u.id = p.user_id
			WHERE p.group_id = $1
			ORDER BY p.created_at DESC, p.id DESC
			LIMIT $2 OFFSET $3`,
		groupID, page.Limit, page.Offset,
	)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[Post])
}

func (r *Repo) CreatePost(ctx context.Context, groupID, userID int64, req CreatePostRequest) (_ *Post, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.groups.createPost")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`WITH p AS (
			INSERT INTO group_post (group_id, user_id, kind, ref_id, content)
				VALUES ($1, $2, $3, $4, $5)
				RETURNING id, group_id, user_id, kind, ref_id, content, created_at
		)
		SELECT p.id, p.group_id, p.user_id, u.username, p.kind, p.ref_id, p.content, p.created_at
			FROM p JOIN app_user u ON u.id = p.user_id`,
		groupID, userID, req.Kind, req.RefID, req.Content,
	)
	if err != nil {
		return nil, err
	}
	created, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[Post])
	if err != nil {
		return nil, err
	}
	return &created, nil
}
