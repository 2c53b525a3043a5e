package groups

import "time"

const (
	RoleOwner  = "owner"
	RoleMember = "member"
)

var PostKinds = []string{"workout", "meal", "goal", "note"}

type Group struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	IsPublic    bool      `json:"isPublic" db:"is_public"`
	OwnerID     int64     `json:"ownerId" db:"owner_id"`
	MemberCount int       `json:"memberCount" db:"member_count"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

type Member struct {
	UserID   int64     `json:"userId" db:"user_id"`
	Username string    `json:"username" db:"username"`
	Name     string    `json:"name" db:"name"`
	Role     string    `json:"role" db:"role"`
	JoinedAt time.Time `json:"joinedAt" db:"joined_at"`
}

type Post struct {
	ID        int64     `json:"id" db:"id"`
	GroupID   int64     `json:"groupId" db:"group_id"`
	UserID    int64     `json:"userId" db:"user_id"`
	Username  string    `json:"username" db:"username"`
	Kind      string    `json:"kind" db:"kind"`
	RefID     *int64    `json:"refId" db:"ref_id"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type CreateGroupRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IsPublic    *bool  `json:"isPublic"`
}

type CreatePostRequest struct {
	Kind    string `json:"kind"`
	RefID   *int64 `json:"refId"`
	Content string `json:"content"`
}
