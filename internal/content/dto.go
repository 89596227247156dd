package content

import (
	"time"

	"github.com/google/uuid"
)

type CreatePostCommand struct {
	Title      string     `json:"title"`
	Body       string     `json:"body"`
	SubforumID *uuid.UUID `json:"subforum_id"`
}

type ListPostsQuery struct {
	// SubforumID filters to a single subforum.
	SubforumID *uuid.UUID
	// SubscribedOnly filters to posts in subforums the viewer subscribes to.
	SubscribedOnly bool
	Limit          int
	Offset         int
}

type PostDTO struct {
	ID             uuid.UUID  `json:"id"`
	Username       string     `json:"user"`
	ProfilePicture string     `json:"profile_picture,omitempty"`
	Title          string     `json:"title"`
	Body           string     `json:"body"`
	SubforumID     *uuid.UUID `json:"subforum_id,omitempty"`
	SubforumName   string     `json:"subforum_name,omitempty"`
	LikeAmt        int        `json:"like_amt"`
	CommentAmt     int        `json:"comment_amt"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type CommentDTO struct {
	ID        uuid.UUID `json:"id"`
	PostID    uuid.UUID `json:"post_id"`
	Username  string    `json:"user"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

type LikeDTO struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"user"`
	CreatedAt time.Time `json:"created_at"`
}

// SinglePostDTO is the detail view: the post plus its comments (newest
// first) and likes.
type SinglePostDTO struct {
	PostDTO
	Comments []CommentDTO `json:"comments"`
	Likes    []LikeDTO    `json:"likes"`
}

// ToggleDTO reports which side of the toggle idiom a call landed on.
type ToggleDTO struct {
	Added bool `json:"added"`
}

func (t ToggleDTO) Status() string {
	if t.Added {
		return "added"
	}
	return "removed"
}

type UserSummary struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

type SubforumSummary struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

// SearchResults carries the three independent result sets. Keys mirror the
// original API payload.
type SearchResults struct {
	People    []UserSummary     `json:"People"`
	Posts     []PostDTO         `json:"Posts"`
	Subforums []SubforumSummary `json:"Subforums"`
}

type FollowEdgeDTO struct {
	User      UserSummary `json:"user"`
	CreatedAt time.Time   `json:"created_at"`
}

type ProfileDTO struct {
	Posts       []PostDTO       `json:"Posts"`
	CommentedOn []CommentDTO    `json:"Commented"`
	Saved       []PostDTO       `json:"Saved,omitempty"`
	Following   []FollowEdgeDTO `json:"Following"`
	Followers   []FollowEdgeDTO `json:"Followers"`
}
