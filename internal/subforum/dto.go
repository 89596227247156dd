package subforum

import (
	"time"

	"github.com/google/uuid"

	"github.com/AriqGChowdhury/WSU-Forum/internal/content"
)

type CreateSubforumCommand struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Rules       string      `json:"rules"`
	Banner      string      `json:"banner"`
	TagIDs      []uuid.UUID `json:"tag_ids"`
}

type ReportCommand struct {
	Reason  string `json:"reason"`
	Details string `json:"details"`
}

type AddModeratorCommand struct {
	UserID         uuid.UUID `json:"user_id"`
	Role           string    `json:"role"`
	CanDeletePosts bool      `json:"can_delete_posts"`
	CanBanUsers    bool      `json:"can_ban_users"`
	CanEditRules   bool      `json:"can_edit_rules"`
}

// AdminDecision is the body of the admin approval endpoint.
type AdminDecision struct {
	Action string `json:"action"` // approve | reject
	Reason string `json:"reason"`
}

type TagDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
}

type SubforumDTO struct {
	ID              uuid.UUID           `json:"id"`
	Name            string              `json:"name"`
	Description     string              `json:"description"`
	Rules           string              `json:"rules"`
	Creator         content.UserSummary `json:"creator"`
	Status          string              `json:"status"`
	Banner          string              `json:"banner,omitempty"`
	PostCount       int                 `json:"post_count"`
	SubscriberCount int                 `json:"subscriber_count"`
	// Moderators is capped at five entries, matching the list payload of
	// the original API.
	Moderators   []content.UserSummary `json:"moderators"`
	Tags         []TagDTO              `json:"tags"`
	IsSubscribed bool                  `json:"is_subscribed"`
	IsModerator  bool                  `json:"is_moderator"`
	CreatedAt    time.Time             `json:"created_at"`
}

type ModeratorDTO struct {
	ID             uuid.UUID           `json:"id"`
	User           content.UserSummary `json:"user"`
	Role           string              `json:"role"`
	AssignedBy     string              `json:"assigned_by,omitempty"`
	AssignedAt     time.Time           `json:"assigned_at"`
	CanDeletePosts bool                `json:"can_delete_posts"`
	CanBanUsers    bool                `json:"can_ban_users"`
	CanEditRules   bool                `json:"can_edit_rules"`
}

type ReportDTO struct {
	ID           uuid.UUID  `json:"id"`
	SubforumID   uuid.UUID  `json:"subforum"`
	SubforumName string     `json:"subforum_name"`
	Reporter     string     `json:"reporter"`
	Reason       string     `json:"reason"`
	Details      string     `json:"details"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	ReviewedAt   *time.Time `json:"reviewed_at,omitempty"`
}

type StatsDTO struct {
	SubforumID          uuid.UUID `json:"subforum_id"`
	PostsToday          int       `json:"posts_today"`
	PostsThisWeek       int       `json:"posts_this_week"`
	TotalPosts          int       `json:"total_posts"`
	CommentsToday       int       `json:"comments_today"`
	TotalComments       int       `json:"total_comments"`
	ActiveUsersThisWeek int       `json:"active_users_this_week"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// SubscribeDTO mirrors ToggleDTO but distinguishes the duplicate case: a
// second subscribe reports AlreadySubscribed without touching the counter.
type SubscribeDTO struct {
	Subscribed        bool `json:"subscribed"`
	AlreadySubscribed bool `json:"already_subscribed,omitempty"`
}

type PaginatedPostsDTO struct {
	Posts      []content.PostDTO `json:"posts"`
	Page       int               `json:"page"`
	PerPage    int               `json:"per_page"`
	TotalPosts int               `json:"total_posts"`
	TotalPages int               `json:"total_pages"`
}
