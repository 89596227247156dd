package models

// PostWithCounts is the read shape for post listings: the post row extended
// with its reaction counts and the owning subforum's name.
type PostWithCounts struct {
	Post `bun:",extend"`

	LikeCount    int    `bun:"like_count,scanonly"`
	CommentCount int    `bun:"comment_count,scanonly"`
	SubforumName string `bun:"subforum_name,scanonly"`
}
