package db

import (
	"context"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	contentmodels "github.com/AriqGChowdhury/WSU-Forum/internal/content/model"
	identitymodels "github.com/AriqGChowdhury/WSU-Forum/internal/identity/model"
	subforummodels "github.com/AriqGChowdhury/WSU-Forum/internal/subforum/model"
)

type table struct {
	model       any
	foreignKeys []string
}

// tables is ordered so every referenced table exists before the tables
// pointing at it. Deleting a user or subforum cascades through everything
// hanging off it.
var tables = []table{
	{model: (*identitymodels.User)(nil)},
	{model: (*identitymodels.Student)(nil), foreignKeys: []string{
		`("user_id") REFERENCES "users" ("id") ON DELETE CASCADE`,
	}},
	{model: (*identitymodels.Faculty)(nil), foreignKeys: []string{
		`("user_id") REFERENCES "users" ("id") ON DELETE CASCADE`,
	}},
	{model: (*subforummodels.Subforum)(nil), foreignKeys: []string{
		`("creator_id") REFERENCES "users" ("id") ON DELETE CASCADE`,
	}},
	{model: (*subforummodels.SubforumTag)(nil)},
	{model: (*subforummodels.SubforumTagLink)(nil), foreignKeys: []string{
		`("subforum_id") REFERENCES "subforums" ("id") ON DELETE CASCADE`,
		`("tag_id") REFERENCES "subforum_tags" ("id") ON DELETE CASCADE`,
	}},
	{model: (*subforummodels.SubforumModerator)(nil), foreignKeys: []string{
		`("subforum_id") REFERENCES "subforums" ("id") ON DELETE CASCADE`,
		`("user_id") REFERENCES "users" ("id") ON DELETE CASCADE`,
	}},
	{model: (*subforummodels.SubforumSubscription)(nil), foreignKeys: []string{
		`("subforum_id") REFERENCES "subforums" ("id") ON DELETE CASCADE`,
		`("user_id") REFERENCES "users" ("id") ON DELETE CASCADE`,
	}},
	{model: (*subforummodels.SubforumReport)(nil), foreignKeys: []string{
		`("subforum_id") REFERENCES "subforums" ("id") ON DELETE CASCADE`,
		`("reporter_id") REFERENCES "users" ("id") ON DELETE CASCADE`,
	}},
	{model: (*subforummodels.SubforumStat)(nil), foreignKeys: []string{
		`("subforum_id") REFERENCES "subforums" ("id") ON DELETE CASCADE`,
	}},
	{model: (*contentmodels.Post)(nil), foreignKeys: []string{
		`("user_id") REFERENCES "users" ("id") ON DELETE CASCADE`,
		`("subforum_id") REFERENCES "subforums" ("id") ON DELETE CASCADE`,
	}},
	{model: (*contentmodels.Comment)(nil), foreignKeys: []string{
		`("user_id") REFERENCES "users" ("id") ON DELETE CASCADE`,
		`("post_id") REFERENCES "posts" ("id") ON DELETE CASCADE`,
	}},
	{model: (*contentmodels.Like)(nil), foreignKeys: []string{
		`("user_id") REFERENCES "users" ("id") ON DELETE CASCADE`,
		`("post_id") REFERENCES "posts" ("id") ON DELETE CASCADE`,
	}},
	{model: (*contentmodels.SavedPost)(nil), foreignKeys: []string{
		`("user_id") REFERENCES "users" ("id") ON DELETE CASCADE`,
		`("post_id") REFERENCES "posts" ("id") ON DELETE CASCADE`,
	}},
	{model: (*contentmodels.Follow)(nil), foreignKeys: []string{
		`("follower_id") REFERENCES "users" ("id") ON DELETE CASCADE`,
		`("following_id") REFERENCES "users" ("id") ON DELETE CASCADE`,
	}},
}

func RunMigrations(ctx context.Context, db *bun.DB) error {
	for _, t := range tables {
		q := db.NewCreateTable().Model(t.model).IfNotExists()
		for _, fk := range t.foreignKeys {
			q = q.ForeignKey(fk)
		}
		if _, err := q.Exec(ctx); err != nil {
			return errors.Wrap(err, "db.RunMigrations")
		}
	}
	return nil
}
