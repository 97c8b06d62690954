package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChallengeState is a per-identity weekly challenge row. Rows from an older
// week are superseded when the catalog is re-issued at the boundary.
type ChallengeState struct {
	ent.Schema
}

func (ChallengeState) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").NotEmpty(),
		field.String("challenge_id").NotEmpty(),
		field.String("category").NotEmpty(),
		field.Int("current").Default(0).NonNegative(),
		field.Int("target").Positive(),
		field.Int("xp_reward").Default(0).NonNegative(),
		field.Bool("completed").Default(false),
		field.Time("week_start"),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (ChallengeState) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "challenge_id").Unique(),
		index.Fields("user_id"),
		index.Fields("category"),
	}
}
