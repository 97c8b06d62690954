package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LeaderboardEntry is one row of the global standings. Seeded rows represent
// remote players; the local learner is merged in at query time from the
// profile.
type LeaderboardEntry struct {
	ent.Schema
}

func (LeaderboardEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").NotEmpty().Unique(),
		field.Int("xp").Default(0).NonNegative(),
		field.Int("level").Default(1).Positive(),
		field.Int("streak").Default(0).NonNegative(),
		field.String("badge").NotEmpty(),
	}
}

func (LeaderboardEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("xp"),
	}
}
