package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Profile is the per-identity learner record: XP ledger totals, streak, and
// the weekly exercise cursor. One row per user.
type Profile struct {
	ent.Schema
}

func (Profile) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").NotEmpty().Unique(),
		field.Int("xp").Default(0).NonNegative(),
		field.Int("total_earned_xp").Default(0).NonNegative(),
		field.Int("streak").Default(0).NonNegative(),
		field.Int("completed_modules").Default(0).NonNegative(),
		field.Int("exercises_completed").Default(0).NonNegative(),
		field.Time("week_start").Default(time.Now),
		field.Time("last_active").Optional().Nillable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Profile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id").Unique(),
	}
}
