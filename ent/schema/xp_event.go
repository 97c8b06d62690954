package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// XPEvent records one XP grant: a task reward or a weekly challenge bonus.
type XPEvent struct {
	ent.Schema
}

func (XPEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (XPEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").NotEmpty(),
		field.String("source").NotEmpty(),
		field.Int("amount").NonNegative(),
		field.String("category").NotEmpty(),
		field.String("ref_id").NotEmpty(),
		field.String("session_id").NotEmpty(),
	}
}

func (XPEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("source"),
		index.Fields("session_id"),
	}
}
