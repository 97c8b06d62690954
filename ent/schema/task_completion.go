package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TaskCompletion records one completed track task for an identity.
// The (user_id, category, task_id) key gives the duplicate guard teeth at
// the storage layer too.
type TaskCompletion struct {
	ent.Schema
}

func (TaskCompletion) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").NotEmpty(),
		field.String("category").NotEmpty(),
		field.String("task_id").NotEmpty(),
		field.Int("xp_reward").Default(0).NonNegative(),
		field.Time("completed_at").Default(time.Now),
	}
}

func (TaskCompletion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "category", "task_id").Unique(),
		index.Fields("user_id"),
	}
}
