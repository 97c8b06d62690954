// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ChallengeStatesColumns holds the columns for the "challenge_states" table.
	ChallengeStatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "challenge_id", Type: field.TypeString},
		{Name: "category", Type: field.TypeString},
		{Name: "current", Type: field.TypeInt, Default: 0},
		{Name: "target", Type: field.TypeInt},
		{Name: "xp_reward", Type: field.TypeInt, Default: 0},
		{Name: "completed", Type: field.TypeBool, Default: false},
		{Name: "week_start", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ChallengeStatesTable holds the schema information for the "challenge_states" table.
	ChallengeStatesTable = &schema.Table{
		Name:       "challenge_states",
		Columns:    ChallengeStatesColumns,
		PrimaryKey: []*schema.Column{ChallengeStatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "challengestate_user_id_challenge_id",
				Unique:  true,
				Columns: []*schema.Column{ChallengeStatesColumns[1], ChallengeStatesColumns[2]},
			},
			{
				Name:    "challengestate_user_id",
				Unique:  false,
				Columns: []*schema.Column{ChallengeStatesColumns[1]},
			},
			{
				Name:    "challengestate_category",
				Unique:  false,
				Columns: []*schema.Column{ChallengeStatesColumns[3]},
			},
		},
	}
	// LeaderboardEntriesColumns holds the columns for the "leaderboard_entries" table.
	LeaderboardEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "xp", Type: field.TypeInt, Default: 0},
		{Name: "level", Type: field.TypeInt, Default: 1},
		{Name: "streak", Type: field.TypeInt, Default: 0},
		{Name: "badge", Type: field.TypeString},
	}
	// LeaderboardEntriesTable holds the schema information for the "leaderboard_entries" table.
	LeaderboardEntriesTable = &schema.Table{
		Name:       "leaderboard_entries",
		Columns:    LeaderboardEntriesColumns,
		PrimaryKey: []*schema.Column{LeaderboardEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "leaderboardentry_xp",
				Unique:  false,
				Columns: []*schema.Column{LeaderboardEntriesColumns[2]},
			},
		},
	}
	// ProfilesColumns holds the columns for the "profiles" table.
	ProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "xp", Type: field.TypeInt, Default: 0},
		{Name: "total_earned_xp", Type: field.TypeInt, Default: 0},
		{Name: "streak", Type: field.TypeInt, Default: 0},
		{Name: "completed_modules", Type: field.TypeInt, Default: 0},
		{Name: "exercises_completed", Type: field.TypeInt, Default: 0},
		{Name: "week_start", Type: field.TypeTime},
		{Name: "last_active", Type: field.TypeTime, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProfilesTable holds the schema information for the "profiles" table.
	ProfilesTable = &schema.Table{
		Name:       "profiles",
		Columns:    ProfilesColumns,
		PrimaryKey: []*schema.Column{ProfilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "profile_user_id",
				Unique:  true,
				Columns: []*schema.Column{ProfilesColumns[1]},
			},
		},
	}
	// TaskCompletionsColumns holds the columns for the "task_completions" table.
	TaskCompletionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "category", Type: field.TypeString},
		{Name: "task_id", Type: field.TypeString},
		{Name: "xp_reward", Type: field.TypeInt, Default: 0},
		{Name: "completed_at", Type: field.TypeTime},
	}
	// TaskCompletionsTable holds the schema information for the "task_completions" table.
	TaskCompletionsTable = &schema.Table{
		Name:       "task_completions",
		Columns:    TaskCompletionsColumns,
		PrimaryKey: []*schema.Column{TaskCompletionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "taskcompletion_user_id_category_task_id",
				Unique:  true,
				Columns: []*schema.Column{TaskCompletionsColumns[1], TaskCompletionsColumns[2], TaskCompletionsColumns[3]},
			},
			{
				Name:    "taskcompletion_user_id",
				Unique:  false,
				Columns: []*schema.Column{TaskCompletionsColumns[1]},
			},
		},
	}
	// XpEventsColumns holds the columns for the "xp_events" table.
	XpEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "source", Type: field.TypeString},
		{Name: "amount", Type: field.TypeInt},
		{Name: "category", Type: field.TypeString},
		{Name: "ref_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
	}
	// XpEventsTable holds the schema information for the "xp_events" table.
	XpEventsTable = &schema.Table{
		Name:       "xp_events",
		Columns:    XpEventsColumns,
		PrimaryKey: []*schema.Column{XpEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "xpevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{XpEventsColumns[1]},
			},
			{
				Name:    "xpevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{XpEventsColumns[2]},
			},
			{
				Name:    "xpevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{XpEventsColumns[3]},
			},
			{
				Name:    "xpevent_source",
				Unique:  false,
				Columns: []*schema.Column{XpEventsColumns[4]},
			},
			{
				Name:    "xpevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{XpEventsColumns[8]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ChallengeStatesTable,
		LeaderboardEntriesTable,
		ProfilesTable,
		TaskCompletionsTable,
		XpEventsTable,
	}
)

func init() {
}
