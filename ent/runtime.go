// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/asengupta/cyberquest/ent/challengestate"
	"github.com/asengupta/cyberquest/ent/leaderboardentry"
	"github.com/asengupta/cyberquest/ent/profile"
	"github.com/asengupta/cyberquest/ent/schema"
	"github.com/asengupta/cyberquest/ent/taskcompletion"
	"github.com/asengupta/cyberquest/ent/xpevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	challengestateFields := schema.ChallengeState{}.Fields()
	_ = challengestateFields
	// challengestateDescUserID is the schema descriptor for user_id field.
	challengestateDescUserID := challengestateFields[0].Descriptor()
	// challengestate.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	challengestate.UserIDValidator = challengestateDescUserID.Validators[0].(func(string) error)
	// challengestateDescChallengeID is the schema descriptor for challenge_id field.
	challengestateDescChallengeID := challengestateFields[1].Descriptor()
	// challengestate.ChallengeIDValidator is a validator for the "challenge_id" field. It is called by the builders before save.
	challengestate.ChallengeIDValidator = challengestateDescChallengeID.Validators[0].(func(string) error)
	// challengestateDescCategory is the schema descriptor for category field.
	challengestateDescCategory := challengestateFields[2].Descriptor()
	// challengestate.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	challengestate.CategoryValidator = challengestateDescCategory.Validators[0].(func(string) error)
	// challengestateDescCurrent is the schema descriptor for current field.
	challengestateDescCurrent := challengestateFields[3].Descriptor()
	// challengestate.DefaultCurrent holds the default value on creation for the current field.
	challengestate.DefaultCurrent = challengestateDescCurrent.Default.(int)
	// challengestate.CurrentValidator is a validator for the "current" field. It is called by the builders before save.
	challengestate.CurrentValidator = challengestateDescCurrent.Validators[0].(func(int) error)
	// challengestateDescTarget is the schema descriptor for target field.
	challengestateDescTarget := challengestateFields[4].Descriptor()
	// challengestate.TargetValidator is a validator for the "target" field. It is called by the builders before save.
	challengestate.TargetValidator = challengestateDescTarget.Validators[0].(func(int) error)
	// challengestateDescXpReward is the schema descriptor for xp_reward field.
	challengestateDescXpReward := challengestateFields[5].Descriptor()
	// challengestate.DefaultXpReward holds the default value on creation for the xp_reward field.
	challengestate.DefaultXpReward = challengestateDescXpReward.Default.(int)
	// challengestate.XpRewardValidator is a validator for the "xp_reward" field. It is called by the builders before save.
	challengestate.XpRewardValidator = challengestateDescXpReward.Validators[0].(func(int) error)
	// challengestateDescCompleted is the schema descriptor for completed field.
	challengestateDescCompleted := challengestateFields[6].Descriptor()
	// challengestate.DefaultCompleted holds the default value on creation for the completed field.
	challengestate.DefaultCompleted = challengestateDescCompleted.Default.(bool)
	// challengestateDescUpdatedAt is the schema descriptor for updated_at field.
	challengestateDescUpdatedAt := challengestateFields[8].Descriptor()
	// challengestate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	challengestate.DefaultUpdatedAt = challengestateDescUpdatedAt.Default.(func() time.Time)
	// challengestate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	challengestate.UpdateDefaultUpdatedAt = challengestateDescUpdatedAt.UpdateDefault.(func() time.Time)
	leaderboardentryFields := schema.LeaderboardEntry{}.Fields()
	_ = leaderboardentryFields
	// leaderboardentryDescName is the schema descriptor for name field.
	leaderboardentryDescName := leaderboardentryFields[0].Descriptor()
	// leaderboardentry.NameValidator is a validator for the "name" field. It is called by the builders before save.
	leaderboardentry.NameValidator = leaderboardentryDescName.Validators[0].(func(string) error)
	// leaderboardentryDescXp is the schema descriptor for xp field.
	leaderboardentryDescXp := leaderboardentryFields[1].Descriptor()
	// leaderboardentry.DefaultXp holds the default value on creation for the xp field.
	leaderboardentry.DefaultXp = leaderboardentryDescXp.Default.(int)
	// leaderboardentry.XpValidator is a validator for the "xp" field. It is called by the builders before save.
	leaderboardentry.XpValidator = leaderboardentryDescXp.Validators[0].(func(int) error)
	// leaderboardentryDescLevel is the schema descriptor for level field.
	leaderboardentryDescLevel := leaderboardentryFields[2].Descriptor()
	// leaderboardentry.DefaultLevel holds the default value on creation for the level field.
	leaderboardentry.DefaultLevel = leaderboardentryDescLevel.Default.(int)
	// leaderboardentry.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	leaderboardentry.LevelValidator = leaderboardentryDescLevel.Validators[0].(func(int) error)
	// leaderboardentryDescStreak is the schema descriptor for streak field.
	leaderboardentryDescStreak := leaderboardentryFields[3].Descriptor()
	// leaderboardentry.DefaultStreak holds the default value on creation for the streak field.
	leaderboardentry.DefaultStreak = leaderboardentryDescStreak.Default.(int)
	// leaderboardentry.StreakValidator is a validator for the "streak" field. It is called by the builders before save.
	leaderboardentry.StreakValidator = leaderboardentryDescStreak.Validators[0].(func(int) error)
	// leaderboardentryDescBadge is the schema descriptor for badge field.
	leaderboardentryDescBadge := leaderboardentryFields[4].Descriptor()
	// leaderboardentry.BadgeValidator is a validator for the "badge" field. It is called by the builders before save.
	leaderboardentry.BadgeValidator = leaderboardentryDescBadge.Validators[0].(func(string) error)
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescUserID is the schema descriptor for user_id field.
	profileDescUserID := profileFields[0].Descriptor()
	// profile.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	profile.UserIDValidator = profileDescUserID.Validators[0].(func(string) error)
	// profileDescXp is the schema descriptor for xp field.
	profileDescXp := profileFields[1].Descriptor()
	// profile.DefaultXp holds the default value on creation for the xp field.
	profile.DefaultXp = profileDescXp.Default.(int)
	// profile.XpValidator is a validator for the "xp" field. It is called by the builders before save.
	profile.XpValidator = profileDescXp.Validators[0].(func(int) error)
	// profileDescTotalEarnedXp is the schema descriptor for total_earned_xp field.
	profileDescTotalEarnedXp := profileFields[2].Descriptor()
	// profile.DefaultTotalEarnedXp holds the default value on creation for the total_earned_xp field.
	profile.DefaultTotalEarnedXp = profileDescTotalEarnedXp.Default.(int)
	// profile.TotalEarnedXpValidator is a validator for the "total_earned_xp" field. It is called by the builders before save.
	profile.TotalEarnedXpValidator = profileDescTotalEarnedXp.Validators[0].(func(int) error)
	// profileDescStreak is the schema descriptor for streak field.
	profileDescStreak := profileFields[3].Descriptor()
	// profile.DefaultStreak holds the default value on creation for the streak field.
	profile.DefaultStreak = profileDescStreak.Default.(int)
	// profile.StreakValidator is a validator for the "streak" field. It is called by the builders before save.
	profile.StreakValidator = profileDescStreak.Validators[0].(func(int) error)
	// profileDescCompletedModules is the schema descriptor for completed_modules field.
	profileDescCompletedModules := profileFields[4].Descriptor()
	// profile.DefaultCompletedModules holds the default value on creation for the completed_modules field.
	profile.DefaultCompletedModules = profileDescCompletedModules.Default.(int)
	// profile.CompletedModulesValidator is a validator for the "completed_modules" field. It is called by the builders before save.
	profile.CompletedModulesValidator = profileDescCompletedModules.Validators[0].(func(int) error)
	// profileDescExercisesCompleted is the schema descriptor for exercises_completed field.
	profileDescExercisesCompleted := profileFields[5].Descriptor()
	// profile.DefaultExercisesCompleted holds the default value on creation for the exercises_completed field.
	profile.DefaultExercisesCompleted = profileDescExercisesCompleted.Default.(int)
	// profile.ExercisesCompletedValidator is a validator for the "exercises_completed" field. It is called by the builders before save.
	profile.ExercisesCompletedValidator = profileDescExercisesCompleted.Validators[0].(func(int) error)
	// profileDescWeekStart is the schema descriptor for week_start field.
	profileDescWeekStart := profileFields[6].Descriptor()
	// profile.DefaultWeekStart holds the default value on creation for the week_start field.
	profile.DefaultWeekStart = profileDescWeekStart.Default.(func() time.Time)
	// profileDescUpdatedAt is the schema descriptor for updated_at field.
	profileDescUpdatedAt := profileFields[8].Descriptor()
	// profile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	profile.DefaultUpdatedAt = profileDescUpdatedAt.Default.(func() time.Time)
	// profile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	profile.UpdateDefaultUpdatedAt = profileDescUpdatedAt.UpdateDefault.(func() time.Time)
	taskcompletionFields := schema.TaskCompletion{}.Fields()
	_ = taskcompletionFields
	// taskcompletionDescUserID is the schema descriptor for user_id field.
	taskcompletionDescUserID := taskcompletionFields[0].Descriptor()
	// taskcompletion.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	taskcompletion.UserIDValidator = taskcompletionDescUserID.Validators[0].(func(string) error)
	// taskcompletionDescCategory is the schema descriptor for category field.
	taskcompletionDescCategory := taskcompletionFields[1].Descriptor()
	// taskcompletion.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	taskcompletion.CategoryValidator = taskcompletionDescCategory.Validators[0].(func(string) error)
	// taskcompletionDescTaskID is the schema descriptor for task_id field.
	taskcompletionDescTaskID := taskcompletionFields[2].Descriptor()
	// taskcompletion.TaskIDValidator is a validator for the "task_id" field. It is called by the builders before save.
	taskcompletion.TaskIDValidator = taskcompletionDescTaskID.Validators[0].(func(string) error)
	// taskcompletionDescXpReward is the schema descriptor for xp_reward field.
	taskcompletionDescXpReward := taskcompletionFields[3].Descriptor()
	// taskcompletion.DefaultXpReward holds the default value on creation for the xp_reward field.
	taskcompletion.DefaultXpReward = taskcompletionDescXpReward.Default.(int)
	// taskcompletion.XpRewardValidator is a validator for the "xp_reward" field. It is called by the builders before save.
	taskcompletion.XpRewardValidator = taskcompletionDescXpReward.Validators[0].(func(int) error)
	// taskcompletionDescCompletedAt is the schema descriptor for completed_at field.
	taskcompletionDescCompletedAt := taskcompletionFields[4].Descriptor()
	// taskcompletion.DefaultCompletedAt holds the default value on creation for the completed_at field.
	taskcompletion.DefaultCompletedAt = taskcompletionDescCompletedAt.Default.(func() time.Time)
	xpeventMixin := schema.XPEvent{}.Mixin()
	xpeventMixinFields0 := xpeventMixin[0].Fields()
	_ = xpeventMixinFields0
	xpeventFields := schema.XPEvent{}.Fields()
	_ = xpeventFields
	// xpeventDescTimestamp is the schema descriptor for timestamp field.
	xpeventDescTimestamp := xpeventMixinFields0[1].Descriptor()
	// xpevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	xpevent.DefaultTimestamp = xpeventDescTimestamp.Default.(func() time.Time)
	// xpeventDescUserID is the schema descriptor for user_id field.
	xpeventDescUserID := xpeventFields[0].Descriptor()
	// xpevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	xpevent.UserIDValidator = xpeventDescUserID.Validators[0].(func(string) error)
	// xpeventDescSource is the schema descriptor for source field.
	xpeventDescSource := xpeventFields[1].Descriptor()
	// xpevent.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	xpevent.SourceValidator = xpeventDescSource.Validators[0].(func(string) error)
	// xpeventDescAmount is the schema descriptor for amount field.
	xpeventDescAmount := xpeventFields[2].Descriptor()
	// xpevent.AmountValidator is a validator for the "amount" field. It is called by the builders before save.
	xpevent.AmountValidator = xpeventDescAmount.Validators[0].(func(int) error)
	// xpeventDescCategory is the schema descriptor for category field.
	xpeventDescCategory := xpeventFields[3].Descriptor()
	// xpevent.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	xpevent.CategoryValidator = xpeventDescCategory.Validators[0].(func(string) error)
	// xpeventDescRefID is the schema descriptor for ref_id field.
	xpeventDescRefID := xpeventFields[4].Descriptor()
	// xpevent.RefIDValidator is a validator for the "ref_id" field. It is called by the builders before save.
	xpevent.RefIDValidator = xpeventDescRefID.Validators[0].(func(string) error)
	// xpeventDescSessionID is the schema descriptor for session_id field.
	xpeventDescSessionID := xpeventFields[5].Descriptor()
	// xpevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	xpevent.SessionIDValidator = xpeventDescSessionID.Validators[0].(func(string) error)
}
