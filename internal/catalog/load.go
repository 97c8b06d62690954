package catalog

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed data/*.json
var dataFS embed.FS

// catalogs holds the loaded, validated catalog data with lookup indices.
type catalogs struct {
	exercises  []Exercise
	challenges []ChallengeDef
	tracks     []Track
	modules    []Module

	challengesByCategory map[Category][]ChallengeDef
	tracksByCategory     map[Category]*Track
	rewardByTaskID       map[string]int
	taskCategory         map[string]Category
}

// c is the package-level catalog singleton, built by init().
var c *catalogs

func init() {
	loaded, err := load()
	if err != nil {
		panic(fmt.Sprintf("catalog: %v", err))
	}
	c = loaded
}

func load() (*catalogs, error) {
	cat := &catalogs{
		challengesByCategory: make(map[Category][]ChallengeDef),
		tracksByCategory:     make(map[Category]*Track),
		rewardByTaskID:       make(map[string]int),
		taskCategory:         make(map[string]Category),
	}

	if err := loadFile("data/exercises.json", exercisesSchema, &cat.exercises); err != nil {
		return nil, err
	}
	if err := loadFile("data/challenges.json", challengesSchema, &cat.challenges); err != nil {
		return nil, err
	}
	if err := loadFile("data/tracks.json", tracksSchema, &cat.tracks); err != nil {
		return nil, err
	}
	if err := loadFile("data/modules.json", modulesSchema, &cat.modules); err != nil {
		return nil, err
	}

	for _, ch := range cat.challenges {
		cat.challengesByCategory[ch.Category] = append(cat.challengesByCategory[ch.Category], ch)
	}

	for i := range cat.tracks {
		tr := &cat.tracks[i]
		if _, dup := cat.tracksByCategory[tr.Category]; dup {
			return nil, fmt.Errorf("duplicate track for category %q", tr.Category)
		}
		cat.tracksByCategory[tr.Category] = tr
		for _, task := range tr.Tasks {
			if _, dup := cat.rewardByTaskID[task.ID]; dup {
				return nil, fmt.Errorf("duplicate task id %q", task.ID)
			}
			cat.rewardByTaskID[task.ID] = task.XPReward
			cat.taskCategory[task.ID] = tr.Category
		}
	}

	seen := make(map[string]bool)
	for _, ex := range cat.exercises {
		if seen[ex.ID] {
			return nil, fmt.Errorf("duplicate exercise id %q", ex.ID)
		}
		seen[ex.ID] = true
	}

	return cat, nil
}

// loadFile reads an embedded catalog file, validates it against schema, and
// unmarshals it into out.
func loadFile(name string, schema map[string]any, out any) error {
	raw, err := dataFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}

	compiled, err := compileSchema(name, schema)
	if err != nil {
		return fmt.Errorf("compile schema for %s: %w", name, err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("validate %s: %w", name, err)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("unmarshal %s: %w", name, err)
	}
	return nil
}

// compileSchema compiles an in-code schema definition.
// The jsonschema library expects a parsed JSON value, not raw bytes, so the
// definition is round-tripped through encoding/json first.
func compileSchema(name string, def map[string]any) (*jsonschema.Schema, error) {
	defBytes, err := json.Marshal(def)
	if err != nil {
		return nil, fmt.Errorf("marshal definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse definition: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s", name)
	if err := compiler.AddResource(url, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return compiler.Compile(url)
}
