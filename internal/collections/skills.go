package collections

import (
	"context"
	"strings"
	"sync/atomic"

	"github.com/huddleapp/huddle-client/internal/model"
	"github.com/huddleapp/huddle-client/internal/optimistic"
)

// Skills is the optimistic view of the profile's skill list. Skill names
// are unique case-insensitively; the duplicate check runs before the
// optimistic apply, so a rejected add never needs a rollback.
type Skills struct {
	api SkillsAPI
	col *optimistic.Collection[model.Skill]
	tmp atomic.Int64
}

func NewSkills(api SkillsAPI, initial model.SkillList) *Skills {
	return &Skills{
		api: api,
		col: optimistic.NewCollection[model.Skill](initial),
	}
}

func (s *Skills) Items() model.SkillList {
	return s.col.Items()
}

func (s *Skills) Add(ctx context.Context, name string) (model.Skill, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Skill{}, &model.ValidationError{Reason: "skill name cannot be empty"}
	}

	for _, existing := range s.col.Items() {
		if strings.EqualFold(existing.Name, name) {
			return model.Skill{}, &model.ValidationError{Reason: "skill " + existing.Name + " already exists"}
		}
	}

	// local placeholder ID until the server assigns the canonical one
	skill := model.Skill{ID: -s.tmp.Add(1), Name: name}

	return s.col.Add(ctx, skill, func(ctx context.Context, sk model.Skill) (model.Skill, error) {
		return s.api.CreateSkill(ctx, model.Skill{Name: sk.Name})
	})
}

func (s *Skills) Remove(ctx context.Context, id int64) error {
	return s.col.Remove(ctx, id, func(ctx context.Context) error {
		return s.api.DeleteSkill(ctx, id)
	})
}
