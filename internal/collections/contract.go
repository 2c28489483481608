//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package collections

import (
	"context"

	"github.com/huddleapp/huddle-client/internal/model"
)

type SkillsAPI interface {
	CreateSkill(ctx context.Context, skill model.Skill) (model.Skill, error)
	DeleteSkill(ctx context.Context, id int64) error
}

type FriendsAPI interface {
	AddFriend(ctx context.Context, friend model.Friend) (model.Friend, error)
	DeleteFriend(ctx context.Context, id int64) error
}

type BlocksAPI interface {
	CreateBlock(ctx context.Context, block model.Block) (model.Block, error)
	UpdateBlock(ctx context.Context, block model.Block) (model.Block, error)
	DeleteBlock(ctx context.Context, id int64) error
}

type JobsAPI interface {
	CreateJob(ctx context.Context, job model.Job) (model.Job, error)
	UpdateJob(ctx context.Context, job model.Job) (model.Job, error)
	DeleteJob(ctx context.Context, id int64) error
}
