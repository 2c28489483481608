package collections

import (
	"context"
	"sync/atomic"

	"github.com/huddleapp/huddle-client/internal/model"
	"github.com/huddleapp/huddle-client/internal/optimistic"
)

// Jobs is the optimistic view of the profile's work history.
type Jobs struct {
	api JobsAPI
	col *optimistic.Collection[model.Job]
	tmp atomic.Int64
}

func NewJobs(api JobsAPI, initial model.JobList) *Jobs {
	return &Jobs{
		api: api,
		col: optimistic.NewCollection[model.Job](initial),
	}
}

func (j *Jobs) Items() model.JobList {
	return j.col.Items()
}

func (j *Jobs) Add(ctx context.Context, job model.Job) (model.Job, error) {
	if job.Company == "" || job.Title == "" {
		return model.Job{}, &model.ValidationError{Reason: "job company and title are required"}
	}

	job.ID = -j.tmp.Add(1)

	return j.col.Add(ctx, job, func(ctx context.Context, jb model.Job) (model.Job, error) {
		jb.ID = 0
		return j.api.CreateJob(ctx, jb)
	})
}

// Update applies the field change locally first; a failed confirm restores
// the exact prior job value.
func (j *Jobs) Update(ctx context.Context, id int64, apply func(model.Job) model.Job) error {
	return j.col.Update(ctx, id, apply,
		func(ctx context.Context, jb model.Job) (model.Job, error) {
			return j.api.UpdateJob(ctx, jb)
		})
}

func (j *Jobs) Remove(ctx context.Context, id int64) error {
	return j.col.Remove(ctx, id, func(ctx context.Context) error {
		return j.api.DeleteJob(ctx, id)
	})
}
