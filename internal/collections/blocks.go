package collections

import (
	"context"
	"sync/atomic"

	"github.com/huddleapp/huddle-client/internal/model"
	"github.com/huddleapp/huddle-client/internal/optimistic"
)

// Blocks is the optimistic view of the page's layout blocks, an
// order-sensitive list.
type Blocks struct {
	api BlocksAPI
	col *optimistic.Collection[model.Block]
	tmp atomic.Int64
}

func NewBlocks(api BlocksAPI, initial model.BlockList) *Blocks {
	return &Blocks{
		api: api,
		col: optimistic.NewCollection[model.Block](initial),
	}
}

func (b *Blocks) Items() model.BlockList {
	return b.col.Items()
}

func (b *Blocks) Add(ctx context.Context, kind, content string) (model.Block, error) {
	if kind == "" {
		return model.Block{}, &model.ValidationError{Reason: "block kind is required"}
	}

	block := model.Block{
		ID:       -b.tmp.Add(1),
		Kind:     kind,
		Content:  content,
		Position: b.col.Len(),
	}

	return b.col.Add(ctx, block, func(ctx context.Context, bl model.Block) (model.Block, error) {
		return b.api.CreateBlock(ctx, model.Block{Kind: bl.Kind, Content: bl.Content, Position: bl.Position})
	})
}

func (b *Blocks) UpdateContent(ctx context.Context, id int64, content string) error {
	return b.col.Update(ctx, id,
		func(bl model.Block) model.Block {
			bl.Content = content
			return bl
		},
		func(ctx context.Context, bl model.Block) (model.Block, error) {
			return b.api.UpdateBlock(ctx, bl)
		})
}

func (b *Blocks) Remove(ctx context.Context, id int64) error {
	return b.col.Remove(ctx, id, func(ctx context.Context) error {
		return b.api.DeleteBlock(ctx, id)
	})
}
