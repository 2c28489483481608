package collections

import (
	"context"
	"sync/atomic"

	"github.com/huddleapp/huddle-client/internal/model"
	"github.com/huddleapp/huddle-client/internal/optimistic"
)

// Friends is the optimistic view of the friends list. The list is
// order-sensitive: a failed removal restores the friend at its original
// index, not at the end.
type Friends struct {
	api FriendsAPI
	col *optimistic.Collection[model.Friend]
	tmp atomic.Int64
}

func NewFriends(api FriendsAPI, initial model.FriendList) *Friends {
	return &Friends{
		api: api,
		col: optimistic.NewCollection[model.Friend](initial),
	}
}

func (f *Friends) Items() model.FriendList {
	return f.col.Items()
}

func (f *Friends) Add(ctx context.Context, nickname string) (model.Friend, error) {
	if nickname == "" {
		return model.Friend{}, &model.ValidationError{Reason: "nickname cannot be empty"}
	}

	friend := model.Friend{ID: -f.tmp.Add(1), Nickname: nickname}

	return f.col.Add(ctx, friend, func(ctx context.Context, fr model.Friend) (model.Friend, error) {
		return f.api.AddFriend(ctx, model.Friend{Nickname: fr.Nickname})
	})
}

func (f *Friends) Remove(ctx context.Context, id int64) error {
	return f.col.Remove(ctx, id, func(ctx context.Context) error {
		return f.api.DeleteFriend(ctx, id)
	})
}
