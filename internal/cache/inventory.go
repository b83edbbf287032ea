package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix    = "user:%d"
	BlogKeyPrefix    = "blog:%d"
	BlogsListKeyName = "blogs:all"
)

const (
	UserTTL      = 5 * time.Minute
	BlogTTL      = 10 * time.Minute
	BlogsListTTL = 1 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func BlogKey(blogID uint) string {
	return fmt.Sprintf(BlogKeyPrefix, blogID)
}

func BlogsListKey() string {
	return BlogsListKeyName
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidateBlog(ctx context.Context, blogID uint) {
	Invalidate(ctx, BlogKey(blogID))
}

func InvalidateBlogsList(ctx context.Context) {
	Invalidate(ctx, BlogsListKey())
}
