package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/playtube-app/playtube/internal/domain/entity"
	usecasecontract "github.com/playtube-app/playtube/internal/usecase/contract"
)

type VideoCacheStore struct {
	rdb       *redis.Client
	detailTTL time.Duration
	listTTL   time.Duration
}

func NewVideoCacheStore(rdb *redis.Client) *VideoCacheStore {
	return &VideoCacheStore{
		rdb:       rdb,
		detailTTL: 30 * time.Minute,
		listTTL:   10 * time.Minute,
	}
}

var _ usecasecontract.IVideoCache = (*VideoCacheStore)(nil)

func videoDetailKey(videoID string) string { return fmt.Sprintf("video:detail:%s", videoID) }

func (c *VideoCacheStore) GetVideoDetail(ctx context.Context, videoID string) (*entity.VideoDetail, bool, error) {
	b, err := c.rdb.Get(ctx, videoDetailKey(videoID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	var detail entity.VideoDetail
	if err := json.Unmarshal(b, &detail); err != nil {
		return nil, false, nil
	}
	return &detail, true, nil
}

func (c *VideoCacheStore) SetVideoDetail(ctx context.Context, videoID string, detail *entity.VideoDetail) error {
	data, err := json.Marshal(detail)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, videoDetailKey(videoID), data, c.detailTTL).Err()
}

func (c *VideoCacheStore) InvalidateVideoDetail(ctx context.Context, videoID string) error {
	return c.rdb.Del(ctx, videoDetailKey(videoID)).Err()
}

func (c *VideoCacheStore) GetVideoList(ctx context.Context, key string) ([]entity.VideoListItem, bool, error) {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	var items []entity.VideoListItem
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, false, nil
	}
	return items, true, nil
}

func (c *VideoCacheStore) SetVideoList(ctx context.Context, key string, items []entity.VideoListItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, data, c.listTTL).Err()
}

func (c *VideoCacheStore) InvalidateVideoLists(ctx context.Context) error {
	iter := c.rdb.Scan(ctx, 0, "videos:list:*", 1000).Iterator()
	pipe := c.rdb.Pipeline()
	n := 0
	for iter.Next(ctx) {
		pipe.Del(ctx, iter.Val())
		n++
		if n%200 == 0 {
			if _, err := pipe.Exec(ctx); err != nil {
				return err
			}
		}
	}
	if err := iter.Err(); err != nil {
		return err
	}
	_, _ = pipe.Exec(ctx)
	return nil
}
