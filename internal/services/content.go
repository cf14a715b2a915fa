package services

import (
	"context"
	"strings"

	"github.com/Ashupap/ShorelineVision-sub000/types"
)

// ContentRepository defines persistence operations for website copy and
// site settings.
type ContentRepository interface {
	ListBlocks(ctx context.Context, section string) ([]types.ContentBlock, error)
	UpsertBlock(ctx context.Context, block types.ContentBlock) (types.ContentBlock, error)
	DeleteBlock(ctx context.Context, id int) error
	ListSettings(ctx context.Context) ([]types.Setting, error)
	PutSetting(ctx context.Context, key, value string) (types.Setting, error)
}

type ContentService struct {
	repo ContentRepository
}

func NewContentService(repo ContentRepository) *ContentService {
	return &ContentService{repo: repo}
}

func (s *ContentService) ListBlocks(ctx context.Context, section string) ([]types.ContentBlock, error) {
	return s.repo.ListBlocks(ctx, strings.TrimSpace(section))
}

// SaveBlock writes the block addressed by its section and key on behalf of
// editorID.
func (s *ContentService) SaveBlock(ctx context.Context, editorID string, block types.ContentBlock) (types.ContentBlock, error) {
	block.Section = strings.TrimSpace(block.Section)
	block.Key = strings.TrimSpace(block.Key)
	if editorID != "" {
		block.UpdatedBy = &editorID
	}
	return s.repo.UpsertBlock(ctx, block)
}

func (s *ContentService) DeleteBlock(ctx context.Context, id int) error {
	return s.repo.DeleteBlock(ctx, id)
}

// Settings returns every site setting keyed by name.
func (s *ContentService) Settings(ctx context.Context) (map[string]string, error) {
	settings, err := s.repo.ListSettings(ctx)
	if err != nil {
		return nil, err
	}
	values := make(map[string]string, len(settings))
	for _, setting := range settings {
		values[setting.Key] = setting.Value
	}
	return values, nil
}

func (s *ContentService) PutSetting(ctx context.Context, key, value string) (types.Setting, error) {
	return s.repo.PutSetting(ctx, strings.TrimSpace(key), value)
}
