package service

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"

	"gorm.io/gorm"

	"github.com/zaheerabbaspac-hue/PAC/internal/entity"
	realtime "github.com/zaheerabbaspac-hue/PAC/internal/modules/realtime/service"
	"github.com/zaheerabbaspac-hue/PAC/internal/modules/settings/repository"
	"github.com/zaheerabbaspac-hue/PAC/pkg/apperror"
	"github.com/zaheerabbaspac-hue/PAC/pkg/storage"
)

// KeySchoolLogo is where the hosted logo URL lives.
const KeySchoolLogo = "school_logo"

type SettingsService interface {
	Get(ctx context.Context, key string) (*entity.Setting, error)
	Set(ctx context.Context, key, value string) error
	All(ctx context.Context) ([]entity.Setting, error)
	UploadLogo(ctx context.Context, r io.Reader, fileName string) (string, error)
}

type settingsService struct {
	repo      repository.SettingsRepository
	storage   storage.ImageStorage
	publisher realtime.SnapshotPublisher
}

func NewSettingsService(repo repository.SettingsRepository, store storage.ImageStorage, publisher realtime.SnapshotPublisher) SettingsService {
	return &settingsService{repo: repo, storage: store, publisher: publisher}
}

func (s *settingsService) Get(ctx context.Context, key string) (*entity.Setting, error) {
	setting, err := s.repo.Get(ctx, key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(http.StatusNotFound, "setting not found", apperror.ErrNotFound)
		}
		return nil, err
	}
	return setting, nil
}

func (s *settingsService) Set(ctx context.Context, key, value string) error {
	if err := s.repo.Set(ctx, key, value); err != nil {
		return err
	}
	s.publishSnapshot(ctx)
	return nil
}

func (s *settingsService) All(ctx context.Context) ([]entity.Setting, error) {
	return s.repo.All(ctx)
}

// UploadLogo stores the image and records its URL under the logo key. The old
// logo file is left to the storage provider; overwriting the key is enough.
func (s *settingsService) UploadLogo(ctx context.Context, r io.Reader, fileName string) (string, error) {
	if s.storage == nil {
		return "", apperror.New(http.StatusServiceUnavailable, "image storage is not configured", apperror.ErrInternal)
	}

	url, err := s.storage.UploadImage(ctx, r, "logo", fileName)
	if err != nil {
		return "", err
	}
	if err := s.Set(ctx, KeySchoolLogo, url); err != nil {
		return "", err
	}
	return url, nil
}

func (s *settingsService) publishSnapshot(ctx context.Context) {
	if s.publisher == nil {
		return
	}
	settings, err := s.repo.All(ctx)
	if err != nil {
		log.Printf("settings: failed to load snapshot for publish: %v", err)
		return
	}
	s.publisher.Publish(ctx, realtime.ChannelSettings, settings)
}
