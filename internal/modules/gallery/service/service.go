package service

import (
	"context"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/zaheerabbaspac-hue/PAC/internal/entity"
	"github.com/zaheerabbaspac-hue/PAC/internal/modules/gallery/repository"
	"github.com/zaheerabbaspac-hue/PAC/pkg/apperror"
	"github.com/zaheerabbaspac-hue/PAC/pkg/storage"
)

type GalleryService interface {
	Upload(ctx context.Context, uploadedBy uuid.UUID, r io.Reader, fileName, caption string) (*entity.GalleryImage, error)
	List(ctx context.Context) ([]entity.GalleryImage, error)
	Remove(ctx context.Context, id uuid.UUID) error
	CleanupOrphans(ctx context.Context) error
}

type galleryService struct {
	repo    repository.GalleryRepository
	storage storage.ImageStorage
	folder  string
}

func NewGalleryService(repo repository.GalleryRepository, store storage.ImageStorage, folder string) GalleryService {
	if folder == "" {
		folder = "gallery"
	}
	return &galleryService{repo: repo, storage: store, folder: folder}
}

func (s *galleryService) Upload(ctx context.Context, uploadedBy uuid.UUID, r io.Reader, fileName, caption string) (*entity.GalleryImage, error) {
	if s.storage == nil {
		return nil, apperror.New(http.StatusServiceUnavailable, "image storage is not configured", apperror.ErrInternal)
	}

	url, err := s.storage.UploadImage(ctx, r, s.folder, fileName)
	if err != nil {
		return nil, err
	}

	image := &entity.GalleryImage{
		URL:        url,
		Caption:    caption,
		UploadedBy: uploadedBy,
	}
	if err := s.repo.Create(ctx, image); err != nil {
		return nil, err
	}
	return image, nil
}

func (s *galleryService) List(ctx context.Context) ([]entity.GalleryImage, error) {
	return s.repo.FindVisible(ctx)
}

// Remove hides the image immediately; the hosted file is reaped later by the
// cleanup job so a slow storage call never blocks the request.
func (s *galleryService) Remove(ctx context.Context, id uuid.UUID) error {
	return s.repo.MarkOrphaned(ctx, id)
}

// CleanupOrphans deletes orphaned images from storage and then drops the
// rows. Rows whose storage delete fails are kept for the next run.
func (s *galleryService) CleanupOrphans(ctx context.Context) error {
	orphans, err := s.repo.FindOrphaned(ctx)
	if err != nil {
		return err
	}

	for _, image := range orphans {
		if s.storage != nil {
			if err := s.storage.DeleteImage(ctx, image.URL); err != nil {
				log.Printf("gallery: failed to delete %s from storage: %v", image.ID, err)
				continue
			}
		}
		if err := s.repo.Delete(ctx, image.ID); err != nil {
			log.Printf("gallery: failed to drop orphan row %s: %v", image.ID, err)
		}
	}
	return nil
}
