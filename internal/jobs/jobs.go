package jobs

import (
	"context"

	feeSvc "github.com/zaheerabbaspac-hue/PAC/internal/modules/fee/service"
	gallerySvc "github.com/zaheerabbaspac-hue/PAC/internal/modules/gallery/service"
)

// FeeOverdueJob flips pending fee records past their due date to overdue.
type FeeOverdueJob struct {
	fees     feeSvc.FeeService
	schedule string
}

func NewFeeOverdueJob(fees feeSvc.FeeService, schedule string) *FeeOverdueJob {
	return &FeeOverdueJob{fees: fees, schedule: schedule}
}

func (j *FeeOverdueJob) Name() string     { return "fee-overdue-sweep" }
func (j *FeeOverdueJob) Schedule() string { return j.schedule }

func (j *FeeOverdueJob) Run(ctx context.Context) error {
	return j.fees.SweepOverdue(ctx)
}

// GalleryCleanupJob reaps removed gallery images from hosted storage.
type GalleryCleanupJob struct {
	gallery  gallerySvc.GalleryService
	schedule string
}

func NewGalleryCleanupJob(gallery gallerySvc.GalleryService, schedule string) *GalleryCleanupJob {
	return &GalleryCleanupJob{gallery: gallery, schedule: schedule}
}

func (j *GalleryCleanupJob) Name() string     { return "gallery-orphan-cleanup" }
func (j *GalleryCleanupJob) Schedule() string { return j.schedule }

func (j *GalleryCleanupJob) Run(ctx context.Context) error {
	return j.gallery.CleanupOrphans(ctx)
}
