package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zaheerabbaspac-hue/PAC/internal/entity"
	"github.com/zaheerabbaspac-hue/PAC/internal/modules/directory/dto"
	"github.com/zaheerabbaspac-hue/PAC/internal/modules/directory/repository"
	realtime "github.com/zaheerabbaspac-hue/PAC/internal/modules/realtime/service"
)

// DirectoryService manages the class/section registry. Invalid input
// (empty names, unknown ids) makes mutations silent no-ops rather than
// errors, and every applied mutation fans the full directory snapshot out to
// subscribers.
type DirectoryService interface {
	ListClasses(ctx context.Context) ([]entity.Class, error)
	AddClass(ctx context.Context, name, code string) error
	AddSection(ctx context.Context, classID uuid.UUID, name, code string) error
	DeleteClass(ctx context.Context, classID uuid.UUID) error
	DeleteSection(ctx context.Context, classID, sectionID uuid.UUID) error
	ListOptions(ctx context.Context) ([]dto.ClassOption, error)
}

type directoryService struct {
	repo      repository.ClassRepository
	publisher realtime.SnapshotPublisher
}

func NewDirectoryService(repo repository.ClassRepository, publisher realtime.SnapshotPublisher) DirectoryService {
	return &directoryService{repo: repo, publisher: publisher}
}

func (s *directoryService) ListClasses(ctx context.Context) ([]entity.Class, error) {
	return s.repo.FindAll(ctx)
}

func (s *directoryService) AddClass(ctx context.Context, name, code string) error {
	if strings.TrimSpace(name) == "" {
		return nil
	}

	if code == "" {
		code = defaultClassCode(name)
	}

	class := &entity.Class{Name: name, Code: code}
	if err := s.repo.Create(ctx, class); err != nil {
		return err
	}

	s.publishSnapshot(ctx)
	return nil
}

func (s *directoryService) AddSection(ctx context.Context, classID uuid.UUID, name, code string) error {
	if classID == uuid.Nil || strings.TrimSpace(name) == "" {
		return nil
	}

	// Unknown class ids are ignored, matching the delete semantics.
	if _, err := s.repo.FindByID(ctx, classID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	if code == "" {
		code = "S-" + name
	}

	// Duplicate section names within a class are permitted; the option
	// flattening below will then collide on "{class}-{section}".
	section := &entity.Section{ClassID: classID, Name: name, Code: code}
	if err := s.repo.CreateSection(ctx, section); err != nil {
		return err
	}

	s.publishSnapshot(ctx)
	return nil
}

func (s *directoryService) DeleteClass(ctx context.Context, classID uuid.UUID) error {
	if classID == uuid.Nil {
		return nil
	}
	if err := s.repo.Delete(ctx, classID); err != nil {
		return err
	}
	s.publishSnapshot(ctx)
	return nil
}

func (s *directoryService) DeleteSection(ctx context.Context, classID, sectionID uuid.UUID) error {
	if classID == uuid.Nil || sectionID == uuid.Nil {
		return nil
	}
	if err := s.repo.DeleteSection(ctx, classID, sectionID); err != nil {
		return err
	}
	s.publishSnapshot(ctx)
	return nil
}

func (s *directoryService) ListOptions(ctx context.Context) ([]dto.ClassOption, error) {
	classes, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return FormatOptions(classes), nil
}

func (s *directoryService) publishSnapshot(ctx context.Context) {
	if s.publisher == nil {
		return
	}
	classes, err := s.repo.FindAll(ctx)
	if err != nil {
		log.Printf("directory: failed to load snapshot for publish: %v", err)
		return
	}
	s.publisher.Publish(ctx, realtime.ChannelDirectory, classes)
}

// defaultClassCode is the first three characters of the name, upper-cased.
func defaultClassCode(name string) string {
	runes := []rune(name)
	if len(runes) > 3 {
		runes = runes[:3]
	}
	return strings.ToUpper(string(runes))
}

// FormatOptions flattens the class tree into the selector option list: one
// option per section, or a single option with an empty section for a class
// that has none. Two classes sharing a name would collide on Value; the
// directory does not enforce name uniqueness, so keep class names distinct.
func FormatOptions(classes []entity.Class) []dto.ClassOption {
	var options []dto.ClassOption
	for _, c := range classes {
		if len(c.Sections) > 0 {
			for _, sec := range c.Sections {
				options = append(options, dto.ClassOption{
					Label:     fmt.Sprintf("%s - Sec %s", c.Name, sec.Name),
					Value:     fmt.Sprintf("%s-%s", c.Name, sec.Name),
					ClassName: c.Name,
					Section:   sec.Name,
				})
			}
			continue
		}
		options = append(options, dto.ClassOption{
			Label:     c.Name,
			Value:     c.Name,
			ClassName: c.Name,
			Section:   "",
		})
	}
	return options
}

// FilterRoster resolves the selected option value back to (class, section)
// and keeps students whose class matches and whose section either equals the
// selector's or the selector's section is empty (a class without sections
// admits every student of that class). The match is on equality, not
// presence: a student with an empty section field is excluded by a non-empty
// selector section. An unknown selector returns nil; a known selector with no
// matching students returns an empty slice.
func FilterRoster(roster []entity.Profile, selectedValue string, options []dto.ClassOption) []entity.Profile {
	var selected *dto.ClassOption
	for i := range options {
		if options[i].Value == selectedValue {
			selected = &options[i]
			break
		}
	}
	if selected == nil {
		return nil
	}

	matched := []entity.Profile{}
	for _, student := range roster {
		if student.Class != selected.ClassName {
			continue
		}
		if selected.Section == "" || student.Section == selected.Section {
			matched = append(matched, student)
		}
	}
	return matched
}
