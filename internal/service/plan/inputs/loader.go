// Package inputs loads everything the allocator needs for one plan group.
package inputs

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/studyplan-backend/internal/domain"
	"github.com/heartmarshall/studyplan-backend/internal/service/plan/allocator"
	"github.com/heartmarshall/studyplan-backend/internal/service/plan/availability"
)

type contentRepo interface {
	ListByPlanGroup(ctx context.Context, planGroupID uuid.UUID) ([]domain.ContentItem, error)
	DurationTables(ctx context.Context, contentIDs []uuid.UUID) (map[uuid.UUID]domain.DurationTable, error)
}

type settingsRepo interface {
	Organization(ctx context.Context, id uuid.UUID) (*domain.PartialSchedulerSettings, error)
	Template(ctx context.Context, id uuid.UUID) (*domain.PartialSchedulerSettings, error)
}

type exclusionRepo interface {
	List(ctx context.Context, studentID uuid.UUID, from, to *domain.Date) ([]domain.ExclusionDay, error)
}

type commitmentRepo interface {
	List(ctx context.Context, studentID uuid.UUID) ([]domain.FixedCommitment, error)
}

type blockRepo interface {
	ListBlocks(ctx context.Context, id uuid.UUID) ([]domain.TimeBlock, error)
}

// Options tune review session sizing.
type Options struct {
	ReviewPercent    int
	MinReviewMinutes int
}

// Loader fetches plan inputs concurrently.
type Loader struct {
	contents    contentRepo
	settings    settingsRepo
	exclusions  exclusionRepo
	commitments commitmentRepo
	blocks      blockRepo
	opts        Options
}

// NewLoader creates a Loader.
func NewLoader(contents contentRepo, settings settingsRepo, exclusions exclusionRepo, commitments commitmentRepo, blocks blockRepo, opts Options) *Loader {
	return &Loader{
		contents:    contents,
		settings:    settings,
		exclusions:  exclusions,
		commitments: commitments,
		blocks:      blocks,
		opts:        opts,
	}
}

// Bundle is the loaded input of one plan group over one period.
type Bundle struct {
	Group       *domain.PlanGroup
	Period      domain.DateRange
	Items       []domain.ContentItem
	Settings    domain.SchedulerSettings
	Exclusions  []domain.ExclusionDay
	Commitments []domain.FixedCommitment
	Blocks      []domain.TimeBlock
	// Durations is keyed by content item id.
	Durations map[uuid.UUID]domain.DurationTable

	opts Options
}

// Load reads contents, settings levels, exclusions, commitments and the
// block set of a group in parallel.
func (l *Loader) Load(ctx context.Context, group *domain.PlanGroup, period domain.DateRange) (*Bundle, error) {
	b := &Bundle{Group: group, Period: period, opts: l.opts}

	var orgLevel, templateLevel *domain.PartialSchedulerSettings

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		items, err := l.contents.ListByPlanGroup(gctx, group.ID)
		if err != nil {
			return fmt.Errorf("list contents: %w", err)
		}
		b.Items = items

		var catalogIDs []uuid.UUID
		for _, it := range items {
			if it.ContentID != nil && it.ContentType.SupportsSubUnits() {
				catalogIDs = append(catalogIDs, *it.ContentID)
			}
		}
		tables, err := l.contents.DurationTables(gctx, catalogIDs)
		if err != nil {
			return fmt.Errorf("load duration tables: %w", err)
		}
		b.Durations = make(map[uuid.UUID]domain.DurationTable, len(tables))
		for _, it := range items {
			if it.ContentID == nil {
				continue
			}
			if t, ok := tables[*it.ContentID]; ok {
				b.Durations[it.ID] = t
			}
		}
		return nil
	})

	g.Go(func() error {
		if group.OrganizationID == nil {
			return nil
		}
		s, err := l.settings.Organization(gctx, *group.OrganizationID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("load organization settings: %w", err)
		}
		orgLevel = s
		return nil
	})

	g.Go(func() error {
		if group.TemplateID == nil {
			return nil
		}
		s, err := l.settings.Template(gctx, *group.TemplateID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("load template settings: %w", err)
		}
		templateLevel = s
		return nil
	})

	g.Go(func() error {
		days, err := l.exclusions.List(gctx, group.StudentID, &period.Start, &period.End)
		if err != nil {
			return fmt.Errorf("list exclusions: %w", err)
		}
		b.Exclusions = days
		return nil
	})

	g.Go(func() error {
		cs, err := l.commitments.List(gctx, group.StudentID)
		if err != nil {
			return fmt.Errorf("list commitments: %w", err)
		}
		b.Commitments = cs
		return nil
	})

	g.Go(func() error {
		if group.BlockSetID == nil {
			return nil
		}
		blocks, err := l.blocks.ListBlocks(gctx, *group.BlockSetID)
		if err != nil {
			return fmt.Errorf("list time blocks: %w", err)
		}
		b.Blocks = blocks
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	settings, err := domain.ResolveSettings(orgLevel, templateLevel, &group.Settings)
	if err != nil {
		return nil, err
	}
	b.Settings = settings
	return b, nil
}

// Dates returns the available dates of the bundle's period.
func (b *Bundle) Dates() []domain.Date {
	return availability.ForExclusionDays(b.Period, b.Exclusions)
}

// DatesFrom returns the available dates on or after from.
func (b *Bundle) DatesFrom(from domain.Date) []domain.Date {
	dates := b.Dates()
	out := make([]domain.Date, 0, len(dates))
	for _, d := range dates {
		if !d.Before(from) {
			out = append(out, d)
		}
	}
	return out
}

// Slots returns the usable time slots of a date.
func (b *Bundle) Slots(date domain.Date) []availability.Slot {
	return availability.DaySlots(date, b.Blocks, b.Settings, b.Commitments)
}

// Request builds an allocator request for items over dates.
func (b *Bundle) Request(items []domain.ContentItem, dates []domain.Date, settings domain.SchedulerSettings) allocator.Request {
	return allocator.Request{
		PlanGroupID:      b.Group.ID,
		StudentID:        b.Group.StudentID,
		Items:            items,
		Dates:            dates,
		Settings:         settings,
		Durations:        b.Durations,
		Slots:            b.Slots,
		ReviewPercent:    b.opts.ReviewPercent,
		MinReviewMinutes: b.opts.MinReviewMinutes,
	}
}

// Titles maps content item ids to titles.
func (b *Bundle) Titles() map[uuid.UUID]string {
	titles := make(map[uuid.UUID]string, len(b.Items))
	for _, it := range b.Items {
		titles[it.ID] = it.Title
	}
	return titles
}
