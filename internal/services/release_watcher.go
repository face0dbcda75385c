package services

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// releaseWatcher periodically sweeps the catalog and logs lessons whose
// release instant has passed since the previous sweep.
//
// Drip release is polling-based: nothing is scheduled at the exact release
// instant. Lesson availability is always recomputed from IsLessonLocked at
// read time, so the watcher exists purely for operational visibility, and a
// one-minute sweep is plenty for a schedule with hour/day granularity.
type releaseWatcher struct {
	courseRepo CourseRepository
	logger     *zap.Logger
	cron       *cron.Cron
	now        func() time.Time

	// mu guards lastSweep; cron runs every invocation in its own goroutine,
	// so a sweep that outlives the interval overlaps the next one
	mu        sync.Mutex
	lastSweep time.Time
}

// NewReleaseWatcher creates a new release watcher
func NewReleaseWatcher(courseRepo CourseRepository, logger *zap.Logger) *releaseWatcher {
	return &releaseWatcher{
		courseRepo: courseRepo,
		logger:     logger,
		now:        time.Now,
		lastSweep:  time.Now(),
	}
}

// Start begins sweeping once per minute
func (w *releaseWatcher) Start() error {
	w.cron = cron.New()
	if _, err := w.cron.AddFunc("@every 1m", w.tick); err != nil {
		return err
	}
	w.cron.Start()
	return nil
}

// tick advances the sweep window atomically, so concurrent invocations see
// disjoint windows and a release is reported at most once
func (w *releaseWatcher) tick() {
	to := w.now()
	w.mu.Lock()
	from := w.lastSweep
	if to.After(w.lastSweep) {
		w.lastSweep = to
	}
	w.mu.Unlock()

	if to.After(from) {
		w.sweep(from, to)
	}
}

// Stop stops the sweep loop and waits for a running sweep to finish
func (w *releaseWatcher) Stop() {
	if w.cron != nil {
		<-w.cron.Stop().Done()
	}
}

// sweep logs every lesson whose release date falls inside (from, to]
func (w *releaseWatcher) sweep(from, to time.Time) {
	courses, err := w.courseRepo.GetAll(context.Background())
	if err != nil {
		w.logger.Error("release sweep failed", zap.Error(err))
		return
	}

	for _, course := range courses {
		for _, module := range course.Modules {
			for _, lesson := range module.Lessons {
				if lesson.ReleaseDate == nil {
					continue
				}
				release := *lesson.ReleaseDate
				if release.After(from) && !release.After(to) {
					w.logger.Info("lesson released",
						zap.String("course_id", course.ID),
						zap.String("lesson_id", lesson.ID),
						zap.String("title", lesson.Title),
						zap.Time("release_date", release),
					)
				}
			}
		}
	}
}
