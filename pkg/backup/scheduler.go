// Package backup runs collection backups on a cron schedule.
package backup

import (
	"errors"

	"github.com/robfig/cron/v3"

	"github.com/sablewing/cardkeep/pkg/logging"
)

// Runner is the backup capability of the collection manager
type Runner interface {
	BackupDatabase(backupDir string, includeImages bool) bool
}

// Scheduler triggers periodic backups of the database and images
type Scheduler struct {
	cron          *cron.Cron
	logger        logging.Logger
	runner        Runner
	backupDir     string
	includeImages bool
	entryID       cron.EntryID
}

// NewScheduler creates a backup scheduler. Nothing runs until Start.
func NewScheduler(runner Runner, backupDir string, includeImages bool) *Scheduler {
	return &Scheduler{
		cron:          cron.New(),
		logger:        logging.GetGlobalLoggerFactory().CreateLogger("backup"),
		runner:        runner,
		backupDir:     backupDir,
		includeImages: includeImages,
	}
}

// Start registers the backup job under the given cron spec and starts the
// scheduler. Returns an error for an invalid spec or empty backup dir.
func (s *Scheduler) Start(spec string) error {
	if s.backupDir == "" {
		return errors.New("backup directory is not set")
	}

	entryID, err := s.cron.AddFunc(spec, s.run)
	if err != nil {
		return err
	}
	s.entryID = entryID

	s.cron.Start()
	s.logger.Info("Backup schedule started", map[string]interface{}{
		"spec": spec,
		"dir":  s.backupDir,
	})
	return nil
}

// Stop halts the scheduler; a backup already in flight finishes
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scheduler) run() {
	if ok := s.runner.BackupDatabase(s.backupDir, s.includeImages); !ok {
		s.logger.Error("Scheduled backup failed", nil, map[string]interface{}{
			"dir": s.backupDir,
		})
		return
	}
	s.logger.Info("Scheduled backup completed", map[string]interface{}{
		"dir": s.backupDir,
	})
}
