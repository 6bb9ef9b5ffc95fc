package commands

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sablewing/cardkeep/pkg/backup"
)

var (
	backupNoImages bool
	backupSchedule string
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Back up the database, images, and a JSON export",
	Long:  "Copies the database file and card images into a timestamped directory alongside a JSON export. With --schedule, stays running and backs up on a cron schedule instead.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if backupSchedule != "" {
			return runScheduledBackups()
		}
		if !manager.BackupDatabase(cfg.BackupDir, !backupNoImages) {
			return errors.New("backup failed")
		}
		okColor.Printf("backup written under %s\n", cfg.BackupDir)
		return nil
	},
}

func runScheduledBackups() error {
	scheduler := backup.NewScheduler(manager, cfg.BackupDir, !backupNoImages)
	if err := scheduler.Start(backupSchedule); err != nil {
		return err
	}
	okColor.Printf("backing up on schedule %q, press Ctrl-C to stop\n", backupSchedule)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	scheduler.Stop()
	return nil
}

func init() {
	backupCmd.Flags().BoolVar(&backupNoImages, "no-images", false, "skip copying the card image directory")
	backupCmd.Flags().StringVar(&backupSchedule, "schedule", "", "cron expression for recurring backups (e.g. \"0 3 * * *\")")
}
