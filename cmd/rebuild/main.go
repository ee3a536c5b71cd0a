package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"easattend.com/easattend/attendance"
	"easattend.com/easattend/core"
	"easattend.com/easattend/infrastructure/devops"
	"easattend.com/easattend/model"
	"easattend.com/easattend/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Rebuilds every user's daily summary for one date from the raw logs.
// Summaries are derived data, so this is safe to run at any time; the usual
// reason is a manually corrected log row.
func main() {
	dateStr := flag.String("date", "", "Date to rebuild (YYYY-MM-DD). Defaults to yesterday.")
	flag.Parse()

	targetDate := time.Now().AddDate(0, 0, -1)
	if *dateStr != "" {
		var err error
		targetDate, err = utils.ParseDate(*dateStr)
		if err != nil {
			log.Fatalf("invalid date format: %v", err)
		}
	}

	cfg, err := devops.Load()
	if err != nil {
		log.Fatal(err)
	}

	dm, err := core.New(cfg.DSN, cfg.MaxConns)
	if err != nil {
		log.Fatal(err)
	}
	defer dm.Close()

	fmt.Printf("Rebuilding summaries for %s\n", targetDate.Format("2006-01-02"))

	if err := dm.Tx(context.Background(), func(tx *gorm.DB) error {
		return Run(tx, targetDate)
	}); err != nil {
		log.Fatal(err)
	}
}

func Run(db *gorm.DB, date time.Time) error {
	var logs []model.AttendanceLog
	if err := db.Where("DATE(check_in) = ?", date.Format("2006-01-02")).Find(&logs).Error; err != nil {
		return fmt.Errorf("failed to fetch logs: %w", err)
	}

	byUser := utils.GroupBy(logs, func(l model.AttendanceLog) uuid.UUID { return l.UserID })
	for userID := range byUser {
		summary, err := attendance.UpsertSummary(db, userID, date)
		if err != nil {
			return fmt.Errorf("failed to rebuild summary for %s: %w", userID, err)
		}
		if summary != nil {
			fmt.Printf("%s: %s\n", userID, attendance.FormatDuration(summary.TotalSeconds))
		}
	}

	fmt.Printf("Rebuilt %d summaries\n", len(byUser))
	return nil
}
