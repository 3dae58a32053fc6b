// Package main provides a tool to inspect the contents of a snapshot store.
//
// It prints the persisted user, companies, boards, and feedback, along with
// per-board status counts, without going through the state engine.
//
// Usage:
//
//	go run ./cmd/dbinspect -data-path ~/FeedbackBoard/data
//	go run ./cmd/dbinspect -data-backend sqlite
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/feedbackboardapp/feedback-board/internal/config"
	"github.com/feedbackboardapp/feedback-board/internal/domain"
	"github.com/feedbackboardapp/feedback-board/internal/snapshot"
	"github.com/feedbackboardapp/feedback-board/internal/snapshot/sqlite"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	var store snapshot.Store
	switch cfg.Data.Backend {
	case config.BackendSQLite:
		store, err = sqlite.Open(cfg.SnapshotPath(), logger)
	default:
		store, err = snapshot.OpenBadger(cfg.SnapshotPath(), logger)
	}
	if err != nil {
		log.Fatalf("Failed to open snapshot store: %v", err)
	}
	defer store.Close()

	data, err := store.Load(context.Background())
	if err != nil {
		log.Fatalf("Failed to load snapshot: %v", err)
	}

	fmt.Println("=== Snapshot Inspection ===")
	fmt.Printf("Backend: %s\n", cfg.Data.Backend)
	fmt.Printf("Path:    %s\n", cfg.SnapshotPath())
	fmt.Println()

	if data.User != nil {
		fmt.Printf("User: %s <%s> (%s)\n", data.User.Name, data.User.Email, data.User.ID)
	} else {
		fmt.Println("User: <signed out>")
	}
	fmt.Printf("Companies: %d  Boards: %d  Feedback: %d  Comments: %d\n",
		len(data.Companies), len(data.Boards), len(data.Feedbacks), len(data.Comments))
	fmt.Println()

	for _, company := range data.Companies {
		fmt.Printf("Company: %s (slug %s)\n", company.Name, company.Slug)
		for _, board := range data.Boards {
			if board.CompanyID != company.ID {
				continue
			}
			fmt.Printf("  Board: %s (slug %s)\n", board.Name, board.Slug)
			printBoard(data, board.ID)
		}
	}

	orphans := 0
	for _, comment := range data.Comments {
		if !hasFeedback(data, comment.FeedbackID) {
			orphans++
		}
	}
	if orphans > 0 {
		fmt.Printf("\nOrphaned comments (parent feedback gone): %d\n", orphans)
	}
}

func printBoard(data *snapshot.Data, boardID string) {
	counts := make(map[domain.FeedbackStatus]int)
	for _, f := range data.Feedbacks {
		if f.BoardID != boardID {
			continue
		}
		counts[f.Status]++
		fmt.Printf("    [%s] %s  votes=%d comments=%d\n",
			f.Status, f.Title, f.VoteCount(), f.CommentCount)
	}
	for _, status := range domain.Statuses() {
		if counts[status] > 0 {
			fmt.Printf("    %-13s %d\n", status, counts[status])
		}
	}
}

func hasFeedback(data *snapshot.Data, feedbackID string) bool {
	for _, f := range data.Feedbacks {
		if f.ID == feedbackID {
			return true
		}
	}
	return false
}
