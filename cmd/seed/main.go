// Package main provides a tool to seed the snapshot store with demo data.
//
// It boots the full engine through the DI container, signs in a demo user,
// and creates a company with a feedback board populated with realistic
// feedback and comments. Useful for trying out queries, sorting, and search
// against a non-empty store.
//
// Usage:
//
//	go run ./cmd/seed -data-path ~/FeedbackBoard/data
//	go run ./cmd/seed -data-backend sqlite
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/feedbackboardapp/feedback-board/internal/di"
	"github.com/feedbackboardapp/feedback-board/internal/domain"
	"github.com/feedbackboardapp/feedback-board/internal/store"
)

type seedFeedback struct {
	title       string
	description string
	category    domain.FeedbackCategory
	status      domain.FeedbackStatus
	comments    []string
	extraVotes  int
}

var demoFeedback = []seedFeedback{
	{
		title:       "Dark mode support",
		description: "Would love a dark theme for late night browsing. The white background is harsh on the eyes.",
		category:    domain.CategoryFeature,
		status:      domain.StatusPlanned,
		comments: []string{
			"Yes please! My eyes would thank you.",
			"We hear you. This is on the roadmap for next quarter.",
		},
		extraVotes: 4,
	},
	{
		title:       "Export data to CSV",
		description: "Need a way to export all feedback data for analysis in spreadsheets.",
		category:    domain.CategoryFeature,
		status:      domain.StatusUnderReview,
		comments: []string{
			"This would be great for our quarterly reviews.",
		},
		extraVotes: 2,
	},
	{
		title:       "Page load is slow on mobile",
		description: "The board page takes several seconds to load on my phone, even on wifi.",
		category:    domain.CategoryBug,
		status:      domain.StatusInProgress,
		comments: []string{
			"Same here on Android.",
			"We've tracked this down to an oversized bundle. Fix is in progress.",
		},
		extraVotes: 6,
	},
	{
		title:       "Keyboard shortcuts",
		description: "Power users would benefit from shortcuts for common actions like upvoting and commenting.",
		category:    domain.CategoryImprovement,
		status:      domain.StatusUnderReview,
	},
	{
		title:       "Email notifications for status changes",
		description: "I want to be notified when feedback I've upvoted changes status.",
		category:    domain.CategoryFeature,
		status:      domain.StatusCompleted,
		comments: []string{
			"Shipped in the latest release. Check your notification settings.",
		},
		extraVotes: 3,
	},
}

func main() {
	injector := di.NewContainer()

	ctx := context.Background()
	s, err := di.Bootstrap(ctx, injector)
	if err != nil {
		log.Fatalf("Failed to bootstrap engine: %v", err)
	}
	defer func() {
		if err := injector.Shutdown(); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
	}()

	if len(s.Companies()) > 0 {
		fmt.Println("Store already has companies, skipping seed.")
		return
	}

	user, err := s.Login(ctx, "Demo User", "demo@example.com")
	if err != nil {
		log.Fatalf("Failed to sign in demo user: %v", err)
	}
	fmt.Printf("Signed in as %s (%s)\n", user.Name, user.ID)

	company, err := s.CreateCompany(ctx, store.CreateCompanyInput{
		Name:         "Acme SaaS",
		Description:  "Example company for trying out the feedback board.",
		Website:      "https://acme.example.com",
		PrimaryColor: "#6366f1",
	})
	if err != nil {
		log.Fatalf("Failed to create company: %v", err)
	}
	fmt.Printf("Created company %q (slug %s)\n", company.Name, company.Slug)

	board, err := s.CreateBoard(ctx, store.CreateBoardInput{
		Name:           "Feature Requests",
		Description:    "Tell us what to build next.",
		CompanyID:      company.ID,
		IsPublic:       true,
		AllowAnonymous: true,
	})
	if err != nil {
		log.Fatalf("Failed to create board: %v", err)
	}
	fmt.Printf("Created board %q (slug %s)\n", board.Name, board.Slug)

	extraVotes := make(map[string]int)
	for _, item := range demoFeedback {
		f, err := s.CreateFeedback(ctx, store.CreateFeedbackInput{
			Title:       item.title,
			Description: item.description,
			Category:    item.category,
			BoardID:     board.ID,
		})
		if err != nil {
			log.Fatalf("Failed to create feedback %q: %v", item.title, err)
		}

		if item.status != domain.StatusUnderReview {
			if err := s.UpdateFeedbackStatus(ctx, f.ID, item.status); err != nil {
				log.Fatalf("Failed to set status on %q: %v", item.title, err)
			}
		}

		for _, content := range item.comments {
			if _, err := s.AddComment(ctx, store.AddCommentInput{
				Content:    content,
				FeedbackID: f.ID,
			}); err != nil {
				log.Fatalf("Failed to comment on %q: %v", item.title, err)
			}
		}

		if item.extraVotes > 0 {
			extraVotes[f.ID] = item.extraVotes
		}

		fmt.Printf("  + %s [%s] votes=%d comments=%d\n",
			item.title, item.status, item.extraVotes+1, len(item.comments))
	}

	// Anonymous votes last, in a signed-out session. Each signed-out toggle
	// mints a fresh voter id, so repeated toggles accumulate instead of
	// cancelling.
	if err := s.Logout(ctx); err != nil {
		log.Fatalf("Failed to sign out for anonymous votes: %v", err)
	}
	for feedbackID, n := range extraVotes {
		for range n {
			if err := s.ToggleUpvote(ctx, feedbackID); err != nil {
				log.Fatalf("Failed to upvote %s: %v", feedbackID, err)
			}
		}
	}

	counts := s.StatusCounts(board.ID)
	fmt.Println("\nBoard status counts:")
	for _, status := range domain.Statuses() {
		fmt.Printf("  %-13s %d\n", status, counts[status])
	}

	fmt.Println("\nSeed complete.")
}
