package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"modflow/backend/internal/models"
	"modflow/backend/internal/storage"
)

func main() {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	storageSvc := storage.NewStorageService(db, nil) // No redis needed for admin CLI

	if len(os.Args) < 2 {
		fmt.Println("Usage: admin <command> [args]")
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "promote":
		telegramID := parseTelegramID("promote")
		if err := storageSvc.SetModerator(telegramID, true); err != nil {
			log.Fatalf("Error promoting user: %v", err)
		}
		fmt.Printf("User %d is now a moderator.\n", telegramID)
	case "demote":
		telegramID := parseTelegramID("demote")
		if err := storageSvc.SetModerator(telegramID, false); err != nil {
			log.Fatalf("Error demoting user: %v", err)
		}
		fmt.Printf("User %d is no longer a moderator.\n", telegramID)
	case "tickets":
		status := ""
		if len(os.Args) > 2 {
			status = os.Args[2]
		}
		tickets, err := storageSvc.ListTickets(status)
		if err != nil {
			log.Fatalf("Error listing tickets: %v", err)
		}
		for _, t := range tickets {
			fmt.Printf("#%d [%s] %s (outcome %d)\n", t.ID, t.Status, t.CategoryLabel(), t.Outcome)
		}
	case "inspect":
		if err := inspectTicket(storageSvc, parseTicketID("inspect")); err != nil {
			log.Fatalf("Error inspecting ticket: %v", err)
		}
	case "resolve":
		if len(os.Args) != 4 {
			fmt.Println("Usage: admin resolve <ticket_id> <outcome>")
			os.Exit(1)
		}
		ticketID := parseTicketID("resolve")
		outcome, err := strconv.Atoi(os.Args[3])
		if err != nil {
			fmt.Println("Invalid outcome. Please provide an integer.")
			os.Exit(1)
		}
		if err := setTicketStatus(storageSvc, ticketID, models.TicketStatusResolved, outcome, false); err != nil {
			log.Fatalf("Error resolving ticket: %v", err)
		}
		fmt.Printf("Ticket %d resolved with outcome %d.\n", ticketID, outcome)
	case "reopen":
		ticketID := parseTicketID("reopen")
		if err := setTicketStatus(storageSvc, ticketID, models.TicketStatusOpen, 0, true); err != nil {
			log.Fatalf("Error reopening ticket: %v", err)
		}
		fmt.Printf("Ticket %d reopened.\n", ticketID)
	default:
		fmt.Println("Unknown command")
		os.Exit(1)
	}
}

func parseTelegramID(command string) int64 {
	if len(os.Args) != 3 {
		fmt.Printf("Usage: admin %s <telegram_id>\n", command)
		os.Exit(1)
	}
	telegramID, err := strconv.ParseInt(os.Args[2], 10, 64)
	if err != nil {
		fmt.Println("Invalid telegram ID. Please provide an integer.")
		os.Exit(1)
	}
	return telegramID
}

func parseTicketID(command string) int64 {
	if len(os.Args) < 3 {
		fmt.Printf("Usage: admin %s <ticket_id> [args]\n", command)
		os.Exit(1)
	}
	ticketID, err := strconv.ParseInt(os.Args[2], 10, 64)
	if err != nil {
		fmt.Println("Invalid ticket ID. Please provide an integer.")
		os.Exit(1)
	}
	return ticketID
}

func findTicket(s storage.Storage, ticketID int64) (*models.Ticket, error) {
	tickets, err := s.ListTickets("")
	if err != nil {
		return nil, err
	}
	for i := range tickets {
		if tickets[i].ID == ticketID {
			return &tickets[i], nil
		}
	}
	return nil, fmt.Errorf("ticket %d not found", ticketID)
}

// setTicketStatus edits the durable record directly. Meant for offline
// repair; a running instance holds its own copy of open case state.
func setTicketStatus(s storage.Storage, ticketID int64, status string, outcome int, clearVerdicts bool) error {
	t, err := findTicket(s, ticketID)
	if err != nil {
		return err
	}
	t.Status = status
	t.Outcome = outcome
	if err := s.SaveTicket(t); err != nil {
		return err
	}
	if clearVerdicts {
		return s.DeleteVerdicts(ticketID)
	}
	return nil
}

func inspectTicket(s storage.Storage, ticketID int64) error {
	t, err := findTicket(s, ticketID)
	if err != nil {
		return err
	}

	fmt.Printf("Ticket #%d [%s]\n%s\n", t.ID, t.Status, t.Summary())

	verdicts, err := s.VerdictsByTicket()
	if err != nil {
		return err
	}
	for _, v := range verdicts[ticketID] {
		fmt.Printf("verdict %d by %s\n", v.Code, v.ReviewerID)
	}
	return nil
}
