package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/charmbracelet/glamour"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	baseURL  string
	timeout  time.Duration
	currency string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ledgerkeep-cli",
		Short: "LedgerKeep CLI tool",
		Long:  `A command line interface for interacting with the LedgerKeep API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the LedgerKeep API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")
	rootCmd.PersistentFlags().StringVar(&currency, "currency", "USD", "Currency code used for display")

	insightCmd := &cobra.Command{
		Use:   "insight",
		Short: "Show the spending health report for the current cycle",
		Run: func(cmd *cobra.Command, args []string) {
			showInsight()
		},
	}

	accountsCmd := &cobra.Command{
		Use:   "accounts",
		Short: "List accounts and balances",
		Run: func(cmd *cobra.Command, args []string) {
			listAccounts()
		},
	}

	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Show net asset and total debt",
		Run: func(cmd *cobra.Command, args []string) {
			showSummary()
		},
	}

	archiveCmd := &cobra.Command{
		Use:   "archive [year]",
		Short: "Archive records through the given year",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			year := 0
			if len(args) == 1 {
				y, err := strconv.Atoi(args[0])
				if err != nil {
					fmt.Printf("Invalid year %q\n", args[0])
					os.Exit(1)
				}
				year = y
			}
			runArchive(year)
		},
	}

	backupCmd := &cobra.Command{
		Use:   "backup",
		Short: "Remote backup operations",
	}
	backupCheckCmd := &cobra.Command{
		Use:   "check",
		Short: "Verify the remote backup target is reachable",
		Run: func(cmd *cobra.Command, args []string) {
			checkBackup()
		},
	}
	backupCmd.AddCommand(backupCheckCmd)

	rootCmd.AddCommand(insightCmd, accountsCmd, summaryCmd, archiveCmd, backupCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

type insightReport struct {
	Score           int      `json:"score"`
	Messages        []string `json:"messages"`
	CycleStart      string   `json:"cycle_start"`
	CycleEnd        string   `json:"cycle_end"`
	CurrentExpense  string   `json:"current_expense"`
	PreviousExpense string   `json:"previous_expense"`
}

func showInsight() {
	body := get("/api/v1/insight")

	var report insightReport
	if err := json.Unmarshal(body, &report); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	out, err := glamour.Render(insightMarkdown(&report, currency), "auto")
	if err != nil {
		// Fall back to the raw markdown if the terminal renderer fails.
		out = insightMarkdown(&report, currency)
	}
	fmt.Print(out)
}

// insightMarkdown builds the terminal report for one billing cycle.
func insightMarkdown(report *insightReport, code string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Spending Health: %d/100\n\n", report.Score)
	fmt.Fprintf(&b, "Cycle %s to %s\n\n", shortDate(report.CycleStart), shortDate(report.CycleEnd))
	fmt.Fprintf(&b, "| | Expense |\n|---|---|\n")
	fmt.Fprintf(&b, "| This cycle | %s |\n", formatMoney(report.CurrentExpense, code))
	fmt.Fprintf(&b, "| Last cycle | %s |\n\n", formatMoney(report.PreviousExpense, code))

	for _, msg := range report.Messages {
		fmt.Fprintf(&b, "- %s\n", msg)
	}

	return b.String()
}

func shortDate(ts string) string {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ts
	}
	return t.Format("2006-01-02")
}

func listAccounts() {
	body := get("/api/v1/accounts")

	var accounts []struct {
		Name    string `json:"name"`
		Kind    string `json:"kind"`
		Balance string `json:"balance"`
	}
	if err := json.Unmarshal(body, &accounts); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	for _, acc := range accounts {
		fmt.Printf("%-20s %-10s %s\n", acc.Name, acc.Kind, formatMoney(acc.Balance, currency))
	}
}

func showSummary() {
	body := get("/api/v1/accounts/summary")

	var summary struct {
		NetAsset  string `json:"net_asset"`
		TotalDebt string `json:"total_debt"`
	}
	if err := json.Unmarshal(body, &summary); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Net asset:  %s\n", formatMoney(summary.NetAsset, currency))
	fmt.Printf("Total debt: %s\n", formatMoney(summary.TotalDebt, currency))
}

func runArchive(year int) {
	payload, _ := json.Marshal(map[string]int{"year": year})
	body := post("/api/v1/archive", payload)

	var result struct {
		ArchivedCount int    `json:"archived_count"`
		NetSum        string `json:"net_sum"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Archived %d records (net %s)\n",
		result.ArchivedCount, formatMoney(result.NetSum, currency))
}

func checkBackup() {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + "/api/v1/snapshot/backup/check")
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusNoContent {
		fmt.Printf("Backup target check FAILED (Status: %d)\n", resp.StatusCode)
		os.Exit(1)
	}
	fmt.Println("Backup target reachable")
}

// formatMoney renders a decimal amount string in the given currency.
// Unparseable amounts are shown as-is.
func formatMoney(amount, code string) string {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return amount
	}

	cur := money.New(0, code).Currency()
	minor := d.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(minor, code).Display()
}

func get(path string) []byte {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 400 {
		fmt.Printf("Request failed (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}
	return body
}

func post(path string, payload []byte) []byte {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+path, "application/json", bytes.NewReader(payload))
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 400 {
		fmt.Printf("Request failed (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}
	return body
}
