package cycles

import (
	"fmt"
	"time"

	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/cli"
	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/cycle"
	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/dateutil"
)

type CycleLogCmd struct {
	Start    string `arg:"" help:"Period start date in YYYY-MM-DD format."`
	Duration int    `short:"d" help:"Period duration in days." default:"5"`
}

func (c *CycleLogCmd) Run(ctx *cli.Context) error {
	log, err := ctx.Tracker.AddCycleLog(c.Start, c.Duration)
	if err != nil {
		return err
	}
	fmt.Printf("Logged cycle starting %s for %d days (ID: %s)\n", log.StartDate, log.Duration, log.ID)
	return nil
}

type CycleListCmd struct{}

func (c *CycleListCmd) Run(ctx *cli.Context) error {
	logs := ctx.Tracker.CycleLogs()
	if len(logs) == 0 {
		fmt.Println("No cycle logs yet.")
		return nil
	}
	for _, log := range logs {
		fmt.Printf("%s  %d days  (ID: %s)\n", log.StartDate, log.Duration, log.ID)
	}
	return nil
}

type CycleEditCmd struct {
	ID       string `arg:"" help:"Cycle log ID."`
	Start    string `short:"s" help:"New start date in YYYY-MM-DD format." required:""`
	Duration int    `short:"d" help:"New duration in days." required:""`
}

func (c *CycleEditCmd) Run(ctx *cli.Context) error {
	if err := ctx.Tracker.UpdateCycleLog(c.ID, c.Start, c.Duration); err != nil {
		return err
	}
	fmt.Println("Cycle log updated.")
	return nil
}

type CycleDeleteCmd struct {
	ID string `arg:"" help:"Cycle log ID."`
}

func (c *CycleDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Tracker.DeleteCycleLog(c.ID); err != nil {
		return err
	}
	fmt.Println("Cycle log deleted.")
	return nil
}

type CycleClearCmd struct {
	Yes bool `help:"Skip the confirmation prompt."`
}

func (c *CycleClearCmd) Run(ctx *cli.Context) error {
	if !c.Yes {
		return fmt.Errorf("this deletes all cycle history; re-run with --yes to confirm")
	}
	ctx.Tracker.ClearCycleHistory()
	fmt.Println("Cycle history cleared.")
	return nil
}

type CycleReportCmd struct{}

func (c *CycleReportCmd) Run(ctx *cli.Context) error {
	data := ctx.Tracker.UserData().CycleData
	report := cycle.ComputeReport(data.Logs)

	status := "Irregular"
	if report.IsNormal {
		status = "Normal"
	}
	fmt.Printf("Cycle health: %s\n", status)
	fmt.Printf("  avg duration: %.1f days\n", report.AvgDuration)
	fmt.Printf("  avg gap:      %d days\n", report.AvgGap)
	if report.Reason != "" {
		fmt.Printf("  %s\n", report.Reason)
	}

	if next, days, err := ctx.Tracker.NextCyclePrediction(); err == nil {
		fmt.Printf("  next predicted: %s (%d days)\n", next.Format("2006-01-02"), days)
	}
	return nil
}

type CycleCalendarCmd struct {
	Month string `arg:"" optional:"" help:"Month in YYYY-MM format (default: current month)."`
}

func (c *CycleCalendarCmd) Run(ctx *cli.Context) error {
	key, err := cli.ParseMonth(c.Month)
	if err != nil {
		return err
	}

	logs := ctx.Tracker.UserData().CycleData.Logs
	fmt.Printf("%s %d\n", key.Month, key.Year)
	days := key.Days()
	marked := 0
	for day := 1; day <= days; day++ {
		date := time.Date(key.Year, key.Month, day, 0, 0, 0, 0, time.UTC)
		if cycle.IsPeriodDay(logs, date) {
			fmt.Printf("  %s  period day\n", dateutil.DateKey(key.Year, key.Month, day))
			marked++
		}
	}
	if marked == 0 {
		fmt.Println("  no period days this month")
	}
	return nil
}
