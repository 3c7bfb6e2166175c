package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/cli"
	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/cli/cycles"
	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/cli/habits"
	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/cli/planner"
	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/cli/profiles"
	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/cli/system"
	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/constants"
	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/logger"
	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/storage"
	"github.com/karthikreddy0829/Super-Habit-Tracker-Pro/internal/tracker"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage file path. A .json extension selects the JSON backend; anything else uses SQLite." type:"string" default:"~/.config/supertracker/supertracker.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init   system.InitCmd   `cmd:"" help:"Initialize supertracker storage."`
	Tui    system.TuiCmd    `cmd:"" help:"Launch the interactive month grid." default:"1"`
	Doctor system.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	Reset  system.ResetCmd  `cmd:"" help:"Erase all profiles and their data."`

	Profile struct {
		Create profiles.ProfileCreateCmd `cmd:"" help:"Create a profile (interactive onboarding when no name is given)."`
		List   profiles.ProfileListCmd   `cmd:"" help:"List profiles."`
		Switch profiles.ProfileSwitchCmd `cmd:"" help:"Switch the active profile."`
		Edit   profiles.ProfileEditCmd   `cmd:"" help:"Edit a profile."`
		Theme  profiles.ProfileThemeCmd  `cmd:"" help:"Show or set the theme color."`
	} `cmd:"" help:"Manage profiles."`

	Habit struct {
		Add    habits.HabitAddCmd    `cmd:"" help:"Add a new habit."`
		List   habits.HabitListCmd   `cmd:"" help:"List habits with streaks."`
		Edit   habits.HabitEditCmd   `cmd:"" help:"Edit a habit."`
		Delete habits.HabitDeleteCmd `cmd:"" help:"Delete a habit."`
		Toggle habits.HabitToggleCmd `cmd:"" help:"Toggle a day's completion."`
		Stats  habits.HabitStatsCmd  `cmd:"" help:"Show habit statistics."`
	} `cmd:"" help:"Manage habits."`

	Badges cli.BadgesCmd `cmd:"" help:"Show badge progress."`

	Plan struct {
		Day       planner.DayCmd        `cmd:"" help:"Show the planner entry for a day." default:"1"`
		Add       planner.TodoAddCmd    `cmd:"" help:"Add a to-do."`
		Toggle    planner.TodoToggleCmd `cmd:"" help:"Toggle a to-do."`
		Delete    planner.TodoDeleteCmd `cmd:"" help:"Delete a to-do."`
		Note      planner.NoteCmd       `cmd:"" help:"Set or clear a day note."`
		Important planner.ImportantCmd  `cmd:"" help:"Toggle a day's important flag."`
	} `cmd:"" help:"Manage the day planner."`

	Cycle struct {
		Log      cycles.CycleLogCmd      `cmd:"" help:"Log a period start."`
		List     cycles.CycleListCmd     `cmd:"" help:"List cycle logs."`
		Edit     cycles.CycleEditCmd     `cmd:"" help:"Edit a cycle log."`
		Delete   cycles.CycleDeleteCmd   `cmd:"" help:"Delete a cycle log."`
		Clear    cycles.CycleClearCmd    `cmd:"" help:"Clear all cycle history."`
		Report   cycles.CycleReportCmd   `cmd:"" help:"Show the cycle health report."`
		Calendar cycles.CycleCalendarCmd `cmd:"" help:"Show period days for a month."`
	} `cmd:"" help:"Track menstrual cycles."`

	Dashboard cli.DashboardCmd `cmd:"" help:"Show the monthly dashboard."`
	Share     cli.ShareCmd     `cmd:"" help:"Share a progress report."`
	Mentor    cli.MentorCmd    `cmd:"" help:"Ask the AI habit coach."`
	Sos       cli.SosCmd       `cmd:"" help:"Emergency SOS tools."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal habit, planner and wellness tracker"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	configPath := expandHome(CLI.Config)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: filepath.Dir(configPath)}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not initialize logging: %v\n", err)
	}

	var store storage.Provider
	if strings.HasSuffix(configPath, ".json") {
		store = storage.NewJSONStore(configPath)
	} else {
		store = storage.NewSQLiteStore(configPath)
	}

	appCtx := &cli.Context{
		Store:   store,
		Tracker: tracker.New(store),
	}

	// Load storage before running the command; init handles its own setup.
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := appCtx.Tracker.Load(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
