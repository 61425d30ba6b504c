package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"studydeck/internal/api"
	"studydeck/internal/app"
	"studydeck/internal/config"
	"studydeck/internal/models"
	"studydeck/internal/session"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "studydeck",
		Short:         "Student dashboard over the academic-services API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newLoginCmd())
	root.AddCommand(newLogoutCmd())
	root.AddCommand(newAssignmentsCmd())
	root.AddCommand(newDeadlinesCmd())
	root.AddCommand(newScheduleCmd())
	root.AddCommand(newPerformanceCmd())
	root.AddCommand(newSolveCmd())
	return root
}

// loadApp builds the process-wide app context with a file-backed credential
// so the CLI keeps its session between invocations.
func loadApp() (*app.App, error) {
	cfg := config.Load()

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	sess, err := session.NewFileStore(filepath.Join(home, ".studydeck", "session"))
	if err != nil {
		return nil, err
	}

	// The CLI's stand-in for the login redirect.
	onAuthExpired := func() {
		fmt.Fprintln(os.Stderr, "Session expired. Run `studydeck login` to sign in again.")
	}

	return app.New(cfg, sess, onAuthExpired), nil
}

func newLoginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to the academic-services API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}

			reader := bufio.NewReader(cmd.InOrStdin())
			if email == "" {
				fmt.Fprint(cmd.OutOrStdout(), "Email: ")
				line, _ := reader.ReadString('\n')
				email = strings.TrimSpace(line)
			}
			if password == "" {
				fmt.Fprint(cmd.OutOrStdout(), "Password: ")
				line, _ := reader.ReadString('\n')
				password = strings.TrimSpace(line)
			}

			user, err := a.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s (%s)\n", user.Name, user.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			if err := a.Logout(cmd.Context()); err != nil {
				// Local state is already cleared; the remote call is
				// best effort.
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: remote logout failed: %v\n", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func newAssignmentsCmd() *cobra.Command {
	var status, difficulty, course string
	var limit int

	cmd := &cobra.Command{
		Use:   "assignments",
		Short: "List assignments, optionally filtered",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}

			res := a.Assignments(cmd.Context(), api.ListParams{
				CourseHash: course,
				Status:     status,
				Difficulty: difficulty,
				Limit:      limit,
			})
			if res.Err != nil {
				return res.Err
			}

			fmt.Fprint(cmd.OutOrStdout(), renderAssignments(res.Value, time.Now()))
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "filter by status (pending|completed)")
	cmd.Flags().StringVar(&difficulty, "difficulty", "", "filter by difficulty (easy|medium|hard)")
	cmd.Flags().StringVar(&course, "course", "", "filter by course hash")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of assignments")
	return cmd
}

func newDeadlinesCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "deadlines",
		Short: "Show the closest pending deadlines",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}

			res := a.Assignments(cmd.Context(), api.ListParams{Status: models.StatusPending})
			if res.Err != nil {
				return res.Err
			}

			if limit <= 0 {
				limit = a.Config.DeadlineLimit
			}
			fmt.Fprint(cmd.OutOrStdout(), renderDeadlines(res.Value, limit, time.Now()))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "number of deadlines to show")
	return cmd
}

func newScheduleCmd() *cobra.Command {
	var week bool
	var watch bool

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Show today's classes, or the week with --week",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}

			render := func(now time.Time) (string, error) {
				if week {
					res := a.ScheduleWeek(cmd.Context(), "")
					if res.Err != nil {
						return "", res.Err
					}
					return renderWeek(res.Value, now), nil
				}
				res := a.ScheduleToday(cmd.Context())
				if res.Err != nil {
					return "", res.Err
				}
				return renderToday(res.Value, now), nil
			}

			out, err := render(time.Now())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)

			if !watch {
				return nil
			}

			// Countdown labels depend on wall-clock freshness, so watch
			// mode recomputes them every tick; the class list itself
			// stays cached until the coordinator marks it stale.
			ticker := time.NewTicker(30 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-cmd.Context().Done():
					return nil
				case now := <-ticker.C:
					out, err := render(now)
					if err != nil {
						return err
					}
					fmt.Fprint(cmd.OutOrStdout(), "\033[H\033[2J"+out)
				}
			}
		},
	}

	cmd.Flags().BoolVar(&week, "week", false, "show the whole week grouped by day")
	cmd.Flags().BoolVar(&watch, "watch", false, "keep refreshing the countdowns")
	return cmd
}

func newPerformanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "performance",
		Short: "Show the performance overview and per-course breakdown",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}

			overview := a.PerformanceOverview(cmd.Context())
			if overview.Err != nil {
				return overview.Err
			}
			courses := a.CoursePerformances(cmd.Context())
			if courses.Err != nil {
				return courses.Err
			}

			fmt.Fprint(cmd.OutOrStdout(), renderPerformance(overview.Value, courses.Value))
			return nil
		},
	}
}

func newSolveCmd() *cobra.Command {
	var course, mode string

	cmd := &cobra.Command{
		Use:   "solve <assignment-hash>",
		Short: "Submit a solve action for an assignment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}

			result, err := a.Solve(cmd.Context(), args[0], course, models.SolveRequest{Mode: mode})
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), renderSolveResult(result))
			return nil
		},
	}

	cmd.Flags().StringVar(&course, "course", "", "course hash the assignment belongs to")
	cmd.Flags().StringVar(&mode, "mode", "learning", "solve mode (learning|auto_submit)")
	cmd.MarkFlagRequired("course")
	return cmd
}
