package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/daepyo/internal/logging"
	"github.com/abhisek/daepyo/internal/session"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Grade a single answer without starting the lesson",
}

var checkScenarioCmd = &cobra.Command{
	Use:   "scenario <id>",
	Short: "Grade which statistic fits a scenario, and why",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := session.ParseScenarioID(args[0])
		if err != nil {
			return err
		}
		label, _ := cmd.Flags().GetString("label")
		reason, _ := cmd.Flags().GetString("reason")

		return runCheck(cmd, func(svc *session.Service, sess *session.Session) (*session.Outcome, error) {
			return svc.SubmitScenario(cmd.Context(), sess, session.ScenarioSubmission{
				ScenarioID: id,
				Label:      label,
				Reason:     reason,
			})
		})
	},
}

var checkExampleCmd = &cobra.Command{
	Use:   "example <mean|median|mode>",
	Short: "Grade an example situation for a statistic",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, _ := cmd.Flags().GetString("text")

		return runCheck(cmd, func(svc *session.Service, sess *session.Session) (*session.Outcome, error) {
			return svc.CheckExample(cmd.Context(), sess, session.ExampleSubmission{
				Stat: args[0],
				Text: text,
			})
		})
	},
}

// runCheck grades one submission in a throwaway session and prints the
// feedback.
func runCheck(cmd *cobra.Command, submit func(*session.Service, *session.Session) (*session.Outcome, error)) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logging.Setup(os.Stderr, max(cfg.LogLevel, slog.LevelWarn))

	d, err := buildDeps(cmd.Context(), cmd, cfg)
	if err != nil {
		return err
	}
	defer d.Close()

	sess := d.svc.Start(cmd.Context())
	defer d.svc.End(cmd.Context(), sess)

	out, err := submit(d.svc, sess)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, out.Feedback.Text())
	fmt.Fprintf(w, "\n판정: %s (%s)\n", out.Result.Verdict, out.Result.Source)
	return nil
}

func init() {
	checkScenarioCmd.Flags().String("label", "", "Chosen statistic: mean, median, mode or its Korean name")
	checkScenarioCmd.Flags().String("reason", "", "Why the statistic fits")
	checkExampleCmd.Flags().String("text", "", "A situation where the statistic is the right choice")

	checkCmd.AddCommand(checkScenarioCmd)
	checkCmd.AddCommand(checkExampleCmd)
}
