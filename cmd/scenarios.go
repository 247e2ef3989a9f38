package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/daepyo/internal/lesson"
	"github.com/abhisek/daepyo/internal/measures"
)

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "List the lesson scenarios with their mean, median and mode",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		for _, sc := range lesson.Scenarios() {
			m, err := measures.Compute(sc.Data)
			if err != nil {
				return fmt.Errorf("scenario %d: %w", sc.ID, err)
			}

			vals := make([]string, len(sc.Data))
			for i, v := range sc.Data {
				vals[i] = fmt.Sprint(v)
			}

			fmt.Fprintf(w, "[%d] %s\n", sc.ID, sc.Title)
			fmt.Fprintf(w, "    데이터: %s\n", strings.Join(vals, ", "))
			fmt.Fprintf(w, "    평균 %.1f · 중앙값 %.1f · 최빈값 %s\n", m.Mean, m.Median, fmt.Sprint(m.Mode))
			fmt.Fprintf(w, "    %s\n\n", sc.Question)
		}
		return nil
	},
}
