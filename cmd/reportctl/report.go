package main

import (
	"fmt"
	"io"
	"question-lab/clustering"
	"question-lab/domain"
	"question-lab/embedding"
	"question-lab/observability"
	"question-lab/services"
	"question-lab/summary"
	"strings"

	"github.com/gookit/color"
	"github.com/spf13/cobra"
)

var top3Cmd = &cobra.Command{
	Use:   "top3 <room>",
	Short: "Build and store the top 3 question groups of a room",
	Args:  cobra.ExactArgs(1),
	RunE:  runTop3,
}

var topSlideFlags struct {
	latestFirst bool
}

var topSlideCmd = &cobra.Command{
	Use:   "top-slide <room>",
	Short: "Build and store the most questioned slide of a room",
	Args:  cobra.ExactArgs(1),
	RunE:  runTopSlide,
}

func init() {
	topSlideCmd.Flags().BoolVar(&topSlideFlags.latestFirst, "latest-first", false, "List the newest questions first")
}

// reportService builds the service with the local hash embedder and no summarizer.
func reportService(s *stores) *services.ReportService {
	engine := clustering.NewEngine(s.log, embedding.NewHashEmbedder(config.EmbeddingDim), clustering.DefaultThresholds(), config.Workers)
	return services.NewReportService(s.log, s.questions, s.reports, engine, summary.Noop{},
		observability.NewMonitoring(s.log), 0, 3)
}

func runTop3(cmd *cobra.Command, args []string) error {
	s, err := openStores(config)
	if err != nil {
		return err
	}
	defer s.Close()

	report, err := reportService(s).Top3(cmd.Context(), domain.RoomID(args[0]))
	if err != nil {
		return err
	}
	printTop3(cmd.OutOrStdout(), report, config.Colours)
	return nil
}

func runTopSlide(cmd *cobra.Command, args []string) error {
	s, err := openStores(config)
	if err != nil {
		return err
	}
	defer s.Close()

	report, err := reportService(s).TopSlide(cmd.Context(), domain.RoomID(args[0]), topSlideFlags.latestFirst)
	if err != nil {
		return err
	}
	printTopSlide(cmd.OutOrStdout(), report, config.Colours)
	return nil
}

func title(text string, colours bool) string {
	header := fmt.Sprintf("====== %s ======", text)
	if colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	return header
}

func printTop3(w io.Writer, report domain.TopQuestionReport, colours bool) {
	fmt.Fprintln(w, title("Top 3 - room "+report.RoomID.String(), colours))
	fmt.Fprintf(w, "%d questions, %d groups\n", report.TotalQuestions, report.UniqueGroups)
	for i, item := range report.Top3 {
		fmt.Fprintf(w, "%d. %s (%d)\n", i+1, item.Representative, item.Count)
		for _, sample := range item.Samples {
			fmt.Fprintf(w, "   - %s\n", sample)
		}
	}
}

func printTopSlide(w io.Writer, report domain.TopSlideReport, colours bool) {
	fmt.Fprintln(w, title(fmt.Sprintf("Top slide - room %s", report.RoomID), colours))
	fmt.Fprintf(w, "Slide %d with %d questions\n", report.Slide, report.TotalQuestions)
	for _, q := range report.Questions {
		fmt.Fprintf(w, "- %s\n", q.Content)
	}
	if report.Summary != nil {
		fmt.Fprintf(w, "Summary:\n%s\n", strings.TrimSpace(*report.Summary))
	}
}
