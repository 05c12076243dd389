package main

import (
	"fmt"
	"question-lab/domain"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <room>",
	Short: "List the stored questions of a room",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	s, err := openStores(config)
	if err != nil {
		return err
	}
	defer s.Close()

	questions, err := s.questions.ListRoomQuestions(cmd.Context(), domain.RoomID(args[0]), nil)
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"Id", "Slide", "Time", "Audience", "Content"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	table.AppendBulk(questionRows(questions))
	table.Render()

	fmt.Fprintf(cmd.OutOrStdout(), "\n%d questions\n", len(questions))
	return nil
}

func questionRows(questions []domain.QuestionRecord) [][]string {
	return lo.Map(questions, func(q domain.QuestionRecord, _ int) []string {
		return []string{
			q.ID,
			strconv.Itoa(q.Slide),
			time.UnixMilli(q.Ts).UTC().Format("15:04:05"),
			lo.FromPtrOr(q.AudienceID, "-"),
			q.Content,
		}
	})
}
