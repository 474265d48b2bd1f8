package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spigell/answer-scorer/internal/questions"
	"github.com/spigell/answer-scorer/internal/report"
	"github.com/spigell/answer-scorer/internal/scoring"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	PromptShowReport  = "Show report"
	PromptDumpReport  = "Dump report to file"
	PromptExportCSV   = "Export report as CSV"
	PromptRetry       = "Start over with the same questions"
	PromptExit        = "Exit"
	defaultReportFile = "interview_report.csv"
)

var errExit = errors.New("exit requested")

var interviewPrompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptShowReport, PromptDumpReport, PromptExportCSV, PromptRetry, PromptExit},
}

var interviewCmd = &cobra.Command{
	Use:   "interview",
	Short: "Run an interactive mock interview for a job description",
	Run: func(cmd *cobra.Command, _ []string) {
		runInterview(cmd)
	},
}

func init() {
	rootCmd.AddCommand(interviewCmd)

	addJobFlags(interviewCmd)
}

func runInterview(cmd *cobra.Command) {
	ctx := context.Background()

	log := newLogger()
	defer log.Sync()

	config, err := getConfig()
	if err != nil {
		log.Fatal("getting a config", zap.Error(err))
	}

	description, err := jobDescription(cmd)
	if err != nil {
		log.Fatal("reading the job description", zap.Error(err))
	}
	if description == "" {
		description, err = (&promptui.Prompt{Label: "Paste the job description"}).Run()
		if err != nil {
			log.Fatal("exiting", zap.Error(err))
		}
	}

	count, _ := cmd.Flags().GetInt("count")
	generated := questions.NewGenerator(nil).Generate(description, count)
	if len(generated) == 0 {
		log.Info("exiting", zap.String("reason", "no keywords found in the job description"))
		return
	}

	scorer, err := newScorer(ctx, config, log)
	if err != nil {
		log.Fatal("building the scorer", zap.Error(err))
	}

	log.Info("starting the interview", zap.Int("questions", len(generated)), zap.String("strategy", scorer.Name()))

	for {
		answers, err := askQuestions(generated)
		if err != nil {
			log.Fatal("exiting", zap.Error(err))
		}

		rep := scoreSession(ctx, scorer, generated, answers, log)
		log.Info(rep.Summary())

		for {
			_, action, err := interviewPrompt.Run()
			if err != nil {
				log.Fatal("exiting", zap.Error(err))
			}

			err = handleInterviewAction(action, rep, log)
			if errors.Is(err, errRetry) {
				break
			}
			if errors.Is(err, errExit) {
				return
			}
			if err != nil {
				log.Fatal("exiting", zap.Error(err))
			}
		}
	}
}

var errRetry = errors.New("retry requested")

func handleInterviewAction(action string, rep *report.Report, log *zap.Logger) error {
	switch action {
	case PromptShowReport:
		for i, e := range rep.Entries {
			log.Info(fmt.Sprintf("Q%d: %s", i+1, e.Question),
				zap.String("answer", e.Answer),
				zap.Float64("score", e.Score),
				zap.Float64("max_score", e.MaxScore),
				zap.String("status", e.Status),
				zap.String("feedback", e.Feedback),
				zap.Strings("missing_keywords", e.Missing),
			)
		}
		log.Info(rep.Summary())
		return nil
	case PromptDumpReport:
		filename, err := rep.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump report to file: %w", err)
		}
		log.Info("dumping report to file", zap.String("filename", filename))
		return nil
	case PromptExportCSV:
		if err := writeCSVFile(defaultReportFile, rep); err != nil {
			return fmt.Errorf("export report: %w", err)
		}
		log.Info("report written", zap.String("filename", defaultReportFile))
		return nil
	case PromptRetry:
		return errRetry
	case PromptExit:
		log.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func askQuestions(generated []questions.Question) ([]string, error) {
	answers := make([]string, 0, len(generated))
	for i, q := range generated {
		answer, err := (&promptui.Prompt{
			Label: fmt.Sprintf("Q%d: %s", i+1, q.Text),
		}).Run()
		if err != nil {
			return nil, err
		}
		answers = append(answers, strings.TrimSpace(answer))
	}
	return answers, nil
}

// scoreSession scores answers one by one; a failed answer is kept in the report as failed.
func scoreSession(ctx context.Context, scorer scoring.Scorer, generated []questions.Question, answers []string, log *zap.Logger) *report.Report {
	entries := make([]report.Entry, 0, len(generated))
	for i, q := range generated {
		res, err := scorer.Score(ctx, scoring.Request{
			Question: q.Text,
			Answer:   answers[i],
			Keyword:  q.Keyword,
			Keywords: q.Keywords,
		})
		if err != nil {
			log.Warn("scoring failed", zap.String("question_id", q.ID), zap.Error(err))
			entries = append(entries, report.FailedEntry(q.ID, q.Text, answers[i], err))
			continue
		}
		entries = append(entries, report.NewEntry(q.ID, q.Text, answers[i], res))
	}
	return report.New(entries)
}
