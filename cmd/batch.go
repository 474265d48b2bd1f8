package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spigell/answer-scorer/internal/batch"
	"github.com/spigell/answer-scorer/internal/report"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var batchCmd = &cobra.Command{
	Use:   "batch <records.json>",
	Short: "Score a JSON array of answers and print the outcomes as JSON",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runBatch(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntP("concurrency", "c", 0, "number of answers scored in parallel (default from batch.concurrency)")
	batchCmd.Flags().String("report-csv", "", "also write a session report as CSV to this file")
}

func runBatch(cmd *cobra.Command, path string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log := newLogger()
	defer log.Sync()

	config, err := getConfig()
	if err != nil {
		log.Fatal("getting a config", zap.Error(err))
	}

	records, err := readRecords(path)
	if err != nil {
		log.Fatal("reading records", zap.String("file", path), zap.Error(err))
	}

	if len(records) == 0 {
		log.Info("exiting", zap.String("reason", "no records found"))
		return
	}

	scorer, err := newScorer(ctx, config, log)
	if err != nil {
		log.Fatal("building the scorer", zap.Error(err))
	}

	concurrency, _ := cmd.Flags().GetInt("concurrency")
	if concurrency <= 0 {
		concurrency = config.Batch.Concurrency
	}

	runner := &batch.Runner{Scorer: scorer, Concurrency: concurrency, Logger: log}
	outcomes, err := runner.Run(ctx, records)
	if err != nil {
		log.Fatal("scoring records", zap.Error(err))
	}

	if err := printJSON(cmd.OutOrStdout(), outcomes); err != nil {
		log.Fatal("printing outcomes", zap.Error(err))
	}

	csvPath, _ := cmd.Flags().GetString("report-csv")
	if csvPath == "" {
		return
	}

	rep := batchReport(records, outcomes)
	if err := writeCSVFile(csvPath, rep); err != nil {
		log.Fatal("writing the report", zap.Error(err))
	}
	log.Info("report written", zap.String("filename", csvPath), zap.String("summary", rep.Summary()))
}

func readRecords(path string) ([]batch.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw []map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding %q: %w", path, err)
	}

	return batch.DecodeRecords(raw)
}

func batchReport(records []batch.Record, outcomes []batch.Outcome) *report.Report {
	entries := make([]report.Entry, 0, len(outcomes))
	for i, o := range outcomes {
		r := records[i]
		if o.Error != "" {
			entries = append(entries, report.FailedEntry(r.ID, r.Question, r.Answer, errors.New(o.Error)))
			continue
		}
		entries = append(entries, report.NewEntry(r.ID, r.Question, r.Answer, o.Result))
	}
	return report.New(entries)
}

func writeCSVFile(path string, rep *report.Report) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := rep.WriteCSV(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
