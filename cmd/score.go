package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spigell/answer-scorer/internal/logger"
	"github.com/spigell/answer-scorer/internal/scoring"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a single answer and print the result as JSON",
	Run: func(cmd *cobra.Command, _ []string) {
		runScore(cmd)
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)

	addScoreFlags(scoreCmd)
}

func addScoreFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("question", "q", "", "the question that was asked")
	cmd.Flags().StringP("keyword", "k", "", "topic keyword for the anchor strategy")
	cmd.Flags().StringSlice("keywords", nil, "expected keywords for the coverage strategy (comma separated)")
	cmd.Flags().StringP("answer", "a", "", "the candidate's answer")
	cmd.Flags().String("answer-file", "", "read the answer from a file ('-' for stdin)")
	cmd.Flags().String("reference", "", "a reference answer used instead of the generated anchor")
}

func runScore(cmd *cobra.Command) {
	ctx := context.Background()

	log := newLogger()
	defer log.Sync()

	config, err := getConfig()
	if err != nil {
		log.Fatal("getting a config", zap.Error(err))
	}

	req, err := requestFromFlags(cmd, cmd.InOrStdin())
	if err != nil {
		log.Fatal("reading the answer", zap.Error(err))
	}

	scorer, err := newScorer(ctx, config, log)
	if err != nil {
		log.Fatal("building the scorer", zap.Error(err))
	}

	res, err := scorer.Score(ctx, req)
	if err != nil {
		log.Fatal("scoring the answer", zap.Error(err))
	}

	if err := printJSON(cmd.OutOrStdout(), res); err != nil {
		log.Fatal("printing the result", zap.Error(err))
	}
}

func requestFromFlags(cmd *cobra.Command, stdin io.Reader) (scoring.Request, error) {
	flags := cmd.Flags()

	question, _ := flags.GetString("question")
	keyword, _ := flags.GetString("keyword")
	keywords, _ := flags.GetStringSlice("keywords")
	answer, _ := flags.GetString("answer")
	answerFile, _ := flags.GetString("answer-file")
	reference, _ := flags.GetString("reference")

	if answerFile != "" {
		if answer != "" {
			return scoring.Request{}, errors.New("--answer and --answer-file are mutually exclusive")
		}
		text, err := readInput(answerFile, stdin)
		if err != nil {
			return scoring.Request{}, err
		}
		answer = text
	}

	return scoring.Request{
		Question:  question,
		Answer:    answer,
		Keyword:   keyword,
		Keywords:  trimAll(keywords),
		Reference: reference,
	}, nil
}

func readInput(path string, stdin io.Reader) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %q: %w", path, err)
	}
	return string(data), nil
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newLogger() *zap.Logger {
	l, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}
	return l
}
