package cmd

import (
	"errors"
	"strings"

	"github.com/spigell/answer-scorer/internal/questions"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Generate interview questions from a job description and print them as JSON",
	Run: func(cmd *cobra.Command, _ []string) {
		runQuestions(cmd)
	},
}

func init() {
	rootCmd.AddCommand(questionsCmd)

	addJobFlags(questionsCmd)
}

func addJobFlags(cmd *cobra.Command) {
	cmd.Flags().String("job", "", "job description text")
	cmd.Flags().String("job-file", "", "read the job description from a file ('-' for stdin)")
	cmd.Flags().IntP("count", "n", questions.DefaultCount, "number of questions")
}

func runQuestions(cmd *cobra.Command) {
	log := newLogger()
	defer log.Sync()

	description, err := jobDescription(cmd)
	if err != nil {
		log.Fatal("reading the job description", zap.Error(err))
	}

	count, _ := cmd.Flags().GetInt("count")
	generated := questions.NewGenerator(nil).Generate(description, count)
	if len(generated) == 0 {
		log.Warn("no questions generated", zap.String("reason", "no keywords found in the job description"))
	}

	if err := printJSON(cmd.OutOrStdout(), generated); err != nil {
		log.Fatal("printing questions", zap.Error(err))
	}
}

func jobDescription(cmd *cobra.Command) (string, error) {
	text, _ := cmd.Flags().GetString("job")
	path, _ := cmd.Flags().GetString("job-file")

	if path != "" {
		if text != "" {
			return "", errors.New("--job and --job-file are mutually exclusive")
		}
		return readInput(path, cmd.InOrStdin())
	}

	return strings.TrimSpace(text), nil
}
