package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/hire-screener/internal/ingest"
	"github.com/spigell/hire-screener/internal/logger"
	"github.com/spigell/hire-screener/internal/scoring"
	"github.com/spigell/hire-screener/internal/screening"
)

const (
	PromptShowReport          = "Show candidate report"
	PromptReportByRoles       = "Report by roles"
	PromptResultsToFile       = "Dump results to file"
	PromptAppendToExcludeFile = "Append all candidates to exclude file"
	PromptExit                = "Exit"
	PromptBack                = "back"
)

var errExit = errors.New("exit requested")

var screenCmd = &cobra.Command{
	Use:   "screen [résumé files, directories or globs]",
	Short: "Score and rank résumés against a job description",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		screen(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(screenCmd)

	screenCmd.Flags().StringP("job", "J", "", "file with the job description text")
	screenCmd.Flags().String("title", "", "job title used in logs and exports")
	screenCmd.Flags().IntP("workers", "w", defaultWorkers, "number of résumés analyzed concurrently")
	screenCmd.Flags().StringP("output", "o", "", "write ranked results as JSON to this path")
	screenCmd.Flags().BoolP("yes", "y", false, "do not open the interactive review menu")
	screenCmd.Flags().StringP("exclude-file", "e", "", "file with already reviewed candidates to skip")

	viper.BindPFlag("job.file", screenCmd.Flags().Lookup("job"))
	viper.BindPFlag("job.title", screenCmd.Flags().Lookup("title"))
	viper.BindPFlag("screening.workers", screenCmd.Flags().Lookup("workers"))
	viper.BindPFlag("screening.output", screenCmd.Flags().Lookup("output"))
	viper.BindPFlag("exclude-file", screenCmd.Flags().Lookup("exclude-file"))
}

func screen(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}
	defer logger.Sync() //nolint:errcheck

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the hire-screener", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	jd, err := loadJob(config.Job)
	if err != nil {
		logger.Fatal("loading the job description", zap.Error(err),
			zap.String("hint", "pass --job or set job.file in the configuration file"),
		)
	}

	tx, err := loadTaxonomy(config)
	if err != nil {
		logger.Fatal("loading the taxonomy", zap.Error(err))
	}

	provider, err := newProvider(ctx, config.Similarity, logger)
	if err != nil {
		logger.Fatal("creating the similarity provider", zap.Error(err),
			zap.String("hint", "set SIMILARITY_API_KEY_FILE or similarity.api-key-file, or unset both to use keyword scoring"),
		)
	}

	sources, err := ingest.Sources(args)
	if err != nil {
		logger.Fatal("collecting résumés", zap.Error(err))
	}

	filters, err := prepareFilters(config, logger)
	if err != nil {
		logger.Fatal("preparing filters", zap.Error(err))
	}

	engine := screening.NewEngine(tx, scoring.NewCalculator(tx, provider, logger), logger)

	results, err := engine.Screen(ctx, jd, sources, config.Screening.Workers)
	if err != nil {
		logger.Warn("screening interrupted, showing completed candidates only", zap.Error(err))
	}

	for _, failure := range results.Failures {
		logger.Warn("candidate skipped", zap.String("source", failure.Source), zap.Error(failure.Err))
	}

	results, err = filters.RunFilters(ctx, results)
	if err != nil {
		logger.Fatal("filtering failed", zap.Error(err))
	}

	if results.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no candidates left after filters"))
		return
	}

	printTable(os.Stdout, results)

	if out := strings.TrimSpace(config.Screening.Output); out != "" {
		if err := results.ToFile(out); err != nil {
			logger.Fatal("writing results", zap.Error(err))
		}
		logger.Info("results written", zap.String("filename", out))
	}

	if yes, _ := cmd.Flags().GetBool("yes"); yes {
		return
	}

	for {
		items := []string{PromptShowReport, PromptReportByRoles, PromptResultsToFile}
		if config.ExcludeFile != "" {
			items = append(items, PromptAppendToExcludeFile)
		}

		prompt := promptui.Select{
			Label: "What next?",
			Items: append(items, PromptExit),
		}

		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(action, logger, config, results); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(action string, logger *zap.Logger, config *Config, results *screening.Results) error {
	switch action {
	case PromptShowReport:
		return showReports(results)
	case PromptReportByRoles:
		pretty, _ := json.MarshalIndent(results.ReportByRole(), "", "  ")
		logger.Info(string(pretty), zap.Int("candidates count", results.Len()))
		return nil
	case PromptResultsToFile:
		filename, err := results.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump results to file: %w", err)
		}
		logger.Info("dumping result to file", zap.String("filename", filename))
		return nil
	case PromptAppendToExcludeFile:
		reviewed, err := screening.ReviewedFromFile(config.ExcludeFile)
		if err != nil {
			return err
		}

		reviewed.Append(results.ToReviewed())

		if err := reviewed.ToFile(config.ExcludeFile); err != nil {
			return err
		}

		logger.Info("appended to exclude file", zap.String("filename", config.ExcludeFile))
		return nil
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func showReports(results *screening.Results) error {
	for {
		items := make([]string, 0, results.Len()+1)
		for _, c := range results.Candidates {
			items = append(items, fmt.Sprintf("%s %s / %.1f / %s", c.ID, c.Name, c.CurrentScore, c.RecommendedRole))
		}

		candidatePrompt := promptui.Select{
			Label: "Choose a candidate and press ENTER",
			Items: append(items, PromptBack),
			Size:  10,
		}

		_, selected, err := candidatePrompt.Run()
		if err != nil {
			return err
		}

		if selected == PromptBack {
			return nil
		}

		id := strings.Split(selected, " ")[0]
		candidate := results.FindByID(id)
		if candidate == nil {
			return fmt.Errorf("there is no such candidate id %s", id)
		}

		fmt.Printf("\n%s\n\n", candidate.AnalysisDetails)
	}
}

func loadJob(cfg *JobConfig) (screening.JobDescription, error) {
	path := strings.TrimSpace(cfg.File)
	if path == "" {
		return screening.JobDescription{}, errors.New("job description file is not configured")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return screening.JobDescription{}, fmt.Errorf("reading job description: %w", err)
	}

	title := strings.TrimSpace(cfg.Title)
	if title == "" {
		title = ingest.CandidateName(path)
	}

	return screening.JobDescription{Title: title, RawText: string(data)}, nil
}

func printTable(w io.Writer, results *screening.Results) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "#\tNAME\tSCORE\tTIER\tROLE\tMETHOD\n")
	for i, c := range results.Candidates {
		fmt.Fprintf(tw, "%d\t%s\t%.1f\t%s\t%s\t%s\n", i+1, c.Name, c.CurrentScore, c.Tier(), c.RecommendedRole, c.ScoreMethod)
	}
	tw.Flush()
}
