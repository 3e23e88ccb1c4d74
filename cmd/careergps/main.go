package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/achilles921/lifetimegps/internal/catalog"
	"github.com/achilles921/lifetimegps/internal/engine"
	apperrors "github.com/achilles921/lifetimegps/internal/errors"
	"github.com/achilles921/lifetimegps/internal/monitoring"
	"github.com/achilles921/lifetimegps/internal/roadmap"
	"github.com/achilles921/lifetimegps/internal/types"
)

var (
	validAgeGroups       = []string{"teen", "youngAdult", "adult", "midCareer", "lateCareer"}
	validExperienceTiers = []string{"none", "entry", "intermediate", "advanced", "expert"}
)

// validateDemographics rejects flag values outside the recognized
// vocabularies before they silently fall through to the defaults.
func validateDemographics(ageGroup, priorExperience string) error {
	if !slices.Contains(validAgeGroups, ageGroup) {
		return apperrors.NewConfigurationError(
			fmt.Sprintf("unknown age group %q (valid: %s)", ageGroup, strings.Join(validAgeGroups, ", ")), nil)
	}
	if !slices.Contains(validExperienceTiers, priorExperience) {
		return apperrors.NewConfigurationError(
			fmt.Sprintf("unknown experience level %q (valid: %s)", priorExperience, strings.Join(validExperienceTiers, ", ")), nil)
	}
	return nil
}

var logger = monitoring.NewLogger()

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		logger.Error("Command Failed", "error", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "careergps",
		Short:         "Career matching and roadmap tooling",
		Long:          "careergps scores quiz results against the career catalog and generates phased career roadmaps.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if viper.GetBool("verbose") {
				logger.SetLevel(slog.LevelDebug)
			}
			return nil
		},
	}

	root.PersistentFlags().Bool("verbose", false, "enable debug logging")
	root.PersistentFlags().String("catalog", "", "path to an external catalog JSON file (defaults to the embedded catalog)")

	viper.SetEnvPrefix("LIFETIMEGPS")
	viper.AutomaticEnv()
	_ = viper.BindPFlag("verbose", root.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("catalog", root.PersistentFlags().Lookup("catalog"))

	root.AddCommand(newMatchCmd())
	root.AddCommand(newRoadmapCmd())
	root.AddCommand(newCatalogCmd())
	return root
}

// loadCatalog resolves the configured catalog source.
func loadCatalog() (*catalog.Catalog, error) {
	start := time.Now()
	var (
		cat    *catalog.Catalog
		err    error
		source = "embedded"
	)
	if path := viper.GetString("catalog"); path != "" {
		source = path
		cat, err = catalog.LoadFile(path)
	} else {
		cat, err = catalog.Load()
	}
	if err != nil {
		return nil, err
	}
	logger.CatalogLogger(source, len(cat.Careers), len(cat.Interests), time.Since(start))
	return cat, nil
}

func readQuizFile(path string) (*types.QuizResult, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read quiz file: %w", err)
	}
	var payload any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode quiz file: %w", err)
	}
	return engine.ProcessQuizResponses(payload), nil
}

func newMatchCmd() *cobra.Command {
	var explain bool

	cmd := &cobra.Command{
		Use:   "match <quiz.json>",
		Short: "Score quiz responses and print the top career matches",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog()
			if err != nil {
				return err
			}

			result, err := readQuizFile(args[0])
			if err != nil {
				return err
			}

			runID := uuid.New().String()
			logger.NormalizeLogger(runID, countSectors(result), len(result.Interests), result.MiniGameMetrics != nil)

			start := time.Now()
			matches := engine.New(cat).GenerateCareerMatches(result)

			top := ""
			if len(matches) > 0 {
				top = matches[0].Title
			}
			logger.ScoringLogger(runID, len(cat.Careers), len(result.Interests), len(matches), top, time.Since(start))

			return printJSON(cmd, matchOutput(matches, explain))
		},
	}

	cmd.Flags().BoolVar(&explain, "explain", false, "include the per-dimension score breakdown")
	return cmd
}

func countSectors(result *types.QuizResult) int {
	sectors := 0
	for _, tallies := range []map[string]int{
		result.WorkStyle, result.CognitiveStrength, result.SocialApproach, result.Motivation,
	} {
		if len(tallies) > 0 {
			sectors++
		}
	}
	return sectors
}

// matchOutput strips breakdowns unless explanation was requested.
func matchOutput(matches []types.CareerMatch, explain bool) any {
	if explain {
		return matches
	}
	type plain struct {
		ID       int      `json:"id"`
		Title    string   `json:"title"`
		Match    int      `json:"match"`
		Category string   `json:"category"`
		Salary   string   `json:"salary"`
		Growth   string   `json:"growth"`
		Skills   []string `json:"skills"`
	}
	out := make([]plain, 0, len(matches))
	for _, m := range matches {
		out = append(out, plain{
			ID: m.ID, Title: m.Title, Match: m.Match, Category: m.Category,
			Salary: m.Salary, Growth: m.Growth, Skills: m.Skills,
		})
	}
	return out
}

func newRoadmapCmd() *cobra.Command {
	var (
		ageGroup        string
		priorExperience string
		quizPath        string
	)

	cmd := &cobra.Command{
		Use:   "roadmap <career title>",
		Short: "Generate a phased roadmap for a career",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateDemographics(ageGroup, priorExperience); err != nil {
				return err
			}

			cat, err := loadCatalog()
			if err != nil {
				return err
			}

			var quiz *types.QuizResult
			if quizPath != "" {
				quiz, err = readQuizFile(quizPath)
				if err != nil {
					return err
				}
			}

			rm := roadmap.New(cat).Generate(args[0], quiz, ageGroup, priorExperience)

			_, known := cat.CareerByTitle(args[0])
			logger.RoadmapLogger(rm.CareerPath, rm.AgeGroup, rm.PriorExperience, !known, len(rm.Phases))

			return printJSON(cmd, rm)
		},
	}

	cmd.Flags().StringVar(&ageGroup, "age-group", "teen", "age group: teen, youngAdult, adult, midCareer, lateCareer")
	cmd.Flags().StringVar(&priorExperience, "experience", "none", "prior experience: none, entry, intermediate, advanced, expert")
	cmd.Flags().StringVar(&quizPath, "quiz", "", "optional quiz responses JSON used to personalize steps")
	return cmd
}

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Catalog inspection tools",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "validate [path]",
		Short: "Validate the embedded catalog or an external catalog file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				cat *catalog.Catalog
				err error
			)
			if len(args) == 1 {
				cat, err = catalog.LoadFile(args[0])
			} else {
				cat, err = catalog.Load()
			}
			if err != nil {
				return err
			}
			logger.SystemLogger("catalog_valid",
				fmt.Sprintf("%d careers, %d interests", len(cat.Careers), len(cat.Interests)))
			fmt.Fprintf(cmd.OutOrStdout(), "catalog OK: %d careers, %d interests\n", len(cat.Careers), len(cat.Interests))
			return nil
		},
	})

	return cmd
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
