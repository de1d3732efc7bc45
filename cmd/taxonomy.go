package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spigell/hire-screener/internal/taxonomy"
)

var taxonomyCmd = &cobra.Command{
	Use:   "taxonomy",
	Short: "Print the active skill vocabularies and role rules",
	Run: func(_ *cobra.Command, _ []string) {
		config, err := getConfig()
		if err != nil {
			log.Fatalf("getting a config: %s", err)
		}

		tx, err := loadTaxonomy(config)
		if err != nil {
			log.Fatalf("loading the taxonomy: %s", err)
		}

		printTaxonomy(os.Stdout, tx)
	},
}

func init() {
	rootCmd.AddCommand(taxonomyCmd)
}

func printTaxonomy(w io.Writer, tx *taxonomy.Taxonomy) {
	fmt.Fprintf(w, "technical skills: %s\n", strings.Join(tx.TechnicalSkills, ", "))
	fmt.Fprintf(w, "soft skills: %s\n", strings.Join(tx.SoftSkills, ", "))
	fmt.Fprintf(w, "education (priority order): %s\n", strings.Join(tx.EducationKeywords, ", "))

	for _, rule := range tx.RoleRules {
		triggers := make([]string, 0, len(rule.Triggers))
		for _, trigger := range rule.Triggers {
			triggers = append(triggers, fmt.Sprintf("%s=%d", trigger.Skill, trigger.Weight))
		}
		fmt.Fprintf(w, "%s: %s\n", rule.Category, strings.Join(triggers, ", "))
	}
}
