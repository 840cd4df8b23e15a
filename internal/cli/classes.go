package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ppiankov/semflow/internal/verbclass"
)

// classesCmd represents the classes command group
var classesCmd = &cobra.Command{
	Use:   "classes",
	Short: "Inspect the verb class inventory",
	Long: `Inspect the loaded verb classes: look up a lemma's classes, roles,
syntactic frames and semantic predicates, or summarize the inventory.`,
}

// classesLookupCmd represents the classes lookup command
var classesLookupCmd = &cobra.Command{
	Use:   "lookup <lemma>",
	Short: "Show classes, roles and frames for a verb lemma",
	Args:  cobra.ExactArgs(1),
	RunE:  runClassesLookup,
}

// classesStatsCmd represents the classes stats command
var classesStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize the loaded verb class inventory",
	RunE:  runClassesStats,
}

func init() {
	rootCmd.AddCommand(classesCmd)
	classesCmd.AddCommand(classesLookupCmd)
	classesCmd.AddCommand(classesStatsCmd)

	classesCmd.PersistentFlags().StringVar(&dataDir, "data", "", "verb class data directory (default: built-in inventory)")
}

func loadIndex() (*verbclass.Index, error) {
	if dataDir == "" {
		return verbclass.Builtin(), nil
	}
	idx, err := verbclass.LoadDirectory(dataDir)
	if err != nil {
		return nil, fmt.Errorf("load verb classes: %w", err)
	}
	return idx, nil
}

func runClassesLookup(cmd *cobra.Command, args []string) error {
	lemma := strings.ToLower(args[0])
	idx, err := loadIndex()
	if err != nil {
		return err
	}

	analysis, ok := idx.Lookup(lemma)
	if !ok {
		fmt.Fprintf(os.Stderr, "No verb class found for %q\n", lemma)
		return nil
	}

	fmt.Printf("Lemma:      %s\n", analysis.Lemma)
	fmt.Printf("Confidence: %.2f\n", analysis.Confidence)
	fmt.Println()

	for _, c := range analysis.Classes {
		fmt.Printf("Class %s (%s)\n", c.ID, c.Name)
		fmt.Printf("  Members: %s\n", strings.Join(c.Members, ", "))
		for _, spec := range c.Roles {
			line := "  Role: " + string(spec.Role)
			for _, r := range spec.Restrictions {
				line += fmt.Sprintf(" [%s%s]", r.Value, r.Type)
			}
			fmt.Println(line)
		}
		for _, f := range c.Frames {
			fmt.Printf("  Frame: %s", f.Description)
			if f.Example != "" {
				fmt.Printf("  (%q)", f.Example)
			}
			fmt.Println()
			for _, p := range f.Semantics {
				fmt.Printf("    %s(%s)\n", p.Name, strings.Join(p.Args, ", "))
			}
		}
		fmt.Println()
	}

	info := idx.InferAspectualClass(lemma)
	fmt.Printf("Aspect features: dynamic=%v durative=%v telic=%v punctual=%v\n",
		info.Dynamic, info.Durative, info.Telic, info.Punctual)

	return nil
}

func runClassesStats(cmd *cobra.Command, args []string) error {
	idx, err := loadIndex()
	if err != nil {
		return err
	}

	stats := idx.Statistics()
	fmt.Printf("Classes:      %d\n", stats.Classes)
	fmt.Printf("Verbs:        %d\n", stats.Verbs)
	fmt.Printf("Roles:        %d\n", stats.Roles)
	fmt.Printf("Predicates:   %d\n", stats.Predicates)
	fmt.Printf("Restrictions: %d\n", stats.Restrictions)
	return nil
}
