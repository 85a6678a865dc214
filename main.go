// jengua — hierarchical translation catalog manager.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tobiazsh/jengua/catalog"
	"github.com/tobiazsh/jengua/config"
	"github.com/tobiazsh/jengua/i18n"
	"github.com/tobiazsh/jengua/jsonfile"
	"github.com/tobiazsh/jengua/langmeta"
	"github.com/tobiazsh/jengua/merge"
	"github.com/tobiazsh/jengua/yamlfile"
)

// Version information (set via -ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// ANSI colors
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[0;31m"
	colorGreen  = "\033[0;32m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
)

func logInfo(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorBlue+"[INFO]"+colorReset+" "+format+"\n", args...)
}

func logSuccess(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorGreen+"[OK]"+colorReset+" "+format+"\n", args...)
}

func logWarning(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorYellow+"[WARN]"+colorReset+" "+format+"\n", args...)
}

func logError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorRed+"[ERROR]"+colorReset+" "+format+"\n", args...)
}

// ---------------------------------------------------------------------------
// Global flag
// ---------------------------------------------------------------------------

var rootDir string

// ---------------------------------------------------------------------------
// Root command
// ---------------------------------------------------------------------------

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "jengua",
		Short: "Hierarchical translation catalog manager",
		Long: `jengua — manage hierarchical translation catalogs.

Catalogs are JSON or YAML documents holding a locale code and nested
translation contexts. Pending entries (null values) mark keys that still
await a human translation; the library's fallback lookup records missing
keys as pending entries automatically.

Commands:
  status      Show catalog files and translation statistics
  missing     List pending (untranslated) entries
  merge       Merge a template catalog's key set into the others
  convert     Convert a catalog between JSON and YAML`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global persistent flag — inherited by all subcommands
	root.PersistentFlags().StringVar(&rootDir, "root", ".", "Project root directory")

	root.AddCommand(
		newStatusCmd(),
		newMissingCmd(),
		newMergeCmd(),
		newConvertCmd(),
		newVersionCmd(),
	)

	return root
}

func main() {
	i18n.Init("")

	if err := newRootCmd().Execute(); err != nil {
		logError("%v", err)
		os.Exit(1)
	}
}

// ---------------------------------------------------------------------------
// version (display version information)
// ---------------------------------------------------------------------------

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display version, commit hash, and build date.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("jengua version %s\n", version)
			fmt.Printf("  commit:    %s\n", commit)
			fmt.Printf("  built:     %s\n", date)
		},
	}
}

// ---------------------------------------------------------------------------
// status (read-only: catalog files + translation stats)
// ---------------------------------------------------------------------------

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show catalog files and translation statistics",
		Long: `Show the detected catalog directory and per-locale translation
progress. Does not modify any files.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus()
		},
	}
}

func runStatus() error {
	proj := config.Detect(rootDir)
	if len(proj.Files) == 0 {
		logInfo("%s", i18n.Tf("No catalog files found under {dir}", map[string]any{"dir": rootDir}))
		return nil
	}

	fmt.Fprintf(os.Stderr, "\n%s%s%s\n", colorBlue, i18n.T("Translation Catalogs"), colorReset)
	fmt.Fprintln(os.Stderr, strings.Repeat("─", 72))
	fmt.Fprintf(os.Stderr, "  %s\n", i18n.Tf("Catalog directory: {dir}", map[string]any{"dir": proj.LocaleDir}))
	fmt.Fprintf(os.Stderr, "  %s\n\n", i18n.Tf("Default locale: {locale}", map[string]any{"locale": proj.DefaultLocale}))

	fmt.Fprintf(os.Stderr, "%-12s %-28s %7s %11s %9s\n",
		i18n.T("Locale"), i18n.T("Name"), i18n.T("Total"), i18n.T("Translated"), i18n.T("Pending"))
	fmt.Fprintln(os.Stderr, strings.Repeat("─", 72))

	for _, path := range proj.Files {
		locale := config.LocaleFromPath(path)

		cat, err := loadCatalogFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%-12s %s%v%s\n", locale, colorRed, err, colorReset)
			continue
		}

		total, translated, pending := cat.Stats()
		meta := langmeta.Resolve(cat.Code())
		name := meta.Name
		if meta.Flag != "" {
			name = meta.Flag + " " + name
		}

		fmt.Fprintf(os.Stderr, "%-12s %-28s %7d %11d %9d  %s\n",
			cat.Code(), name, total, translated, pending,
			progressBar(percent(translated, total), 20))
	}

	fmt.Fprintln(os.Stderr)
	return nil
}

// ---------------------------------------------------------------------------
// missing (read-only: list pending entries)
// ---------------------------------------------------------------------------

func newMissingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "missing [locale]",
		Short: "List pending (untranslated) entries",
		Long: `List the dot-joined paths of pending entries, per catalog.
With a locale argument, only that catalog is inspected.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			locale := ""
			if len(args) == 1 {
				locale = args[0]
			}
			return runMissing(locale)
		},
	}
}

func runMissing(locale string) error {
	proj := config.Detect(rootDir)

	files := proj.Files
	if locale != "" {
		file := proj.FileFor(locale)
		if file == "" {
			return fmt.Errorf("no catalog file for locale %q under %s", locale, rootDir)
		}
		files = []string{file}
	}
	if len(files) == 0 {
		logInfo("%s", i18n.Tf("No catalog files found under {dir}", map[string]any{"dir": rootDir}))
		return nil
	}

	found := false
	for _, path := range files {
		cat, err := loadCatalogFile(path)
		if err != nil {
			return err
		}

		paths := cat.PendingPaths()
		if len(paths) == 0 {
			continue
		}
		found = true

		fmt.Fprintf(os.Stderr, "%s\n", i18n.Tf("Pending entries in {locale}:", map[string]any{"locale": cat.Code()}))
		for _, p := range paths {
			fmt.Printf("  %s\n", p)
		}
	}

	if !found {
		logSuccess("%s", i18n.T("No pending translations."))
	}
	return nil
}

// ---------------------------------------------------------------------------
// merge (align every catalog with a template's key set)
// ---------------------------------------------------------------------------

func newMergeCmd() *cobra.Command {
	var prune bool

	cmd := &cobra.Command{
		Use:   "merge <template-locale>",
		Short: "Merge a template catalog's key set into the others",
		Long: `Merge the key set of the template catalog into every other catalog:
keys the template has and a catalog lacks are added there as pending
entries. Existing translations are never touched. With --prune, entries
the template no longer carries are removed.

Each updated file's previous version is kept as a .bak sibling.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMerge(args[0], prune)
		},
	}

	cmd.Flags().BoolVar(&prune, "prune", false, "Remove entries absent from the template")

	return cmd
}

func runMerge(templateLocale string, prune bool) error {
	proj := config.Detect(rootDir)

	templatePath := proj.FileFor(templateLocale)
	if templatePath == "" {
		return fmt.Errorf("no catalog file for template locale %q under %s", templateLocale, rootDir)
	}
	template, err := loadCatalogFile(templatePath)
	if err != nil {
		return err
	}

	for _, path := range proj.Files {
		if path == templatePath {
			continue
		}

		dst, err := loadCatalogFile(path)
		if err != nil {
			return err
		}

		res := merge.Merge(dst, template, prune)
		if err := writeCatalogFile(dst, path); err != nil {
			return err
		}

		logSuccess("%s", i18n.Tf(
			"Merged template {template} into {locale}: {added} added, {kept} kept, {pruned} pruned",
			map[string]any{
				"template": templateLocale,
				"locale":   dst.Code(),
				"added":    res.Added,
				"kept":     res.Kept,
				"pruned":   res.Pruned,
			}))
	}

	return nil
}

// ---------------------------------------------------------------------------
// convert (JSON <-> YAML dialect)
// ---------------------------------------------------------------------------

func newConvertCmd() *cobra.Command {
	var to string
	var out string

	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Convert a catalog between JSON and YAML",
		Long: `Convert a catalog document to the other dialect. The target format
defaults to the opposite of the input's; the output path defaults to the
input path with the extension swapped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(args[0], to, out)
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "Target format: json or yaml")
	cmd.Flags().StringVarP(&out, "output", "o", "", "Output file path")

	return cmd
}

func runConvert(path, to, out string) error {
	cat, err := loadCatalogFile(path)
	if err != nil {
		return err
	}

	if to == "" {
		if isYAMLPath(path) {
			to = "json"
		} else {
			to = "yaml"
		}
	}

	base := strings.TrimSuffix(path, filepath.Ext(path))
	switch to {
	case "json":
		if out == "" {
			out = base + ".json"
		}
	case "yaml":
		if out == "" {
			out = base + ".yaml"
		}
	default:
		return fmt.Errorf("unknown target format %q (want json or yaml)", to)
	}

	if fileExists(out) {
		logWarning("%s", i18n.Tf("Replacing existing {path}", map[string]any{"path": out}))
	}

	if to == "json" {
		err = jsonfile.Write(cat, out)
	} else {
		err = yamlfile.Write(cat, out)
	}
	if err != nil {
		return err
	}

	logSuccess("%s", i18n.Tf("Wrote {path}", map[string]any{"path": out}))
	return nil
}

// ---------------------------------------------------------------------------
// Shared helpers
// ---------------------------------------------------------------------------

// loadCatalogFile loads a catalog document, dispatching on the file
// extension.
func loadCatalogFile(path string) (*catalog.Catalog, error) {
	if isYAMLPath(path) {
		return yamlfile.Load(path)
	}
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		return jsonfile.Load(path)
	}
	return nil, fmt.Errorf("unsupported catalog file %s (want .json, .yaml, or .yml)", path)
}

// writeCatalogFile saves a catalog back in the dialect its path implies.
func writeCatalogFile(c *catalog.Catalog, path string) error {
	if isYAMLPath(path) {
		return yamlfile.Write(c, path)
	}
	return jsonfile.Write(c, path)
}

func isYAMLPath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// percent returns part of total as a whole percentage, 0 for an empty
// total.
func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return part * 100 / total
}

// progressBar renders a colored progress bar of the given width.
func progressBar(pct, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}

	filled := pct * width / 100
	color := colorGreen
	switch {
	case pct < 50:
		color = colorRed
	case pct < 100:
		color = colorYellow
	}

	return color + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + colorReset +
		fmt.Sprintf(" %3d%%", pct)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
