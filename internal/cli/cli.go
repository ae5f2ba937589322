// Package cli provides the command line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/temirov/snapshot/internal/config"
	"github.com/temirov/snapshot/internal/filter"
	"github.com/temirov/snapshot/internal/services/clipboard"
	"github.com/temirov/snapshot/internal/snapshot"
	"github.com/temirov/snapshot/internal/tokenizer"
	"github.com/temirov/snapshot/internal/utils"
)

const (
	rootUse              = "snapshot"
	rootShortDescription = "snapshot command line interface"
	rootLongDescription  = `snapshot captures a source tree into a single reviewable text artifact.
The source command writes a filtered directory tree plus the contents of the
surviving files; the markdown command gathers markdown files only. Static
denylists and the root .gitignore decide what survives; the optional
.snapshot.yaml sidecar adds exclusions and toggles clipboard or token output.`

	sourceUse                = "source [path]"
	markdownUse              = "markdown [path]"
	sourceAlias              = "s"
	markdownAlias            = "md"
	sourceShortDescription   = "write the full source snapshot (" + sourceAlias + ")"
	markdownShortDescription = "write the markdown snapshot (" + markdownAlias + ")"

	// sourceUsageExample demonstrates source command usage.
	sourceUsageExample = `  # Snapshot the current tree into repo_snapshot.txt
  snapshot source

  # Snapshot another tree
  snapshot source ./service`
	// markdownUsageExample demonstrates markdown command usage.
	markdownUsageExample = `  # Gather every markdown file into md-snapshot.txt
  snapshot markdown`

	defaultPath = "."

	generatedMessageFormat       = "Generated: %s (%d files)"
	generatedTokensMessageFormat = "Generated: %s (%d files, %d tokens)"
	warningTokenizerFormat       = "Warning: tokenizer unavailable: %v\n"
	errorPathMissingFormat       = "path '%s' does not exist"
	errorPathNotDirectoryFormat  = "path '%s' is not a directory"
	errorStatFormat              = "stat failed for '%s': %w"
)

// Execute runs the root command.
func Execute() error {
	return newRootCommand().Execute()
}

// newRootCommand assembles the root command and its generator subcommands.
func newRootCommand() *cobra.Command {
	rootCommand := &cobra.Command{
		Use:           rootUse,
		Short:         rootShortDescription,
		Long:          rootLongDescription,
		Version:       utils.ApplicationVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCommand.AddCommand(
		newGeneratorCommand(snapshot.KindSource, sourceUse, sourceAlias, sourceShortDescription, sourceUsageExample),
		newGeneratorCommand(snapshot.KindMarkdown, markdownUse, markdownAlias, markdownShortDescription, markdownUsageExample),
	)
	return rootCommand
}

// newGeneratorCommand builds one profile subcommand taking an optional root
// path argument. The pipeline itself carries no flags: static configuration
// is compiled in, and the remaining knobs live in the configuration sidecar.
func newGeneratorCommand(generatorKind string, useLine string, aliasName string, shortDescription string, usageExample string) *cobra.Command {
	return &cobra.Command{
		Use:     useLine,
		Aliases: []string{aliasName},
		Short:   shortDescription,
		Example: usageExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(command *cobra.Command, arguments []string) error {
			rootPath := defaultPath
			if len(arguments) > 0 {
				rootPath = arguments[0]
			}
			return runSnapshot(generatorKind, rootPath)
		},
	}
}

// runSnapshot validates the root, builds the run configuration, and executes
// the generator pipeline.
func runSnapshot(generatorKind string, rootPath string) error {
	rootInformation, statError := os.Stat(rootPath)
	if statError != nil {
		if os.IsNotExist(statError) {
			return fmt.Errorf(errorPathMissingFormat, rootPath)
		}
		return fmt.Errorf(errorStatFormat, rootPath, statError)
	}
	if !rootInformation.IsDir() {
		return fmt.Errorf(errorPathNotDirectoryFormat, rootPath)
	}

	loggerInstance, loggerError := utils.NewApplicationLogger()
	if loggerError != nil {
		return loggerError
	}
	defer loggerInstance.Sync()

	applicationConfiguration, configurationError := config.LoadApplicationConfiguration(rootPath)
	if configurationError != nil {
		return configurationError
	}

	filterConfiguration, filterError := buildFilterConfiguration(generatorKind, rootPath, applicationConfiguration)
	if filterError != nil {
		return filterError
	}

	var clipboardCopier clipboard.Copier
	if applicationConfiguration.CopyToClipboard() {
		clipboardCopier = clipboard.NewService()
	}

	var tokenCounter tokenizer.Counter
	if applicationConfiguration.CountTokens() {
		counter, _, counterError := tokenizer.NewCounter(applicationConfiguration.Tokens.Model)
		if counterError != nil {
			fmt.Fprintf(os.Stderr, warningTokenizerFormat, counterError)
		} else {
			tokenCounter = counter
		}
	}

	generatorInstance := &snapshot.Generator{
		RootDirectory: rootPath,
		Kind:          generatorKind,
		Filter:        filterConfiguration,
		Logger:        loggerInstance,
		Clipboard:     clipboardCopier,
		TokenCounter:  tokenCounter,
	}
	runResult, runError := generatorInstance.Run()
	if runError != nil {
		return runError
	}

	printCompletionLine(runResult)
	return nil
}

// buildFilterConfiguration assembles the per-profile visibility policy. Only
// the source profile reads the root ignore-file.
func buildFilterConfiguration(generatorKind string, rootPath string, applicationConfiguration config.ApplicationConfiguration) (*filter.Config, error) {
	if generatorKind == snapshot.KindMarkdown {
		return filter.NewMarkdownConfig(), nil
	}
	ignorePatterns, patternsError := config.LoadRootPatterns(rootPath, applicationConfiguration.Paths.Exclude, applicationConfiguration.UseGitignore())
	if patternsError != nil {
		return nil, patternsError
	}
	return filter.NewSourceConfig(ignorePatterns), nil
}

// printCompletionLine reports the finished artifact, colored when stdout is a
// terminal.
func printCompletionLine(runResult snapshot.Result) {
	completionMessage := fmt.Sprintf(generatedMessageFormat, runResult.OutputPath, runResult.FileCount)
	if runResult.Tokens > 0 {
		completionMessage = fmt.Sprintf(generatedTokensMessageFormat, runResult.OutputPath, runResult.FileCount, runResult.Tokens)
	}
	if isatty.IsTerminal(os.Stdout.Fd()) {
		color.New(color.FgGreen).Fprintln(os.Stdout, completionMessage)
		return
	}
	fmt.Fprintln(os.Stdout, completionMessage)
}
