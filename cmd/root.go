package cmd

import (
	"fmt"
	"strings"

	"github.com/gqlc/gqldoc/build"
	"github.com/gqlc/gqldoc/document"
	"github.com/gqlc/gqldoc/loader"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type rootCmd struct {
	*baseCmd
	fs afero.Fs

	v       *viper.Viper
	headers *headerFlag
}

func (c *CommandLine) newRootCmd(fs afero.Fs) *rootCmd {
	rc := &rootCmd{fs: fs, headers: newHeaderFlag()}
	rc.baseCmd = &baseCmd{
		Command: &cobra.Command{
			Use:   "gqldoc [flags] <schema>...",
			Short: "Generate HTML documentation for a GraphQL schema",
			Long: `gqldoc renders a static documentation site for a GraphQL schema.

The schema can be given as:
	1) one or more GraphQL IDL files (.graphql or .gql), imports included
	2) an introspection result dump (.json)
	3) a running GraphQL server (http(s):// or ws(s)://), queried by introspection

Arguments take precedence over the schema listed in the config file.`,
			Example:           "gqldoc -o ./docs -b /docs/ --document schema-html --document tables api.graphql",
			Args:              cobra.ArbitraryArgs,
			SilenceUsage:      true,
			SilenceErrors:     true,
			PersistentPreRunE: setupLogging,
			PreRunE:           chainPreRunEs(validateArgs, rc.readConfig),
			RunE:              rc.run,
		},
	}

	rc.PersistentFlags().BoolP("verbose", "v", false, "Output logging")

	rc.Flags().StringP("config", "c", "", "Config file (default is ./"+DefaultConfigFile+")")
	rc.Flags().StringP("output", "o", "docs", "Directory the site is written to")
	rc.Flags().StringP("template", "t", "", "Directory holding custom page templates and assets")
	rc.Flags().StringP("base-url", "b", "./", "Base URL every link is prefixed with")
	rc.Flags().String("title", build.DefaultTitle, "Title of the index page")
	rc.Flags().String("native-title", build.DefaultNativeTitle, "Title of the native schema page")
	rc.Flags().StringSlice("document", []string{document.SchemaHTMLName}, `Document plugins rendering each page, in order.
One of: `+strings.Join(document.Names(), ", "))
	rc.Flags().StringSliceP("import_path", "I", []string{"."}, `Specify the directory in which to search for
imports.  May be specified multiple times;
directories will be searched in order.  If not
given, the current working directory is used.`)
	rc.Flags().VarP(rc.headers, "header", "H", "HTTP headers sent to a remote schema, formatted as key=value")
	rc.Flags().Int("concurrency", 0, "Maximum number of pages rendered at once (default GOMAXPROCS)")

	return rc
}

// validateArgs checks schema arguments before any config is read.
func validateArgs(_ *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}
	return validateSchemaArgs(args)
}

func (rc *rootCmd) readConfig(cmd *cobra.Command, _ []string) (err error) {
	rc.v, err = newViper(rc.fs, cmd)
	return
}

func (rc *rootCmd) run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(rc.v)
	if err != nil {
		return err
	}
	if len(args) > 0 {
		cfg.Schema = args
	}

	src, err := schemaSource(rc.fs, cfg, rc.headers)
	if err != nil {
		return err
	}

	docs := make([]document.Plugin, 0, len(cfg.Documents))
	for _, name := range cfg.Documents {
		p, err := document.Lookup(name)
		if err != nil {
			return err
		}
		docs = append(docs, p)
	}

	ctx := cmd.Context()
	schema, err := loader.Load(ctx, src)
	if err != nil {
		return err
	}

	paths, err := build.New(rc.fs, schema, build.Options{
		Output:      cfg.Output,
		Templates:   cfg.Template,
		BaseURL:     cfg.BaseURL,
		Title:       cfg.Title,
		NativeTitle: cfg.NativeTitle,
		Meta:        cfg.Package,
		Concurrency: cfg.Concurrency,
		Documents:   docs,
	}).Build(ctx)
	if err != nil {
		return err
	}

	zap.L().Info("generated documentation", zap.String("output", cfg.Output), zap.Int("files", len(paths)))
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d files to %s\n", len(paths), cfg.Output)
	return nil
}
