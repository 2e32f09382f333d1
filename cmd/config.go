package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gqlc/gqldoc/build"
	"github.com/gqlc/gqldoc/document"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is written by `gqldoc init` and read when present in
// the working directory.
//
const DefaultConfigFile = ".gqldoc.yaml"

const envPrefix = "GQLDOC"

// Config holds every setting of a gqldoc run. Values come from, in order of
// precedence: flags, GQLDOC_* environment variables, the config file and
// the flag defaults.
//
type Config struct {
	Schema      []string          `yaml:"schema" mapstructure:"schema"`
	Output      string            `yaml:"output" mapstructure:"output"`
	Template    string            `yaml:"template,omitempty" mapstructure:"template"`
	BaseURL     string            `yaml:"base-url" mapstructure:"base-url"`
	Title       string            `yaml:"title" mapstructure:"title"`
	NativeTitle string            `yaml:"native-title,omitempty" mapstructure:"native-title"`
	Documents   []string          `yaml:"document" mapstructure:"document"`
	ImportPaths []string          `yaml:"import_path" mapstructure:"import_path"`
	Headers     map[string]string `yaml:"headers,omitempty" mapstructure:"headers"`
	Concurrency int               `yaml:"concurrency,omitempty" mapstructure:"concurrency"`
	Package     build.Meta        `yaml:"package,omitempty" mapstructure:"package"`
}

func defaultConfig() *Config {
	return &Config{
		Schema:      []string{"schema.graphql"},
		Output:      "docs",
		BaseURL:     "./",
		Title:       build.DefaultTitle,
		Documents:   []string{document.SchemaHTMLName},
		ImportPaths: []string{"."},
	}
}

// newViper returns a viper instance reading from fs with the root flags
// bound. An explicit config file must exist, the default one may not.
//
func newViper(fs afero.Fs, cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	v.SetFs(fs)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault("schema", []string{})

	for _, name := range []string{"output", "template", "base-url", "title", "native-title", "document", "import_path", "concurrency"} {
		if err := v.BindPFlag(name, cmd.Flags().Lookup(name)); err != nil {
			return nil, err
		}
	}

	cfgFile, _ := cmd.Flags().GetString("config")
	if cfgFile != "" {
		exists, err := afero.Exists(fs, cfgFile)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, fmt.Errorf("gqldoc: reading config: %s does not exist", cfgFile)
		}
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(strings.TrimSuffix(DefaultConfigFile, ".yaml"))
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	switch {
	case err == nil:
		zap.L().Info("using config file", zap.String("file", v.ConfigFileUsed()))
	case errors.As(err, &notFound):
	default:
		return nil, fmt.Errorf("gqldoc: reading config: %w", err)
	}
	return v, nil
}

func loadConfig(v *viper.Viper) (*Config, error) {
	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("gqldoc: decoding config: %w", err)
	}
	return cfg, nil
}

type initCmd struct {
	*baseCmd
	fs afero.Fs
}

func (c *CommandLine) newInitCmd(fs afero.Fs) cmder {
	ic := &initCmd{fs: fs}
	ic.baseCmd = &baseCmd{
		Command: &cobra.Command{
			Use:   "init [file]",
			Short: "Write a default config file",
			Long: `init writes the default gqldoc configuration as YAML, to
` + DefaultConfigFile + ` unless a file name is given. An existing file is
only replaced with --force.`,
			Args: cobra.MaximumNArgs(1),
			RunE: ic.run,
		},
	}
	ic.Flags().Bool("force", false, "Overwrite an existing config file")
	return ic
}

func (ic *initCmd) run(cmd *cobra.Command, args []string) error {
	name := DefaultConfigFile
	if len(args) == 1 {
		name = args[0]
	}

	force, _ := cmd.Flags().GetBool("force")
	exists, err := afero.Exists(ic.fs, name)
	if err != nil {
		return err
	}
	if exists && !force {
		return fmt.Errorf("gqldoc: %s already exists, use --force to overwrite it", name)
	}

	f, err := ic.fs.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err = enc.Encode(defaultConfig()); err != nil {
		return err
	}
	if err = enc.Close(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", name)
	return nil
}
