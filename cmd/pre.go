package cmd

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gqlc/gqldoc/loader"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func chainPreRunEs(preRunEs ...func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		for i := 0; i < len(preRunEs) && err == nil; i++ {
			err = preRunEs[i](cmd, args)
		}
		return
	}
}

// setupLogging installs a development logger when --verbose is set and
// silences logging otherwise.
//
func setupLogging(cmd *cobra.Command, _ []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if !verbose {
		zap.ReplaceGlobals(zap.NewNop())
		return nil
	}

	l, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(l)
	return nil
}

func isRemote(name string) bool {
	for _, scheme := range []string{"http://", "https://", "ws://", "wss://"} {
		if strings.HasPrefix(name, scheme) {
			return true
		}
	}
	return false
}

func isIDL(name string) bool {
	ext := filepath.Ext(name)
	return ext == ".gql" || ext == ".graphql"
}

// validateSchemaArgs validates that the schema is either one endpoint, one
// introspection dump or any number of GraphQL files.
//
func validateSchemaArgs(names []string) error {
	if len(names) == 0 {
		return fmt.Errorf("gqldoc: no schema given")
	}

	if len(names) == 1 && (isRemote(names[0]) || filepath.Ext(names[0]) == ".json") {
		return nil
	}

	for _, name := range names {
		if isRemote(name) || filepath.Ext(name) == ".json" {
			return fmt.Errorf("gqldoc: %s can not be combined with other schema sources", name)
		}
		if !isIDL(name) {
			return fmt.Errorf("gqldoc: invalid file extension: %s", name)
		}
	}
	return nil
}

// schemaSource maps validated schema names to a loader.Source.
func schemaSource(fs afero.Fs, cfg *Config, headers *headerFlag) (loader.Source, error) {
	if err := validateSchemaArgs(cfg.Schema); err != nil {
		return nil, err
	}

	name := cfg.Schema[0]
	switch {
	case isRemote(name):
		return loader.Endpoint{URL: name, Headers: headers.merge(cfg.Headers)}, nil
	case filepath.Ext(name) == ".json":
		b, err := afero.ReadFile(fs, name)
		if err != nil {
			return nil, err
		}
		return loader.Introspection{R: bytes.NewReader(b)}, nil
	}

	importPaths := cfg.ImportPaths
	if len(importPaths) == 0 {
		importPaths = []string{"."}
	}
	return loader.Files{Fs: fs, ImportPaths: importPaths, Names: cfg.Schema}, nil
}
