package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/nextcheck/nextcheck/internal/adapters/outbound/config"
	"github.com/nextcheck/nextcheck/internal/domain"
)

const configHeader = `# nextcheck configuration
# Every key is optional; omitted keys keep the built-in defaults.
# Environment variables override this file, e.g. NEXTCHECK_NAMING__MAX_DEPTH=3.

`

var sectionComments = map[string]string{
	"directories": "Directories that must exist (errors) or should exist (warnings).",
	"files":       "Root files. A missing .js file is accepted under any alternate extension.",
	"naming":      "Regular expressions file names must match. exempt_dirs are skipped under components/.",
	"checks":      "Opt-in checks.",
}

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Generate a .nextcheck.yaml configuration file",
		Long:  "Create a .nextcheck.yaml holding the default rules, ready to edit.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := targetPath(args)
			if err != nil {
				return err
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			dest := filepath.Join(absPath, config.FileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", config.FileName)
				} else if !errors.Is(err, os.ErrNotExist) {
					return fmt.Errorf("checking %s: %w", config.FileName, err)
				}
			}

			content, err := generateConfig(domain.DefaultConfig())
			if err != nil {
				return err
			}

			if err := os.WriteFile(dest, content, 0o644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", config.FileName)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing .nextcheck.yaml")

	return cmd
}

// generateConfig renders cfg as commented YAML.
func generateConfig(cfg domain.Config) ([]byte, error) {
	var node yaml.Node
	if err := node.Encode(cfg); err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}

	if node.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i]
			if c, ok := sectionComments[key.Value]; ok {
				key.HeadComment = c
			}
		}
	}

	var buf bytes.Buffer
	buf.WriteString(configHeader)
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return buf.Bytes(), nil
}
