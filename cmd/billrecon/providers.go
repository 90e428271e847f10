package main

import (
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type providerEntry struct {
	Provider    string   `yaml:"provider"`
	Description string   `yaml:"description"`
	Fields      []string `yaml:"fields"`
}

func newProvidersCmd(a *app) *cobra.Command {
	var asYAML bool
	cmd := &cobra.Command{
		Use:   "providers",
		Short: "List the providers with reconciliation rules",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rules := a.engine().Registry().Rules()
			if asYAML {
				entries := make([]providerEntry, 0, len(rules))
				for _, r := range rules {
					e := providerEntry{Provider: string(r.Provider), Description: r.Description}
					for _, f := range r.FieldPaths() {
						e.Fields = append(e.Fields, f.Path)
					}
					entries = append(entries, e)
				}
				enc := yaml.NewEncoder(os.Stdout)
				enc.SetIndent(2)
				defer enc.Close()
				return enc.Encode(entries)
			}

			data := pterm.TableData{{"Provider", "Description"}}
			for _, r := range rules {
				data = append(data, []string{string(r.Provider), r.Description})
			}
			return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
		},
	}
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print rules as YAML, including the fields each rule reads")
	return cmd
}
