package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aleksaelezovic/simplerdf/pkg/rdf"
)

// NewExpandCommand creates the expand command.
func NewExpandCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "expand <prefix:name>...",
		Short: "Expand prefixed names to full IRIs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ns := rootOpts.Config.NamespaceMap()
			for _, arg := range args {
				iri, err := ns.Expand(arg)
				if err != nil {
					return err
				}
				rootOpts.Logger.Debug("expanded", zap.String("name", arg), zap.String("iri", iri.IRI))
				fmt.Fprintln(cmd.OutOrStdout(), iri.IRI)
			}
			return nil
		},
	}
}

// NewShortenCommand creates the shorten command.
func NewShortenCommand(rootOpts *RootOptions) *cobra.Command {
	var create bool

	cmd := &cobra.Command{
		Use:   "shorten <iri>...",
		Short: "Shorten IRIs to prefixed names",
		Long: `Shorten IRIs to prefixed names using the configured namespaces.

With --create, IRIs matching no namespace get a generated prefix (n0, n1, ...)
that is reused by later arguments.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ns := rootOpts.Config.NamespaceMap()
			for _, arg := range args {
				short, err := ns.Shorten(rdf.NewNamedNode(arg), create)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), short)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&create, "create", false, "generate a prefix for unknown namespaces")

	return cmd
}
