package main

import (
	"fmt"

	"github.com/aretw0/docframe/internal/presentation/graph"
	"github.com/aretw0/docframe/internal/presentation/tui"
	"github.com/aretw0/docframe/pkg/wire"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:               "inspect <example>",
	Short:             "Print the node outline of an example",
	Long:              `Encodes the named example, decodes it again and prints the tree as Markdown, plain text or a Mermaid diagram.`,
	Args:              exampleArg,
	ValidArgsFunction: completeExamples,
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := state.docs.Build(args[0])
		if err != nil {
			return err
		}
		data, err := doc.Marshal()
		if err != nil {
			return err
		}
		outline, err := wire.Unmarshal(data)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		mode, _ := cmd.Flags().GetString("as")
		switch mode {
		case "mermaid":
			fmt.Fprint(out, graph.GenerateMermaid(outline))
		case "text":
			fmt.Fprint(out, outline.PlainText())
		case "markdown", "":
			plain, _ := cmd.Flags().GetBool("plain")
			plain = plain || !isTerminal(out)
			rendered, err := tui.NewRenderer(plain)(graph.GenerateMarkdown(outline))
			if err != nil {
				return err
			}
			fmt.Fprint(out, rendered)
		default:
			return fmt.Errorf("unknown --as %q: want markdown, text or mermaid", mode)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().String("as", "markdown", "Output style: markdown, text or mermaid")
	inspectCmd.Flags().Bool("plain", false, "Disable terminal styling of the markdown outline (implied when not on a terminal)")
}
