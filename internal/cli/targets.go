package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/eslintgen/internal/logging"
	"github.com/yaklabco/eslintgen/pkg/config"
	"github.com/yaklabco/eslintgen/pkg/render"
)

func newTargetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "targets",
		Short: "List the supported filetypes",
		Long: `List the filetype tokens accepted as the first argument, with the file each
one writes by default and the column descriptions are aligned to.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			logger := logging.NewInteractive(cmd.OutOrStdout())

			for _, target := range render.Targets() {
				logger.Info(target.Name(),
					logging.FieldFile, config.DefaultBaseName+"."+target.Name(),
					logging.FieldColumn, target.Column(),
					logging.FieldComment, target.CommentSymbol(),
				)
			}
		},
	}
}
