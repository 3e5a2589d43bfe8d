package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"blog-web/preview"
)

// newPreviewCmd 는 표준 입력의 마크다운을 피드 카드와 같은 규칙으로 요약해 출력한다.
func newPreviewCmd() *cobra.Command {
	var maxLen int
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print the plain-text preview of markdown read from stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			src, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("read markdown: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), preview.ToPreview(string(src), maxLen))
			return err
		},
	}
	cmd.Flags().IntVar(&maxLen, "max", 120, "maximum preview length in characters")
	return cmd
}
