package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	m "github.com/mproffitt/mimeinfo/pkg/mime"
	"github.com/spf13/cobra"
)

var (
	infoLang string

	infoCmd = &cobra.Command{
		Use:   "info <type-or-filename>",
		Short: "Show comment, icon and alias information for a type",
		Long: `Show everything the database knows about a type. The argument may
be a "media/subtype" name, or a file name which is resolved first.
A path argument is reduced to its base name before resolution; an
argument that parses as "media/subtype" is treated as a type name.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				t  m.Type
				ok bool
			)
			if isTypeName(args[0]) {
				t = engine.ForType(args[0])
			} else if t, ok = engine.FromName(filepath.Base(args[0])); !ok {
				return fmt.Errorf("no matching type for %q", args[0])
			}

			lang := infoLang
			if lang == "" {
				lang = cfg.Lang
			}

			fmt.Printf("type:    %s\n", t.Name())
			fmt.Printf("icon:    %s\n", t.Icon())
			fmt.Printf("default: %t\n", t.IsDefault())
			if comment, ok := t.Comment(lang); ok {
				fmt.Printf("comment: %s\n", comment)
			}
			if canonical, ok := t.AliasOf(); ok {
				fmt.Printf("alias of: %s\n", canonical)
			}
			if aliases, ok := t.Aliases(); ok && len(aliases) > 0 {
				fmt.Printf("aliases: %s\n", strings.Join(aliases, ", "))
			}
			return nil
		},
	}
)

// isTypeName Test whether the argument is a "media/subtype" name
// rather than a file path
//
// A media part is a bare word such as "text" or "application"; it never
// contains a dot or further separators, which distinguishes type names
// from relative paths like "./notes.txt".
func isTypeName(arg string) bool {
	media, subtype, ok := strings.Cut(arg, "/")
	return ok && media != "" && subtype != "" &&
		!strings.Contains(subtype, "/") &&
		!strings.Contains(media, ".")
}

func init() {
	infoCmd.Flags().StringVar(&infoLang, "lang", "", "Language for the comment (default from config, then \"en\")")
}
