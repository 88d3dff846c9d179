package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/satish049/Ultimate.Utilities/foundation/core/errors"
	"github.com/satish049/Ultimate.Utilities/foundation/core/log"
	"github.com/satish049/Ultimate.Utilities/foundation/utils/stringx"
)

func newSubstringCmd(a *app) *cobra.Command {
	var (
		start     int
		end       int
		negatives bool
	)

	cmd := &cobra.Command{
		Use:   "substring <text>",
		Short: "Extract part of a string by rune position",
		Long: `Extracts runes from start (and up to end, inclusive) of the text.

A negative start counts from the end. Without --negatives a negative start
combined with --end is rejected.

Examples:
  ultimate substring --start -2 abc           # bc
  ultimate substring --start 1 --end 3 abcdef # bcd
  ultimate substring --negatives --start -3 --end -1 abcdef # def`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := args[0]
			var result string
			switch {
			case !cmd.Flags().Changed("end"):
				result = stringx.Substring(s, start)
			case negatives:
				result = stringx.SubstringWithNegatives(s, start, end)
			default:
				r, ok := stringx.SubstringRange(s, start, end)
				if !ok {
					return errors.InvalidArgument(errors.ModuleStringx, "SubstringRange",
						"start must not be negative; use --negatives to count from the end")
				}
				result = r
			}

			fmt.Fprintln(cmd.OutOrStdout(), result)
			a.done(cmd, log.Fields{"start": start, "runes": stringx.Length(result)})
			return nil
		},
	}

	cmd.Flags().IntVar(&start, "start", 0, "start position, negative counts from the end")
	cmd.Flags().IntVar(&end, "end", 0, "inclusive end position")
	cmd.Flags().BoolVar(&negatives, "negatives", false, "let --end count from the end as well")
	return cmd
}

func newSplitCmd(a *app) *cobra.Command {
	var (
		sep       string
		maxTokens int
		preserve  bool
		whole     bool
		byType    bool
		camel     bool
		quote     bool
	)

	cmd := &cobra.Command{
		Use:   "split <text>",
		Short: "Split a string into tokens",
		Long: `Splits text and prints one token per line.

Without --sep the text is split on whitespace. --sep is a set of separator
characters unless --whole makes it a single multi-character separator.
--preserve keeps the empty tokens between adjacent separators.

Examples:
  ultimate split "a b  c"
  ultimate split --sep : --preserve ab::cd:ef
  ultimate split --whole --sep ", " "a, b, c"
  ultimate split --by-type --camel foo200Bar`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := args[0]
			var tokens []string
			switch {
			case byType && camel:
				tokens = stringx.SplitByCharacterTypeCamelCase(s)
			case byType:
				tokens = stringx.SplitByCharacterType(s)
			case whole && preserve:
				tokens = stringx.SplitByWholeSeparatorPreserveAllTokensN(s, sep, maxTokens)
			case whole:
				tokens = stringx.SplitByWholeSeparatorN(s, sep, maxTokens)
			case preserve:
				tokens = stringx.SplitAnyPreserveAllTokensN(s, sep, maxTokens)
			default:
				tokens = stringx.SplitAnyN(s, sep, maxTokens)
			}

			out := cmd.OutOrStdout()
			for _, tok := range tokens {
				if quote {
					fmt.Fprintf(out, "%q\n", tok)
				} else {
					fmt.Fprintln(out, tok)
				}
			}
			a.done(cmd, log.Fields{"tokens": len(tokens)})
			return nil
		},
	}

	cmd.Flags().StringVar(&sep, "sep", "", "separator characters (empty means whitespace)")
	cmd.Flags().IntVar(&maxTokens, "max", 0, "maximum number of tokens, 0 for no limit")
	cmd.Flags().BoolVar(&preserve, "preserve", false, "keep empty tokens")
	cmd.Flags().BoolVar(&whole, "whole", false, "treat --sep as one separator string")
	cmd.Flags().BoolVar(&byType, "by-type", false, "split on character type changes")
	cmd.Flags().BoolVar(&camel, "camel", false, "with --by-type, keep camel case words together")
	cmd.Flags().BoolVarP(&quote, "quote", "q", false, "print tokens as quoted Go strings")
	return cmd
}

func newJoinCmd(a *app) *cobra.Command {
	var sep string

	cmd := &cobra.Command{
		Use:   "join <element>...",
		Short: "Join elements with a separator",
		Long: `Joins the arguments with a separator, skipping empty elements.

The default separator comes from join.separator in the config file.

Examples:
  ultimate join a b c          # a,b,c
  ultimate join --sep " | " a "" b  # a | b`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("sep") {
				sep = a.cfg.GetString("join.separator", ",")
			}
			fmt.Fprintln(cmd.OutOrStdout(), stringx.Join(args, sep))
			a.done(cmd, log.Fields{"elements": len(args)})
			return nil
		},
	}

	cmd.Flags().StringVar(&sep, "sep", ",", "separator")
	return cmd
}

func newAbbreviateCmd(a *app) *cobra.Command {
	var width, offset int

	cmd := &cobra.Command{
		Use:   "abbreviate <text>",
		Short: "Shorten a string with ellipses",
		Long: `Abbreviates text to at most --width runes using "...".

With --offset the window is moved so that the rune at offset stays visible.

Examples:
  ultimate abbreviate --width 6 abcdefg                    # abc...
  ultimate abbreviate --offset 5 --width 10 abcdefghijklmno # ...fghi...`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := stringx.AbbreviateOffset(args[0], offset, width)
			if err != nil {
				a.logger.LogError(err)
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result)
			a.done(cmd, log.Fields{"width": width, "offset": offset})
			return nil
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", 80, "maximum width in runes")
	cmd.Flags().IntVar(&offset, "offset", 0, "rune that must remain visible")
	return cmd
}

func newPadCmd(a *app) *cobra.Command {
	var (
		width   int
		with    string
		side    string
		columns bool
	)

	cmd := &cobra.Command{
		Use:   "pad <text>",
		Short: "Pad a string to a width",
		Long: `Pads text on the left, right or both sides with a repeating pattern.

--columns measures terminal display columns instead of runes, so wide
characters count twice. It requires a single pad character.

Examples:
  ultimate pad --width 8 --with yz --side left bat  # yzyzybat
  ultimate pad --width 7 --side center --with * go  # **go***`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("with") {
				with = a.cfg.GetString("pad.with", " ")
			}
			s := args[0]

			var result string
			if columns {
				r := []rune(with)
				if len(r) != 1 {
					return errors.InvalidArgument(errors.ModuleStringx, "pad", "--columns needs exactly one pad character")
				}
				switch side {
				case "left":
					result = stringx.PadLeftWidth(s, width, r[0])
				case "right":
					result = stringx.PadRightWidth(s, width, r[0])
				default:
					return errors.InvalidArgument(errors.ModuleStringx, "pad", "--columns supports left and right only")
				}
			} else {
				switch side {
				case "left":
					result = stringx.PadLeftString(s, width, with)
				case "right":
					result = stringx.PadRightString(s, width, with)
				case "center":
					result = stringx.CenterString(s, width, with)
				default:
					return errors.InvalidArgument(errors.ModuleStringx, "pad", fmt.Sprintf("unknown side %q", side))
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), result)
			a.done(cmd, log.Fields{"width": width, "side": side})
			return nil
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", 0, "target width")
	cmd.Flags().StringVar(&with, "with", " ", "pad pattern")
	cmd.Flags().StringVar(&side, "side", "left", "left, right or center")
	cmd.Flags().BoolVar(&columns, "columns", false, "measure display columns")
	return cmd
}

var caseStyles = map[string]func(string) string{
	"snake":        stringx.ToSnakeCase,
	"kebab":        stringx.ToKebabCase,
	"camel":        stringx.ToCamelCase,
	"pascal":       stringx.ToPascalCase,
	"title":        stringx.ToTitleCase,
	"upper":        stringx.UpperCase,
	"lower":        stringx.LowerCase,
	"swap":         stringx.SwapCase,
	"capitalize":   stringx.Capitalize,
	"uncapitalize": stringx.Uncapitalize,
}

func newCaseCmd(a *app) *cobra.Command {
	styles := make([]string, 0, len(caseStyles))
	for name := range caseStyles {
		styles = append(styles, name)
	}
	slices.Sort(styles)

	cmd := &cobra.Command{
		Use:       "case <style> <text>",
		Short:     "Convert the case of a string",
		Long:      "Converts text to one of: " + strings.Join(styles, ", "),
		ValidArgs: styles,
		Args:      cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			convert, ok := caseStyles[args[0]]
			if !ok {
				return errors.InvalidArgument(errors.ModuleStringx, "case", fmt.Sprintf("unknown style %q", args[0]))
			}
			fmt.Fprintln(cmd.OutOrStdout(), convert(args[1]))
			a.done(cmd, log.Fields{"style": args[0]})
			return nil
		},
	}
	return cmd
}
