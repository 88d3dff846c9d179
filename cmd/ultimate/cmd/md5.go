package cmd

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/satish049/Ultimate.Utilities/foundation/core/errors"
	"github.com/satish049/Ultimate.Utilities/foundation/core/log"
	"github.com/satish049/Ultimate.Utilities/foundation/utils/hashx"
)

func newMD5Cmd(a *app) *cobra.Command {
	var (
		asBase64 bool
		file     string
	)

	cmd := &cobra.Command{
		Use:   "md5 [text]",
		Short: "Print the MD5 digest of text or a file",
		Long: `Prints the MD5 digest of the argument, or of a file with --file.
Use --file - to read standard input.

Examples:
  ultimate md5 abc                # 900150983cd24fb0d6963f7d28e17f72
  ultimate md5 --base64 abc       # kAFQmDzST7DWlj99KOF/cg==
  ultimate md5 --file go.mod`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var digest string
			switch {
			case file != "":
				if len(args) > 0 {
					return errors.InvalidArgument(errors.ModuleHashx, "md5", "give either text or --file, not both")
				}
				hexDigest, err := hashFile(cmd, file)
				if err != nil {
					a.logger.LogError(err)
					return err
				}
				digest = hexDigest
				if asBase64 {
					raw, _ := hex.DecodeString(hexDigest)
					digest = base64.StdEncoding.EncodeToString(raw)
				}
			case len(args) == 1:
				if asBase64 {
					digest = hashx.MD5Base64(args[0])
				} else {
					digest = hashx.MD5Hex(args[0])
				}
			default:
				return errors.InvalidArgument(errors.ModuleHashx, "md5", "nothing to hash")
			}

			fmt.Fprintln(cmd.OutOrStdout(), digest)
			a.done(cmd, log.Fields{"file": file, "base64": asBase64})
			return nil
		},
	}

	cmd.Flags().BoolVar(&asBase64, "base64", false, "print base64 instead of hex")
	cmd.Flags().StringVarP(&file, "file", "f", "", "hash the contents of a file, - for stdin")
	return cmd
}

func hashFile(cmd *cobra.Command, path string) (string, error) {
	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return "", errors.NotFound(errors.ModuleHashx, "md5", path).WithDetail("cause", err.Error())
		}
		defer f.Close()
		r = f
	}
	return hashx.MD5Reader(r)
}
