// Copyright 2026 The Relaywire Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/relaywire/hashing/pkg/hashing/algorithms"
	"github.com/relaywire/hashing/pkg/hashing/digests"
	"github.com/relaywire/hashing/pkg/hashing/engines"
	"github.com/relaywire/hashing/pkg/tracing"
)

// SumOptions holds the flags for the sum subcommand.
type SumOptions struct {
	// Algorithm is the canonical digest algorithm name.
	Algorithm string
	// Encoding selects the output encoding (hex, base32, base64).
	Encoding string
}

// AddFlags adds the sum flags to the command.
func (o *SumOptions) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.Algorithm, "algorithm", "a", "sha256",
		"digest algorithm (sha1, sha256, sha512, sha3-256, sha3-512)")
	cmd.Flags().StringVarP(&o.Encoding, "encoding", "e", "hex",
		"output encoding (hex, base32, base64)")
}

// Sum returns the sum subcommand.
func Sum() *cobra.Command {
	o := &SumOptions{}

	cmd := &cobra.Command{
		Use:   "sum [OPTIONS] [FILE...]",
		Short: "Compute a digest of each FILE, or of standard input.",
		Long: `Compute a digest of each FILE, or of standard input.

    Files are streamed, so inputs larger than memory are fine. The
    digest of each file is printed on its own line followed by the file
    name ("-" for standard input).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			alg, err := algorithms.Parse(o.Algorithm)
			if err != nil {
				return err
			}

			logger := ro.NewLogger()
			ctx, cancel := context.WithTimeout(cmd.Context(), ro.Timeout)
			defer cancel()

			return tracing.Run(ctx, "hashctl.sum", map[string]interface{}{
				"algorithm": o.Algorithm,
				"files":     len(args),
			}, func(context.Context) error {
				if len(args) == 0 {
					return sumOne(cmd, os.Stdin, "-", alg, o.Encoding)
				}
				for _, path := range args {
					f, err := os.Open(path)
					if err != nil {
						return err
					}
					err = sumOne(cmd, f, path, alg, o.Encoding)
					_ = f.Close()
					if err != nil {
						return err
					}
					logger.Debug("digested %s", path)
				}
				return nil
			})
		},
	}

	o.AddFlags(cmd)
	return cmd
}

func sumOne(cmd *cobra.Command, r io.Reader, name string, alg algorithms.Algorithm, encoding string) error {
	c := engines.NewContext(alg)
	defer c.Release()

	if _, err := io.Copy(c, r); err != nil {
		return fmt.Errorf("error reading %s: %w", name, err)
	}

	d := digests.NewDigest(algorithms.Name(alg), c.SumFixed())
	text, err := encodeDigest(d, encoding)
	if err != nil {
		return err
	}

	cmd.Printf("%s  %s\n", text, name)
	return nil
}

// encodeDigest renders a digest in one of the contractual text encodings.
func encodeDigest(d digests.Digest, encoding string) (string, error) {
	switch encoding {
	case "hex":
		return d.Hex(), nil
	case "base32":
		return d.Base32(), nil
	case "base64":
		return d.Base64(), nil
	default:
		return "", fmt.Errorf("unknown encoding %q (want hex, base32 or base64)", encoding)
	}
}
