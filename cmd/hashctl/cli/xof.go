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
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/relaywire/hashing/pkg/hashing/xof"
	"github.com/relaywire/hashing/pkg/tracing"
)

// XofOptions holds the flags for the xof subcommand.
type XofOptions struct {
	// Length is the number of output bytes to squeeze.
	Length int
	// Binary writes raw bytes to stdout instead of hex.
	Binary bool
}

// AddFlags adds the xof flags to the command.
func (o *XofOptions) AddFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&o.Length, "length", "n", 32,
		"number of output bytes")
	cmd.Flags().BoolVar(&o.Binary, "binary", false,
		"write raw bytes instead of hex")
}

// Xof returns the xof subcommand.
func Xof() *cobra.Command {
	o := &XofOptions{}

	cmd := &cobra.Command{
		Use:   "xof [OPTIONS] [FILE]",
		Short: "Absorb FILE or standard input into SHAKE-256 and print output bytes.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if o.Length <= 0 {
				return fmt.Errorf("invalid output length %d", o.Length)
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), ro.Timeout)
			defer cancel()

			return tracing.Run(ctx, "hashctl.xof", map[string]interface{}{
				"length": o.Length,
			}, func(context.Context) error {
				x := xof.New()
				defer x.Release()

				var r io.Reader = os.Stdin
				if len(args) == 1 {
					f, err := os.Open(args[0])
					if err != nil {
						return err
					}
					defer f.Close()
					r = f
				}

				buf := make([]byte, 64*1024)
				for {
					n, err := r.Read(buf)
					if n > 0 {
						x.AddBytes(buf[:n])
					}
					if err == io.EOF {
						break
					}
					if err != nil {
						return err
					}
				}

				out := make([]byte, o.Length)
				x.Squeeze(out)

				if o.Binary {
					_, err := cmd.OutOrStdout().Write(out)
					return err
				}
				cmd.Printf("%s\n", hex.EncodeToString(out))
				return nil
			})
		},
	}

	o.AddFlags(cmd)
	return cmd
}
