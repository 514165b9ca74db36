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

	"github.com/relaywire/hashing/pkg/hashing/algorithms"
	"github.com/relaywire/hashing/pkg/hashing/mac"
	"github.com/relaywire/hashing/pkg/tracing"
)

// MacOptions holds the flags for the mac subcommand.
type MacOptions struct {
	// Key is the MAC key as a literal string.
	Key string
	// KeyHex is the MAC key as hex; takes precedence over Key.
	KeyHex string
	// SHA3 selects the SHA3-256 MAC instead of HMAC-SHA256.
	SHA3 bool
	// Length is the tag length in bytes for the SHA3-256 MAC.
	Length int
}

// AddFlags adds the mac flags to the command.
func (o *MacOptions) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.Key, "key", "k", "",
		"MAC key (literal string)")
	cmd.Flags().StringVar(&o.KeyHex, "key-hex", "",
		"MAC key (hex encoded; overrides --key)")
	cmd.Flags().BoolVar(&o.SHA3, "sha3", false,
		"use the SHA3-256 MAC instead of HMAC-SHA256")
	cmd.Flags().IntVarP(&o.Length, "length", "n", algorithms.Digest256Len,
		"tag length in bytes (SHA3-256 MAC only)")
}

// Mac returns the mac subcommand.
func Mac() *cobra.Command {
	o := &MacOptions{}

	cmd := &cobra.Command{
		Use:   "mac [OPTIONS] [FILE]",
		Short: "Compute a keyed MAC of FILE or standard input.",
		Long: `Compute a keyed MAC of FILE or standard input.

    By default the tag is HMAC-SHA256 (32 bytes). With --sha3 the
    SHA3-256 keyed MAC is used instead, and --length selects the tag
    length.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := []byte(o.Key)
			if o.KeyHex != "" {
				var err error
				key, err = hex.DecodeString(o.KeyHex)
				if err != nil {
					return fmt.Errorf("invalid --key-hex: %w", err)
				}
			}
			if o.Length <= 0 {
				return fmt.Errorf("invalid tag length %d", o.Length)
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), ro.Timeout)
			defer cancel()

			return tracing.Run(ctx, "hashctl.mac", map[string]interface{}{
				"sha3":   o.SHA3,
				"length": o.Length,
			}, func(context.Context) error {
				msg, err := readInput(args)
				if err != nil {
					return err
				}

				var tag []byte
				if o.SHA3 {
					tag = mac.SHA3256(key, msg, o.Length)
				} else {
					t := mac.HMACSHA256(key, msg)
					tag = t[:]
				}

				cmd.Printf("%s\n", hex.EncodeToString(tag))
				return nil
			})
		},
	}

	o.AddFlags(cmd)
	return cmd
}

// readInput returns the contents of args[0], or of standard input when
// no file is given.
func readInput(args []string) ([]byte, error) {
	if len(args) == 0 {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(args[0])
}
