/*
   Copyright 2018-2019 Banco Bilbao Vizcaya Argentaria, S.A.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package cmd implements the bintree command line.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/bbva/bintree/log"
	"github.com/bbva/bintree/session"
)

var Root *cobra.Command = NewRootCommand()

// Execute runs c and reports any error on its error stream. Cobra's own
// error printing is silenced because it writes to the prompt output.
func Execute(c *cobra.Command) error {
	err := c.Execute()
	if err != nil {
		fmt.Fprintf(c.ErrOrStderr(), "Error: %v\n", err)
	}
	return err
}

// NewRootCommand builds the bintree command tree. Prompts are written to
// the command output and answers read from its input unless a script file
// is configured.
func NewRootCommand() *cobra.Command {
	v := newViper()
	var conf *Config

	cmd := &cobra.Command{
		Use:   "bintree",
		Short: "Build a binary tree interactively and print it in order",
		Long: `bintree asks for a root value and then for children to attach to
existing nodes, each one placed explicitly as a left or right child of the
first node holding the chosen parent value. When no more children are added
the tree is printed in order, one value per line indented by depth.`,
		Args: cobra.NoArgs,
		// SilenceUsage is set to true -> https://github.com/spf13/cobra/issues/340
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			conf, err = loadConfig(v, cmd.Flags().Changed("config"))
			if err != nil {
				return err
			}
			level := log.LevelFromString(conf.Log)
			if level == log.NotSet {
				return errors.Newf("invalid log level %q", conf.Log)
			}
			log.SetDefault(log.New(&log.LoggerOptions{
				Name:            "bintree",
				Level:           level,
				Output:          cmd.ErrOrStderr(),
				IncludeLocation: conf.LogLocation,
			}))
			log.L().Debugf("Configuration: %+v", *conf)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if conf.Input != "" {
				f, err := os.Open(conf.Input)
				if err != nil {
					return errors.Wrap(err, "opening input script")
				}
				defer f.Close()
				in = f
			}
			return runSession(in, cmd.OutOrStdout(), conf)
		},
	}

	f := cmd.PersistentFlags()
	f.String("config", defaultConfigPath, "Path to the YAML config file")
	f.String("log", DefaultConfig().Log, "Choose between log levels: off, error, warn, info, debug, trace")
	f.Bool("log-location", DefaultConfig().LogLocation, "Include the caller file and line in log lines")

	f = cmd.Flags()
	f.Int("indent", DefaultConfig().Indent, "Spaces per depth level when printing the tree")
	f.String("input", "", "Read answers from this file instead of the standard input")

	// Lookups
	v.BindPFlag("config", cmd.PersistentFlags().Lookup("config"))
	v.BindPFlag("log", cmd.PersistentFlags().Lookup("log"))
	v.BindPFlag("log-location", cmd.PersistentFlags().Lookup("log-location"))
	v.BindPFlag("indent", cmd.Flags().Lookup("indent"))
	v.BindPFlag("input", cmd.Flags().Lookup("input"))

	cmd.AddCommand(newVersionCommand())

	return cmd
}

func runSession(in io.Reader, out io.Writer, conf *Config) error {
	s := session.New(in, out, &session.Config{
		Indent: conf.Indent,
	})
	if err := s.Run(); err != nil {
		log.L().Errorf("Session aborted in state %v: %v", s.State(), err)
		return err
	}
	log.L().Infof("Tree built with %d nodes", s.Tree().Size())
	return nil
}
