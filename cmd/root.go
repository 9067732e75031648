/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

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
package cmd

import (
	"fmt"
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile     string
	cpuProfile  bool
	profilePath string
	profiler    interface{ Stop() }
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gomhd",
	Short: "Incompressible resistive MHD discretization on polygonal meshes",
	Long: `
Builds mimetic and virtual element discretizations of the 2D incompressible resistive
MHD system on polygonal meshes, and reports norms and diagnostics of analytic cases.

gomhd mhd -I params.yaml
gomhd norms > norms.csv`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if cpuProfile {
			startProfile(profilePath)
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		stopProfile()
	},
}

func startProfile(path string) {
	profiler = profile.Start(profile.CPUProfile, profile.ProfilePath(path), profile.NoShutdownHook)
}

func stopProfile() {
	if profiler != nil {
		profiler.Stop()
		profiler = nil
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.gomhd.yaml)")
	rootCmd.PersistentFlags().Float64("Re", 1, "fluid Reynolds number")
	rootCmd.PersistentFlags().Float64("Rm", 1, "magnetic Reynolds number")
	rootCmd.PersistentFlags().Float64("dt", 0.01, "time step")
	rootCmd.PersistentFlags().Float64("theta", 0.5, "time weighting, boundary and source data are sampled at t + theta dt")
	rootCmd.PersistentFlags().Int("procs", 0, "parallel degree, 0 uses all CPUs")
	rootCmd.PersistentFlags().BoolVar(&cpuProfile, "profile", false, "write a CPU profile")
	rootCmd.PersistentFlags().StringVar(&profilePath, "profile-path", ".", "directory of the CPU profile")
	for _, name := range []string{"Re", "Rm", "dt", "theta", "procs"} {
		if err := viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name)); err != nil {
			panic(err)
		}
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		// Search config in home directory with name ".gomhd" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".gomhd")
	}
	viper.SetEnvPrefix("gomhd")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}
