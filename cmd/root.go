/*
Copyright © 2019 Matt Muldowney <matt.muldowney@gmail.com>

*/
package cmd

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool

	logger = log.New(os.Stderr, "colormatrix: ", 0)
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "colormatrix",
	Short: "Derives RGB/XYZ conversion matrices from chromaticity primaries",
	Long: `colormatrix derives the matrix that maps linear RGB in a color system
to CIE XYZ from the system's primaries and white point, inverts it, and
prints the XYZ to RGB matrix.

Without a subcommand it behaves like "colormatrix compute".`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCompute(cmd.OutOrStdout(), &opts)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.colormatrix.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "report configuration details on stderr")

	rootCmd.PersistentFlags().StringVarP(&opts.preset, "preset", "p", "", "color system preset or configured system (default \"CIE\")")
	rootCmd.PersistentFlags().StringVar(&opts.red, "red", "", "red primary as x,y (overrides the preset)")
	rootCmd.PersistentFlags().StringVar(&opts.green, "green", "", "green primary as x,y (overrides the preset)")
	rootCmd.PersistentFlags().StringVar(&opts.blue, "blue", "", "blue primary as x,y (overrides the preset)")
	rootCmd.PersistentFlags().StringVar(&opts.white, "white", "", "white point as x,y (overrides the preset)")
	rootCmd.PersistentFlags().StringVarP(&opts.illuminant, "illuminant", "i", "", "named white point: C, D65 or E (overrides the preset)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if !verbose {
		logger.SetOutput(ioutil.Discard)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			logger.Printf("cannot locate home directory: %v", err)
		} else {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".colormatrix")
	}

	viper.SetEnvPrefix("colormatrix")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		logger.Println("using config file:", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		logger.SetOutput(os.Stderr)
		logger.Fatalf("cannot read config file %s: %v", cfgFile, err)
	}
}
