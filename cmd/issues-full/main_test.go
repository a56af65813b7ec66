//go:build unit

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootCommand_Subcommands(t *testing.T) {
	rootCmd := newRootCmd()

	var names []string
	for _, cmd := range rootCmd.Commands() {
		names = append(names, cmd.Name())
	}

	assert.Subset(t, names, []string{"init", "enrich", "watch", "cache", "mapping"})
}

func TestRootCommand_GlobalFlags(t *testing.T) {
	rootCmd := newRootCmd()

	for _, name := range []string{"quiet", "verbose", "config"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), name)
	}
}
