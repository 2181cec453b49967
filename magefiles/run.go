//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Runs the engine with the testbed scene, or with the configuration in
// GEOSCENE_CONFIG when set.
func (Run) Engine() error {
	mg.Deps(tidy)
	fmt.Println("Run engine...")
	args := []string{"run", "main.go"}
	if config := os.Getenv("GEOSCENE_CONFIG"); config != "" {
		args = append(args, "-config", config)
	}
	if _, err := executeCmd("go", withArgs(args...), withStream()); err != nil {
		return err
	}
	return nil
}
