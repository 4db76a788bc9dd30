package main

import (
	_ "embed"
	"fmt"
)

//go:embed timeanchor.guide.md
var guideContent string

// GuideCmd prints the integration guide to stdout.
type GuideCmd struct{}

func (cmd *GuideCmd) Run(globals *Globals) error {
	fmt.Print(guideContent)
	return nil
}
