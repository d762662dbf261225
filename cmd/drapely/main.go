// Drapely - seasonal colour analysis for your wardrobe
//
// Drapely classifies garment colours against the twelve-season colour
// analysis palettes using the CIEDE2000 perceptual colour difference.
//
// Copyright (c) 2025 Drapely contributors
// Licensed under the MIT License
package main

import "github.com/drapely/drapely/internal/cli"

func main() {
	cli.Execute()
}
