/*
Package catena concatenates input streams and optionally formats their lines.

It reads a sequence of path tokens (files, or "-" for standard input) and
writes their bytes to one output, in order. When configured it numbers lines,
squeezes runs of blank lines, marks line ends, substitutes tabs and shows
non-printing bytes in caret and meta notation.

# Concept

A run is a single pass. The line counter and the blank-line state span every
input of the run, so numbering continues across file boundaries. When no
transformation is configured the bytes are copied without being split into
lines.

# Usage

	package main

	import (
		"log"
		"os"

		"github.com/aretw0/catena"
		"github.com/aretw0/catena/pkg/domain"
	)

	func main() {
		cfg := domain.Config{
			Numbering:    domain.NumberAll,
			SqueezeBlank: true,
			EndMarker:    domain.NewMarker("$"),
		}
		if err := catena.New(cfg).Concat(os.Stdout, os.Args[1:]); err != nil {
			log.Fatal(err)
		}
	}

Inputs other than the filesystem are plugged in with WithResolver; see the
pkg/adapters/memory package.
*/
package catena
