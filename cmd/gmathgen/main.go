// Copyright 2025 go-gmath Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// gmathgen emits the Go source for a fixed-size generic matrix type.
//
// The element-wise operations on a Matrix{R}x{C} are entirely mechanical;
// rather than hand-maintain every size, the non-core sizes are generated:
//
//	gmathgen -rows 2 -cols 2 -package gmath -o matrix2x2.go
//	gmathgen -rows 4 -cols 3 -package gmath -alias float32 -alias float64
//
// Output is passed through goimports formatting before it is written.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

type aliasList []string

func (a *aliasList) String() string { return strings.Join(*a, ",") }

func (a *aliasList) Set(v string) error {
	*a = append(*a, v)
	return nil
}

func main() {
	var (
		rows    = flag.Int("rows", 0, "number of matrix rows (1-9)")
		cols    = flag.Int("cols", 0, "number of matrix columns (1-9)")
		pkg     = flag.String("package", "gmath", "package name for the generated file")
		out     = flag.String("o", "", "output file (default Matrix{R}x{C} lowercased + .go)")
		aliases aliasList
	)
	flag.Var(&aliases, "alias", "element type to emit a concrete alias for (repeatable)")
	flag.Parse()

	if *rows < 1 || *rows > 9 || *cols < 1 || *cols > 9 {
		fmt.Fprintln(os.Stderr, "gmathgen: -rows and -cols must be in 1..9")
		os.Exit(2)
	}

	spec := matrixSpec{
		Rows:    *rows,
		Cols:    *cols,
		Package: *pkg,
		Aliases: aliases,
	}

	path := *out
	if path == "" {
		path = fmt.Sprintf("matrix%dx%d.go", *rows, *cols)
	}

	src, err := generate(spec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gmathgen: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(path, src, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "gmathgen: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("gmathgen: wrote %s (%d bytes)\n", path, len(src))
}
