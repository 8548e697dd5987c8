/*
   Copyright 2025 The DIRPX Authors

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

// Command errnotab prints the full error taxonomy and cross-checks it:
// every defined code must have a non-empty phrase, every alias must
// resolve to the same phrase as its primary name, and lookups outside
// the table must hit the fallback.
//
// It is a one-shot developer tool for reviewing the table after edits;
// the same properties are enforced by the errno package tests.
package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"dirpx.dev/dbc/errno"
)

func main() {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tNAME\tPHRASE")

	bad := 0
	for _, c := range errno.Codes() {
		phrase := errno.Phrase(c)
		if phrase == "" || phrase == errno.FallbackPhrase {
			bad++
			fmt.Fprintf(w, "%d\t%s\t!! missing phrase\n", int(c), errno.Name(c))
			continue
		}
		fmt.Fprintf(w, "%d\t%s\t%s\n", int(c), errno.Name(c), phrase)
	}
	_ = w.Flush()

	fmt.Println()
	fmt.Println("Aliases:")
	aliases := errno.Aliases()
	names := make([]string, 0, len(aliases))
	for name := range aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		c := aliases[name]
		fmt.Printf("  %s = %s = %d (%s)\n", name, errno.Name(c), int(c), errno.Phrase(c))
		if !errno.Defined(c) {
			bad++
		}
	}

	fmt.Println()
	fmt.Printf("Undefined lookup check: Phrase(-1)=%q Phrase(9999)=%q\n",
		errno.Phrase(-1), errno.Phrase(9999))
	if errno.Phrase(-1) != errno.FallbackPhrase || errno.Phrase(9999) != errno.FallbackPhrase {
		bad++
	}

	if bad > 0 {
		fmt.Fprintf(os.Stderr, "errnotab: %d problem(s) found\n", bad)
		os.Exit(1)
	}
	fmt.Printf("\n%d codes OK, %d aliases OK\n", len(errno.Codes()), len(aliases))
}
