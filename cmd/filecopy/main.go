// Command filecopy copies a file and replicates its permission bits onto the copy.
//
//	Usage: filecopy <src> <dest>
package main

import "os"

func main() {
	var a = &app{stdout: os.Stdout, stderr: os.Stderr, exit: os.Exit}
	a.run(os.Args[1:])
}
