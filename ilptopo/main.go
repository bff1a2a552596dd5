// Command ilptopo builds an ILP-study system topology and hands it to a
// simulation engine.
package main

import "github.com/sarchlab/ilptopo/ilptopo/cmd"

func main() {
	cmd.Execute()
}
