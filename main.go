// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/przemek-pokrywka/coursier/cmd/cs"

func main() {
	cmd.Execute()
}
