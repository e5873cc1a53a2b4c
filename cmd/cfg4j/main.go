// Command cfg4j inspects environment-scoped configuration trees: it merges
// the configuration files of an environment exactly like the library does
// and prints the result.
package main

func main() {
	execute()
}
