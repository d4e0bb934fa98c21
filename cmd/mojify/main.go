// mojify is a command-line emoji translator: it reads sentences and prints
// emoji renderings, word by word and phrase by phrase.
//
// Usage:
//
//   mojify [--no-demo] [--trace Debug|Info|Error]
//
// mojify first prints a couple of demo translations and then enters an
// interactive loop. Type 'quit' or 'exit' to leave.
package main

func main() {
	Execute()
}
