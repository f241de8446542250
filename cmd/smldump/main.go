// Command smldump parses an SML message from stdin or a -file flag and
// prints its decoded form: the parsed stream/function header, the
// canonical SML rendering of the data tree, and (with -hex) the HSMS
// wire bytes of the message body.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"github.com/wolimst/secs2-hsms-core/pkg/parser"
)

func main() {
	filePath := flag.String("file", "", "path to an SML message file; defaults to stdin")
	showHex := flag.Bool("hex", false, "also print the HSMS wire bytes of the message body")
	flag.Parse()

	input, err := readInput(*filePath)
	if err != nil {
		log.Fatalf("smldump: %v", err)
	}

	sf, err := parser.Parse(string(input))
	if err != nil {
		log.Fatalf("smldump: parse error:\n%s", err)
	}

	fmt.Printf("S%dF%d", sf.Stream, sf.Function)
	if sf.WaitBit {
		fmt.Print(" W")
	}
	fmt.Println()
	fmt.Println(sf.String())

	if *showHex {
		body, err := sf.Bytes()
		if err != nil {
			log.Fatalf("smldump: encode error: %v", err)
		}
		fmt.Println(hex.EncodeToString(body))
	}
}

func readInput(filePath string) ([]byte, error) {
	if filePath == "" {
		return ioutil.ReadAll(os.Stdin)
	}
	return ioutil.ReadFile(filePath)
}
